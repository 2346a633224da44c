package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/matching"
	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/service"
	"github.com/GoSim-25-26J-441/go-model-eval/internal/logger"
)

// Options are shared by every command.
type Options struct {
	Debug     bool          `short:"d" long:"debug" description:"debug logging"`
	Strategy  string        `short:"s" long:"strategy" description:"matching strategy" default:"name_type_loc"`
	GED       bool          `long:"ged" description:"also compute the bounded graph edit distances"`
	MaxNodes  int           `long:"ged-max-nodes" description:"skip edit distance above this many resources per graph" default:"12"`
	Timeout   time.Duration `long:"ged-timeout" description:"edit distance time budget" default:"5s"`
	NamesOnly bool          `long:"names-only" description:"drop every model attribute but the rosnames"`

	log    *slog.Logger
	stdout io.Writer
}

func (o *Options) compareOptions() service.Options {
	opts := service.DefaultOptions()
	opts.Strategy = o.Strategy
	opts.GED = o.GED
	opts.GEDMaxNodes = o.MaxNodes
	opts.GEDTimeout = o.Timeout
	opts.NamesOnly = o.NamesOnly
	return opts
}

func newParser(opts *Options) *flags.Parser {
	p := flags.NewParser(opts, flags.Default)
	p.Name = "modeleval"
	p.LongDescription = "Scores an extracted ROS computation graph against a ground truth.\n" +
		"Strategies: " + fmt.Sprint(matching.Names())

	p.AddCommand("compare", "Compare one model against one truth",
		"Compare a model document against a truth document and print the report.",
		&compareCommand{opts: opts})
	p.AddCommand("batch", "Compare many pairs listed in a manifest",
		"Compare every truth/model pair of a YAML manifest on a worker pool.",
		&batchCommand{opts: opts})

	p.CommandHandler = func(cmd flags.Commander, args []string) error {
		if opts.Debug {
			logger.Level.SetByName("debug")
		}
		if cmd == nil {
			return nil
		}
		return cmd.Execute(args)
	}
	return p
}

func run(args []string, stdout io.Writer, log *slog.Logger) error {
	opts := &Options{log: log, stdout: stdout}
	_, err := newParser(opts).ParseArgs(args)
	return err
}

func main() {
	log := logger.New("modeleval")
	if err := run(os.Args[1:], os.Stdout, log); err != nil {
		if flags.WroteHelp(err) {
			return
		}
		os.Exit(1)
	}
}
