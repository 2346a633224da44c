package ged

import (
	"fmt"

	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/cost"
	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/domain"
)

type Mode int

const (
	// Simple compares names only with unit insertion and deletion.
	Simple Mode = iota
	// Full compares every attribute; inserting or deleting an item costs its size.
	Full
)

func (m Mode) String() string {
	if m == Full {
		return "fullGED"
	}
	return "simpleGED"
}

func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *Mode) UnmarshalText(b []byte) error {
	switch string(b) {
	case "simpleGED":
		*m = Simple
	case "fullGED":
		*m = Full
	default:
		return fmt.Errorf("unknown edit distance mode %q", b)
	}
	return nil
}

type costModel struct {
	nodeSub func(t, m *domain.Resource) int
	nodeDel func(r *domain.Resource) int
	edgeSub func(t, m *domain.Link) int
	edgeDel func(l *domain.Link) int
}

func modelFor(mode Mode) costModel {
	if mode == Full {
		return costModel{
			nodeSub: func(t, m *domain.Resource) int { return cost.UnitResource(t, m, nil) },
			nodeDel: cost.ResourceSize,
			edgeSub: func(t, m *domain.Link) int { return cost.UnitLink(t, m, nil) },
			edgeDel: cost.LinkSize,
		}
	}
	return costModel{
		nodeSub: cost.SimpleResource,
		nodeDel: func(*domain.Resource) int { return 1 },
		edgeSub: cost.SimpleLink,
		edgeDel: func(*domain.Link) int { return 1 },
	}
}
