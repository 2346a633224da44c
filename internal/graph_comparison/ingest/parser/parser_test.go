package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile_YAML(t *testing.T) {
	d, err := ParseFile("../testdata/truth.yaml")
	require.NoError(t, err)

	require.Len(t, d.Launch.Nodes, 2)
	talker := d.Launch.Nodes["/talker"]
	assert.Equal(t, "demo/talker", talker.NodeType)
	assert.Equal(t, []string{"--rate", "10"}, talker.Args)
	require.NotNil(t, talker.Traceability)
	assert.Equal(t, 3, talker.Traceability.Line)

	listener := d.Launch.Nodes["/listener"]
	require.Len(t, listener.Conditions, 1)
	require.Len(t, listener.Conditions[0], 1)
	assert.Equal(t, "$(arg listen)", listener.Conditions[0][0].Condition)

	assert.Equal(t, 10, d.Launch.Parameters["/rate"].DefaultValue)

	require.Len(t, d.Links.Publishers, 1)
	require.NotNil(t, d.Links.Publishers[0].QueueSize)
	assert.Equal(t, 10, *d.Links.Publishers[0].QueueSize)
	assert.Empty(t, d.Links.Publishers[0].RosName)
	require.Len(t, d.Links.Gets, 1)
}

func TestParseFile_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"launch":{"nodes":{"/a":{"node_type":"pkg/a"}}}}`), 0o644))

	d, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, "pkg/a", d.Launch.Nodes["/a"].NodeType)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	t.Run("json object", func(t *testing.T) {
		d, err := Parse([]byte("  \n{\"links\":{\"publishers\":[{\"node\":\"/a\",\"topic\":\"/t\",\"msg_type\":\"m\",\"queue_size\":1}]}}"))
		require.NoError(t, err)
		require.Len(t, d.Links.Publishers, 1)
		assert.Equal(t, 1, *d.Links.Publishers[0].QueueSize)
	})

	t.Run("yaml", func(t *testing.T) {
		d, err := Parse([]byte("links:\n  gets:\n    - node: /a\n      parameter: /p\n"))
		require.NoError(t, err)
		require.Len(t, d.Links.Gets, 1)
		assert.Equal(t, "/p", d.Links.Gets[0].Parameter)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := Parse([]byte("launch: ["))
		assert.Error(t, err)
		_, err = Parse([]byte("{\"launch\": "))
		assert.Error(t, err)
	})
}
