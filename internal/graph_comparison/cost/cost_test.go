package cost

import (
	"testing"

	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func node(name, typ string) *domain.Resource {
	return &domain.Resource{
		Kind: domain.ResourceNode, RosName: name, Type: typ,
		Location: domain.Location{Package: "pkg", File: "launch/a.launch", Line: 3},
	}
}

func pub(nodeName, topic string, queue int) *domain.Link {
	return &domain.Link{
		Kind: domain.LinkPublisher, Node: nodeName, Target: topic, RosName: topic,
		Type: "std_msgs/String", QueueSize: queue,
		Location: domain.Location{Package: "pkg", File: "src/a.cpp", Line: 12, Column: 5},
	}
}

func TestName(t *testing.T) {
	assert.Equal(t, 0.0, Name("rosname", "/ns/a", "/ns/a", nil))
	assert.Equal(t, 0.5, Name("rosname", "/ns/anything", "/ns/?", nil))
	assert.Equal(t, 1.0, Name("rosname", "/other/anything", "/ns/?", nil))
	assert.Equal(t, 1.0, Name("rosname", "/ns/a", "/ns/b", nil))
	assert.Equal(t, 0.5, Type("msg_type", "std_msgs/String", "", nil))
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(10, 10.0))
	assert.True(t, Equal("10", 10))
	assert.True(t, Equal(nil, []string{}))
	assert.True(t, Equal([]string{"a"}, []string{"a"}))
	assert.False(t, Equal([]string{"a"}, []string{"b"}))
	assert.False(t, Equal(true, false))
	assert.False(t, Equal(nil, 0))
	assert.True(t, Equal(map[string]any{"k": 1}, map[string]any{"k": 1}))
}

func TestResource(t *testing.T) {
	t.Run("identical items cost zero", func(t *testing.T) {
		n := node("/talker", "pkg/talker")
		var d domain.Deltas
		assert.Equal(t, 0.0, Resource(n, n, &d))
		assert.Empty(t, d)
		assert.Equal(t, 0, UnitResource(n, n, nil))
	})

	t.Run("type mismatch is reported", func(t *testing.T) {
		truth, model := node("/talker", "pkg/A"), node("/talker", "pkg/B")
		d := ResourceDeltas(truth, model)
		require.Len(t, d, 1)
		assert.Equal(t, domain.Delta{Attribute: "node_type", Predicted: "pkg/B", Expected: "pkg/A"}, d[0])
		assert.InDelta(t, 1.0/5.0, Resource(truth, model, nil), 1e-9)
	})

	t.Run("wildcard name earns half credit", func(t *testing.T) {
		truth, model := node("/ns/anything", "pkg/a"), node("/ns/?", "pkg/a")
		assert.InDelta(t, 0.5/5.0, Resource(truth, model, nil), 1e-9)
	})

	t.Run("kind mismatch", func(t *testing.T) {
		topic := &domain.Resource{Kind: domain.ResourceTopic, RosName: "/talker"}
		assert.Equal(t, KindMismatch, Resource(node("/talker", ""), topic, nil))
	})

	t.Run("bounded", func(t *testing.T) {
		truth := node("/a", "pkg/a")
		truth.Args = []string{"--x"}
		model := &domain.Resource{Kind: domain.ResourceNode, RosName: "/b", Type: "pkg/b"}
		got := Resource(truth, model, nil)
		assert.InDelta(t, 4.0/5.0, got, 1e-9)
		assert.LessOrEqual(t, got, 1.0)
	})

	t.Run("parameter value", func(t *testing.T) {
		truth := &domain.Resource{Kind: domain.ResourceParameter, RosName: "/rate", Value: 10}
		model := &domain.Resource{Kind: domain.ResourceParameter, RosName: "/rate", Value: 10.0}
		assert.Equal(t, 0.0, Resource(truth, model, nil))
		model.Value = 20
		assert.Greater(t, Resource(truth, model, nil), 0.0)
	})
}

func TestLink(t *testing.T) {
	truth := pub("/talker", "/chatter", 10)

	t.Run("identical", func(t *testing.T) {
		assert.Equal(t, 0.0, Link(truth, truth, nil))
		assert.Equal(t, 0, UnitLink(truth, truth, nil))
	})

	t.Run("queue size", func(t *testing.T) {
		model := pub("/talker", "/chatter", 5)
		d := LinkDeltas(truth, model)
		require.Len(t, d, 1)
		assert.Equal(t, domain.Delta{Attribute: "queue_size", Predicted: 5, Expected: 10}, d[0])
		assert.Equal(t, 1, UnitLink(truth, model, nil))
	})

	t.Run("endpoints", func(t *testing.T) {
		model := pub("/other", "/chatter", 10)
		d := LinkDeltas(truth, model)
		require.Len(t, d, 1)
		assert.Equal(t, "node", d[0].Attribute)
		assert.Equal(t, 0, UnitLink(truth, model, nil), "endpoints come from the node mapping")
	})
}

func TestSizes(t *testing.T) {
	n := node("/a", "pkg/a")
	assert.Equal(t, 3+3, ResourceSize(n))

	topic := &domain.Resource{Kind: domain.ResourceTopic, RosName: "/t",
		References: []domain.Location{{Package: "p", File: "f", Line: 1}, {Package: "p", File: "f", Line: 2}}}
	assert.Equal(t, 2+6, ResourceSize(topic))

	cond := domain.ConditionTreeFromPaths([][]domain.Guard{{{Statement: "if", Condition: "x"}}})
	l := pub("/a", "/t", 1)
	l.Conditions = cond
	assert.Equal(t, 3+1+3, LinkSize(l))
	assert.Equal(t, 2+3, LinkSize(&domain.Link{Kind: domain.LinkClient}))
}

func TestTriangleInequality(t *testing.T) {
	resources := []*domain.Resource{
		node("/a", "pkg/a"),
		{Kind: domain.ResourceTopic, RosName: "/t", References: []domain.Location{{Package: "p"}}},
		{Kind: domain.ResourceService, RosName: "/s"},
		{Kind: domain.ResourceParameter, RosName: "/p", Value: 3},
	}
	for _, u := range resources {
		for _, v := range resources {
			if u.Kind == v.Kind {
				continue
			}
			assert.GreaterOrEqual(t, UnitResource(u, v, nil), ResourceSize(u)+ResourceSize(v))
			assert.GreaterOrEqual(t, SimpleResource(u, v), 2)
		}
	}

	links := []*domain.Link{
		pub("/a", "/t", 1),
		{Kind: domain.LinkServer, Node: "/a", Target: "/s"},
		{Kind: domain.LinkSetter, Node: "/a", Target: "/p"},
	}
	for _, a := range links {
		for _, b := range links {
			if a.Kind == b.Kind {
				continue
			}
			assert.GreaterOrEqual(t, UnitLink(a, b, nil), LinkSize(a)+LinkSize(b))
			assert.GreaterOrEqual(t, SimpleLink(a, b), 2)
		}
	}
}
