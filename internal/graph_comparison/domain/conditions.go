package domain

// Guard is one control-flow condition enclosing a call site.
type Guard struct {
	Statement string   `json:"statement" yaml:"statement"`
	Condition string   `json:"condition" yaml:"condition"`
	Location  Location `json:"location" yaml:"location"`
}

// ConditionNode is a guard together with the guards nested inside it.
type ConditionNode struct {
	Guard    Guard         `json:"guard" yaml:"guard"`
	Children ConditionTree `json:"children,omitempty" yaml:"children,omitempty"`
}

// ConditionTree is an ordered forest of guards. Sibling guards are unique.
type ConditionTree []ConditionNode

// ConditionTreeFromPaths merges root-to-leaf guard paths into one tree.
func ConditionTreeFromPaths(paths [][]Guard) ConditionTree {
	var t ConditionTree
	for _, p := range paths {
		t = t.AddPath(p)
	}
	return t
}

// AddPath inserts a root-to-leaf guard path, sharing existing prefixes.
func (t ConditionTree) AddPath(path []Guard) ConditionTree {
	if len(path) == 0 {
		return t
	}
	i := t.index(path[0])
	if i < 0 {
		t = append(t, ConditionNode{Guard: path[0]})
		i = len(t) - 1
	}
	t[i].Children = t[i].Children.AddPath(path[1:])
	return t
}

// Merge adds every path of o into t.
func (t ConditionTree) Merge(o ConditionTree) ConditionTree {
	for _, n := range o {
		i := t.index(n.Guard)
		if i < 0 {
			t = append(t, ConditionNode{Guard: n.Guard})
			i = len(t) - 1
		}
		t[i].Children = t[i].Children.Merge(n.Children)
	}
	return t
}

// Find returns the subtree under g among the roots of t.
func (t ConditionTree) Find(g Guard) (ConditionTree, bool) {
	i := t.index(g)
	if i < 0 {
		return nil, false
	}
	return t[i].Children, true
}

// Size counts every guard in the tree.
func (t ConditionTree) Size() int {
	n := 0
	for _, c := range t {
		n += 1 + c.Children.Size()
	}
	return n
}

func (t ConditionTree) Empty() bool { return len(t) == 0 }

// Walk visits guards in breadth-first order.
func (t ConditionTree) Walk(fn func(Guard)) {
	queue := []ConditionTree{t}
	for len(queue) > 0 {
		level := queue[0]
		queue = queue[1:]
		for _, c := range level {
			fn(c.Guard)
			if len(c.Children) > 0 {
				queue = append(queue, c.Children)
			}
		}
	}
}

func (t ConditionTree) index(g Guard) int {
	for i := range t {
		if t[i].Guard == g {
			return i
		}
	}
	return -1
}
