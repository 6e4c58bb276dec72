package encoding

// Child records are stored back to back in the value of their parent and use
// the parent's dialect.

// Children splits the value into consecutive child records.
// An unset or empty value has no children.
func (n *Node) Children() ([]*Node, error) {
	v, _ := n.value.Get()
	r := NewBufferView(v)

	ret := make([]*Node, 0)
	for !r.IsEOF() {
		c, err := r.ReadNode(n.dialect)
		if err != nil {
			return nil, ErrFailToParse{Index: len(ret), Err: err}
		}
		ret = append(ret, c)
	}
	return ret, nil
}

// SetChildren replaces the value with the concatenated children.
// Panics if any child has no value.
func (n *Node) SetChildren(children ...*Node) error {
	wire := make(Wire, 0, len(children))
	for _, c := range children {
		wire = append(wire, c.Bytes())
	}
	return n.setValue(wire.Join())
}

// AppendChild appends the serialized child to the value.
// An unset value is treated as empty. On overflow the node is unchanged.
func (n *Node) AppendChild(c *Node) error {
	v, _ := n.value.Get()
	return n.setValue(Wire{v, c.Bytes()}.Join())
}

// WalkFunc is called for every node visited by Walk.
// Returning false skips the children of n.
type WalkFunc func(depth int, n *Node) bool

// Walk visits n and its nested records depth first.
// A node is descended into when its value is non-empty and splits exactly
// into child records. Returns the number of visited nodes.
func (n *Node) Walk(fn WalkFunc) int {
	return n.walk(0, fn)
}

func (n *Node) walk(depth int, fn WalkFunc) int {
	count := 1
	if !fn(depth, n) {
		return count
	}

	if len(n.value.GetOr(nil)) == 0 {
		return count
	}
	children, err := n.Children()
	if err != nil {
		return count
	}
	for _, c := range children {
		count += c.walk(depth+1, fn)
	}
	return count
}

// Count returns the number of nodes Walk would visit.
func (n *Node) Count() int {
	return n.Walk(func(int, *Node) bool { return true })
}
