package model

// Nuclearity markers used in RST constituency trees.
const (
	NucleusRole   = "Nucleus"
	SatelliteRole = "Satellite"
	RootRole      = "Root"
)

// RSTTree is a node in an RST constituency tree. A leaf carries an EDU
// and no children; an internal node carries children and no EDU.
type RSTTree struct {
	Nuclearity string     `json:"nuclearity,omitempty"`
	Relation   string     `json:"relation,omitempty"`
	EDU        *EDU       `json:"edu,omitempty"`
	Children   []*RSTTree `json:"children,omitempty"`
}

// IsLeaf reports whether the node is a leaf (carries an EDU).
func (t *RSTTree) IsLeaf() bool {
	return t.EDU != nil
}

// Leaves returns the tree's EDUs in left-to-right (document) order.
func (t *RSTTree) Leaves() []*EDU {
	var out []*EDU
	t.walkLeaves(&out)
	return out
}

func (t *RSTTree) walkLeaves(out *[]*EDU) {
	if t == nil {
		return
	}
	if t.EDU != nil {
		*out = append(*out, t.EDU)
		return
	}
	for _, c := range t.Children {
		c.walkLeaves(out)
	}
}
