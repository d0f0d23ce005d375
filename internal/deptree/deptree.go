// Package deptree projects RST constituency trees onto head-dependent
// trees whose edges are labeled with relation names.
package deptree

import (
	"fmt"

	"github.com/crimson-sun/rstfeat/internal/model"
)

// RootRel labels the artificial relation of the tree root to nothing.
const RootRel = "ROOT"

// spanRel labels dependents whose constituency node carries no relation.
const spanRel = "span"

// Node is a dependency-tree node: one EDU, the relation to its head,
// and its direct dependents.
type Node struct {
	EDU      *model.EDU
	Rel      string
	Children []*Node
}

// FromRST converts a constituency tree to its dependency projection.
//
// The head of a leaf is its EDU. The head of an internal node is the
// head of its first nucleus child (or of its first child when no child
// is marked nucleus, which some corpora produce for root spans). Every
// non-head child attaches its own head to the node's head, labeled with
// the child's relation.
func FromRST(t *model.RSTTree) (*Node, error) {
	root, err := convert(t)
	if err != nil {
		return nil, fmt.Errorf("deptree: %w", err)
	}
	root.Rel = RootRel
	return root, nil
}

func convert(t *model.RSTTree) (*Node, error) {
	if t == nil {
		return nil, fmt.Errorf("nil tree node")
	}
	if t.IsLeaf() {
		return &Node{EDU: t.EDU}, nil
	}
	if len(t.Children) == 0 {
		return nil, fmt.Errorf("internal node with no children")
	}

	headIdx := 0
	for i, c := range t.Children {
		if c.Nuclearity == model.NucleusRole {
			headIdx = i
			break
		}
	}

	head, err := convert(t.Children[headIdx])
	if err != nil {
		return nil, err
	}
	for i, c := range t.Children {
		if i == headIdx {
			continue
		}
		dep, err := convert(c)
		if err != nil {
			return nil, err
		}
		dep.Rel = c.Relation
		if dep.Rel == "" {
			dep.Rel = spanRel
		}
		head.Children = append(head.Children, dep)
	}
	return head, nil
}

// Walk visits every node in the tree, parents before children.
func (n *Node) Walk(visit func(*Node)) {
	if n == nil {
		return
	}
	visit(n)
	for _, c := range n.Children {
		c.Walk(visit)
	}
}
