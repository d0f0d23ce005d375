// Package keys implements the declarative feature-slot model: named,
// typed keys assembled into ordered groups whose headers and values
// serialize in declaration order.
package keys

import (
	"fmt"
	"strings"
)

// Kind tags what a key's value means to the downstream learner.
type Kind int

const (
	// KindMeta identifies a row (document key, span offsets). Present in
	// output but excluded from ML feature semantics.
	KindMeta Kind = iota
	// KindDiscrete is a categorical feature.
	KindDiscrete
	// KindContinuous is a numeric feature.
	KindContinuous
	// KindClass is a target label.
	KindClass
)

func (k Kind) String() string {
	switch k {
	case KindMeta:
		return "meta"
	case KindDiscrete:
		return "discrete"
	case KindContinuous:
		return "continuous"
	case KindClass:
		return "class"
	default:
		return "unknown"
	}
}

// Key identifies one feature slot. Name is stable and doubles as the
// output column header.
type Key struct {
	Name string
	Kind Kind
}

// MagicKey pairs a Key with the function that computes its value. The
// function type F is fixed per group arity (single-EDU, EDU-pair), so
// each group fills its keys with a direct typed call — no reflection.
type MagicKey[F any] struct {
	Key
	Fn F
}

// Meta builds an identifying magic key.
func Meta[F any](name string, fn F) MagicKey[F] {
	return MagicKey[F]{Key: Key{Name: name, Kind: KindMeta}, Fn: fn}
}

// Discrete builds a categorical magic key.
func Discrete[F any](name string, fn F) MagicKey[F] {
	return MagicKey[F]{Key: Key{Name: name, Kind: KindDiscrete}, Fn: fn}
}

// Continuous builds a numeric magic key.
func Continuous[F any](name string, fn F) MagicKey[F] {
	return MagicKey[F]{Key: Key{Name: name, Kind: KindContinuous}, Fn: fn}
}

// KeysOf strips the functions off a magic-key list, yielding the plain
// keys a Group is declared with.
func KeysOf[F any](magic []MagicKey[F]) []Key {
	ks := make([]Key, len(magic))
	for i, m := range magic {
		ks[i] = m.Key
	}
	return ks
}

// Vector is anything that renders as one flat feature row.
type Vector interface {
	// Description is a short human-readable account of the vector.
	Description() string
	// Keys returns the flattened keys in output order.
	Keys() []Key
	// CSVHeaders returns the ordered column names, matching Keys.
	CSVHeaders() []string
	// CSVValues returns the ordered values, aligned with CSVHeaders.
	CSVValues() []any
	// HelpText documents the vector's columns; must work on an
	// unfilled vector.
	HelpText() string
}

// Setter receives feature values during a fill.
type Setter interface {
	// Set stores a value under a key name. Unknown names panic: a fill
	// writing outside its declared keys is a programming error.
	Set(name string, value any)
}

// Group is an ordered collection of keys plus their filled values.
type Group struct {
	desc   string
	keys   []Key
	values map[string]any
}

// NewGroup builds a group, rejecting duplicate key names.
func NewGroup(desc string, ks []Key) (*Group, error) {
	seen := make(map[string]struct{}, len(ks))
	for _, k := range ks {
		if _, dup := seen[k.Name]; dup {
			return nil, fmt.Errorf("keys: duplicate key name %q in group %q", k.Name, desc)
		}
		seen[k.Name] = struct{}{}
	}
	return &Group{desc: desc, keys: ks, values: make(map[string]any, len(ks))}, nil
}

// MustGroup is NewGroup, panicking on duplicates. For statically
// declared groups, like regexp.MustCompile.
func MustGroup(desc string, ks []Key) *Group {
	g, err := NewGroup(desc, ks)
	if err != nil {
		panic(err)
	}
	return g
}

// Description implements Vector.
func (g *Group) Description() string { return g.desc }

// Keys implements Vector.
func (g *Group) Keys() []Key { return g.keys }

// Set implements Setter.
func (g *Group) Set(name string, value any) {
	if !g.has(name) {
		panic(fmt.Sprintf("keys: set of undeclared key %q in group %q", name, g.desc))
	}
	g.values[name] = value
}

func (g *Group) has(name string) bool {
	for _, k := range g.keys {
		if k.Name == name {
			return true
		}
	}
	return false
}

// CSVHeaders implements Vector.
func (g *Group) CSVHeaders() []string { return headerNames(g.keys) }

// CSVValues implements Vector.
func (g *Group) CSVValues() []any {
	vals := make([]any, len(g.keys))
	for i, k := range g.keys {
		vals[i] = g.values[k.Name]
	}
	return vals
}

// HelpText implements Vector.
func (g *Group) HelpText() string {
	return renderHelp(g.desc, g.keys)
}

// Merged is a Vector assembled from ordered sub-groups. Its headers and
// values are the concatenation, in sub-group order, of each sub-group's
// keys. Values are stored flat on the Merged itself: sub-group fills
// write into the merged target, not into the sub-groups.
type Merged struct {
	desc   string
	groups []Vector
	keys   []Key
	values map[string]any
	names  map[string]struct{}
}

// NewMerged assembles sub-groups, rejecting any duplicate key name in
// the flattened namespace.
func NewMerged(desc string, groups []Vector) (*Merged, error) {
	m := &Merged{
		desc:   desc,
		groups: groups,
		values: make(map[string]any),
		names:  make(map[string]struct{}),
	}
	for _, g := range groups {
		for _, k := range g.Keys() {
			if _, dup := m.names[k.Name]; dup {
				return nil, fmt.Errorf("keys: duplicate key name %q in merged group %q", k.Name, desc)
			}
			m.names[k.Name] = struct{}{}
			m.keys = append(m.keys, k)
		}
	}
	return m, nil
}

// MustMerged is NewMerged, panicking on duplicates.
func MustMerged(desc string, groups []Vector) *Merged {
	m, err := NewMerged(desc, groups)
	if err != nil {
		panic(err)
	}
	return m
}

// Description implements Vector.
func (m *Merged) Description() string { return m.desc }

// Keys implements Vector.
func (m *Merged) Keys() []Key { return m.keys }

// Groups returns the sub-groups in declaration order.
func (m *Merged) Groups() []Vector { return m.groups }

// Set implements Setter against the flattened namespace.
func (m *Merged) Set(name string, value any) {
	if _, ok := m.names[name]; !ok {
		panic(fmt.Sprintf("keys: set of undeclared key %q in merged group %q", name, m.desc))
	}
	m.values[name] = value
}

// CSVHeaders implements Vector.
func (m *Merged) CSVHeaders() []string { return headerNames(m.keys) }

// CSVValues implements Vector.
func (m *Merged) CSVValues() []any {
	vals := make([]any, len(m.keys))
	for i, k := range m.keys {
		vals[i] = m.values[k.Name]
	}
	return vals
}

// HelpText renders each sub-group's description followed by its key
// names. Works on a freshly assembled, unfilled group.
func (m *Merged) HelpText() string {
	var b strings.Builder
	b.WriteString(m.desc)
	for _, g := range m.groups {
		b.WriteString("\n\n")
		b.WriteString(renderHelp(g.Description(), g.Keys()))
	}
	return b.String()
}

// ClassGroup annotates a vector with a target label. The label rides
// alongside the features; headers and values delegate to the wrapped
// vector untouched.
type ClassGroup struct {
	Vector
	class any
	set   bool
}

// NewClassGroup wraps a vector with no label attached yet.
func NewClassGroup(v Vector) *ClassGroup {
	return &ClassGroup{Vector: v}
}

// SetClass attaches the target label.
func (c *ClassGroup) SetClass(label any) {
	c.class = label
	c.set = true
}

// Class returns the attached label and whether one was attached.
func (c *ClassGroup) Class() (any, bool) {
	return c.class, c.set
}

func headerNames(ks []Key) []string {
	names := make([]string, len(ks))
	for i, k := range ks {
		names[i] = k.Name
	}
	return names
}

func renderHelp(desc string, ks []Key) string {
	var b strings.Builder
	b.WriteString(desc)
	for _, k := range ks {
		fmt.Fprintf(&b, "\n  %s [%s]", k.Name, k.Kind)
	}
	return b.String()
}
