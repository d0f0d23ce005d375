package feature

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/crimson-sun/rstfeat/internal/feature/keys"
	"github.com/crimson-sun/rstfeat/internal/model"
)

// PairFn computes one feature for an ordered pair of EDUs.
type PairFn func(doc *DocumentPlus, edu1, edu2 *model.EDU) any

type pairKey = keys.MagicKey[PairFn]

// eduPairFn lifts an (edu, edu) -> value function to the uniform pair
// signature, dropping the document context.
func eduPairFn(f func(e1, e2 *model.EDU) any) PairFn {
	return func(_ *DocumentPlus, e1, e2 *model.EDU) any {
		return f(e1, e2)
	}
}

// featGrouping names the corpus document the pair belongs to. Used
// downstream to partition output by document.
func featGrouping(doc *DocumentPlus, _, _ *model.EDU) any {
	return filepath.Base(doc.Key)
}

// numEdusBetween counts the EDUs strictly between the two units in
// document order. Direction-insensitive.
func numEdusBetween(e1, e2 *model.EDU) any {
	n := e2.Num - e1.Num
	if n < 0 {
		n = -n
	}
	return n - 1
}

// pairSubgroup is one named block of pair keys that knows how to fill
// itself from its magic keys.
type pairSubgroup struct {
	*keys.Group
	magic []pairKey
}

func newPairSubgroup(desc string, magic []pairKey) *pairSubgroup {
	return &pairSubgroup{
		Group: keys.MustGroup(desc, keys.KeysOf(magic)),
		magic: magic,
	}
}

// Fill evaluates every key against (doc, edu1, edu2) into target, or
// into the subgroup itself when target is nil.
func (s *pairSubgroup) Fill(doc *DocumentPlus, edu1, edu2 *model.EDU, target keys.Setter) {
	if target == nil {
		target = s.Group
	}
	for _, k := range s.magic {
		target.Set(k.Name, k.Fn(doc, edu1, edu2))
	}
}

func coreSubgroup() *pairSubgroup {
	return newPairSubgroup("core features", []pairKey{
		keys.Meta("grouping", PairFn(featGrouping)),
	})
}

func gapSubgroup() *pairSubgroup {
	return newPairSubgroup("the gap between EDUs", []pairKey{
		keys.Continuous("num_edus_between", eduPairFn(numEdusBetween)),
	})
}

// SingleCache maps an EDU to its precomputed single-EDU vector. Built
// once per document; pair vectors look their sub-vectors up here
// instead of recomputing them.
type SingleCache map[*model.EDU]*SingleEduKeys

// PairKeys is the merged feature vector for an ordered EDU pair: the
// pair-level subgroups plus references to the two cached single-EDU
// vectors, whose columns are suffixed _EDU1/_EDU2 in output.
//
// A nil cache is permitted only for help-text and header generation;
// filling then is a programming error.
type PairKeys struct {
	*keys.Merged
	in    *FeatureInput
	subs  []*pairSubgroup
	cache SingleCache

	edu1 *SingleEduKeys
	edu2 *SingleEduKeys
}

// NewPairKeys assembles an unfilled pair vector backed by the given
// per-document cache.
func NewPairKeys(in *FeatureInput, cache SingleCache) *PairKeys {
	subs := []*pairSubgroup{coreSubgroup(), gapSubgroup()}
	groups := make([]keys.Vector, len(subs))
	for i, s := range subs {
		groups[i] = s
	}
	p := &PairKeys{
		Merged: keys.MustMerged("pair features", groups),
		in:     in,
		subs:   subs,
		cache:  cache,
	}
	if cache == nil {
		p.edu1 = NewSingleEduKeys(in)
		p.edu2 = NewSingleEduKeys(in)
	}
	return p
}

// single1 returns the EDU1 sub-vector, or an unfilled schema instance
// before any fill has resolved one.
func (p *PairKeys) single1() *SingleEduKeys {
	if p.edu1 != nil {
		return p.edu1
	}
	return NewSingleEduKeys(p.in)
}

func (p *PairKeys) single2() *SingleEduKeys {
	if p.edu2 != nil {
		return p.edu2
	}
	return NewSingleEduKeys(p.in)
}

// Keys implements keys.Vector: the pair-level keys followed by the two
// sub-vectors' keys with suffixed names.
func (p *PairKeys) Keys() []keys.Key {
	out := append([]keys.Key(nil), p.Merged.Keys()...)
	for _, k := range p.single1().Keys() {
		out = append(out, keys.Key{Name: k.Name + "_EDU1", Kind: k.Kind})
	}
	for _, k := range p.single2().Keys() {
		out = append(out, keys.Key{Name: k.Name + "_EDU2", Kind: k.Kind})
	}
	return out
}

// CSVHeaders implements keys.Vector.
func (p *PairKeys) CSVHeaders() []string {
	ks := p.Keys()
	names := make([]string, len(ks))
	for i, k := range ks {
		names[i] = k.Name
	}
	return names
}

// CSVValues implements keys.Vector.
func (p *PairKeys) CSVValues() []any {
	out := append([]any(nil), p.Merged.CSVValues()...)
	out = append(out, p.single1().CSVValues()...)
	return append(out, p.single2().CSVValues()...)
}

// HelpText implements keys.Vector, documenting the pair-level groups
// followed by the single-EDU layout (rendered once; it is identical
// for both units).
func (p *PairKeys) HelpText() string {
	var b strings.Builder
	b.WriteString(p.Merged.HelpText())
	b.WriteString("\n\n")
	b.WriteString(p.single1().HelpText())
	return b.String()
}

// Fill resolves the two single-EDU sub-vectors from the cache and
// evaluates the pair-level subgroups against one target (the vector
// itself when target is nil).
//
// Panics on a cache miss: the cache is always built from the exact
// unit list used for pair enumeration, so a miss is an invariant
// violation, never a condition to paper over.
func (p *PairKeys) Fill(doc *DocumentPlus, edu1, edu2 *model.EDU, target *PairKeys) {
	vec := p
	if target != nil {
		vec = target
	}
	vec.edu1 = p.mustLookup(edu1)
	vec.edu2 = p.mustLookup(edu2)
	for _, sub := range p.subs {
		sub.Fill(doc, edu1, edu2, vec.Merged)
	}
}

func (p *PairKeys) mustLookup(edu *model.EDU) *SingleEduKeys {
	sv, ok := p.cache[edu]
	if !ok {
		panic(fmt.Sprintf("feature: EDU %s missing from single-EDU cache", edu.Identifier()))
	}
	return sv
}
