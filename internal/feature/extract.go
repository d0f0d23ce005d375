package feature

import (
	"fmt"
	"iter"

	"go.uber.org/zap"

	"github.com/crimson-sun/rstfeat/internal/deptree"
	"github.com/crimson-sun/rstfeat/internal/feature/keys"
	"github.com/crimson-sun/rstfeat/internal/model"
)

// UnrelatedLabel marks pairs with no gold-standard relation.
const UnrelatedLabel = "UNRELATED"

// Sample is one extracted pair record: the same feature vector labeled
// two ways. In live mode both fields are the identical unlabeled record.
type Sample struct {
	Attachment *keys.ClassGroup // labeled true/false
	Relation   *keys.ClassGroup // labeled with the relation name or UnrelatedLabel
}

type edgeKey struct {
	src, dst *model.EDU
}

// Preprocess bundles one corpus document with its dependency projection.
func Preprocess(in *FeatureInput, key string) (*DocumentPlus, error) {
	t, ok := in.Corpus.Get(key)
	if !ok {
		return nil, fmt.Errorf("feature: document %q not in corpus", key)
	}
	d, err := deptree.FromRST(t)
	if err != nil {
		return nil, fmt.Errorf("feature: document %q: %w", key, err)
	}
	return &DocumentPlus{Key: key, RSTTree: t, DepTree: d}, nil
}

// simplifyDeptree boils a dependency tree down to a relation table:
// every node contributes one labeled edge per direct child.
func simplifyDeptree(root *deptree.Node) map[edgeKey]string {
	rels := make(map[edgeKey]string)
	root.Walk(func(n *deptree.Node) {
		for _, c := range n.Children {
			rels[edgeKey{n.EDU, c.EDU}] = c.Rel
		}
	})
	return rels
}

// ExtractPairFeatures walks the corpus and yields one Sample per
// ordered pair of distinct EDUs within each document. Per document it
// fills every single-EDU vector exactly once into a cache, then pair
// vectors resolve their sub-vectors by lookup.
//
// In live mode no ground truth is available: the relation table stays
// empty and each yielded Sample holds the same unlabeled record twice.
//
// The sequence is lazily produced and single-threaded; stopping early
// is always safe. A document-level failure is yielded as the error and
// ends the sequence.
func ExtractPairFeatures(in *FeatureInput, live bool) iter.Seq2[*Sample, error] {
	log := in.logger()
	return func(yield func(*Sample, error) bool) {
		for _, key := range in.Corpus.Keys() {
			doc, err := Preprocess(in, key)
			if err != nil {
				yield(nil, err)
				return
			}
			edus := doc.RSTTree.Leaves()

			relations := map[edgeKey]string{}
			if !live {
				relations = simplifyDeptree(doc.DepTree)
			}

			cache := make(SingleCache, len(edus))
			for _, e := range edus {
				sv := NewSingleEduKeys(in)
				sv.Fill(doc, e, nil)
				cache[e] = sv
			}
			log.Debug("document preprocessed",
				zap.String("key", key),
				zap.Int("edus", len(edus)),
				zap.Int("relations", len(relations)))

			for _, e1 := range edus {
				for _, e2 := range edus {
					if e1 == e2 {
						continue
					}
					vec := NewPairKeys(in, cache)
					vec.Fill(doc, e1, e2, nil)

					if live {
						rec := keys.NewClassGroup(vec)
						if !yield(&Sample{Attachment: rec, Relation: rec}, nil) {
							return
						}
						continue
					}

					rel, attached := relations[edgeKey{e1, e2}]
					attach := keys.NewClassGroup(vec)
					attach.SetClass(attached)
					relRec := keys.NewClassGroup(vec)
					if attached {
						relRec.SetClass(rel)
					} else {
						relRec.SetClass(UnrelatedLabel)
					}
					if !yield(&Sample{Attachment: attach, Relation: relRec}, nil) {
						return
					}
				}
			}
		}
	}
}
