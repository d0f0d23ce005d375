// Package feature extracts per-EDU-pair feature vectors from an RST
// corpus, producing labeled records for a discourse-parsing classifier.
package feature

import (
	"go.uber.org/zap"

	"github.com/crimson-sun/rstfeat/internal/corpus"
	"github.com/crimson-sun/rstfeat/internal/deptree"
	"github.com/crimson-sun/rstfeat/internal/model"
)

// FeatureInput is the process-wide read-only context threaded through
// feature functions. Never mutated during extraction.
type FeatureInput struct {
	Corpus *corpus.Corpus
	Debug  bool
	Log    *zap.Logger
}

func (in *FeatureInput) logger() *zap.Logger {
	if in == nil || in.Log == nil {
		return zap.NewNop()
	}
	return in.Log
}

func (in *FeatureInput) debug() bool {
	return in != nil && in.Debug
}

// DocumentPlus bundles one corpus document with its derived
// representations. Built once per document, immutable afterward.
type DocumentPlus struct {
	Key     string
	RSTTree *model.RSTTree
	DepTree *deptree.Node
}
