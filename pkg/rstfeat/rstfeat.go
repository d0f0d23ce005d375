package rstfeat

import (
	"fmt"
	"iter"

	"github.com/crimson-sun/rstfeat/internal/corpus"
	"github.com/crimson-sun/rstfeat/internal/feature"
	"github.com/crimson-sun/rstfeat/internal/feature/keys"
)

// Record is one flat feature row: ordered column names, matching
// values, and an optional target label.
type Record struct {
	Headers []string
	Values  []any
	Label   any  // nil when unlabeled
	Labeled bool // distinguishes a nil label from no label
}

// Sample is one EDU pair extracted two ways: labeled for attachment
// (bool) and for relation type (string, "UNRELATED" when none).
type Sample struct {
	Attachment Record
	Relation   Record
}

// Extractor extracts pair feature vectors from a loaded corpus.
// Stateless after construction; Extract may be called repeatedly.
type Extractor struct {
	in *feature.FeatureInput
}

// New loads the corpus and prepares an Extractor. Loading parses every
// document up front; extraction itself is lazy.
func New(opts ...Option) (*Extractor, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c, err := corpus.Load(o.corpusDir)
	if err != nil {
		return nil, fmt.Errorf("rstfeat: %w", err)
	}
	return &Extractor{
		in: &feature.FeatureInput{Corpus: c, Debug: o.debug, Log: o.log},
	}, nil
}

// Extract yields one Sample per ordered pair of distinct EDUs within
// each corpus document. With live set, no gold labels are attached and
// both records of a Sample carry identical content.
func (e *Extractor) Extract(live bool) iter.Seq2[Sample, error] {
	return func(yield func(Sample, error) bool) {
		for sample, err := range feature.ExtractPairFeatures(e.in, live) {
			if err != nil {
				yield(Sample{}, err)
				return
			}
			out := Sample{
				Attachment: recordFrom(sample.Attachment),
				Relation:   recordFrom(sample.Relation),
			}
			if !yield(out, nil) {
				return
			}
		}
	}
}

// FieldsHelp documents the extracted feature schema. Needs no corpus.
func FieldsHelp() string {
	in := &feature.FeatureInput{Debug: true}
	return feature.NewPairKeys(in, nil).HelpText()
}

// recordFrom converts the internal class-labeled vector to the public
// Record type.
func recordFrom(cg *keys.ClassGroup) Record {
	label, labeled := cg.Class()
	return Record{
		Headers: cg.CSVHeaders(),
		Values:  cg.CSVValues(),
		Label:   label,
		Labeled: labeled,
	}
}
