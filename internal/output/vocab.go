// Package output serializes labeled feature vectors and their
// vocabularies for downstream learners.
package output

import (
	"bufio"
	"fmt"
	"io"
)

// Vocabulary assigns dense zero-based indices to feature names on
// first use and remembers the assignment order.
type Vocabulary struct {
	indices map[string]int
	names   []string
}

// NewVocabulary returns an empty vocabulary.
func NewVocabulary() *Vocabulary {
	return &Vocabulary{indices: make(map[string]int)}
}

// Index returns the index for name, assigning the next free one on
// first use.
func (v *Vocabulary) Index(name string) int {
	if idx, ok := v.indices[name]; ok {
		return idx
	}
	idx := len(v.names)
	v.indices[name] = idx
	v.names = append(v.names, name)
	return idx
}

// Lookup returns the index for name, if assigned.
func (v *Vocabulary) Lookup(name string) (int, bool) {
	idx, ok := v.indices[name]
	return idx, ok
}

// Len returns the number of assigned names.
func (v *Vocabulary) Len() int {
	return len(v.names)
}

// Names returns the assigned names in index order.
func (v *Vocabulary) Names() []string {
	return v.names
}

// Dump writes the vocabulary as name<TAB>index lines ordered by index.
// Indices are written one-based, per the libsvm convention.
func (v *Vocabulary) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for idx, name := range v.names {
		if _, err := fmt.Fprintf(bw, "%s\t%d\n", name, idx+1); err != nil {
			return fmt.Errorf("output: dump vocabulary: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("output: dump vocabulary: %w", err)
	}
	return nil
}
