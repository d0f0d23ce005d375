// Package corpus holds a parsed RST document collection and its
// on-disk reader.
package corpus

import "github.com/crimson-sun/rstfeat/internal/model"

// Corpus maps document keys to parsed constituency trees. Iteration
// order is insertion order; the reader inserts in sorted file-name
// order, so a loaded corpus iterates deterministically.
type Corpus struct {
	keys []string
	docs map[string]*model.RSTTree
}

// New returns an empty corpus.
func New() *Corpus {
	return &Corpus{docs: make(map[string]*model.RSTTree)}
}

// Add inserts or replaces a document.
func (c *Corpus) Add(key string, t *model.RSTTree) {
	if _, exists := c.docs[key]; !exists {
		c.keys = append(c.keys, key)
	}
	c.docs[key] = t
}

// Get returns the document for key, if present.
func (c *Corpus) Get(key string) (*model.RSTTree, bool) {
	t, ok := c.docs[key]
	return t, ok
}

// Keys returns the document keys in iteration order.
func (c *Corpus) Keys() []string {
	return c.keys
}

// Len returns the number of documents.
func (c *Corpus) Len() int {
	return len(c.keys)
}
