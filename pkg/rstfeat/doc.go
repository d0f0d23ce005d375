// Package rstfeat extracts machine-learning feature vectors from an
// RST discourse corpus, one record per ordered pair of elementary
// discourse units (EDUs).
//
// Quick start:
//
//	ex, err := rstfeat.New(rstfeat.WithCorpusDir("corpus/"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for sample, err := range ex.Extract(false) {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(sample.Attachment.Label, sample.Relation.Label)
//	}
//
// Extraction is a lazy single-threaded sequence: one document's cache
// is resident at a time and stopping early is always safe.
package rstfeat
