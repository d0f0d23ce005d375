package rstfeat

import "go.uber.org/zap"

type options struct {
	corpusDir string
	debug     bool
	log       *zap.Logger
}

// Option configures an Extractor.
type Option func(*options)

// WithCorpusDir sets the directory of serialized RST documents to load.
func WithCorpusDir(dir string) Option {
	return func(o *options) {
		o.corpusDir = dir
	}
}

// WithDebug adds debug columns to every single-EDU vector.
func WithDebug(debug bool) Option {
	return func(o *options) {
		o.debug = debug
	}
}

// WithLogger sets the logger. Default: no logging.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

func defaultOptions() options {
	return options{corpusDir: "corpus"}
}
