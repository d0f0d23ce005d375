package output

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/crimson-sun/rstfeat/internal/feature/keys"
)

// Writer serializes class-labeled feature vectors.
type Writer interface {
	Write(rec *keys.ClassGroup) error
	Flush() error
}

// SVMLight writes one svmlight/libsvm line per record: a numeric
// label, then index:value terms sorted by feature index.
//
// Continuous keys keep their numeric value under their own vocabulary
// entry. Discrete keys are one-hot: the entry is name=value with term
// value 1. Meta keys carry no ML semantics and are emitted as a
// trailing comment. Bool class labels map to 1/0; string labels are
// indexed through the label vocabulary (one-based). Unlabeled records
// (live mode) get label 0.
type SVMLight struct {
	w      *bufio.Writer
	feats  *Vocabulary
	labels *Vocabulary
}

// NewSVMLight builds a writer sharing the given vocabularies, so
// several output files (attachment and relation) stay index-aligned.
func NewSVMLight(w io.Writer, feats, labels *Vocabulary) *SVMLight {
	return &SVMLight{w: bufio.NewWriter(w), feats: feats, labels: labels}
}

type term struct {
	idx int
	val string
}

// Write implements Writer.
func (s *SVMLight) Write(rec *keys.ClassGroup) error {
	label, err := s.classLabel(rec)
	if err != nil {
		return err
	}

	ks := rec.Keys()
	vals := rec.CSVValues()
	if len(ks) != len(vals) {
		return fmt.Errorf("output: %d keys but %d values", len(ks), len(vals))
	}

	terms := make([]term, 0, len(ks))
	var meta []string
	for i, k := range ks {
		switch k.Kind {
		case keys.KindMeta:
			meta = append(meta, fmt.Sprintf("%v", vals[i]))
		case keys.KindDiscrete:
			idx := s.feats.Index(fmt.Sprintf("%s=%v", k.Name, vals[i]))
			terms = append(terms, term{idx: idx, val: "1"})
		case keys.KindContinuous:
			num, err := numeric(vals[i])
			if err != nil {
				return fmt.Errorf("output: key %s: %w", k.Name, err)
			}
			terms = append(terms, term{idx: s.feats.Index(k.Name), val: num})
		}
	}
	sort.Slice(terms, func(i, j int) bool { return terms[i].idx < terms[j].idx })

	var b strings.Builder
	b.WriteString(label)
	for _, t := range terms {
		fmt.Fprintf(&b, " %d:%s", t.idx+1, t.val)
	}
	if len(meta) > 0 {
		b.WriteString(" # ")
		b.WriteString(strings.Join(meta, " "))
	}
	b.WriteByte('\n')

	if _, err := s.w.WriteString(b.String()); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	return nil
}

// Flush implements Writer.
func (s *SVMLight) Flush() error {
	if err := s.w.Flush(); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	return nil
}

func (s *SVMLight) classLabel(rec *keys.ClassGroup) (string, error) {
	cls, ok := rec.Class()
	if !ok {
		return "0", nil
	}
	switch v := cls.(type) {
	case bool:
		if v {
			return "1", nil
		}
		return "0", nil
	case string:
		return strconv.Itoa(s.labels.Index(v) + 1), nil
	case int:
		return strconv.Itoa(v), nil
	default:
		return "", fmt.Errorf("output: unsupported class label %T", cls)
	}
}

func numeric(v any) (string, error) {
	switch n := v.(type) {
	case int:
		return strconv.Itoa(n), nil
	case int64:
		return strconv.FormatInt(n, 10), nil
	case float64:
		return strconv.FormatFloat(n, 'g', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(n), 'g', -1, 32), nil
	default:
		return "", fmt.Errorf("non-numeric continuous value %T", v)
	}
}
