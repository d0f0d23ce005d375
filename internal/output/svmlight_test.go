package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/crimson-sun/rstfeat/internal/feature/keys"
)

func testRecord(t *testing.T, label any) *keys.ClassGroup {
	t.Helper()
	g := keys.MustGroup("test features", []keys.Key{
		{Name: "id", Kind: keys.KindMeta},
		{Name: "word_first", Kind: keys.KindDiscrete},
		{Name: "num_tokens", Kind: keys.KindContinuous},
	})
	g.Set("id", "doc_1")
	g.Set("word_first", "hello")
	g.Set("num_tokens", 3)

	rec := keys.NewClassGroup(g)
	if label != nil {
		rec.SetClass(label)
	}
	return rec
}

func TestSVMLightBoolLabel(t *testing.T) {
	var buf bytes.Buffer
	w := NewSVMLight(&buf, NewVocabulary(), NewVocabulary())

	if err := w.Write(testRecord(t, true)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	line := strings.TrimRight(buf.String(), "\n")
	if line != "1 1:1 2:3 # doc_1" {
		t.Fatalf("line = %q", line)
	}
}

func TestSVMLightStringLabel(t *testing.T) {
	var buf bytes.Buffer
	labels := NewVocabulary()
	w := NewSVMLight(&buf, NewVocabulary(), labels)

	if err := w.Write(testRecord(t, "elaboration")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	if !strings.HasPrefix(buf.String(), "1 ") {
		t.Fatalf("line = %q", buf.String())
	}
	if idx, ok := labels.Lookup("elaboration"); !ok || idx != 0 {
		t.Fatalf("label vocabulary = %v, %v", idx, ok)
	}
}

func TestSVMLightUnlabeled(t *testing.T) {
	var buf bytes.Buffer
	w := NewSVMLight(&buf, NewVocabulary(), NewVocabulary())

	if err := w.Write(testRecord(t, nil)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "0 ") {
		t.Fatalf("line = %q", buf.String())
	}
}

func TestSVMLightSharedVocabulary(t *testing.T) {
	feats := NewVocabulary()
	labels := NewVocabulary()
	var a, b bytes.Buffer
	wa := NewSVMLight(&a, feats, labels)
	wb := NewSVMLight(&b, feats, labels)

	if err := wa.Write(testRecord(t, true)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := wb.Write(testRecord(t, "elaboration")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := wa.Flush(); err != nil {
		t.Fatal(err)
	}
	if err := wb.Flush(); err != nil {
		t.Fatal(err)
	}

	// Both writers saw the same two feature entries.
	if feats.Len() != 2 {
		t.Fatalf("features = %v", feats.Names())
	}
	aTerms := strings.TrimPrefix(strings.SplitN(strings.TrimRight(a.String(), "\n"), " # ", 2)[0], "1 ")
	bTerms := strings.TrimPrefix(strings.SplitN(strings.TrimRight(b.String(), "\n"), " # ", 2)[0], "1 ")
	if aTerms != bTerms {
		t.Fatalf("feature terms diverge: %q vs %q", aTerms, bTerms)
	}
}

func TestSVMLightOneHotGrowsVocabulary(t *testing.T) {
	feats := NewVocabulary()
	var buf bytes.Buffer
	w := NewSVMLight(&buf, feats, NewVocabulary())

	g := keys.MustGroup("words", []keys.Key{{Name: "word", Kind: keys.KindDiscrete}})
	for _, word := range []string{"alpha", "beta", "alpha"} {
		g.Set("word", word)
		rec := keys.NewClassGroup(g)
		rec.SetClass(false)
		if err := w.Write(rec); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}

	if _, ok := feats.Lookup("word=alpha"); !ok {
		t.Fatal("missing one-hot entry word=alpha")
	}
	if _, ok := feats.Lookup("word=beta"); !ok {
		t.Fatal("missing one-hot entry word=beta")
	}
	if feats.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", feats.Len())
	}
}
