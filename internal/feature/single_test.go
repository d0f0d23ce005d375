package feature

import (
	"reflect"
	"testing"

	"github.com/crimson-sun/rstfeat/internal/model"
)

func TestCleanTokens(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"Hello there.<P>", []string{"hello", "there"}},
		{",,,", nil},
		{`"Quoted words,`, []string{"quoted", "words"}},
		{"Mixed   Case\ttokens", []string{"mixed", "case", "tokens"}},
		{"Trailing.<P>.,", []string{"trailing"}},
		{"", nil},
	}
	for _, tt := range tests {
		got := cleanTokens(tt.input)
		if len(got) == 0 && len(tt.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("cleanTokens(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestWordFeaturesMissingSentinel(t *testing.T) {
	tokens := cleanTokens(",,,")
	if len(tokens) != 0 {
		t.Fatalf("expected empty token list, got %v", tokens)
	}
	if got := wordFirst(tokens); got != MissingToken {
		t.Fatalf("wordFirst = %v, want %q", got, MissingToken)
	}
	if got := wordLast(tokens); got != MissingToken {
		t.Fatalf("wordLast = %v, want %q", got, MissingToken)
	}
	if got := numTokens(tokens); got != 0 {
		t.Fatalf("numTokens = %v, want 0", got)
	}
}

func TestSingleEduKeysFill(t *testing.T) {
	edu := &model.EDU{Num: 1, Start: 5, End: 17, Text: "Hello there.<P>", ID: "doc_1"}
	doc := &DocumentPlus{Key: "doc"}

	sv := NewSingleEduKeys(nil)
	sv.Fill(doc, edu, nil)

	wantHeaders := []string{"id", "start", "end", "word_first", "word_last", "num_tokens"}
	if got := sv.CSVHeaders(); !reflect.DeepEqual(got, wantHeaders) {
		t.Fatalf("CSVHeaders() = %v, want %v", got, wantHeaders)
	}
	wantValues := []any{"doc_1", 5, 17, "hello", "there", 2}
	if got := sv.CSVValues(); !reflect.DeepEqual(got, wantValues) {
		t.Fatalf("CSVValues() = %v, want %v", got, wantValues)
	}
}

func TestSingleEduKeysFillTarget(t *testing.T) {
	edu := &model.EDU{Num: 2, Start: 0, End: 4, Text: "Word"}
	doc := &DocumentPlus{Key: "doc"}

	src := NewSingleEduKeys(nil)
	dst := NewSingleEduKeys(nil)
	src.Fill(doc, edu, dst.Merged)

	// Source stays empty; target received every value.
	for i, v := range src.CSVValues() {
		if v != nil {
			t.Fatalf("source value %d filled: %v", i, v)
		}
	}
	for i, v := range dst.CSVValues() {
		if v == nil {
			t.Fatalf("target value %d not filled", i)
		}
	}
}

func TestDebugColumns(t *testing.T) {
	in := &FeatureInput{Debug: true}
	sv := NewSingleEduKeys(in)

	headers := sv.CSVHeaders()
	if headers[len(headers)-1] != "text" {
		t.Fatalf("expected trailing debug column, got %v", headers)
	}

	edu := &model.EDU{Num: 1, Text: `"Some Text.`}
	sv.Fill(&DocumentPlus{Key: "doc"}, edu, nil)
	values := sv.CSVValues()
	if values[len(values)-1] != "some text" {
		t.Fatalf("debug text = %v", values[len(values)-1])
	}
}
