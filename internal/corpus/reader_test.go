package corpus

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const docJSON = `{
  "children": [
    {"nuclearity": "Nucleus", "edu": {"num": 1, "start": 0, "end": 10, "text": "First unit."}},
    {"nuclearity": "Satellite", "relation": "elaboration",
     "edu": {"num": 2, "start": 11, "end": 20, "text": "second."}}
  ]
}`

func writeDoc(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadSortedAndIdentified(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "b_doc.json", docJSON)
	writeDoc(t, dir, "a_doc.json", docJSON)
	writeDoc(t, dir, "notes.txt", "ignored")

	c, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := c.Keys(); !reflect.DeepEqual(got, []string{"a_doc", "b_doc"}) {
		t.Fatalf("Keys() = %v", got)
	}

	tree, ok := c.Get("a_doc")
	if !ok {
		t.Fatal("a_doc not loaded")
	}
	leaves := tree.Leaves()
	if len(leaves) != 2 {
		t.Fatalf("got %d leaves, want 2", len(leaves))
	}
	if leaves[0].ID != "a_doc_1" || leaves[1].ID != "a_doc_2" {
		t.Fatalf("IDs = %q, %q", leaves[0].ID, leaves[1].ID)
	}
}

func TestLoadBadNumbering(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "bad.json", `{
  "children": [
    {"nuclearity": "Nucleus", "edu": {"num": 2, "text": "first"}},
    {"nuclearity": "Satellite", "edu": {"num": 1, "text": "second"}}
  ]
}`)
	if _, err := Load(dir); err == nil {
		t.Fatal("expected leaf-numbering error")
	}
}

func TestLoadInvalidNode(t *testing.T) {
	dir := t.TempDir()
	// A node carrying both an EDU and children is malformed.
	writeDoc(t, dir, "bad.json", `{
  "edu": {"num": 1, "text": "x"},
  "children": [{"edu": {"num": 2, "text": "y"}}]
}`)
	if _, err := Load(dir); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestLoadBadJSON(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "bad.json", "{not json")
	if _, err := Load(dir); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestLoadMissingDir(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestCorpusAddReplace(t *testing.T) {
	c := New()
	c.Add("k", nil)
	c.Add("k", nil)
	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}
}
