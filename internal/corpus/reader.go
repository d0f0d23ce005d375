package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/crimson-sun/rstfeat/internal/model"
)

// Load reads every *.json document under dir into a corpus. File names
// (minus extension) become document keys; files are read in sorted
// name order. Read and decode failures are returned wrapped, never
// swallowed.
func Load(dir string) (*Corpus, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("corpus: %w", err)
	}

	c := New()
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		key := strings.TrimSuffix(e.Name(), ".json")
		t, err := loadDoc(filepath.Join(dir, e.Name()), key)
		if err != nil {
			return nil, err
		}
		c.Add(key, t)
	}
	return c, nil
}

// loadDoc parses a single serialized RST tree, validates it, and
// assigns EDU identifiers of the form <key>_<num>.
func loadDoc(path, key string) (*model.RSTTree, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("corpus: %w", err)
	}
	var t model.RSTTree
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("corpus: %s: %w", path, err)
	}
	if err := validate(&t); err != nil {
		return nil, fmt.Errorf("corpus: %s: %w", path, err)
	}
	for i, edu := range t.Leaves() {
		if edu.Num != i+1 {
			return nil, fmt.Errorf("corpus: %s: leaf %d numbered %d, want %d",
				path, i, edu.Num, i+1)
		}
		edu.ID = fmt.Sprintf("%s_%d", key, edu.Num)
	}
	return &t, nil
}

func validate(t *model.RSTTree) error {
	if t.EDU != nil && len(t.Children) > 0 {
		return fmt.Errorf("node carries both an EDU and children")
	}
	if t.EDU == nil && len(t.Children) == 0 {
		return fmt.Errorf("node carries neither an EDU nor children")
	}
	for _, c := range t.Children {
		if err := validate(c); err != nil {
			return err
		}
	}
	return nil
}
