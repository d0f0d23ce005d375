package model

import "fmt"

// EDU is an elementary discourse unit — the atomic span of text over
// which rhetorical relations are defined.
type EDU struct {
	Num   int    `json:"num"`   // 1-based position in document order
	Start int    `json:"start"` // character span start offset
	End   int    `json:"end"`   // character span end offset
	Text  string `json:"text"`
	ID    string `json:"-"` // unique identifier, assigned by the corpus reader
}

// Identifier returns the unit's unique identifier. Falls back to a
// positional form when the corpus reader did not assign one.
func (e *EDU) Identifier() string {
	if e.ID != "" {
		return e.ID
	}
	return fmt.Sprintf("edu_%d", e.Num)
}