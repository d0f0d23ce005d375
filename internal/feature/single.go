package feature

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/crimson-sun/rstfeat/internal/feature/keys"
	"github.com/crimson-sun/rstfeat/internal/model"
)

// MissingToken is reported for word features on EDUs whose text
// normalizes to zero tokens.
const MissingToken = "<none>"

// UnitFn computes one feature for a single EDU. The uniform signature
// lets groups fill their keys generically.
type UnitFn func(doc *DocumentPlus, edu *model.EDU) any

type unitKey = keys.MagicKey[UnitFn]

// eduFn lifts an edu -> value function to the uniform signature,
// dropping the document context.
func eduFn(f func(*model.EDU) any) UnitFn {
	return func(_ *DocumentPlus, e *model.EDU) any {
		return f(e)
	}
}

// tokensFn lifts a tokens -> value function to the uniform signature,
// normalizing the EDU text first.
func tokensFn(f func([]string) any) UnitFn {
	return eduFn(func(e *model.EDU) any {
		return f(cleanTokens(e.Text))
	})
}

// trailingMarkup matches sentence-final punctuation and paragraph
// markers to strip before tokenizing.
var trailingMarkup = regexp.MustCompile(`(\.|<P>|,)*$`)

// cleanText strips corpus metadata from EDU text: trailing punctuation
// and markup runs, plus a single leading quote.
func cleanText(text string) string {
	text = trailingMarkup.ReplaceAllString(text, "")
	return strings.TrimPrefix(text, `"`)
}

// cleanTokens normalizes EDU text into lower-cased tokens.
func cleanTokens(text string) []string {
	fields := strings.Fields(norm.NFC.String(cleanText(text)))
	for i, w := range fields {
		fields[i] = strings.ToLower(w)
	}
	return fields
}

func featID(e *model.EDU) any    { return e.Identifier() }
func featStart(e *model.EDU) any { return e.Start }
func featEnd(e *model.EDU) any   { return e.End }

func wordFirst(tokens []string) any {
	if len(tokens) == 0 {
		return MissingToken
	}
	return tokens[0]
}

func wordLast(tokens []string) any {
	if len(tokens) == 0 {
		return MissingToken
	}
	return tokens[len(tokens)-1]
}

func numTokens(tokens []string) any { return len(tokens) }

// singleSubgroup is one named block of single-EDU keys that knows how
// to fill itself from its magic keys.
type singleSubgroup struct {
	*keys.Group
	magic []unitKey
}

func newSingleSubgroup(desc string, magic []unitKey) *singleSubgroup {
	return &singleSubgroup{
		Group: keys.MustGroup(desc, keys.KeysOf(magic)),
		magic: magic,
	}
}

// Fill evaluates every key against (doc, edu) into target, or into the
// subgroup itself when target is nil.
func (s *singleSubgroup) Fill(doc *DocumentPlus, edu *model.EDU, target keys.Setter) {
	if target == nil {
		target = s.Group
	}
	for _, k := range s.magic {
		target.Set(k.Name, k.Fn(doc, edu))
	}
}

// metaSubgroup identifies the EDU: unique id plus character span.
func metaSubgroup() *singleSubgroup {
	return newSingleSubgroup("basic EDU identification", []unitKey{
		keys.Meta("id", eduFn(featID)),
		keys.Meta("start", eduFn(featStart)),
		keys.Meta("end", eduFn(featEnd)),
	})
}

// textSubgroup covers properties of the EDU text itself.
func textSubgroup() *singleSubgroup {
	return newSingleSubgroup("properties of the EDU text", []unitKey{
		keys.Discrete("word_first", tokensFn(wordFirst)),
		keys.Discrete("word_last", tokensFn(wordLast)),
		keys.Continuous("num_tokens", tokensFn(numTokens)),
	})
}

// debugSubgroup carries the normalized text for eyeballing output rows.
func debugSubgroup() *singleSubgroup {
	return newSingleSubgroup("debug aids", []unitKey{
		keys.Meta("text", eduFn(func(e *model.EDU) any {
			return strings.Join(cleanTokens(e.Text), " ")
		})),
	})
}

// SingleEduKeys is the merged feature vector for one EDU: the meta
// subgroup followed by the text subgroup (plus debug aids when the
// input asks for them).
type SingleEduKeys struct {
	*keys.Merged
	subs []*singleSubgroup
}

// NewSingleEduKeys assembles an unfilled single-EDU vector.
func NewSingleEduKeys(in *FeatureInput) *SingleEduKeys {
	subs := []*singleSubgroup{metaSubgroup(), textSubgroup()}
	if in.debug() {
		subs = append(subs, debugSubgroup())
	}
	groups := make([]keys.Vector, len(subs))
	for i, s := range subs {
		groups[i] = s
	}
	return &SingleEduKeys{
		Merged: keys.MustMerged("single EDU features", groups),
		subs:   subs,
	}
}

// Fill delegates to each subgroup in turn against one target (the
// vector itself when target is nil).
func (s *SingleEduKeys) Fill(doc *DocumentPlus, edu *model.EDU, target keys.Setter) {
	if target == nil {
		target = s.Merged
	}
	for _, sub := range s.subs {
		sub.Fill(doc, edu, target)
	}
}
