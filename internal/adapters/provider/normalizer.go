package provider

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// decompositionRanges are the blocks exported by the normalizer markers:
// Latin-1 Supplement through Latin Extended-B, Greek and Coptic, Latin Extended Additional,
// Alphabetic Presentation Forms (Latin ligatures) and Number Forms (Roman numerals).
var decompositionRanges = [][2]rune{
	{0x00C0, 0x024F},
	{0x0370, 0x03FF},
	{0x1E00, 0x1EFF},
	{0xFB00, 0xFB06},
	{0x2160, 0x217F},
}

// Decompositions is the payload of the normalizer markers.
type Decompositions struct {
	Form string `json:"form"`
	// Mappings maps a code point ("00C0") to its full decomposition ("0041 0300").
	Mappings map[string]string `json:"mappings"`
}

func (p *Provider) loadNFD(_ context.Context, _ string) (any, error) {
	return decompositions("NFD", norm.NFD), nil
}

func (p *Provider) loadNFKD(_ context.Context, _ string) (any, error) {
	return decompositions("NFKD", norm.NFKD), nil
}

func decompositions(name string, form norm.Form) *Decompositions {
	out := &Decompositions{Form: name, Mappings: map[string]string{}}

	for _, rng := range decompositionRanges {
		for r := rng[0]; r <= rng[1]; r++ {
			if !utf8.ValidRune(r) {
				continue
			}
			src := string(r)
			dst := form.String(src)
			if dst == src {
				continue
			}
			out.Mappings[fmt.Sprintf("%04X", r)] = codePoints(dst)
		}
	}
	return out
}

func codePoints(s string) string {
	parts := make([]string, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		parts = append(parts, fmt.Sprintf("%04X", r))
	}
	return strings.Join(parts, " ")
}
