package provider

import (
	"context"
	"encoding/json"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// maxExemplarRange bounds the expansion of a single "a-z" style range.
const maxExemplarRange = 512

var collationMatcher = language.NewMatcher(collate.Supported())

// CollatorExemplars is the payload of the collator marker.
type CollatorExemplars struct {
	// Collation is the x/text collation tailoring the exemplars were sorted with.
	Collation string `json:"collation"`
	// Exemplars holds the locale's main exemplar characters in collation order.
	Exemplars []string `json:"exemplars"`
}

func (p *Provider) loadCollatorExemplars(ctx context.Context, locale string) (any, error) {
	docPath := charactersPath(locale)

	raw, err := p.mainSection(ctx, docPath, locale, "characters")
	if err != nil {
		return nil, err
	}

	var characters map[string]json.RawMessage
	if err := decode(docPath, raw, &characters); err != nil {
		return nil, err
	}

	var set string
	if v, ok := characters["exemplarCharacters"]; ok {
		if err := decode(docPath, v, &set); err != nil {
			return nil, err
		}
	}

	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}
	matched, _, _ := collationMatcher.Match(tag)

	exemplars := parseExemplarSet(set)
	collate.New(matched).SortStrings(exemplars)

	return &CollatorExemplars{
		Collation: matched.String(),
		Exemplars: exemplars,
	}, nil
}

// parseExemplarSet expands a CLDR exemplar set such as "[a b c {ch} d-f]" into its members.
func parseExemplarSet(set string) []string {
	set = strings.TrimSpace(set)
	set = strings.TrimPrefix(set, "[")
	set = strings.TrimSuffix(set, "]")

	seen := map[string]struct{}{}
	out := []string{}
	add := func(s string) {
		if s == "" {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	for _, token := range strings.Fields(set) {
		if strings.HasPrefix(token, "{") && strings.HasSuffix(token, "}") {
			add(strings.Trim(token, "{}"))
			continue
		}

		token = strings.ReplaceAll(token, `\`, "")
		runes := []rune(token)
		if len(runes) == 3 && runes[1] == '-' && runes[0] < runes[2] {
			for r, n := runes[0], 0; r <= runes[2] && n < maxExemplarRange; r, n = r+1, n+1 {
				add(string(r))
			}
			continue
		}
		add(token)
	}

	return out
}
