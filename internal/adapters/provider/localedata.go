package provider

import (
	"context"
	"encoding/json"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// LikelySubtags is the payload of the likely subtags marker.
type LikelySubtags struct {
	// Subtags maps a partial tag such as "zh-TW" to its maximized form "zh-Hant-TW".
	Subtags map[string]string `json:"subtags"`
}

// ParentLocales is the payload of the parent locales marker.
type ParentLocales struct {
	// Parents maps a locale to the parent that overrides its truncation fallback.
	Parents map[string]string `json:"parents"`
}

// LanguageMatching is the payload of the language matching marker.
type LanguageMatching struct {
	ParadigmLocales []string          `json:"paradigmLocales"`
	Variables       map[string]string `json:"variables"`
	Matches         []LanguageMatch   `json:"matches"`
}

// LanguageMatch is one desired/supported distance rule.
type LanguageMatch struct {
	Desired   string `json:"desired"`
	Supported string `json:"supported"`
	Distance  int    `json:"distance"`
	Oneway    bool   `json:"oneway,omitempty"`
}

func (p *Provider) loadLikelySubtags(ctx context.Context, _ string) (any, error) {
	raw, err := p.supplemental(ctx, pathLikelySubtags, "likelySubtags")
	if err != nil {
		return nil, err
	}

	subtags, err := stringMembers(pathLikelySubtags, raw)
	if err != nil {
		return nil, err
	}
	return &LikelySubtags{Subtags: subtags}, nil
}

func (p *Provider) loadParentLocales(ctx context.Context, _ string) (any, error) {
	raw, err := p.supplemental(ctx, pathParentLocales, "parentLocales")
	if err != nil {
		return nil, err
	}

	var doc struct {
		ParentLocale map[string]string `json:"parentLocale"`
	}
	if err := decode(pathParentLocales, raw, &doc); err != nil {
		return nil, err
	}
	if doc.ParentLocale == nil {
		doc.ParentLocale = map[string]string{}
	}
	return &ParentLocales{Parents: doc.ParentLocale}, nil
}

func (p *Provider) loadLanguageMatching(ctx context.Context, _ string) (any, error) {
	raw, err := p.supplemental(ctx, pathLanguageMatching, "languageMatching")
	if err != nil {
		return nil, err
	}

	var sets map[string][]map[string]json.RawMessage
	if err := decode(pathLanguageMatching, raw, &sets); err != nil {
		return nil, err
	}

	items, ok := sets["written-new"]
	if !ok {
		return nil, zerr.With(invalidDocument(pathLanguageMatching, nil), "key", "written-new")
	}

	out := &LanguageMatching{
		ParadigmLocales: []string{},
		Variables:       map[string]string{},
		Matches:         []LanguageMatch{},
	}

	for i, item := range items {
		if len(item) != 1 {
			return nil, zerr.With(invalidDocument(pathLanguageMatching, nil), "item", i)
		}
		if err := out.add(item); err != nil {
			return nil, zerr.With(err, "item", i)
		}
	}

	slices.Sort(out.ParadigmLocales)
	return out, nil
}

// matchingItem is one member of a languageMatching list. cldr-json keys variables
// by their "$name" and rules by the desired locale, so the shape is told apart by
// the fields present.
type matchingItem struct {
	Locales   *string `json:"_locales"`
	Value     *string `json:"_value"`
	Desired   *string `json:"_desired"`
	Supported *string `json:"_supported"`
	Distance  *string `json:"_distance"`
	Oneway    string  `json:"_oneway"`
}

func (m *LanguageMatching) add(item map[string]json.RawMessage) error {
	for key, raw := range item {
		var v matchingItem
		if err := decode(pathLanguageMatching, raw, &v); err != nil {
			return err
		}

		switch {
		case key == "paradigmLocales" && v.Locales != nil:
			m.ParadigmLocales = strings.Fields(*v.Locales)
		case strings.HasPrefix(key, "$") && v.Value != nil:
			m.Variables[key] = *v.Value
		case v.Desired != nil && v.Supported != nil && v.Distance != nil:
			distance, err := strconv.Atoi(*v.Distance)
			if err != nil {
				return invalidDocument(pathLanguageMatching, err)
			}
			m.Matches = append(m.Matches, LanguageMatch{
				Desired:   *v.Desired,
				Supported: *v.Supported,
				Distance:  distance,
				Oneway:    v.Oneway == "true",
			})
		default:
			return zerr.With(invalidDocument(pathLanguageMatching, nil), "key", key)
		}
	}
	return nil
}
