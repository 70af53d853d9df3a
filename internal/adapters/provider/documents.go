package provider

import (
	"context"
	"encoding/json"

	"go.trai.ch/datagen/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	pathAvailableLocales = "cldr-core/availableLocales.json"
	pathPlurals          = "cldr-core/supplemental/plurals.json"
	pathOrdinals         = "cldr-core/supplemental/ordinals.json"
	pathLikelySubtags    = "cldr-core/supplemental/likelySubtags.json"
	pathParentLocales    = "cldr-core/supplemental/parentLocales.json"
	pathLanguageMatching = "cldr-core/supplemental/languageMatching.json"
)

func numbersPath(locale string) string {
	return "cldr-numbers-full/main/" + locale + "/numbers.json"
}

func gregorianPath(locale string) string {
	return "cldr-dates-full/main/" + locale + "/ca-gregorian.json"
}

func listPatternsPath(locale string) string {
	return "cldr-misc-full/main/" + locale + "/listPatterns.json"
}

func charactersPath(locale string) string {
	return "cldr-misc-full/main/" + locale + "/characters.json"
}

func suppressionsPath(locale string) string {
	return "cldr-segments-full/segments/" + locale + "/suppressions.json"
}

func invalidDocument(docPath string, cause error) error {
	if cause == nil {
		return zerr.With(domain.ErrInvalidCLDRDocument, "path", docPath)
	}
	return zerr.With(zerr.Wrap(cause, domain.ErrInvalidCLDRDocument.Error()), "path", docPath)
}

// supplemental fetches a supplemental document and returns its member named key.
func (p *Provider) supplemental(ctx context.Context, docPath, key string) (json.RawMessage, error) {
	data, err := p.source.Fetch(ctx, docPath)
	if err != nil {
		return nil, err
	}

	var doc struct {
		Supplemental map[string]json.RawMessage `json:"supplemental"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, invalidDocument(docPath, err)
	}
	if doc.Supplemental == nil {
		return nil, invalidDocument(docPath, nil)
	}

	member, ok := doc.Supplemental[key]
	if !ok {
		return nil, zerr.With(invalidDocument(docPath, nil), "key", key)
	}
	return member, nil
}

// mainSection fetches a per-locale "main" document and returns the named section of its locale entry.
// A document holding a single locale entry is accepted even if its key differs from locale,
// since cldr-json keys entries by the directory's own identifier.
func (p *Provider) mainSection(ctx context.Context, docPath, locale, section string) (json.RawMessage, error) {
	data, err := p.source.Fetch(ctx, docPath)
	if err != nil {
		return nil, err
	}

	var doc struct {
		Main map[string]map[string]json.RawMessage `json:"main"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, invalidDocument(docPath, err)
	}

	entry, ok := doc.Main[locale]
	if !ok {
		if len(doc.Main) != 1 {
			return nil, invalidDocument(docPath, nil)
		}
		for _, only := range doc.Main {
			entry = only
		}
	}

	raw, ok := entry[section]
	if !ok {
		return nil, zerr.With(invalidDocument(docPath, nil), "key", section)
	}
	return raw, nil
}

// decode unmarshals raw into v, attributing failures to docPath.
func decode(docPath string, raw json.RawMessage, v any) error {
	if err := json.Unmarshal(raw, v); err != nil {
		return invalidDocument(docPath, err)
	}
	return nil
}

// stringMembers decodes an object and keeps only its string-valued members.
// cldr-json mixes plain patterns with nested objects (alt forms, interval formats).
func stringMembers(docPath string, raw json.RawMessage) (map[string]string, error) {
	var members map[string]json.RawMessage
	if err := decode(docPath, raw, &members); err != nil {
		return nil, err
	}

	out := make(map[string]string, len(members))
	for k, v := range members {
		var s string
		if json.Unmarshal(v, &s) == nil {
			out[k] = s
		}
	}
	return out, nil
}
