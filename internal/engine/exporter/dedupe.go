package exporter

import (
	"bytes"
	"maps"
	"slices"

	"golang.org/x/text/language"
)

// Dedupe removes entries whose payload is byte-identical to the payload of their
// nearest ancestor present in entries, and returns the removed locales mapped to
// the stored locale they share a payload with.
func Dedupe(entries map[string][]byte) map[string]string {
	aliases := map[string]string{}

	for _, locale := range slices.Sorted(maps.Keys(entries)) {
		parent, ok := nearestAncestor(locale, entries)
		if !ok {
			continue
		}
		if bytes.Equal(entries[locale], entries[parent]) {
			aliases[locale] = parent
		}
	}

	// Point chained aliases at the ancestor that keeps its payload.
	for locale, target := range aliases {
		for {
			next, ok := aliases[target]
			if !ok {
				break
			}
			target = next
		}
		aliases[locale] = target
	}

	for locale := range aliases {
		delete(entries, locale)
	}
	return aliases
}

// nearestAncestor walks the CLDR parent chain of locale and returns the first
// ancestor with an entry.
func nearestAncestor(locale string, entries map[string][]byte) (string, bool) {
	tag, err := language.Parse(locale)
	if err != nil {
		return "", false
	}

	for t := tag; !t.IsRoot(); {
		t = t.Parent()
		if _, ok := entries[t.String()]; ok {
			return t.String(), true
		}
	}
	return "", false
}
