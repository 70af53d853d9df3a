package provider

import (
	"context"
	"slices"
	"strings"

	"go.trai.ch/datagen/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/text/language"
)

// ResolveLocales expands selection into sorted, canonical, unique locale tags.
// The modern and full selectors expand to the matching coverage level of availableLocales.json.
func (p *Provider) ResolveLocales(ctx context.Context, selection []string) ([]string, error) {
	seen := make(map[string]struct{})
	var out []string

	add := func(tag string) {
		if _, ok := seen[tag]; ok {
			return
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}

	for _, raw := range selection {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}

		switch strings.ToLower(name) {
		case domain.LocalesModern, domain.LocalesFull:
			available, err := p.availableLocales(ctx, strings.ToLower(name))
			if err != nil {
				return nil, err
			}
			for _, tag := range available {
				canonical, err := CanonicalLocale(tag)
				if err != nil {
					// availableLocales lists a few private identifiers x/text rejects.
					continue
				}
				add(canonical)
			}
		default:
			canonical, err := CanonicalLocale(name)
			if err != nil {
				return nil, err
			}
			add(canonical)
		}
	}

	if len(out) == 0 {
		return nil, domain.ErrNoLocalesSelected
	}

	slices.Sort(out)
	return out, nil
}

func (p *Provider) availableLocales(ctx context.Context, level string) ([]string, error) {
	data, err := p.source.Fetch(ctx, pathAvailableLocales)
	if err != nil {
		return nil, err
	}

	var doc struct {
		AvailableLocales map[string][]string `json:"availableLocales"`
	}
	if err := decode(pathAvailableLocales, data, &doc); err != nil {
		return nil, err
	}

	locales, ok := doc.AvailableLocales[level]
	if !ok {
		return nil, zerr.With(invalidDocument(pathAvailableLocales, nil), "key", level)
	}
	return locales, nil
}

// CanonicalLocale parses a BCP 47 tag (underscores accepted) and returns its canonical form.
func CanonicalLocale(name string) (string, error) {
	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(name), "_", "-"))
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrInvalidLocale.Error()), "locale", name)
	}
	return tag.String(), nil
}

// fallbackChain returns locale followed by its CLDR ancestors and its base language,
// ending with the root identifiers "und" and "root".
func fallbackChain(locale string) []string {
	chain := []string{locale}
	seen := map[string]struct{}{locale: {}}
	add := func(s string) {
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		chain = append(chain, s)
	}

	tag, err := language.Parse(locale)
	if err == nil {
		for t := tag.Parent(); !t.IsRoot(); t = t.Parent() {
			add(t.String())
		}
		if base, conf := tag.Base(); conf != language.No {
			add(base.String())
		}
	}

	add(domain.RootLocale)
	add("root")
	return chain
}
