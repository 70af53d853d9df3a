package provider

import (
	"context"
	"strings"

	"go.trai.ch/datagen/internal/core/domain"
	"go.trai.ch/zerr"
)

type pluralType struct {
	path string
	key  string
}

var (
	pluralTypeCardinal = pluralType{path: pathPlurals, key: "plurals-type-cardinal"}
	pluralTypeOrdinal  = pluralType{path: pathOrdinals, key: "plurals-type-ordinal"}
)

const pluralRulePrefix = "pluralRule-count-"

// PluralRules is the payload of the plural rule markers.
type PluralRules struct {
	// Language is the plural data entry the rules were taken from.
	Language string `json:"language"`
	// Rules maps a plural category to its condition, without samples.
	// The "other" category has an empty condition.
	Rules map[string]string `json:"rules"`
}

func (p *Provider) pluralLoader(typ pluralType) loader {
	return func(ctx context.Context, locale string) (any, error) {
		raw, err := p.supplemental(ctx, typ.path, typ.key)
		if err != nil {
			return nil, err
		}

		var byLanguage map[string]map[string]string
		if err := decode(typ.path, raw, &byLanguage); err != nil {
			return nil, err
		}

		for _, candidate := range fallbackChain(locale) {
			rules, ok := byLanguage[candidate]
			if !ok {
				continue
			}
			return &PluralRules{
				Language: candidate,
				Rules:    parsePluralRules(rules),
			}, nil
		}

		return nil, zerr.With(zerr.Wrap(domain.ErrDataNotFound, "no plural rules"), "locale", locale)
	}
}

// parsePluralRules strips the "pluralRule-count-" prefix from keys and the
// "@integer"/"@decimal" samples from conditions.
func parsePluralRules(raw map[string]string) map[string]string {
	rules := make(map[string]string, len(raw))
	for key, text := range raw {
		category, ok := strings.CutPrefix(key, pluralRulePrefix)
		if !ok {
			continue
		}
		condition, _, _ := strings.Cut(text, "@")
		rules[category] = strings.TrimSpace(condition)
	}
	return rules
}
