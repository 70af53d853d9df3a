package provider

import (
	"context"
	"encoding/json"

	"go.trai.ch/zerr"
)

type listType string

const (
	listTypeAnd  listType = "listPattern-type-standard"
	listTypeOr   listType = "listPattern-type-or"
	listTypeUnit listType = "listPattern-type-unit"
)

// ListPatterns is the payload of the list markers.
// Patterns use {0} and {1} placeholders.
type ListPatterns struct {
	Start  string `json:"start"`
	Middle string `json:"middle"`
	End    string `json:"end"`
	Pair   string `json:"pair"`
}

func (p *Provider) listLoader(typ listType) loader {
	return func(ctx context.Context, locale string) (any, error) {
		docPath := listPatternsPath(locale)

		raw, err := p.mainSection(ctx, docPath, locale, "listPatterns")
		if err != nil {
			return nil, err
		}

		var patterns map[string]json.RawMessage
		if err := decode(docPath, raw, &patterns); err != nil {
			return nil, err
		}

		patternRaw, ok := patterns[string(typ)]
		if !ok {
			return nil, zerr.With(invalidDocument(docPath, nil), "key", string(typ))
		}

		parts, err := stringMembers(docPath, patternRaw)
		if err != nil {
			return nil, err
		}

		return &ListPatterns{
			Start:  parts["start"],
			Middle: parts["middle"],
			End:    parts["end"],
			Pair:   parts["2"],
		}, nil
	}
}
