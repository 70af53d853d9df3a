package provider

import (
	"context"
	"encoding/json"
	"strconv"
)

const defaultNumberingSystem = "latn"

// DecimalSymbols is the payload of the decimal symbols marker.
type DecimalSymbols struct {
	NumberingSystem       string            `json:"numberingSystem"`
	MinimumGroupingDigits int               `json:"minimumGroupingDigits"`
	Symbols               map[string]string `json:"symbols"`
	StandardPattern       string            `json:"standardPattern"`
}

func (p *Provider) loadDecimalSymbols(ctx context.Context, locale string) (any, error) {
	docPath := numbersPath(locale)

	raw, err := p.mainSection(ctx, docPath, locale, "numbers")
	if err != nil {
		return nil, err
	}

	var numbers map[string]json.RawMessage
	if err := decode(docPath, raw, &numbers); err != nil {
		return nil, err
	}

	system := defaultNumberingSystem
	if v, ok := numbers["defaultNumberingSystem"]; ok {
		_ = json.Unmarshal(v, &system)
	}
	// Prefer the locale's default system, falling back to latn when it has no symbols.
	if _, ok := numbers["symbols-numberSystem-"+system]; !ok {
		system = defaultNumberingSystem
	}

	out := &DecimalSymbols{
		NumberingSystem:       system,
		MinimumGroupingDigits: 1,
		Symbols:               map[string]string{},
	}

	if v, ok := numbers["minimumGroupingDigits"]; ok {
		var digits string
		if json.Unmarshal(v, &digits) == nil {
			if n, convErr := strconv.Atoi(digits); convErr == nil {
				out.MinimumGroupingDigits = n
			}
		}
	}

	if v, ok := numbers["symbols-numberSystem-"+system]; ok {
		symbols, err := stringMembers(docPath, v)
		if err != nil {
			return nil, err
		}
		out.Symbols = symbols
	}

	if v, ok := numbers["decimalFormats-numberSystem-"+system]; ok {
		formats, err := stringMembers(docPath, v)
		if err != nil {
			return nil, err
		}
		out.StandardPattern = formats["standard"]
	}

	return out, nil
}
