package provider

import (
	"context"
	"encoding/json"
	"slices"
)

// SentenceSuppressions is the payload of the sentence suppressions marker.
type SentenceSuppressions struct {
	// Suppressions lists abbreviations after which no sentence break occurs, sorted.
	Suppressions []string `json:"suppressions"`
}

type suppressionEntry struct {
	Suppression string `json:"suppression"`
}

// segmentationSet maps a break type and variant to its suppressions.
type segmentationSet map[string]map[string][]suppressionEntry

func (p *Provider) loadSentenceSuppressions(ctx context.Context, locale string) (any, error) {
	docPath := suppressionsPath(locale)

	data, err := p.source.Fetch(ctx, docPath)
	if err != nil {
		return nil, err
	}

	var doc struct {
		Segments map[string]json.RawMessage `json:"segments"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, invalidDocument(docPath, err)
	}
	if doc.Segments == nil {
		return nil, invalidDocument(docPath, nil)
	}

	set, err := findSegmentations(docPath, doc.Segments)
	if err != nil {
		return nil, err
	}

	out := &SentenceSuppressions{Suppressions: []string{}}
	for _, entry := range set["SentenceBreak"]["standard"] {
		if entry.Suppression != "" {
			out.Suppressions = append(out.Suppressions, entry.Suppression)
		}
	}
	slices.Sort(out.Suppressions)
	out.Suppressions = slices.Compact(out.Suppressions)
	return out, nil
}

// findSegmentations locates the segmentations object, which releases place either
// directly under "segments" or under a locale key.
func findSegmentations(docPath string, segments map[string]json.RawMessage) (segmentationSet, error) {
	if raw, ok := segments["segmentations"]; ok {
		var set segmentationSet
		if err := decode(docPath, raw, &set); err != nil {
			return nil, err
		}
		return set, nil
	}

	for key, raw := range segments {
		if key == "identity" {
			continue
		}
		var nested struct {
			Segmentations segmentationSet `json:"segmentations"`
		}
		if json.Unmarshal(raw, &nested) == nil && nested.Segmentations != nil {
			return nested.Segmentations, nil
		}
	}
	return segmentationSet{}, nil
}
