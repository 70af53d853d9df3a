package provider

import (
	"context"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// caseProbes are strings whose casing differs between languages in x/text:
// Turkic dotted and dotless i, Lithuanian retained dots, Dutch IJ titlecasing,
// Greek final sigma and the German sharp s.
var caseProbes = []string{
	"i", "I", "İ", "ı", "iı", "Ì", "Í", "Ĩ", "J̀",
	"ijs", "ĳ", "ΣΑΣ", "σας", "ß", "ǆ", "ǳ",
}

// CaseMapExceptions is the payload of the case mapping marker.
// Each map holds the probes whose mapping differs from the language-neutral one.
type CaseMapExceptions struct {
	Upper map[string]string `json:"upper"`
	Lower map[string]string `json:"lower"`
	Title map[string]string `json:"title"`
}

func (p *Provider) loadCaseMapExceptions(_ context.Context, locale string) (any, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}

	out := &CaseMapExceptions{
		Upper: caseDiff(cases.Upper(tag), cases.Upper(language.Und)),
		Lower: caseDiff(cases.Lower(tag), cases.Lower(language.Und)),
		Title: caseDiff(cases.Title(tag), cases.Title(language.Und)),
	}
	return out, nil
}

func caseDiff(localized, neutral cases.Caser) map[string]string {
	diff := map[string]string{}
	for _, probe := range caseProbes {
		got := localized.String(probe)
		if got != neutral.String(probe) {
			diff[probe] = got
		}
	}
	return diff
}
