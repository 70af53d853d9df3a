package provider

import (
	"context"
	"encoding/json"
	"strconv"

	"go.trai.ch/zerr"
)

var (
	nameWidths = []string{"abbreviated", "wide"}
	dayKeys    = []string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}
)

// GregorianNames is the payload of the gregorian names marker.
type GregorianNames struct {
	// Months maps a width to the twelve formatting month names.
	Months map[string][]string `json:"months"`
	// Days maps a width to the seven formatting day names, starting on Sunday.
	Days map[string][]string `json:"days"`
	// DayPeriods holds the abbreviated am/pm markers.
	DayPeriods map[string]string `json:"dayPeriods"`
	// Eras holds the abbreviated era names, BC first.
	Eras []string `json:"eras"`
}

// GregorianPatterns is the payload of the gregorian patterns marker.
type GregorianPatterns struct {
	Date     map[string]string `json:"date"`
	Time     map[string]string `json:"time"`
	DateTime map[string]string `json:"dateTime"`
}

// GregorianSkeletons is the payload of the gregorian skeletons marker.
type GregorianSkeletons struct {
	// Skeletons maps a skeleton such as "yMMMd" to its localized pattern.
	Skeletons map[string]string `json:"skeletons"`
}

type gregorianCalendar struct {
	Months struct {
		Format map[string]map[string]string `json:"format"`
	} `json:"months"`
	Days struct {
		Format map[string]map[string]string `json:"format"`
	} `json:"days"`
	DayPeriods struct {
		Format map[string]map[string]string `json:"format"`
	} `json:"dayPeriods"`
	Eras struct {
		Abbr map[string]string `json:"eraAbbr"`
	} `json:"eras"`
	DateFormats     json.RawMessage `json:"dateFormats"`
	TimeFormats     json.RawMessage `json:"timeFormats"`
	DateTimeFormats json.RawMessage `json:"dateTimeFormats"`
}

func (p *Provider) gregorian(ctx context.Context, locale string) (*gregorianCalendar, string, error) {
	docPath := gregorianPath(locale)

	raw, err := p.mainSection(ctx, docPath, locale, "dates")
	if err != nil {
		return nil, docPath, err
	}

	var dates struct {
		Calendars map[string]json.RawMessage `json:"calendars"`
	}
	if err := decode(docPath, raw, &dates); err != nil {
		return nil, docPath, err
	}

	calRaw, ok := dates.Calendars["gregorian"]
	if !ok {
		return nil, docPath, zerr.With(invalidDocument(docPath, nil), "key", "gregorian")
	}

	var cal gregorianCalendar
	if err := decode(docPath, calRaw, &cal); err != nil {
		return nil, docPath, err
	}
	return &cal, docPath, nil
}

func (p *Provider) loadGregorianNames(ctx context.Context, locale string) (any, error) {
	cal, _, err := p.gregorian(ctx, locale)
	if err != nil {
		return nil, err
	}

	out := &GregorianNames{
		Months:     make(map[string][]string, len(nameWidths)),
		Days:       make(map[string][]string, len(nameWidths)),
		DayPeriods: map[string]string{},
	}

	for _, width := range nameWidths {
		if months, ok := cal.Months.Format[width]; ok {
			names := make([]string, 12)
			for i := range names {
				names[i] = months[strconv.Itoa(i+1)]
			}
			out.Months[width] = names
		}
		if days, ok := cal.Days.Format[width]; ok {
			names := make([]string, len(dayKeys))
			for i, key := range dayKeys {
				names[i] = days[key]
			}
			out.Days[width] = names
		}
	}

	if periods, ok := cal.DayPeriods.Format["abbreviated"]; ok {
		for _, key := range []string{"am", "pm"} {
			if v, ok := periods[key]; ok {
				out.DayPeriods[key] = v
			}
		}
	}

	for _, key := range []string{"0", "1"} {
		if v, ok := cal.Eras.Abbr[key]; ok {
			out.Eras = append(out.Eras, v)
		}
	}

	return out, nil
}

func (p *Provider) loadGregorianPatterns(ctx context.Context, locale string) (any, error) {
	cal, docPath, err := p.gregorian(ctx, locale)
	if err != nil {
		return nil, err
	}

	out := &GregorianPatterns{}
	sections := []struct {
		raw json.RawMessage
		dst *map[string]string
	}{
		{cal.DateFormats, &out.Date},
		{cal.TimeFormats, &out.Time},
		{cal.DateTimeFormats, &out.DateTime},
	}
	for _, s := range sections {
		if len(s.raw) == 0 {
			*s.dst = map[string]string{}
			continue
		}
		members, err := stringMembers(docPath, s.raw)
		if err != nil {
			return nil, err
		}
		*s.dst = members
	}

	return out, nil
}

func (p *Provider) loadGregorianSkeletons(ctx context.Context, locale string) (any, error) {
	cal, docPath, err := p.gregorian(ctx, locale)
	if err != nil {
		return nil, err
	}

	out := &GregorianSkeletons{Skeletons: map[string]string{}}
	if len(cal.DateTimeFormats) == 0 {
		return out, nil
	}

	var formats map[string]json.RawMessage
	if err := decode(docPath, cal.DateTimeFormats, &formats); err != nil {
		return nil, err
	}

	if available, ok := formats["availableFormats"]; ok {
		skeletons, err := stringMembers(docPath, available)
		if err != nil {
			return nil, err
		}
		out.Skeletons = skeletons
	}
	return out, nil
}
