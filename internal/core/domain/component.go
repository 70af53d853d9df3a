package domain

import (
	"math/bits"
	"strings"

	"go.trai.ch/zerr"
)

// Component is one self-contained locale data domain.
type Component uint16

const (
	// ComponentCaseMapping covers locale-sensitive upper, lower and title casing.
	ComponentCaseMapping Component = 1 << iota
	// ComponentCollation covers locale-sensitive string ordering.
	ComponentCollation
	// ComponentDateTime covers calendar names and date/time patterns.
	ComponentDateTime
	// ComponentDecimal covers number symbols and decimal patterns.
	ComponentDecimal
	// ComponentList covers list joining patterns.
	ComponentList
	// ComponentLocale covers likely subtags, parent locales and language matching.
	ComponentLocale
	// ComponentNormalization covers Unicode canonical and compatibility decompositions.
	ComponentNormalization
	// ComponentPlurals covers cardinal and ordinal plural rules.
	ComponentPlurals
	// ComponentSegmentation covers text segmentation data.
	ComponentSegmentation
)

var componentNames = map[Component]string{
	ComponentCaseMapping:   "casemap",
	ComponentCollation:     "collator",
	ComponentDateTime:      "datetime",
	ComponentDecimal:       "decimal",
	ComponentList:          "list",
	ComponentLocale:        "locale",
	ComponentNormalization: "normalizer",
	ComponentPlurals:       "plurals",
	ComponentSegmentation:  "segmenter",
}

// AllComponents lists every component in declaration order.
var AllComponents = []Component{
	ComponentCaseMapping,
	ComponentCollation,
	ComponentDateTime,
	ComponentDecimal,
	ComponentList,
	ComponentLocale,
	ComponentNormalization,
	ComponentPlurals,
	ComponentSegmentation,
}

// String returns the component's short name.
func (c Component) String() string {
	if name, ok := componentNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseComponent resolves a component from its short name.
func ParseComponent(name string) (Component, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range componentNames {
		if n == name {
			return c, nil
		}
	}
	return 0, zerr.With(ErrUnknownComponent, "component", name)
}

// ComponentSet is a collection of components stored as bit flags.
type ComponentSet uint16

// NewComponentSet returns a set holding the given components.
func NewComponentSet(components ...Component) ComponentSet {
	var s ComponentSet
	for _, c := range components {
		s = s.With(c)
	}
	return s
}

// FullComponentSet returns the set of all nine components.
func FullComponentSet() ComponentSet {
	return NewComponentSet(AllComponents...)
}

// ParseComponentSet parses a list of component names. The single name "all" selects every component.
func ParseComponentSet(names []string) (ComponentSet, error) {
	var s ComponentSet
	for _, name := range names {
		if strings.EqualFold(strings.TrimSpace(name), "all") {
			return FullComponentSet(), nil
		}
		c, err := ParseComponent(name)
		if err != nil {
			return 0, err
		}
		s = s.With(c)
	}
	return s, nil
}

// With returns a copy of the set with c added.
func (s ComponentSet) With(c Component) ComponentSet {
	return s | ComponentSet(c)
}

// Has reports whether c is in the set.
func (s ComponentSet) Has(c Component) bool {
	return s&ComponentSet(c) != 0
}

// Len returns the number of components in the set.
func (s ComponentSet) Len() int {
	return bits.OnesCount16(uint16(s))
}

// Components returns the members of the set in declaration order.
func (s ComponentSet) Components() []Component {
	out := make([]Component, 0, s.Len())
	for _, c := range AllComponents {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// Names returns the short names of the members of the set in declaration order.
func (s ComponentSet) Names() []string {
	components := s.Components()
	names := make([]string, len(components))
	for i, c := range components {
		names[i] = c.String()
	}
	return names
}
