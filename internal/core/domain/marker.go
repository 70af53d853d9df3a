package domain

// RootLocale is the locale that singleton markers are exported for.
const RootLocale = "und"

// Marker is a versioned, typed unit of locale data requested by a component.
type Marker struct {
	// Name is the marker's path-like identifier, e.g. "plurals/cardinal@1".
	Name string
	// Component is the component that owns the marker.
	Component Component
	// Singleton markers carry one locale-independent payload, exported for RootLocale.
	Singleton bool
	// Experimental markers are only exported when experimental markers are enabled.
	Experimental bool
	// Compute markers are derived from the Unicode tables in x/text and need the computation fallback.
	Compute bool
	// Sparse markers only exist for some locales; missing locales are skipped, not errors.
	Sparse bool
}

// String returns the marker name.
func (m Marker) String() string {
	return m.Name
}

// Marker names.
const (
	MarkerCaseMapExceptions       = "casemap/exceptions@1"
	MarkerCollatorExemplars       = "collator/exemplars@1"
	MarkerDateTimeGregorianNames  = "datetime/gregorian-names@1"
	MarkerDateTimeGregorianFormat = "datetime/gregorian-patterns@1"
	MarkerDateTimeSkeletons       = "datetime/gregorian-skeletons@1"
	MarkerDecimalSymbols          = "decimal/symbols@1"
	MarkerListAnd                 = "list/and@1"
	MarkerListOr                  = "list/or@1"
	MarkerListUnit                = "list/unit@1"
	MarkerLocaleLikelySubtags     = "locale/likely-subtags@1"
	MarkerLocaleParents           = "locale/parents@1"
	MarkerLocaleLanguageMatching  = "locale/language-matching@1"
	MarkerNormalizerNFD           = "normalizer/nfd@1"
	MarkerNormalizerNFKD          = "normalizer/nfkd@1"
	MarkerPluralsCardinal         = "plurals/cardinal@1"
	MarkerPluralsOrdinal          = "plurals/ordinal@1"
	MarkerSegmenterSuppressions   = "segmenter/sentence-suppressions@1"
)

var markerCatalog = []Marker{
	{Name: MarkerCaseMapExceptions, Component: ComponentCaseMapping, Compute: true},
	{Name: MarkerCollatorExemplars, Component: ComponentCollation, Compute: true},
	{Name: MarkerDateTimeGregorianNames, Component: ComponentDateTime},
	{Name: MarkerDateTimeGregorianFormat, Component: ComponentDateTime},
	{Name: MarkerDateTimeSkeletons, Component: ComponentDateTime, Experimental: true},
	{Name: MarkerDecimalSymbols, Component: ComponentDecimal},
	{Name: MarkerListAnd, Component: ComponentList},
	{Name: MarkerListOr, Component: ComponentList},
	{Name: MarkerListUnit, Component: ComponentList},
	{Name: MarkerLocaleLikelySubtags, Component: ComponentLocale, Singleton: true},
	{Name: MarkerLocaleParents, Component: ComponentLocale, Singleton: true},
	{Name: MarkerLocaleLanguageMatching, Component: ComponentLocale, Singleton: true, Experimental: true},
	{Name: MarkerNormalizerNFD, Component: ComponentNormalization, Singleton: true, Compute: true},
	{Name: MarkerNormalizerNFKD, Component: ComponentNormalization, Singleton: true, Compute: true},
	{Name: MarkerPluralsCardinal, Component: ComponentPlurals},
	{Name: MarkerPluralsOrdinal, Component: ComponentPlurals},
	{Name: MarkerSegmenterSuppressions, Component: ComponentSegmentation, Sparse: true},
}

// Markers returns a copy of the full marker catalog.
func Markers() []Marker {
	out := make([]Marker, len(markerCatalog))
	copy(out, markerCatalog)
	return out
}

// LookupMarker finds a marker by name.
func LookupMarker(name string) (Marker, bool) {
	for _, m := range markerCatalog {
		if m.Name == name {
			return m, true
		}
	}
	return Marker{}, false
}

// MarkersFor returns the markers owned by the given components, in catalog order.
// Experimental markers are included only when experimental is true.
func MarkersFor(components ComponentSet, experimental bool) []Marker {
	var out []Marker
	for _, m := range markerCatalog {
		if !components.Has(m.Component) {
			continue
		}
		if m.Experimental && !experimental {
			continue
		}
		out = append(out, m)
	}
	return out
}
