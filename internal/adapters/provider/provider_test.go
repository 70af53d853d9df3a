package provider_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/datagen/internal/adapters/cldr"
	"go.trai.ch/datagen/internal/adapters/provider"
	"go.trai.ch/datagen/internal/core/domain"
	"go.trai.ch/datagen/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newFixtureProvider(t *testing.T, compute bool) *provider.Provider {
	t.Helper()
	source, err := cldr.NewSource(domain.SourceConfig{
		CLDRVersion: "46.0.0",
		LocalDir:    "testdata/cldr",
		CacheDir:    t.TempDir(),
	})
	require.NoError(t, err)
	return provider.New(source, compute)
}

func marker(t *testing.T, name string) domain.Marker {
	t.Helper()
	m, ok := domain.LookupMarker(name)
	require.True(t, ok, "unknown marker %s", name)
	return m
}

func load[T any](t *testing.T, p *provider.Provider, name, locale string) *T {
	t.Helper()
	payload, err := p.Load(context.Background(), marker(t, name), locale)
	require.NoError(t, err)
	typed, ok := payload.(*T)
	require.True(t, ok, "unexpected payload type %T", payload)
	return typed
}

func TestProvider_LoadsEveryMarker(t *testing.T) {
	p := newFixtureProvider(t, true)
	for _, m := range domain.Markers() {
		locale := "en"
		if m.Singleton {
			locale = domain.RootLocale
		}
		payload, err := p.Load(context.Background(), m, locale)
		require.NoError(t, err, m.Name)
		assert.NotNil(t, payload, m.Name)
	}
	assert.Equal(t, "46.0.0", p.Version())
}

func TestProvider_Load_UnknownMarker(t *testing.T) {
	p := newFixtureProvider(t, true)
	_, err := p.Load(context.Background(), domain.Marker{Name: "unknown/marker@1"}, "en")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownMarker))
}

func TestProvider_Load_ComputeDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockDataSource(ctrl)
	// No Fetch expectation: derived markers must be refused before touching the source.
	p := provider.New(source, false)

	_, err := p.Load(context.Background(), marker(t, domain.MarkerNormalizerNFD), domain.RootLocale)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrComputeDisabled))
}

func TestProvider_Load_CanceledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := provider.New(mocks.NewMockDataSource(ctrl), true)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Load(ctx, marker(t, domain.MarkerListAnd), "en")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProvider_Load_SourceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockDataSource(ctrl)
	source.EXPECT().Fetch(gomock.Any(), "cldr-misc-full/main/en/listPatterns.json").
		Return(nil, domain.ErrSourceRequestFailed)
	p := provider.New(source, true)

	_, err := p.Load(context.Background(), marker(t, domain.MarkerListAnd), "en")
	assert.ErrorIs(t, err, domain.ErrSourceRequestFailed)
}

func TestProvider_Load_InvalidDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockDataSource(ctrl)
	source.EXPECT().Fetch(gomock.Any(), "cldr-core/supplemental/likelySubtags.json").
		Return([]byte(`{"main":{}}`), nil)
	p := provider.New(source, true)

	_, err := p.Load(context.Background(), marker(t, domain.MarkerLocaleLikelySubtags), domain.RootLocale)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrInvalidCLDRDocument.Error())
}

func TestProvider_Plurals(t *testing.T) {
	p := newFixtureProvider(t, true)

	t.Run("cardinal", func(t *testing.T) {
		rules := load[provider.PluralRules](t, p, domain.MarkerPluralsCardinal, "tr")
		assert.Equal(t, "tr", rules.Language)
		assert.Equal(t, map[string]string{"one": "n = 1", "other": ""}, rules.Rules)
	})

	t.Run("ordinal", func(t *testing.T) {
		rules := load[provider.PluralRules](t, p, domain.MarkerPluralsOrdinal, "en")
		assert.Equal(t, "n % 10 = 2 and n % 100 != 12", rules.Rules["two"])
		assert.Len(t, rules.Rules, 4)
	})

	t.Run("falls back to the base language", func(t *testing.T) {
		rules := load[provider.PluralRules](t, p, domain.MarkerPluralsCardinal, "en-GB")
		assert.Equal(t, "en", rules.Language)
		assert.Equal(t, "i = 1 and v = 0", rules.Rules["one"])
	})

	t.Run("falls back to root", func(t *testing.T) {
		rules := load[provider.PluralRules](t, p, domain.MarkerPluralsCardinal, "ja")
		assert.Equal(t, "root", rules.Language)
		assert.Equal(t, map[string]string{"other": ""}, rules.Rules)
	})
}

func TestProvider_DecimalSymbols(t *testing.T) {
	p := newFixtureProvider(t, true)

	de := load[provider.DecimalSymbols](t, p, domain.MarkerDecimalSymbols, "de")
	assert.Equal(t, "latn", de.NumberingSystem)
	assert.Equal(t, 1, de.MinimumGroupingDigits)
	assert.Equal(t, ",", de.Symbols["decimal"])
	assert.Equal(t, ".", de.Symbols["group"])
	assert.Equal(t, "#,##0.###", de.StandardPattern)

	_, err := p.Load(context.Background(), marker(t, domain.MarkerDecimalSymbols), "tr")
	assert.ErrorIs(t, err, domain.ErrDataNotFound)
}

func TestProvider_ListPatterns(t *testing.T) {
	p := newFixtureProvider(t, true)

	and := load[provider.ListPatterns](t, p, domain.MarkerListAnd, "en")
	assert.Equal(t, provider.ListPatterns{
		Start:  "{0}, {1}",
		Middle: "{0}, {1}",
		End:    "{0}, and {1}",
		Pair:   "{0} and {1}",
	}, *and)

	or := load[provider.ListPatterns](t, p, domain.MarkerListOr, "de")
	assert.Equal(t, "{0} oder {1}", or.Pair)

	unit := load[provider.ListPatterns](t, p, domain.MarkerListUnit, "en-GB")
	assert.Equal(t, "{0}, {1}", unit.End)
}

func TestProvider_Gregorian(t *testing.T) {
	p := newFixtureProvider(t, true)

	names := load[provider.GregorianNames](t, p, domain.MarkerDateTimeGregorianNames, "de")
	require.Len(t, names.Months["wide"], 12)
	assert.Equal(t, "März", names.Months["wide"][2])
	assert.Equal(t, "Sonntag", names.Days["wide"][0])
	assert.Equal(t, []string{"v. Chr.", "n. Chr."}, names.Eras)
	assert.Equal(t, map[string]string{"am": "AM", "pm": "PM"}, names.DayPeriods)

	patterns := load[provider.GregorianPatterns](t, p, domain.MarkerDateTimeGregorianFormat, "en-GB")
	assert.Equal(t, "dd/MM/y", patterns.Date["short"])
	assert.Equal(t, "HH:mm", patterns.Time["short"])
	assert.Equal(t, "{1}, {0}", patterns.DateTime["medium"])
	assert.NotContains(t, patterns.DateTime, "availableFormats")

	skeletons := load[provider.GregorianSkeletons](t, p, domain.MarkerDateTimeSkeletons, "en")
	assert.Equal(t, "MMM d, y", skeletons.Skeletons["yMMMd"])
}

func TestProvider_LocaleData(t *testing.T) {
	p := newFixtureProvider(t, true)

	likely := load[provider.LikelySubtags](t, p, domain.MarkerLocaleLikelySubtags, domain.RootLocale)
	assert.Equal(t, "en-Latn-GB", likely.Subtags["und-GB"])

	parents := load[provider.ParentLocales](t, p, domain.MarkerLocaleParents, domain.RootLocale)
	assert.Equal(t, map[string]string{"en-150": "en-001", "en-GB": "en-001"}, parents.Parents)

	matching := load[provider.LanguageMatching](t, p, domain.MarkerLocaleLanguageMatching, domain.RootLocale)
	assert.Equal(t, []string{"en", "en-GB", "es", "es-419", "pt-BR", "pt-PT"}, matching.ParadigmLocales)
	assert.Equal(t, map[string]string{
		"$enUS":  "AS+CA+GU+MH+MP+PH+PR+UM+US+VI",
		"$cnsar": "HK+MO",
	}, matching.Variables)
	require.Len(t, matching.Matches, 4)
	assert.Equal(t, provider.LanguageMatch{Desired: "nb", Supported: "no", Distance: 1}, matching.Matches[0])
	assert.Equal(t, provider.LanguageMatch{Desired: "ast", Supported: "es", Distance: 20, Oneway: true}, matching.Matches[2])
	assert.Equal(t, provider.LanguageMatch{Desired: "*", Supported: "*", Distance: 80}, matching.Matches[3])
}

func TestProvider_LanguageMatching_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		items string
	}{
		{"unrecognized item", `[{"languageMatch":{"desired":"nb"}}]`},
		{"variable without value", `[{"$enUS":{"_locales":"en"}}]`},
		{"rule without distance", `[{"nb":{"_desired":"nb","_supported":"no"}}]`},
		{"non-numeric distance", `[{"nb":{"_desired":"nb","_supported":"no","_distance":"near"}}]`},
		{"several keys in one item", `[{"$a":{"_value":"US"},"$b":{"_value":"GB"}}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			source := mocks.NewMockDataSource(ctrl)
			source.EXPECT().Fetch(gomock.Any(), "cldr-core/supplemental/languageMatching.json").
				Return([]byte(`{"supplemental":{"languageMatching":{"written-new":`+tt.items+`}}}`), nil)
			p := provider.New(source, true)

			_, err := p.Load(context.Background(), marker(t, domain.MarkerLocaleLanguageMatching), domain.RootLocale)
			require.Error(t, err)
			assert.Contains(t, err.Error(), domain.ErrInvalidCLDRDocument.Error())
		})
	}
}

func TestProvider_CaseMapExceptions(t *testing.T) {
	p := newFixtureProvider(t, true)

	tr := load[provider.CaseMapExceptions](t, p, domain.MarkerCaseMapExceptions, "tr")
	assert.Equal(t, "İ", tr.Upper["i"])
	assert.Equal(t, "ı", tr.Lower["I"])

	en := load[provider.CaseMapExceptions](t, p, domain.MarkerCaseMapExceptions, "en")
	assert.Empty(t, en.Upper)
	assert.Empty(t, en.Lower)
}

func TestProvider_CollatorExemplars(t *testing.T) {
	p := newFixtureProvider(t, true)

	de := load[provider.CollatorExemplars](t, p, domain.MarkerCollatorExemplars, "de")
	assert.True(t, strings.HasPrefix(de.Collation, "de"), de.Collation)
	require.Len(t, de.Exemplars, 30)
	assert.Equal(t, []string{"a", "ä", "b"}, de.Exemplars[:3])
	assert.Equal(t, "z", de.Exemplars[len(de.Exemplars)-1])
}

func TestProvider_Normalizer(t *testing.T) {
	p := newFixtureProvider(t, true)

	nfd := load[provider.Decompositions](t, p, domain.MarkerNormalizerNFD, domain.RootLocale)
	assert.Equal(t, "NFD", nfd.Form)
	assert.Equal(t, "0041 0300", nfd.Mappings["00C0"])
	assert.NotContains(t, nfd.Mappings, "FB01")

	nfkd := load[provider.Decompositions](t, p, domain.MarkerNormalizerNFKD, domain.RootLocale)
	assert.Equal(t, "0066 0069", nfkd.Mappings["FB01"])
	assert.Equal(t, "0049 0056", nfkd.Mappings["2163"])
}

func TestProvider_SentenceSuppressions(t *testing.T) {
	p := newFixtureProvider(t, true)

	en := load[provider.SentenceSuppressions](t, p, domain.MarkerSegmenterSuppressions, "en")
	assert.Equal(t, []string{"Dr.", "Mr.", "Mrs.", "e.g."}, en.Suppressions)

	_, err := p.Load(context.Background(), marker(t, domain.MarkerSegmenterSuppressions), "tr")
	assert.ErrorIs(t, err, domain.ErrDataNotFound)
}

func TestProvider_ResolveLocales(t *testing.T) {
	p := newFixtureProvider(t, true)
	ctx := context.Background()

	tests := []struct {
		name      string
		selection []string
		want      []string
		wantErr   error
	}{
		{name: "explicit", selection: []string{"en_GB", "de", "en-GB", " "}, want: []string{"de", "en-GB"}},
		{name: "modern", selection: []string{"modern"}, want: []string{"de", "en", "en-GB"}},
		{name: "full with extra", selection: []string{"FULL", "ja"}, want: []string{"de", "en", "en-GB", "ja", "tr"}},
		{name: "empty", selection: []string{" "}, wantErr: domain.ErrNoLocalesSelected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.ResolveLocales(ctx, tt.selection)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := p.ResolveLocales(ctx, []string{"not a locale!"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrInvalidLocale.Error())
}

func TestCanonicalLocale(t *testing.T) {
	got, err := provider.CanonicalLocale("zh_hant_tw")
	require.NoError(t, err)
	assert.Equal(t, "zh-Hant-TW", got)
}

func TestFallbackChain(t *testing.T) {
	assert.Equal(t, []string{"de-CH", "de", "und", "root"}, provider.FallbackChain("de-CH"))

	chain := provider.FallbackChain("en-GB")
	assert.Equal(t, "en-GB", chain[0])
	assert.Contains(t, chain, "en")
	assert.Equal(t, []string{"und", "root"}, chain[len(chain)-2:])

	assert.Equal(t, []string{"und", "root"}, provider.FallbackChain("und"))
}

func TestParseExemplarSet(t *testing.T) {
	got := provider.ParseExemplarSet(`[a b {ch} d-f \- a]`)
	assert.Equal(t, []string{"a", "b", "ch", "d", "e", "f", "-"}, got)

	assert.Empty(t, provider.ParseExemplarSet("[]"))
}

func TestParsePluralRules(t *testing.T) {
	got := provider.ParsePluralRules(map[string]string{
		"pluralRule-count-one":   "i = 1 and v = 0 @integer 1",
		"pluralRule-count-other": " @integer 0, 2~16",
		"unrelated":              "ignored",
	})
	assert.Equal(t, map[string]string{"one": "i = 1 and v = 0", "other": ""}, got)
}

func TestFactory_NewProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	opener := mocks.NewMockSourceOpener(ctrl)
	source := mocks.NewMockDataSource(ctrl)

	cfg := domain.SourceConfig{CLDRVersion: "46.0.0", ComputeFallback: true}
	opener.EXPECT().Open(cfg).Return(source, nil)
	source.EXPECT().Version().Return("46.0.0")

	dp, err := provider.NewFactory(opener).NewProvider(cfg)
	require.NoError(t, err)
	assert.Equal(t, "46.0.0", dp.Version())

	opener.EXPECT().Open(gomock.Any()).Return(nil, domain.ErrSourceReadFailed)
	_, err = provider.NewFactory(opener).NewProvider(cfg)
	assert.ErrorIs(t, err, domain.ErrSourceReadFailed)
}
