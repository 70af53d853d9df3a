package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/datagen/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestFullComponentSet(t *testing.T) {
	s := domain.FullComponentSet()

	assert.Equal(t, 9, s.Len())
	for _, c := range domain.AllComponents {
		assert.True(t, s.Has(c), "component %s missing from full set", c)
	}
	assert.Equal(t, []string{
		"casemap", "collator", "datetime", "decimal", "list",
		"locale", "normalizer", "plurals", "segmenter",
	}, s.Names())
}

func TestParseComponentSet(t *testing.T) {
	t.Run("names", func(t *testing.T) {
		s, err := domain.ParseComponentSet([]string{"plurals", " Decimal ", "plurals"})
		require.NoError(t, err)
		assert.Equal(t, 2, s.Len())
		assert.True(t, s.Has(domain.ComponentPlurals))
		assert.True(t, s.Has(domain.ComponentDecimal))
		assert.False(t, s.Has(domain.ComponentList))
	})

	t.Run("all", func(t *testing.T) {
		s, err := domain.ParseComponentSet([]string{"list", "all"})
		require.NoError(t, err)
		assert.Equal(t, domain.FullComponentSet(), s)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := domain.ParseComponentSet([]string{"emoji"})
		require.Error(t, err)

		zErr, ok := err.(*zerr.Error)
		require.True(t, ok, "expected *zerr.Error, got %T", err)
		assert.Equal(t, "emoji", zErr.Metadata()["component"])
	})
}

func TestComponent_String(t *testing.T) {
	assert.Equal(t, "normalizer", domain.ComponentNormalization.String())
	assert.Equal(t, "unknown", domain.Component(0).String())
}
