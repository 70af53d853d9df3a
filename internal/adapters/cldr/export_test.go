package cldr

import (
	"net/http"

	"go.trai.ch/datagen/internal/core/domain"
)

// NewSourceWithClient exports newSourceWithClient for testing.
func NewSourceWithClient(cfg domain.SourceConfig, client *http.Client) (*Source, error) {
	return newSourceWithClient(cfg, client)
}

// CacheFilePath exports cacheFilePath for testing.
var CacheFilePath = cacheFilePath
