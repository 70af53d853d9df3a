// Package cldr implements the DataSource port over the cldr-json distribution,
// read from a local checkout or fetched over HTTP with a local cache.
package cldr

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.trai.ch/datagen/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

const httpClientTimeout = 30 * time.Second

// Source implements ports.DataSource.
// Documents are served from memory, then the local checkout or the disk cache,
// then the network. Concurrent fetches of one path share a single load.
type Source struct {
	version  string
	baseURL  string
	localDir string
	cacheDir string
	network  bool

	httpClient *http.Client

	mu    sync.RWMutex
	docs  map[string][]byte
	group singleflight.Group
}

// NewSource creates a Source for the given configuration.
func NewSource(cfg domain.SourceConfig) (*Source, error) {
	return newSourceWithClient(cfg, &http.Client{Timeout: httpClientTimeout})
}

// newSourceWithClient creates a Source with a custom http client (used for testing).
func newSourceWithClient(cfg domain.SourceConfig, client *http.Client) (*Source, error) {
	version := strings.TrimSpace(cfg.CLDRVersion)
	if version == "" {
		version = domain.DefaultCLDRVersion
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = domain.DefaultBaseURL
	}

	cacheDir := cfg.CacheDir
	if cacheDir == "" {
		cacheDir = domain.DefaultCLDRCachePath()
	}

	localDir := cfg.LocalDir
	if localDir != "" {
		info, err := os.Stat(localDir)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrSourceReadFailed.Error()), "dir", localDir)
		}
		if !info.IsDir() {
			return nil, zerr.With(domain.ErrSourceReadFailed, "dir", localDir)
		}
		localDir = filepath.Clean(localDir)
	}

	return &Source{
		version:    version,
		baseURL:    baseURL,
		localDir:   localDir,
		cacheDir:   filepath.Clean(cacheDir),
		network:    cfg.Network,
		httpClient: client,
		docs:       make(map[string][]byte),
	}, nil
}

// Version returns the cldr-json release the documents come from.
func (s *Source) Version() string {
	return s.version
}

// Fetch returns the document at docPath, relative to the cldr-json root.
func (s *Source) Fetch(ctx context.Context, docPath string) ([]byte, error) {
	clean, err := cleanDocPath(docPath)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	data, ok := s.docs[clean]
	s.mu.RUnlock()
	if ok {
		return data, nil
	}

	v, err, _ := s.group.Do(clean, func() (any, error) {
		data, err := s.load(ctx, clean)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.docs[clean] = data
		s.mu.Unlock()
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

func (s *Source) load(ctx context.Context, docPath string) ([]byte, error) {
	if s.localDir != "" {
		return s.readLocal(docPath)
	}

	cachePath := cacheFilePath(s.cacheDir, s.version, docPath)
	if data, err := os.ReadFile(cachePath); err == nil { //nolint:gosec // hashed name under the cache dir
		return data, nil
	}

	if !s.network {
		return nil, zerr.With(zerr.Wrap(domain.ErrNetworkDisabled, "cannot fetch CLDR document"), "path", docPath)
	}

	data, err := s.download(ctx, docPath)
	if err != nil {
		return nil, err
	}

	// A failed cache write only costs a refetch next run.
	_ = atomicWriteFile(cachePath, data)

	return data, nil
}

func (s *Source) readLocal(docPath string) ([]byte, error) {
	full := filepath.Join(s.localDir, filepath.FromSlash(docPath))

	data, err := os.ReadFile(full) //nolint:gosec // path is cleaned and rooted at the configured checkout
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrDataNotFound, "document missing from local checkout"), "path", docPath)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSourceReadFailed.Error()), "path", docPath)
	}
	return data, nil
}

func (s *Source) download(ctx context.Context, docPath string) ([]byte, error) {
	url := fmt.Sprintf("%s/%s/cldr-json/%s", s.baseURL, s.version, docPath)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrSourceRequestFailed.Error())
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSourceRequestFailed.Error()), "url", url)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		return nil, zerr.With(zerr.Wrap(domain.ErrDataNotFound, "document not published"), "url", url)
	}

	if resp.StatusCode != http.StatusOK {
		reqErr := zerr.With(domain.ErrSourceRequestFailed, "status_code", resp.StatusCode)
		return nil, zerr.With(reqErr, "url", url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSourceReadFailed.Error()), "url", url)
	}
	return body, nil
}

// cleanDocPath normalizes a document path and rejects paths escaping the cldr-json root.
func cleanDocPath(docPath string) (string, error) {
	clean := path.Clean(strings.TrimPrefix(docPath, "/"))
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", zerr.With(domain.ErrSourceReadFailed, "path", docPath)
	}
	return clean, nil
}
