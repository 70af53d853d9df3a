package cldr

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"

	"go.trai.ch/datagen/internal/core/domain"
	"go.trai.ch/zerr"
)

// cacheFilePath returns the cache file for a document of a release.
// The name is the SHA-256 of "version/path", so releases never share entries.
func cacheFilePath(cacheDir, version, docPath string) string {
	sum := sha256.Sum256([]byte(version + "/" + docPath))
	return filepath.Join(cacheDir, hex.EncodeToString(sum[:])+".json")
}

// atomicWriteFile writes data to a file atomically by writing to a temp file and renaming it.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrCacheCreateFailed.Error())
	}

	tmpFile, err := os.CreateTemp(dir, "cldr-cache-*.json")
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}

	if err := tmpFile.Close(); err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}

	if err := os.Rename(tmpName, path); err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	return nil
}

// Clean removes every cached document under cacheDir.
func Clean(cacheDir string) error {
	if cacheDir == "" {
		cacheDir = domain.DefaultCLDRCachePath()
	}
	if err := os.RemoveAll(cacheDir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove CLDR cache"), "dir", cacheDir)
	}
	return nil
}
