package blob

import (
	"archive/tar"
	"compress/gzip"
	"encoding/json"
	"errors"
	"io"
	"os"

	"go.trai.ch/datagen/internal/core/domain"
	"go.trai.ch/zerr"
)

// Blob is a verified, fully loaded blob.
type Blob struct {
	Manifest Manifest
	entries  map[string][]byte
}

// Open reads the blob at path and verifies every entry against the manifest.
func Open(path string) (*Blob, error) {
	f, err := os.Open(path) //nolint:gosec // path is supplied by the user on purpose
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrBlobReadFailed.Error()), "path", path)
	}
	defer func() {
		_ = f.Close()
	}()

	b, err := Read(f)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return b, nil
}

// Read parses a blob from r and verifies every entry against the manifest.
func Read(r io.Reader) (*Blob, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrBlobReadFailed.Error())
	}
	defer func() {
		_ = gz.Close()
	}()

	tr := tar.NewReader(gz)

	hdr, err := tr.Next()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrBlobReadFailed.Error())
	}
	if hdr.Name != ManifestName {
		return nil, zerr.With(zerr.Wrap(domain.ErrBlobCorrupt, "first entry is not the manifest"), "entry", hdr.Name)
	}

	b := &Blob{entries: map[string][]byte{}}
	if err := json.NewDecoder(tr).Decode(&b.Manifest); err != nil {
		return nil, zerr.Wrap(err, domain.ErrBlobReadFailed.Error())
	}
	if b.Manifest.Format != FormatName {
		return nil, zerr.With(zerr.Wrap(domain.ErrBlobCorrupt, "unknown blob format"), "format", b.Manifest.Format)
	}

	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrBlobReadFailed.Error())
		}
		data, err := io.ReadAll(tr)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrBlobReadFailed.Error()), "entry", hdr.Name)
		}
		b.entries[hdr.Name] = data
	}

	if err := b.verify(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Blob) verify() error {
	if len(b.entries) != len(b.Manifest.Entries) {
		return zerr.With(zerr.Wrap(domain.ErrBlobCorrupt, "entry count differs from manifest"),
			"entries", len(b.entries))
	}

	for _, want := range b.Manifest.Entries {
		data, ok := b.entries[want.Path]
		if !ok {
			return zerr.With(zerr.Wrap(domain.ErrBlobCorrupt, "entry missing"), "entry", want.Path)
		}
		if int64(len(data)) != want.Size || hashBytes(data) != want.Hash {
			return zerr.With(zerr.Wrap(domain.ErrBlobCorrupt, "entry checksum mismatch"), "entry", want.Path)
		}
	}
	return nil
}

// Entry returns the payload of marker for locale, following dedupe aliases.
func (b *Blob) Entry(marker, locale string) ([]byte, bool) {
	for _, m := range b.Manifest.Markers {
		if m.Name != marker {
			continue
		}
		if target, ok := m.Aliases[locale]; ok {
			locale = target
		}
		data, ok := b.entries[EntryPath(marker, locale)]
		return data, ok
	}
	return nil, false
}

// EntryCount returns the number of stored payloads.
func (b *Blob) EntryCount() int {
	return len(b.entries)
}
