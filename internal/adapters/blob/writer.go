package blob

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/datagen/internal/core/domain"
	"go.trai.ch/datagen/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BlobSink = (*Writer)(nil)

// epoch is the modification time of every archive entry.
var epoch = time.Unix(0, 0).UTC()

// Writer implements ports.BlobSink.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write serializes bundle to path. The archive is written to a temp file next to path,
// synced and renamed over path, so readers never observe a partial blob.
func (w *Writer) Write(ctx context.Context, path string, bundle *domain.Bundle) (*domain.ExportResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return nil, writeError(err, path)
	}

	tmpFile, err := os.CreateTemp(dir, ".datagen-blob-*.tmp")
	if err != nil {
		return nil, writeError(err, path)
	}
	tmpName := tmpFile.Name()

	committed := false
	defer func() {
		if !committed {
			_ = tmpFile.Close()
			_ = os.Remove(tmpName)
		}
	}()

	hasher := xxhash.New()
	counter := &countingWriter{}
	if err := writeArchive(ctx, io.MultiWriter(tmpFile, hasher, counter), bundle); err != nil {
		return nil, writeError(err, path)
	}

	if err := tmpFile.Sync(); err != nil {
		return nil, writeError(err, path)
	}
	if err := tmpFile.Close(); err != nil {
		return nil, writeError(err, path)
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return nil, writeError(err, path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return nil, writeError(err, path)
	}
	committed = true

	return &domain.ExportResult{
		Path:     path,
		Size:     counter.n,
		Markers:  len(bundle.Markers),
		Entries:  bundle.EntryCount(),
		Checksum: fmt.Sprintf("%016x", hasher.Sum64()),
	}, nil
}

func writeError(err error, path string) error {
	return zerr.With(zerr.Wrap(err, domain.ErrBlobWriteFailed.Error()), "path", path)
}

// writeArchive streams the manifest and the payload entries as a gzip-compressed tar.
func writeArchive(ctx context.Context, dst io.Writer, bundle *domain.Bundle) error {
	manifest, entries := layout(bundle)

	manifestData, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return err
	}

	// A zero gzip header carries no name and no modification time.
	gz, err := gzip.NewWriterLevel(dst, gzip.BestCompression)
	if err != nil {
		return err
	}
	tw := tar.NewWriter(gz)

	if err := writeEntry(tw, ManifestName, manifestData); err != nil {
		return err
	}
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := writeEntry(tw, e.path, e.data); err != nil {
			return err
		}
	}

	if err := tw.Close(); err != nil {
		return err
	}
	return gz.Close()
}

func writeEntry(tw *tar.Writer, name string, data []byte) error {
	hdr := &tar.Header{
		Typeflag: tar.TypeReg,
		Name:     name,
		Size:     int64(len(data)),
		Mode:     domain.FilePerm,
		ModTime:  epoch,
	}
	if err := tw.WriteHeader(hdr); err != nil {
		return zerr.With(err, "entry", name)
	}
	if _, err := tw.Write(data); err != nil {
		return zerr.With(err, "entry", name)
	}
	return nil
}

type countingWriter struct {
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	c.n += int64(len(p))
	return len(p), nil
}
