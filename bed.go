// Package bed reads and writes PLINK binary genotype matrices (.bed files)
// and applies the sex-consistency correction used for X-linked markers.
package bed

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
)

// MagicNumber contains the two bytes that open every .bed file.
var MagicNumber = [2]byte{0x6C, 0x1B}

// HeaderSize is the magic number plus the orientation byte.
const HeaderSize = 3

const googleStoragePrefix = "gs://"

// ReadFile decodes the .bed file at path, which may be local or a
// gs://bucket/object URL. The file is closed on every return path.
func ReadFile(path string, subjects, markers []string) (*Matrix, error) {
	f, err := openPath(path)
	if err != nil {
		return nil, &FileOpenError{Path: path, Err: err}
	}
	defer f.Close()

	return Read(f, subjects, markers)
}

// WriteFile encodes m to path. Uncertain codes are rejected before the
// file is created. If writing fails part way, the incomplete output is
// removed (local files) or the upload is abandoned (gs://).
func WriteFile(path string, m *Matrix, o Orientation) (err error) {
	if err := checkEncodable(m, o); err != nil {
		return err
	}

	f, err := createOutput(path)
	if err != nil {
		return &FileOpenError{Path: path, Err: err}
	}
	defer func() {
		if err != nil {
			f.Abort()
			return
		}
		err = f.Close()
	}()

	return writeChecked(f, m, o)
}

// splitGoogleStoragePath turns gs://bucket/some/object into its bucket and
// object names.
func splitGoogleStoragePath(path string) (bucket, object string, err error) {
	trimmed := strings.TrimPrefix(path, googleStoragePrefix)
	parts := strings.SplitN(trimmed, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%s is not of the form gs://bucket/object", path)
	}
	return parts[0], parts[1], nil
}

func openPath(path string) (io.ReadCloser, error) {
	if !strings.HasPrefix(path, googleStoragePrefix) {
		return os.Open(path)
	}

	bucket, object, err := splitGoogleStoragePath(path)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	r, err := client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		client.Close()
		return nil, err
	}

	return &gcsReader{Reader: r, client: client}, nil
}

type gcsReader struct {
	*storage.Reader
	client *storage.Client
}

func (r *gcsReader) Close() error {
	err := r.Reader.Close()
	if cerr := r.client.Close(); err == nil {
		err = cerr
	}
	return err
}

// outputFile is a destination that can either be committed with Close or
// discarded with Abort.
type outputFile interface {
	io.Writer
	Close() error
	Abort()
}

// createOutput is swapped out in tests to inject write failures.
var createOutput = createPath

func createPath(path string) (outputFile, error) {
	if !strings.HasPrefix(path, googleStoragePrefix) {
		f, err := os.Create(path)
		if err != nil {
			return nil, err
		}
		return &localWriter{File: f}, nil
	}

	bucket, object, err := splitGoogleStoragePath(path)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	client, err := storage.NewClient(ctx)
	if err != nil {
		cancel()
		return nil, err
	}

	return &gcsWriter{
		Writer: client.Bucket(bucket).Object(object).NewWriter(ctx),
		client: client,
		cancel: cancel,
	}, nil
}

// removePath deletes a file written by createPath.
func removePath(path string) error {
	if !strings.HasPrefix(path, googleStoragePrefix) {
		return os.Remove(path)
	}

	bucket, object, err := splitGoogleStoragePath(path)
	if err != nil {
		return err
	}

	ctx := context.Background()
	client, err := storage.NewClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	return client.Bucket(bucket).Object(object).Delete(ctx)
}

type localWriter struct {
	*os.File
}

func (w *localWriter) Abort() {
	w.File.Close()
	os.Remove(w.File.Name())
}

type gcsWriter struct {
	*storage.Writer
	client *storage.Client
	cancel context.CancelFunc
}

func (w *gcsWriter) Close() error {
	err := w.Writer.Close()
	if cerr := w.client.Close(); err == nil {
		err = cerr
	}
	w.cancel()
	return err
}

// Abort cancels the upload context before closing, so the object is never
// committed.
func (w *gcsWriter) Abort() {
	w.cancel()
	w.Writer.Close()
	w.client.Close()
}
