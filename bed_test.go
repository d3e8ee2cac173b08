package bed

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileReadFile(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	dir := t.TempDir()

	for _, o := range []Orientation{SubjectMajor, MarkerMajor} {
		want := randomMatrix(r, 10, 6)
		path := filepath.Join(dir, o.String()+".bed")

		require.NoError(t, WriteFile(path, want, o))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, int64(HeaderSize)+BodySize(10, 6, o), info.Size())

		got, err := ReadFile(path, want.Subjects, want.Markers)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestReadFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.bed")

	_, err := ReadFile(path, labels("id", 1), labels("rs", 1))

	var fo *FileOpenError
	require.True(t, errors.As(err, &fo))
	assert.Equal(t, path, fo.Path)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestWriteFileUnwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "out.bed")

	var fo *FileOpenError
	require.True(t, errors.As(WriteFile(path, smallMatrix(), SubjectMajor), &fo))
}

func TestWriteFileUncertainLeavesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uncertain.bed")
	m := smallMatrix()
	m.Set(1, 1, 200)

	var uc *UnsupportedCodeError
	require.True(t, errors.As(WriteFile(path, m, SubjectMajor), &uc))
	assert.Equal(t, 1, uc.Row)
	assert.Equal(t, 1, uc.Col)

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestReadFileBadMagic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.bed")
	require.NoError(t, os.WriteFile(path, []byte{0x00, 0x00, 0x01, 0x00}, 0o644))

	m, err := ReadFile(path, labels("id", 1), labels("rs", 1))
	assert.Nil(t, m)

	var fe *FormatError
	assert.True(t, errors.As(err, &fe))
}

func TestSplitGoogleStoragePath(t *testing.T) {
	bucket, object, err := splitGoogleStoragePath("gs://my-bucket/plink/chrX.bed")
	require.NoError(t, err)
	assert.Equal(t, "my-bucket", bucket)
	assert.Equal(t, "plink/chrX.bed", object)

	for _, bad := range []string{"gs://", "gs://bucket", "gs://bucket/", "gs:///object"} {
		_, _, err := splitGoogleStoragePath(bad)
		assert.Error(t, err, bad)
	}
}

// failingOutput is a real local file whose writes fail after left bytes.
type failingOutput struct {
	*localWriter
	w *shortWriter
}

func (f *failingOutput) Write(p []byte) (int, error) {
	return f.w.Write(p)
}

func TestWriteFileRemovesIncompleteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.bed")

	var created *failingOutput
	createOutput = func(path string) (outputFile, error) {
		out, err := createPath(path)
		if err != nil {
			return nil, err
		}
		lw := out.(*localWriter)
		created = &failingOutput{localWriter: lw, w: &shortWriter{w: lw.File, left: 10}}
		return created, nil
	}
	defer func() { createOutput = createPath }()

	m := randomMatrix(rand.New(rand.NewSource(13)), 300, 100)
	err := WriteFile(path, m, MarkerMajor)
	assert.True(t, errors.Is(err, errDiskFull), "%v", err)

	require.NotNil(t, created)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "incomplete file was left behind")
}
