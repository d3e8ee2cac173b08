package bed

import (
	"fmt"
	"io"
)

// FileOpenError is returned when a path cannot be opened for reading or
// created for writing.
type FileOpenError struct {
	Path string
	Err  error
}

func (e *FileOpenError) Error() string {
	return fmt.Sprintf("could not open %s: %v", e.Path, e.Err)
}

func (e *FileOpenError) Unwrap() error { return e.Err }

// FormatError reports a missing or malformed header. Header holds the bytes
// that were actually read, which is fewer than 3 on a short file.
type FormatError struct {
	Header []byte
}

func (e *FormatError) Error() string {
	if len(e.Header) < HeaderSize {
		return fmt.Sprintf("failed to read the %d byte header: only %d bytes available", HeaderSize, len(e.Header))
	}
	return fmt.Sprintf("input does not appear to be a .bed file: expected magic number %#X %#X, got %#X %#X",
		MagicNumber[0], MagicNumber[1], e.Header[0], e.Header[1])
}

// UnexpectedEOFError is returned when the body ends before every cell of the
// declared dimensions was decoded.
type UnexpectedEOFError struct {
	Decoded  int
	Expected int
}

func (e *UnexpectedEOFError) Error() string {
	return fmt.Sprintf("unexpected end of file reached after %d of %d genotypes", e.Decoded, e.Expected)
}

func (e *UnexpectedEOFError) Unwrap() error { return io.ErrUnexpectedEOF }

// UnsupportedCodeError identifies the first cell, in file order, holding an
// uncertain code that cannot be encoded.
type UnsupportedCodeError struct {
	Row  int
	Col  int
	Code uint8
}

func (e *UnsupportedCodeError) Error() string {
	return fmt.Sprintf("uncertain genotype %d at [%d,%d] cannot be written to a .bed file", e.Code, e.Row, e.Col)
}

func (e *UnsupportedCodeError) Unwrap() error { return ErrInvalidCode }

// InvalidArgumentError reports a length that disagrees with the matrix
// dimensions.
type InvalidArgumentError struct {
	What     string
	Expected int
	Actual   int
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s: expected length %d, got %d", e.What, e.Expected, e.Actual)
}
