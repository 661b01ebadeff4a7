package dump

import (
	"compress/bzip2"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
)

// File is a single dump file that entity documents can be read from.
type File interface {
	// Project is the project the dump belongs to, e.g. "wikidatawiki".
	Project() string
	// DateStamp is the dump date in YYYYMMDD form, or "YYYYMMDD" when
	// unknown.
	DateStamp() string
	// ContentType reports what the dump contains.
	ContentType() ContentType
	// IsAvailable reports whether the dump data can be opened.
	IsAvailable() bool
	// Open returns the raw, still compressed dump stream.
	Open() (io.ReadCloser, error)
	// OpenText returns the decompressed dump stream.
	OpenText() (io.ReadCloser, error)
}

// LocalFile is a dump file already present on the local filesystem.
// Content type and date stamp are inferred from the file name unless
// given explicitly.
type LocalFile struct {
	path        string
	project     string
	dateStamp   string
	contentType ContentType
}

// LocalOption adjusts inferred metadata of a local dump file.
type LocalOption func(*LocalFile)

// WithContentType overrides the content type inferred from the file
// name.
func WithContentType(t ContentType) LocalOption {
	return func(f *LocalFile) { f.contentType = t }
}

// WithDateStamp overrides the date stamp inferred from the file name.
func WithDateStamp(stamp string) LocalOption {
	return func(f *LocalFile) { f.dateStamp = stamp }
}

// NewLocalFile creates a dump handle for a file on disk. The file does
// not have to exist yet; IsAvailable reports whether it does.
func NewLocalFile(path, project string, opts ...LocalOption) *LocalFile {
	name := filepath.Base(path)
	f := &LocalFile{
		path:        path,
		project:     project,
		dateStamp:   inferDateStamp(name),
		contentType: InferContentType(name),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Path returns the location of the dump file.
func (f *LocalFile) Path() string { return f.path }

// Project implements File.
func (f *LocalFile) Project() string { return f.project }

// DateStamp implements File.
func (f *LocalFile) DateStamp() string { return f.dateStamp }

// ContentType implements File.
func (f *LocalFile) ContentType() ContentType { return f.contentType }

// Compression returns the compression scheme expected for the dump's
// content type.
func (f *LocalFile) Compression() Compression { return CompressionFor(f.contentType) }

// IsAvailable implements File.
func (f *LocalFile) IsAvailable() bool {
	info, err := os.Stat(f.path)
	return err == nil && !info.IsDir()
}

// Size returns the on-disk size of the dump in bytes.
func (f *LocalFile) Size() (int64, error) {
	info, err := os.Stat(f.path)
	if err != nil {
		return 0, fmt.Errorf("stat dump %s: %w", f.path, err)
	}
	return info.Size(), nil
}

// Open implements File.
func (f *LocalFile) Open() (io.ReadCloser, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("open dump %s: %w", f.path, err)
	}
	return file, nil
}

// OpenText implements File. The stream is decompressed according to
// the dump's compression scheme.
func (f *LocalFile) OpenText() (io.ReadCloser, error) {
	file, err := f.Open()
	if err != nil {
		return nil, err
	}
	switch f.Compression() {
	case CompressionBzip2:
		return &wrappedReadCloser{r: bzip2.NewReader(file), close: file.Close}, nil
	case CompressionGzip:
		zr, err := gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("open gzip dump %s: %w", f.path, err)
		}
		return &wrappedReadCloser{r: zr, close: func() error {
			zerr := zr.Close()
			ferr := file.Close()
			if zerr != nil {
				return zerr
			}
			return ferr
		}}, nil
	default:
		return file, nil
	}
}

// String describes the dump as project-contenttype-datestamp.
func (f *LocalFile) String() string {
	return f.project + "-" + f.contentType.String() + "-" + f.dateStamp
}

type wrappedReadCloser struct {
	r     io.Reader
	close func() error
}

func (w *wrappedReadCloser) Read(p []byte) (int, error) { return w.r.Read(p) }

func (w *wrappedReadCloser) Close() error { return w.close() }
