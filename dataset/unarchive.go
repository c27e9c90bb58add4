package dataset

import (
	"archive/zip"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"

	"github.com/pierrec/lz4"
)

// openSource opens a source file for reading, transparently unpacking
// .zip, .gz and .lz4 archives. The source file itself is never touched;
// zip archives yield their largest member.
func openSource(path string) (io.ReadCloser, error) {
	switch filepath.Ext(path) {
	case ".zip":
		return openZipSource(path)
	case ".gz":
		return openGzipSource(path)
	case ".lz4":
		return openLZ4Source(path)
	}
	return os.Open(path)
}

func openZipSource(path string) (io.ReadCloser, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}

	// Take the largest file in the archive
	var largestFile *zip.File
	var largestSize uint64
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if f.UncompressedSize64 > largestSize {
			largestFile = f
			largestSize = f.UncompressedSize64
		}
	}
	if largestFile == nil {
		r.Close()
		return nil, &ParseError{Path: path, Reason: "zip archive holds no files"}
	}
	rc, err := largestFile.Open()
	if err != nil {
		r.Close()
		return nil, err
	}
	return &zipMemberReader{member: rc, archive: r}, nil
}

type zipMemberReader struct {
	member  io.ReadCloser
	archive *zip.ReadCloser
}

func (z *zipMemberReader) Read(p []byte) (int, error) { return z.member.Read(p) }

func (z *zipMemberReader) Close() error {
	z.member.Close()
	return z.archive.Close()
}

func openGzipSource(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	gr, err := gzip.NewReader(file)
	if err != nil {
		file.Close()
		return nil, err
	}
	return &wrappedReader{r: gr, underlying: file}, nil
}

func openLZ4Source(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &wrappedReader{r: lz4.NewReader(file), underlying: file}, nil
}

type wrappedReader struct {
	r          io.Reader
	underlying *os.File
}

func (w *wrappedReader) Read(p []byte) (int, error) { return w.r.Read(p) }

func (w *wrappedReader) Close() error {
	if c, ok := w.r.(io.Closer); ok {
		c.Close()
	}
	return w.underlying.Close()
}
