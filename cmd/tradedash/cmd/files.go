package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"
)

// createFile opens path for writing, compressing with xz when the name
// ends in .xz.
func createFile(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".xz") {
		return f, nil
	}
	zw, err := xz.NewWriter(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("xz writer: %w", err)
	}
	return &xzWriteCloser{zw, f}, nil
}

// openFile opens path for reading, decompressing .xz files.
func openFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".xz") {
		return f, nil
	}
	zr, err := xz.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("xz reader: %w", err)
	}
	return struct {
		io.Reader
		io.Closer
	}{zr, f}, nil
}

type xzWriteCloser struct {
	*xz.Writer
	f *os.File
}

func (w *xzWriteCloser) Close() error {
	if err := w.Writer.Close(); err != nil {
		w.f.Close()
		return err
	}
	return w.f.Close()
}
