package flatfile

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"clinicrecords/internal/codec"
	"clinicrecords/internal/repository"
)

// line is one data line of a backing file with its 1-based line number.
type line struct {
	no   int
	text string
}

// File is the backing file of a single store. A store owns its File exclusively.
type File struct {
	path string
}

// OpenFile makes sure the parent directory and the file exist, creating them empty if needed.
func OpenFile(path string) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, &repository.IOError{Op: "create directory", Path: filepath.Dir(path), Err: err}
	}
	f, err := os.OpenFile(path, os.O_RDONLY|os.O_CREATE, 0o644)
	if err != nil {
		return nil, &repository.IOError{Op: "create", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return nil, &repository.IOError{Op: "create", Path: path, Err: err}
	}
	return &File{path: path}, nil
}

// Path returns the location of the backing file.
func (f *File) Path() string { return f.path }

// dataLines returns the non-blank, non-comment lines in file order.
func (f *File) dataLines() ([]line, error) {
	fh, err := os.Open(f.path)
	if err != nil {
		return nil, &repository.IOError{Op: "read", Path: f.path, Err: err}
	}
	defer fh.Close()

	var out []line
	sc := bufio.NewScanner(fh)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	no := 0
	for sc.Scan() {
		no++
		text := sc.Text()
		if !codec.IsData(text) {
			continue
		}
		out = append(out, line{no: no, text: text})
	}
	if err := sc.Err(); err != nil {
		return nil, &repository.IOError{Op: "read", Path: f.path, Err: err}
	}
	return out, nil
}

// writeAll replaces the file content with lines. The new content is written to a
// temporary file in the same directory and renamed over the old one.
func (f *File) writeAll(lines []string) error {
	var buf bytes.Buffer
	for _, l := range lines {
		buf.WriteString(l)
		buf.WriteByte('\n')
	}
	return f.replace(&buf)
}

func (f *File) replace(r io.Reader) error {
	tmp, err := os.CreateTemp(filepath.Dir(f.path), "."+filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return &repository.IOError{Op: "write", Path: f.path, Err: err}
	}
	tmpName := tmp.Name()
	cleanup := func(err error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return &repository.IOError{Op: "write", Path: f.path, Err: err}
	}
	if _, err := io.Copy(tmp, r); err != nil {
		return cleanup(err)
	}
	if err := tmp.Sync(); err != nil {
		return cleanup(err)
	}
	if err := tmp.Close(); err != nil {
		return cleanup(err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		_ = os.Remove(tmpName)
		return &repository.IOError{Op: "write", Path: f.path, Err: err}
	}
	return nil
}

// appendLine writes one line at the end of the file without touching existing lines.
func (f *File) appendLine(text string) error {
	fh, err := os.OpenFile(f.path, os.O_RDWR|os.O_APPEND, 0o644)
	if err != nil {
		return &repository.IOError{Op: "append", Path: f.path, Err: err}
	}
	defer fh.Close()

	prefix, err := needsNewline(fh)
	if err != nil {
		return &repository.IOError{Op: "append", Path: f.path, Err: err}
	}
	if _, err := fmt.Fprintf(fh, "%s%s\n", prefix, text); err != nil {
		return &repository.IOError{Op: "append", Path: f.path, Err: err}
	}
	return nil
}

// needsNewline returns "\n" when a non-empty file does not end with a line break.
func needsNewline(fh *os.File) (string, error) {
	st, err := fh.Stat()
	if err != nil {
		return "", err
	}
	if st.Size() == 0 {
		return "", nil
	}
	last := make([]byte, 1)
	if _, err := fh.ReadAt(last, st.Size()-1); err != nil {
		return "", err
	}
	if last[0] == '\n' {
		return "", nil
	}
	return "\n", nil
}

// Snapshot returns the raw file content.
func (f *File) Snapshot() ([]byte, error) {
	b, err := os.ReadFile(f.path)
	if err != nil {
		return nil, &repository.IOError{Op: "read", Path: f.path, Err: err}
	}
	return b, nil
}

// Restore replaces the raw file content.
func (f *File) Restore(r io.Reader) error {
	return f.replace(r)
}
