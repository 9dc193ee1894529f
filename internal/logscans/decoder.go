package logscans

import (
	"bufio"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

// maxLineBytes bounds a single log line. Nexus request lines are well under
// this even with long artifact paths.
const maxLineBytes = 1024 * 1024

// lineReader yields the text lines of one log file, transparently
// decompressing gzip archives. It is single-pass and must be closed.
type lineReader struct {
	file    *os.File
	gz      *gzip.Reader
	scanner *bufio.Scanner
}

func openLines(ref LogFileRef) (*lineReader, error) {
	file, err := os.Open(ref.Path)
	if err != nil {
		return nil, err
	}

	reader := &lineReader{file: file}
	var src io.Reader = file
	if ref.Gzip {
		gz, err := gzip.NewReader(file)
		if err != nil {
			_ = file.Close()
			return nil, err
		}
		reader.gz = gz
		src = gz
	}

	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)
	reader.scanner = scanner
	return reader, nil
}

// Next returns the next line, or false at end of input. After false, Err
// reports whether the stream ended cleanly.
func (r *lineReader) Next() (string, bool) {
	if !r.scanner.Scan() {
		return "", false
	}
	return r.scanner.Text(), true
}

// Err returns the first error hit while reading, excluding io.EOF. A
// truncated gzip stream surfaces here.
func (r *lineReader) Err() error {
	return r.scanner.Err()
}

func (r *lineReader) Close() error {
	if r.gz != nil {
		_ = r.gz.Close()
	}
	return r.file.Close()
}
