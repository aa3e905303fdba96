package input

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"

	"shipment-discount/internal/errors"
)

// StdinPath selects standard input instead of a file
const StdinPath = "-"

// maxLineBytes bounds a single input line
const maxLineBytes = 1024 * 1024

// Open opens an input source by path. The caller closes the result.
func Open(path string) (io.ReadCloser, error) {
	if path == StdinPath {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.StreamUnavailable(path, err)
	}
	return f, nil
}

// Scanner yields parsed records from a stream in order. Lines longer than
// maxLineBytes become malformed records; the rest of the stream is still read.
type Scanner struct {
	reader *bufio.Reader
	source string
	record Record
	line   int
	done   bool
	err    error
}

// NewScanner creates a record scanner. source names the stream in errors.
func NewScanner(r io.Reader, source string) *Scanner {
	return &Scanner{reader: bufio.NewReaderSize(r, 64*1024), source: source}
}

// Next advances to the next record. It returns false at end of input or
// on a read error; check Err afterwards.
func (s *Scanner) Next() bool {
	if s.done {
		return false
	}
	line, oversized, err := s.readLine()
	if err != nil {
		s.done = true
		if err != io.EOF {
			s.err = errors.StreamUnavailable(s.source, err)
			return false
		}
		if len(line) == 0 && !oversized {
			return false
		}
	}

	s.line++
	if oversized {
		s.record = Record{
			Number: s.line,
			Line:   strings.TrimSpace(string(line)),
			Err:    errors.OversizedRecord(maxLineBytes),
		}
		return true
	}
	s.record = NewRecord(s.line, string(line))
	return true
}

// readLine returns the next line without its terminator. Bytes past
// maxLineBytes are dropped and reported through oversized.
func (s *Scanner) readLine() ([]byte, bool, error) {
	var line []byte
	oversized := false
	for {
		chunk, err := s.reader.ReadSlice('\n')
		if err == nil {
			chunk = chunk[:len(chunk)-1]
		}
		if room := maxLineBytes - len(line); len(chunk) > room {
			line = append(line, chunk[:room]...)
			oversized = true
		} else {
			line = append(line, chunk...)
		}
		if err == bufio.ErrBufferFull {
			continue
		}
		return bytes.TrimSuffix(line, []byte("\r")), oversized, err
	}
}

// Record returns the current record
func (s *Scanner) Record() Record {
	return s.record
}

// Err returns the read error that stopped the scan, if any
func (s *Scanner) Err() error {
	return s.err
}
