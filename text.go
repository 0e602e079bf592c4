package tickseq

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// WriteTo writes the "tick=value\n" rendering of s to w.
func (s *Sequence[T]) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	s.lock()
	s.render(&b)
	s.unlock()
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

// Write serializes the sequence to filename, one "tick=value" line per
// tick, truncating any existing file. It returns the path written. On
// failure the error is also reported to the sink; the sequence itself is
// never modified.
func (s *Sequence[T]) Write(filename string) (string, error) {
	if err := s.writeFile(filename); err != nil {
		err = fmt.Errorf("write %s: %w", filename, err)
		s.lock()
		s.diagnose("Sequence.Write", -1, -1, err)
		s.unlock()
		return "", err
	}
	return filename, nil
}

func (s *Sequence[T]) writeFile(filename string) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = s.WriteTo(f)
	return err
}
