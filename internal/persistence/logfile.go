package persistence

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pierrec/lz4/v4"
	"lukechampine.com/blake3"

	"github.com/talgya/hamlet/internal/engine"
)

// WriteLog renders records one per line.
func WriteLog(w io.Writer, records []engine.LogRecord) error {
	bw := bufio.NewWriter(w)
	for _, r := range records {
		if _, err := bw.WriteString(r.String() + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ExportLog writes the rendered record stream to path, creating missing
// parent directories. A path ending in ".lz4" is compressed.
func ExportLog(path string, records []engine.LogRecord) (err error) {
	if err := ensureDir(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create log: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close log: %w", cerr)
		}
	}()

	if !strings.HasSuffix(path, ".lz4") {
		return WriteLog(f, records)
	}

	zw := lz4.NewWriter(f)
	if err := WriteLog(zw, records); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finish lz4 stream: %w", err)
	}
	return nil
}

// ReadLog returns the lines of a log written by ExportLog.
func ReadLog(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".lz4") {
		r = lz4.NewReader(f)
	}

	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	return lines, nil
}

// Digest fingerprints the rendered record stream. Two runs with the same
// configuration and seed produce the same digest.
func Digest(records []engine.LogRecord) string {
	h := blake3.New(32, nil)
	_ = WriteLog(h, records)
	return hex.EncodeToString(h.Sum(nil))
}

func ensureDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}
	return nil
}
