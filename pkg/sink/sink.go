// Package sink writes token output as append-only line-delimited JSON.
// The file is never truncated or rewritten; reprocessing a row appends a
// new line, and readers resolve duplicates by keeping the last record per
// doc_id.
package sink

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/ugohsu/colab-nlp-templates/models"
)

// Writer appends token records to a jsonl file. It is opened for the
// duration of a batch run and must be closed on all paths.
type Writer struct {
	f *os.File
	w *bufio.Writer
}

// Open opens (or creates) the output file in append mode.
func Open(path string) (*Writer, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output dir: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open output file: %w", err)
	}
	return &Writer{f: f, w: bufio.NewWriter(f)}, nil
}

// Append serializes one record as a self-contained JSON line. Each line is
// flushed to the file immediately so a crash loses at most the line being
// written.
func (s *Writer) Append(rec models.TokenRecord) error {
	if rec.Tokens == nil {
		rec.Tokens = []string{}
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	if _, err := s.w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to append record: %w", err)
	}
	return s.w.Flush()
}

// Close flushes and releases the output file.
func (s *Writer) Close() error {
	if err := s.w.Flush(); err != nil {
		s.f.Close()
		return err
	}
	return s.f.Close()
}

// ReadLatest streams a jsonl file and returns one record per doc_id,
// keeping the last occurrence. Retried rows append duplicate lines; the
// last line is the most recent attempt. Records come back ordered by
// doc_id.
func ReadLatest(path string) ([]models.TokenRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open output file: %w", err)
	}
	defer f.Close()

	latest := make(map[int]models.TokenRecord)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		data := scanner.Bytes()
		if len(data) == 0 {
			continue
		}
		var rec models.TokenRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("malformed record at line %d: %w", line, err)
		}
		latest[rec.DocID] = rec
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read output file: %w", err)
	}

	records := make([]models.TokenRecord, 0, len(latest))
	for _, rec := range latest {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].DocID < records[j].DocID })
	return records, nil
}
