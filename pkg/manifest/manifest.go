// Package manifest maintains the persisted job ledger for batch
// tokenization runs. The ledger decouples "what to process" from
// "process it": once persisted it is the source of truth for resumption,
// not the filesystem or the output file.
package manifest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
)

// Row lifecycle states.
const (
	StatusPending = "pending"
	StatusDone    = "done"
	StatusFailed  = "failed"
)

var (
	// ErrRootNotFound is returned when the corpus root directory does not exist.
	ErrRootNotFound = errors.New("root dir not found")
	// ErrNotDirectory is returned when the corpus root is not a directory.
	ErrNotDirectory = errors.New("root dir is not a directory")
	// ErrMissingColumns is returned when a persisted manifest lacks required
	// columns. There is no auto-repair; a broken ledger must not be guessed at.
	ErrMissingColumns = errors.New("manifest is missing required columns")
)

// requiredColumns must be present in a persisted manifest for it to load.
var requiredColumns = []string{"doc_id", "path", "status"}

// Row is one ledger record per discovered source file.
type Row struct {
	DocID     int    `csv:"doc_id"`
	Path      string `csv:"path"`
	Filename  string `csv:"filename"`
	Ext       string `csv:"ext"`
	Status    string `csv:"status"`
	Error     string `csv:"error"`
	NChars    *int   `csv:"n_chars,omitempty"`
	NTokens   *int   `csv:"n_tokens,omitempty"`
	Preview   string `csv:"preview"`
	UpdatedAt int64  `csv:"updated_at"`
}

// Manifest is the in-memory ledger, mutated in place per processed row and
// persisted as a whole.
type Manifest struct {
	Rows []Row
}

// Build recursively discovers files under rootDir with the given extension
// and assigns sequential doc_ids starting at 1. Paths are sorted first, so
// doc_id assignment is deterministic for a fixed directory snapshot. File
// contents are not read here.
func Build(rootDir, ext string) (*Manifest, error) {
	info, err := os.Stat(rootDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRootNotFound, rootDir)
		}
		return nil, fmt.Errorf("failed to stat root dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, rootDir)
	}

	ext = NormalizeExt(ext)

	var paths []string
	err = filepath.WalkDir(rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ext) {
			return nil
		}
		rel, err := filepath.Rel(rootDir, path)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk root dir: %w", err)
	}
	sort.Strings(paths)

	m := &Manifest{Rows: make([]Row, 0, len(paths))}
	now := time.Now().Unix()
	for i, rel := range paths {
		m.Rows = append(m.Rows, Row{
			DocID:     i + 1,
			Path:      rel,
			Filename:  filepath.Base(rel),
			Ext:       filepath.Ext(rel),
			Status:    StatusPending,
			UpdatedAt: now,
		})
	}
	return m, nil
}

// LoadOrCreate loads an existing manifest from manifestPath, or builds a
// fresh one from rootDir and persists it immediately. An existing manifest
// is never reconciled against the current filesystem state.
func LoadOrCreate(rootDir, manifestPath, ext string) (*Manifest, error) {
	if _, err := os.Stat(manifestPath); err == nil {
		return Load(manifestPath)
	}

	m, err := Build(rootDir, ext)
	if err != nil {
		return nil, err
	}
	if err := m.Save(manifestPath); err != nil {
		return nil, err
	}
	return m, nil
}

// Load reads a persisted manifest and validates it has the required columns.
func Load(manifestPath string) (*Manifest, error) {
	if err := validateColumns(manifestPath); err != nil {
		return nil, err
	}

	f, err := os.Open(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer f.Close()

	var rows []Row
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &Manifest{Rows: rows}, nil
}

// Save serializes the full row set to manifestPath, overwriting prior
// content. Parent directories are created as needed.
func (m *Manifest) Save(manifestPath string) error {
	if dir := filepath.Dir(manifestPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create manifest dir: %w", err)
		}
	}

	f, err := os.Create(manifestPath)
	if err != nil {
		return fmt.Errorf("failed to create manifest: %w", err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&m.Rows, f); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

// MarkDone records a successful row: status, cleared error, size stats and
// preview.
func (m *Manifest) MarkDone(i, nChars, nTokens int, preview string) {
	row := &m.Rows[i]
	row.Status = StatusDone
	row.Error = ""
	row.NChars = &nChars
	row.NTokens = &nTokens
	row.Preview = preview
	row.UpdatedAt = time.Now().Unix()
}

// MarkFailed records a failed row. Prior success fields are left untouched
// so a previously good run's stats survive a failed retry.
func (m *Manifest) MarkFailed(i int, errMsg string) {
	row := &m.Rows[i]
	row.Status = StatusFailed
	row.Error = errMsg
	row.UpdatedAt = time.Now().Unix()
}

// Counts returns the number of rows per status.
func (m *Manifest) Counts() map[string]int {
	counts := make(map[string]int)
	for _, row := range m.Rows {
		counts[row.Status]++
	}
	return counts
}

// NormalizeExt accepts ".txt" and "txt" alike.
func NormalizeExt(ext string) string {
	if ext == "" {
		return ".txt"
	}
	if !strings.HasPrefix(ext, ".") {
		return "." + ext
	}
	return ext
}

// validateColumns peeks at the header row. gocsv leaves unmatched struct
// fields at their zero value, which would silently turn a truncated ledger
// into all-pending rows; the explicit check fails fast instead.
func validateColumns(manifestPath string) error {
	f, err := os.Open(manifestPath)
	if err != nil {
		return fmt.Errorf("failed to open manifest: %w", err)
	}
	defer f.Close()

	header, err := csv.NewReader(f).Read()
	if err != nil {
		return fmt.Errorf("failed to read manifest header: %w", err)
	}

	have := make(map[string]struct{}, len(header))
	for _, col := range header {
		have[strings.TrimSpace(col)] = struct{}{}
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := have[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}
	return nil
}
