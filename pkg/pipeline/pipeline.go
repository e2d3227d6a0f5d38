// Package pipeline runs the resumable batch tokenization pass: iterate
// manifest rows needing (re)processing, read, tokenize, append output,
// update the ledger, persist periodically. A crash between saves loses at
// most save_every-1 rows of progress; those rows stay pending/failed and
// are retried on the next run.
package pipeline

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ugohsu/colab-nlp-templates/models"
	"github.com/ugohsu/colab-nlp-templates/pkg/detector"
	"github.com/ugohsu/colab-nlp-templates/pkg/manifest"
	"github.com/ugohsu/colab-nlp-templates/pkg/sink"
	"github.com/ugohsu/colab-nlp-templates/pkg/textio"
)

// TokenizeFunc is the tokenizer boundary the processor depends on: one
// text in, ordered words out. It does not care which analyzer produced
// them.
type TokenizeFunc func(text string) ([]string, error)

// Per-row error kinds recorded in the manifest error column.
const (
	ErrKindNotFound = "not_found"
	ErrKindRead     = "read_error"
	ErrKindTokenize = "tokenize_error"
	ErrKindSink     = "sink_error"
)

// Options tunes a batch run.
type Options struct {
	// Statuses lists the row statuses to (re)process. Default:
	// pending and failed. Done rows are never touched, which makes
	// re-runs idempotent for already-successful files.
	Statuses []string
	// SaveEvery persists the manifest every N processed rows. Default 1
	// (safe side). A final save always happens regardless of cadence.
	SaveEvery int
	// PreviewChars is the manifest preview length in characters.
	PreviewChars int
	// HTMLExtract distills .html/.htm files to main content before
	// tokenization.
	HTMLExtract bool
}

// Summary reports what a run did. The authoritative record is the
// persisted manifest; this is for logs and the run index.
type Summary struct {
	Processed int
	Done      int
	Failed    int
}

// Runner executes batch runs. The tokenizer behind Tokenize must be
// constructed once and reused; the runner calls it for every file.
type Runner struct {
	Root     string
	Tokenize TokenizeFunc
	Sink     *sink.Writer
	Logger   *slog.Logger
	// Detector, when set, logs a warning for documents that don't look
	// Japanese. It never affects row status.
	Detector *detector.Detector
	Opts     Options
}

// Run processes every manifest row whose status matches, mutating the
// manifest in place and persisting it to manifestPath. Row-level failures
// are recorded and swallowed; only setup and persistence failures abort.
func (r *Runner) Run(m *manifest.Manifest, manifestPath string) (Summary, error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	statuses := r.Opts.Statuses
	if len(statuses) == 0 {
		statuses = []string{manifest.StatusPending, manifest.StatusFailed}
	}
	process := make(map[string]struct{}, len(statuses))
	for _, s := range statuses {
		process[s] = struct{}{}
	}

	saveEvery := r.Opts.SaveEvery
	if saveEvery <= 0 {
		saveEvery = 1
	}
	previewChars := r.Opts.PreviewChars
	if previewChars <= 0 {
		previewChars = 120
	}

	var summary Summary
	for i := range m.Rows {
		row := &m.Rows[i]
		if _, ok := process[row.Status]; !ok {
			continue
		}

		r.processRow(m, i, previewChars, logger, &summary)

		summary.Processed++
		if summary.Processed%saveEvery == 0 {
			if err := m.Save(manifestPath); err != nil {
				return summary, fmt.Errorf("failed to persist manifest: %w", err)
			}
		}
	}

	// Final save regardless of cadence.
	if err := m.Save(manifestPath); err != nil {
		return summary, fmt.Errorf("failed to persist manifest: %w", err)
	}
	return summary, nil
}

func (r *Runner) processRow(m *manifest.Manifest, i, previewChars int, logger *slog.Logger, summary *Summary) {
	row := &m.Rows[i]
	path := filepath.Join(r.Root, filepath.FromSlash(row.Path))

	if _, err := os.Stat(path); os.IsNotExist(err) {
		m.MarkFailed(i, fmt.Sprintf("%s: file not found: %s", ErrKindNotFound, row.Path))
		summary.Failed++
		logger.Warn("file not found", "doc_id", row.DocID, "path", row.Path)
		return
	}

	text, err := textio.ReadText(path)
	if err != nil {
		m.MarkFailed(i, fmt.Sprintf("%s: %v", ErrKindRead, err))
		summary.Failed++
		logger.Warn("read failed", "doc_id", row.DocID, "path", row.Path, "error", err)
		return
	}

	if r.Opts.HTMLExtract && textio.IsHTMLPath(row.Path) {
		extracted, err := textio.ExtractHTML(text)
		if err != nil {
			m.MarkFailed(i, fmt.Sprintf("%s: %v", ErrKindRead, err))
			summary.Failed++
			logger.Warn("html extraction failed", "doc_id", row.DocID, "path", row.Path, "error", err)
			return
		}
		text = extracted
	}

	if r.Detector != nil && !r.Detector.IsJapanese(text) {
		logger.Warn("document does not look Japanese", "doc_id", row.DocID, "path", row.Path)
	}

	tokens, err := r.Tokenize(text)
	if err != nil {
		m.MarkFailed(i, fmt.Sprintf("%s: %v", ErrKindTokenize, err))
		summary.Failed++
		logger.Warn("tokenize failed", "doc_id", row.DocID, "path", row.Path, "error", err)
		return
	}

	err = r.Sink.Append(models.TokenRecord{
		DocID:  row.DocID,
		Path:   row.Path,
		Tokens: tokens,
	})
	if err != nil {
		m.MarkFailed(i, fmt.Sprintf("%s: %v", ErrKindSink, err))
		summary.Failed++
		logger.Warn("append failed", "doc_id", row.DocID, "path", row.Path, "error", err)
		return
	}

	runes := []rune(text)
	m.MarkDone(i, len(runes), len(tokens), Preview(text, previewChars))
	summary.Done++
	logger.Debug("processed", "doc_id", row.DocID, "path", row.Path, "n_tokens", len(tokens))
}

// Preview returns the first n characters with newlines escaped, for the
// manifest preview column.
func Preview(text string, n int) string {
	runes := []rune(text)
	if len(runes) > n {
		runes = runes[:n]
	}
	return strings.ReplaceAll(string(runes), "\n", "\\n")
}
