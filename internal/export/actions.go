// Package export wires the word-cloud and spreadsheet export commands.
package export

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/ugohsu/colab-nlp-templates/internal/batch"
	"github.com/ugohsu/colab-nlp-templates/pkg/analytics"
	"github.com/ugohsu/colab-nlp-templates/pkg/manifest"
	"github.com/ugohsu/colab-nlp-templates/pkg/mapreduce"
	"github.com/ugohsu/colab-nlp-templates/pkg/sheetio"
	"github.com/ugohsu/colab-nlp-templates/pkg/sink"
	"github.com/ugohsu/colab-nlp-templates/pkg/storage"
	"github.com/ugohsu/colab-nlp-templates/pkg/wordcloud"
)

// topCounts reduces the token output to a stopword-filtered top-N
// frequency map.
func topCounts(c *cli.Context) (map[string]int, error) {
	records, err := sink.ReadLatest(c.String("output"))
	if err != nil {
		return nil, err
	}

	intermediate := make([]map[string]int, 0, len(records))
	for _, rec := range records {
		intermediate = append(intermediate, mapreduce.Map(rec.Tokens))
	}
	total := mapreduce.Reduce(intermediate)
	if !c.Bool("keep-stopwords") {
		total = analytics.FilterCounts(total, batch.SplitList(c.String("stopwords")))
	}

	top := make(map[string]int)
	for _, wc := range mapreduce.TopN(total, c.Int("top")) {
		top[wc.Word] = wc.Count
	}
	return top, nil
}

// WordcloudAction renders the corpus top words as a PNG word cloud.
func WordcloudAction(c *cli.Context) error {
	counts, err := topCounts(c)
	if err != nil {
		return err
	}

	err = wordcloud.Render(counts, c.String("out"), wordcloud.Options{
		FontPath: c.String("font"),
		Width:    c.Int("width"),
		Height:   c.Int("height"),
	})
	if err != nil {
		return err
	}

	fmt.Printf("word cloud saved to %s (%d words)\n", c.String("out"), len(counts))
	return nil
}

// SheetsAction exports the manifest table or the top-word table to a
// Google Sheets tab, overwriting its content.
func SheetsAction(c *cli.Context) error {
	s := &storage.Storage{}
	credentials, err := s.ReadFile(c.String("credentials"))
	if err != nil {
		return err
	}

	svc, err := sheetio.NewService(c.Context, credentials)
	if err != nil {
		return err
	}
	writer := sheetio.NewWriter(svc)

	var header []string
	var rows [][]any

	switch what := c.String("what"); what {
	case "manifest":
		m, err := manifest.Load(c.String("manifest"))
		if err != nil {
			return err
		}
		header = []string{"doc_id", "path", "filename", "ext", "status", "error", "n_chars", "n_tokens", "preview", "updated_at"}
		for _, row := range m.Rows {
			nChars, nTokens := any(""), any("")
			if row.NChars != nil {
				nChars = *row.NChars
			}
			if row.NTokens != nil {
				nTokens = *row.NTokens
			}
			rows = append(rows, []any{
				row.DocID, row.Path, row.Filename, row.Ext, row.Status,
				row.Error, nChars, nTokens, row.Preview, row.UpdatedAt,
			})
		}
	case "words":
		counts, err := topCounts(c)
		if err != nil {
			return err
		}
		header = []string{"word", "count"}
		for _, wc := range mapreduce.TopN(counts, c.Int("top")) {
			rows = append(rows, []any{wc.Word, wc.Count})
		}
	default:
		return fmt.Errorf("unknown export target: %s (want manifest or words)", what)
	}

	sheetName := c.String("sheet")
	if err := writer.WriteTable(c.Context, c.String("spreadsheet-id"), sheetName, header, rows); err != nil {
		return err
	}

	fmt.Printf("wrote %d rows to sheet %q\n", len(rows), sheetName)
	return nil
}
