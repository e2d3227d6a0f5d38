// Package analyze wires the exploratory commands: one-shot tokenization
// and corpus frequency stats.
package analyze

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ugohsu/colab-nlp-templates/internal/batch"
	"github.com/ugohsu/colab-nlp-templates/pkg/analytics"
	"github.com/ugohsu/colab-nlp-templates/pkg/db"
	"github.com/ugohsu/colab-nlp-templates/pkg/mapreduce"
	"github.com/ugohsu/colab-nlp-templates/pkg/sink"
	"github.com/ugohsu/colab-nlp-templates/pkg/textio"
	"github.com/ugohsu/colab-nlp-templates/pkg/tokenizer"
)

// TokenizeAction tokenizes one file (or stdin) and prints the result,
// either as joined words or as JSON token records with --json.
func TokenizeAction(c *cli.Context) error {
	var text string
	if c.NArg() > 0 {
		content, err := textio.ReadText(c.Args().First())
		if err != nil {
			return err
		}
		text = content
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		text = string(data)
	}

	tok, err := tokenizer.New(c.String("engine"), tokenizer.Options{
		BaseForm: !c.Bool("surface"),
		Detail:   c.Bool("json"),
		Mode:     c.String("mode"),
	})
	if err != nil {
		return err
	}

	tokens, err := tok.TokenizeOne(text)
	if err != nil {
		return err
	}

	tokens, err = tokenizer.FilterTokens(tokens, tokenizer.Filter{
		POSKeep:    batch.SplitList(c.String("pos-keep")),
		POSExclude: batch.SplitList(c.String("pos-exclude")),
		Stopwords:  batch.SplitList(c.String("stopwords")),
		Strict:     !c.Bool("no-strict"),
	})
	if err != nil {
		return err
	}

	if c.Bool("json") {
		enc := json.NewEncoder(os.Stdout)
		for _, t := range tokens {
			if err := enc.Encode(t); err != nil {
				return fmt.Errorf("failed to encode token: %w", err)
			}
		}
		return nil
	}

	words := make([]string, len(tokens))
	for i, t := range tokens {
		words[i] = t.Word
	}
	fmt.Println(tokenizer.Join(words, " "))
	return nil
}

// StatsAction loads the token output, stores per-document bag-of-words
// counts in SQLite, and prints the aggregate top-N table. Duplicate output
// lines from retried rows are resolved keep-last before counting.
func StatsAction(c *cli.Context) error {
	logger := batch.NewLogger(c)

	records, err := sink.ReadLatest(c.String("output"))
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("no token records found")
		return nil
	}

	database, err := db.Open(c.String("db"))
	if err != nil {
		return err
	}
	defer database.Close()

	intermediate := make([]map[string]int, 0, len(records))
	for _, rec := range records {
		counts := mapreduce.Map(rec.Tokens)
		if err := database.ReplaceDoc(rec.DocID, rec.Path, len(rec.Tokens), counts); err != nil {
			return err
		}
		intermediate = append(intermediate, counts)
	}
	logger.Info("stored token stats", "docs", len(records), "db", database.Path())

	total := mapreduce.Reduce(intermediate)
	if !c.Bool("keep-stopwords") {
		total = analytics.FilterCounts(total, batch.SplitList(c.String("stopwords")))
	}

	docCount, err := database.DocCount()
	if err != nil {
		return err
	}
	tokenTotal, err := database.TokenTotal()
	if err != nil {
		return err
	}

	fmt.Printf("docs: %d   tokens: %d   distinct words: %d\n\n", docCount, tokenTotal, len(total))
	fmt.Printf("--- Top %d Words ---\n", c.Int("top"))
	mapreduce.PrintTopN(os.Stdout, total, c.Int("top"))
	fmt.Println(strings.Repeat("-", 20))
	return nil
}
