// corpus is a teaching toolkit for Japanese text preprocessing: a
// resumable manifest-driven batch tokenizer plus thin export helpers
// (frequency stats, word clouds, Google Sheets).
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ugohsu/colab-nlp-templates/internal/analyze"
	"github.com/ugohsu/colab-nlp-templates/internal/batch"
	"github.com/ugohsu/colab-nlp-templates/internal/export"
)

func main() {
	app := &cli.App{
		Name:  "corpus",
		Usage: "Japanese corpus preprocessing: manifest-driven batch tokenization and exports",
		Commands: []*cli.Command{
			buildCommand(),
			runCommand(),
			tokenizeCommand(),
			statsCommand(),
			wordcloudCommand(),
			sheetsCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// corpusFlags are shared by commands that locate the corpus and manifest.
func corpusFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config", Usage: "YAML config file (flags override)"},
		&cli.StringFlag{Name: "root", Usage: "corpus root directory"},
		&cli.StringFlag{Name: "manifest", Usage: "manifest CSV path", Value: "manifest.csv"},
		&cli.StringFlag{Name: "ext", Usage: "source file extension", Value: ".txt"},
	}
}

// tokenizerFlags configure the analyzer and post-hoc filtering.
func tokenizerFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "engine", Usage: "tokenizer engine: ipa or uni", Value: "ipa"},
		&cli.StringFlag{Name: "mode", Usage: "segmentation mode: normal, search or extended", Value: "normal"},
		&cli.BoolFlag{Name: "surface", Usage: "emit surface forms instead of base forms"},
		&cli.StringFlag{Name: "pos-keep", Usage: "comma-separated POS categories to keep"},
		&cli.StringFlag{Name: "pos-exclude", Usage: "comma-separated POS categories to exclude"},
		&cli.StringFlag{Name: "stopwords", Usage: "comma-separated stopwords"},
		&cli.BoolFlag{Name: "no-strict", Usage: "allow disjoint pos-keep/pos-exclude combinations"},
	}
}

func verbosityFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{Name: "quiet", Usage: "only log errors"},
		&cli.BoolFlag{Name: "verbose", Usage: "log per-document progress"},
	}
}

func buildCommand() *cli.Command {
	return &cli.Command{
		Name:   "build",
		Usage:  "Build (or load) the file manifest for a corpus directory",
		Flags:  corpusFlags(),
		Action: batch.BuildAction,
	}
}

func runCommand() *cli.Command {
	flags := append(corpusFlags(), tokenizerFlags()...)
	flags = append(flags, verbosityFlags()...)
	flags = append(flags,
		&cli.StringFlag{Name: "output", Usage: "token output jsonl path", Value: "tokens.jsonl"},
		&cli.IntFlag{Name: "save-every", Usage: "persist the manifest every N rows", Value: 1},
		&cli.IntFlag{Name: "preview-chars", Usage: "manifest preview length", Value: 120},
		&cli.StringFlag{Name: "statuses", Usage: "row statuses to process", Value: "pending,failed"},
		&cli.BoolFlag{Name: "failed-only", Usage: "retry only failed rows"},
		&cli.BoolFlag{Name: "default-stopwords", Usage: "also apply the built-in Japanese stopword set"},
		&cli.BoolFlag{Name: "html", Usage: "extract main content from .html/.htm files"},
		&cli.BoolFlag{Name: "detect-lang", Usage: "warn on documents that don't look Japanese"},
	)
	return &cli.Command{
		Name:   "run",
		Usage:  "Run one resumable batch tokenization pass over the manifest",
		Flags:  flags,
		Action: batch.RunAction,
	}
}

func tokenizeCommand() *cli.Command {
	flags := append(tokenizerFlags(),
		&cli.BoolFlag{Name: "json", Usage: "emit JSON token records with detail"},
	)
	return &cli.Command{
		Name:      "tokenize",
		Usage:     "Tokenize one file (or stdin) and print the result",
		ArgsUsage: "[file]",
		Flags:     flags,
		Action:    analyze.TokenizeAction,
	}
}

func statsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Store bag-of-words stats in SQLite and print the top words",
		Flags: append(verbosityFlags(),
			&cli.StringFlag{Name: "output", Usage: "token output jsonl path", Value: "tokens.jsonl"},
			&cli.StringFlag{Name: "db", Usage: "stats database path", Value: "corpus-stats.db"},
			&cli.IntFlag{Name: "top", Usage: "number of top words to print", Value: 25},
			&cli.StringFlag{Name: "stopwords", Usage: "extra stopwords to filter"},
			&cli.BoolFlag{Name: "keep-stopwords", Usage: "skip stopword filtering"},
		),
		Action: analyze.StatsAction,
	}
}

func wordcloudCommand() *cli.Command {
	return &cli.Command{
		Name:  "wordcloud",
		Usage: "Render the corpus top words as a PNG word cloud",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Usage: "token output jsonl path", Value: "tokens.jsonl"},
			&cli.StringFlag{Name: "out", Usage: "image output path", Value: "wordcloud.png"},
			&cli.StringFlag{Name: "font", Usage: "path to a Japanese font file", Required: true},
			&cli.IntFlag{Name: "width", Value: 1200},
			&cli.IntFlag{Name: "height", Value: 800},
			&cli.IntFlag{Name: "top", Usage: "number of words to render", Value: 100},
			&cli.StringFlag{Name: "stopwords", Usage: "extra stopwords to filter"},
			&cli.BoolFlag{Name: "keep-stopwords", Usage: "skip stopword filtering"},
		},
		Action: export.WordcloudAction,
	}
}

func sheetsCommand() *cli.Command {
	return &cli.Command{
		Name:  "sheets",
		Usage: "Export the manifest or top-word table to a Google Sheets tab",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "credentials", Usage: "credentials JSON path", Required: true},
			&cli.StringFlag{Name: "spreadsheet-id", Usage: "target spreadsheet ID", Required: true},
			&cli.StringFlag{Name: "sheet", Usage: "sheet (tab) name to overwrite", Value: "corpus"},
			&cli.StringFlag{Name: "what", Usage: "what to export: manifest or words", Value: "manifest"},
			&cli.StringFlag{Name: "manifest", Usage: "manifest CSV path", Value: "manifest.csv"},
			&cli.StringFlag{Name: "output", Usage: "token output jsonl path", Value: "tokens.jsonl"},
			&cli.IntFlag{Name: "top", Usage: "number of top words to export", Value: 100},
			&cli.StringFlag{Name: "stopwords", Usage: "extra stopwords to filter"},
			&cli.BoolFlag{Name: "keep-stopwords", Usage: "skip stopword filtering"},
		},
		Action: export.SheetsAction,
	}
}
