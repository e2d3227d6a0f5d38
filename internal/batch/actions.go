// Package batch wires the manifest build and batch run commands.
package batch

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ugohsu/colab-nlp-templates/models"
	"github.com/ugohsu/colab-nlp-templates/pkg/analytics"
	"github.com/ugohsu/colab-nlp-templates/pkg/detector"
	"github.com/ugohsu/colab-nlp-templates/pkg/manifest"
	"github.com/ugohsu/colab-nlp-templates/pkg/pipeline"
	"github.com/ugohsu/colab-nlp-templates/pkg/runlog"
	"github.com/ugohsu/colab-nlp-templates/pkg/sink"
	"github.com/ugohsu/colab-nlp-templates/pkg/tokenizer"
)

// NewLogger builds the shared slog logger from CLI verbosity flags.
func NewLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	if c.Bool("verbose") {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// ResolveConfig loads the YAML config when given and applies flag
// overrides, so flags always win over the file.
func ResolveConfig(c *cli.Context) (*models.Config, error) {
	config := models.DefaultConfig()
	if c.IsSet("config") {
		loaded, err := models.LoadConfig(c.String("config"))
		if err != nil {
			return nil, err
		}
		config = loaded
	}

	if c.IsSet("root") {
		config.RootDir = c.String("root")
	}
	if c.IsSet("manifest") {
		config.ManifestPath = c.String("manifest")
	}
	if c.IsSet("output") {
		config.OutputPath = c.String("output")
	}
	if c.IsSet("ext") {
		config.Ext = c.String("ext")
	}
	if c.IsSet("engine") {
		config.Engine = c.String("engine")
	}
	if c.IsSet("mode") {
		config.Mode = c.String("mode")
	}
	if c.IsSet("surface") {
		config.BaseForm = !c.Bool("surface")
	}
	if c.IsSet("save-every") {
		config.SaveEvery = c.Int("save-every")
	}
	if c.IsSet("preview-chars") {
		config.PreviewChars = c.Int("preview-chars")
	}
	if c.IsSet("html") {
		config.HTMLExtract = c.Bool("html")
	}
	if c.IsSet("detect-lang") {
		config.DetectLang = c.Bool("detect-lang")
	}
	if c.IsSet("pos-keep") {
		config.POSKeep = SplitList(c.String("pos-keep"))
	}
	if c.IsSet("pos-exclude") {
		config.POSExclude = SplitList(c.String("pos-exclude"))
	}
	if c.IsSet("stopwords") {
		config.Stopwords = SplitList(c.String("stopwords"))
	}
	return config, nil
}

// SplitList parses a comma-separated flag value, dropping empty entries.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// BuildAction creates (or loads) the manifest for a corpus directory and
// reports its status counts.
func BuildAction(c *cli.Context) error {
	config, err := ResolveConfig(c)
	if err != nil {
		return err
	}
	if config.RootDir == "" {
		return fmt.Errorf("no corpus root provided: set --root or root_dir in the config")
	}

	m, err := manifest.LoadOrCreate(config.RootDir, config.ManifestPath, config.Ext)
	if err != nil {
		return err
	}

	counts := m.Counts()
	fmt.Printf("manifest: %s (%d files)\n", config.ManifestPath, len(m.Rows))
	for _, status := range []string{manifest.StatusPending, manifest.StatusDone, manifest.StatusFailed} {
		fmt.Printf("  %-8s %d\n", status, counts[status])
	}
	return nil
}

// RunAction executes one resumable batch pass over the manifest.
func RunAction(c *cli.Context) error {
	logger := NewLogger(c)
	startTime := time.Now()

	config, err := ResolveConfig(c)
	if err != nil {
		return err
	}
	if config.RootDir == "" {
		return fmt.Errorf("no corpus root provided: set --root or root_dir in the config")
	}

	// The tokenizer is built once and reused across all files;
	// per-file construction would reload the dictionary every time.
	tok, err := tokenizer.New(config.Engine, tokenizer.Options{
		BaseForm: config.BaseForm,
		Mode:     config.Mode,
	})
	if err != nil {
		return err
	}

	stopwords := config.Stopwords
	if c.Bool("default-stopwords") {
		stopwords = append(analytics.Stopwords(), stopwords...)
	}
	tokenize, err := tokenizer.TokenizeWords(tok, tokenizer.Filter{
		POSKeep:    config.POSKeep,
		POSExclude: config.POSExclude,
		Stopwords:  stopwords,
		Strict:     !c.Bool("no-strict"),
	})
	if err != nil {
		return err
	}

	m, err := manifest.LoadOrCreate(config.RootDir, config.ManifestPath, config.Ext)
	if err != nil {
		return err
	}

	out, err := sink.Open(config.OutputPath)
	if err != nil {
		return err
	}
	defer out.Close()

	var langDetector *detector.Detector
	if config.DetectLang {
		langDetector = detector.New()
	}

	statuses := []string{manifest.StatusPending, manifest.StatusFailed}
	if c.Bool("failed-only") {
		statuses = []string{manifest.StatusFailed}
	} else if c.IsSet("statuses") {
		statuses = SplitList(c.String("statuses"))
	}

	runner := &pipeline.Runner{
		Root:     config.RootDir,
		Tokenize: tokenize,
		Sink:     out,
		Logger:   logger,
		Detector: langDetector,
		Opts: pipeline.Options{
			Statuses:     statuses,
			SaveEvery:    config.SaveEvery,
			PreviewChars: config.PreviewChars,
			HTMLExtract:  config.HTMLExtract,
		},
	}

	summary, err := runner.Run(m, config.ManifestPath)
	if err != nil {
		return err
	}

	duration := time.Since(startTime)
	logger.Info("batch run finished",
		"processed", summary.Processed,
		"done", summary.Done,
		"failed", summary.Failed,
		"duration", duration.String(),
	)

	if config.RunsDir != "" {
		err = runlog.AppendRun(config.RunsDir, runlog.RunInfo{
			StartedAt: startTime,
			Duration:  duration.Round(time.Millisecond).String(),
			Processed: summary.Processed,
			Done:      summary.Done,
			Failed:    summary.Failed,
			Manifest:  config.ManifestPath,
			Output:    config.OutputPath,
		})
		if err != nil {
			logger.Error("failed to update run index", "error", err)
		}
	}

	fmt.Printf("processed %d rows (%d done, %d failed) in %s\n",
		summary.Processed, summary.Done, summary.Failed, duration.Round(time.Millisecond))
	return nil
}
