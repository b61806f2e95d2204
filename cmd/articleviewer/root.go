// ABOUTME: Root cobra command and shared flags for the articleviewer CLI
// ABOUTME: Builds the logger and wiki client the subcommands share

package main

import (
	"io"
	"time"

	"article-viewer-api/core/interfaces"
	"article-viewer-api/core/wiki"
	stdhttp "article-viewer-api/infrastructure/http/standard"
	logruslogger "article-viewer-api/infrastructure/logger/logrus"
	"article-viewer-api/pkg/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logJSON bool
)

var rootCmd = &cobra.Command{
	Use:   "articleviewer",
	Short: "Render wiki articles with per-author highlighting",
	Long: `articleviewer fetches a wiki article, its authorship diff and the ids of
the named users, then prints the article with each named author's text
colored and a legend mapping authors to colors.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log requests to stderr")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "log as JSON")
}

func newLogger(stderr io.Writer) (*logruslogger.Logger, error) {
	level := "error"
	if verbose {
		level = "debug"
	}
	format := "text"
	if logJSON {
		format = "json"
	}
	return logruslogger.New(logruslogger.Options{Level: level, Format: format, Output: stderr})
}

func newSource(cfg *config.Config, logger interfaces.Logger, timeout time.Duration) *wiki.Client {
	httpClient := stdhttp.NewStandardHTTPClientWithOptions(stdhttp.Options{
		Timeout:   timeout,
		UserAgent: cfg.Wiki.UserAgent,
		Attempts:  cfg.Wiki.Attempts,
	})
	return wiki.NewClient(interfaces.Dependencies{
		HTTPClient: httpClient,
		Logger:     logger,
	}, wiki.Config{
		DiffServiceBase:   cfg.Wiki.DiffServiceBase,
		RequestsPerSecond: cfg.Wiki.RequestsPerSecond,
		Burst:             cfg.Wiki.Burst,
	})
}
