// ABOUTME: render subcommand opens a viewer session, reveals it and prints the fragment
// ABOUTME: Output is either the HTML fragment or the JSON session snapshot

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"article-viewer-api/api/dto/mappers"
	"article-viewer-api/core/domain"
	"article-viewer-api/core/viewer"
	"article-viewer-api/pkg/config"
	"article-viewer-api/pkg/featureflags"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render an article with the given authors highlighted",
	Example: `  articleviewer render --title Test_Article --user Alice --user Bob
  articleviewer render --language de --title Berlin --user Example --format json`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().String("language", "en", "wiki language code")
	renderCmd.Flags().String("project", "wikipedia", "wiki project")
	renderCmd.Flags().String("title", "", "article title as used in wiki URLs")
	renderCmd.Flags().StringArray("user", nil, "username to highlight (repeatable)")
	renderCmd.Flags().String("format", "html", "output format: html or json")
	renderCmd.Flags().Duration("timeout", 30*time.Second, "how long to wait for all sources")
	_ = renderCmd.MarkFlagRequired("title")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	language, _ := cmd.Flags().GetString("language")
	project, _ := cmd.Flags().GetString("project")
	title, _ := cmd.Flags().GetString("title")
	users, _ := cmd.Flags().GetStringArray("user")
	format, _ := cmd.Flags().GetString("format")
	timeout, _ := cmd.Flags().GetDuration("timeout")

	if format != "html" && format != "json" {
		return fmt.Errorf("unknown format %q, want html or json", format)
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logger, err := newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer logger.Close()

	ctx := featureflags.WithManager(cmd.Context(), featureflags.NewEnvManager(""))

	service := viewer.NewService(newSource(cfg, logger, timeout), viewer.ServiceOptions{
		Palette: cfg.Viewer.Palette,
		Logger:  logger,
	})

	session, err := service.NewSession(ctx, viewer.SessionRequest{
		Article:   domain.ArticleRef{Language: language, Project: project, Title: title},
		Usernames: users,
	})
	if err != nil {
		return err
	}
	defer session.Close()

	session.Reveal()

	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := session.Wait(waitCtx); err != nil {
		return fmt.Errorf("waiting for article sources: %w", err)
	}

	snap := session.Snapshot()
	out := cmd.OutOrStdout()

	if format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(mappers.ToViewerResponse(snap))
	}

	fragment, err := viewer.RenderFragment(snap)
	if err != nil {
		return fmt.Errorf("rendering fragment: %w", err)
	}
	_, err = fmt.Fprintln(out, fragment)
	return err
}
