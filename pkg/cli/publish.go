package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/herald/pkg/cli/config"
	"github.com/m-mizutani/herald/pkg/domain/model"
	githubinfra "github.com/m-mizutani/herald/pkg/infra/github"
	"github.com/m-mizutani/herald/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdPublish() *cli.Command {
	var (
		githubCfg  config.GitHub
		releaseCfg config.Release
		dryRun     bool
	)

	flags := append(githubCfg.Flags(), releaseCfg.Flags()...)
	flags = append(flags, &cli.BoolFlag{
		Name:        "dry-run",
		Usage:       "Resolve and validate the configuration without touching the remote",
		Destination: &dryRun,
		Sources:     cli.EnvVars("HERALD_DRY_RUN"),
	})

	return &cli.Command{
		Name:    "publish",
		Aliases: []string{"p"},
		Usage:   "Converge the remote tag, release and assets to the given inputs",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			spec, err := releaseCfg.Resolve(&githubCfg)
			if err != nil {
				return goerr.Wrap(err, "failed to resolve release configuration")
			}

			logger.Info("Resolved release configuration",
				slog.String("repository", githubCfg.Repository),
				slog.String("release_name", spec.ReleaseName),
				slog.String("tag_name", spec.TagName),
				slog.Bool("draft", spec.Draft),
				slog.Bool("prerelease", spec.Prerelease),
				slog.Bool("replace_assets", spec.ReplaceAssets),
				slog.Bool("update_tag", spec.UpdateTag),
				slog.Int("file_count", len(spec.Files)),
			)

			if dryRun {
				logger.Info("Dry run requested, skipping reconciliation")
				return nil
			}

			client, err := githubinfra.NewClient(ctx, githubCfg.Token, githubCfg.BaseURL)
			if err != nil {
				return goerr.Wrap(err, "failed to create GitHub client")
			}

			result, err := usecase.NewPublish(client).Run(ctx, spec)
			if err != nil {
				return goerr.Wrap(err, "failed to reconcile release")
			}

			printResult(result)
			return nil
		},
	}
}

func printResult(result *model.PublishResult) {
	head := color.New(color.FgGreen, color.Bold)
	head.Printf("published %s (release %d)\n", result.ReleaseName, result.ReleaseID)
	fmt.Printf("  tag: %s", result.TagName)
	if result.TagCreated {
		fmt.Print(" (created)")
	}
	fmt.Println()
	fmt.Printf("  draft: %v, prerelease: %v\n", result.Draft, result.Prerelease)
	for _, name := range result.Assets {
		fmt.Printf("  asset: %s\n", name)
	}
}
