package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/remedyhq/remedy/pkg/cli/config"
	"github.com/remedyhq/remedy/pkg/domain/model"
	"github.com/remedyhq/remedy/pkg/infra"
	"github.com/remedyhq/remedy/pkg/usecase"
	"github.com/remedyhq/remedy/pkg/utils/logging"
	"github.com/remedyhq/remedy/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func ingestCommand() *cli.Command {
	var (
		database   config.Database
		resultFile string
		input      model.IntakeInput
		prNumber   int64
	)

	return &cli.Command{
		Name:    "ingest",
		Aliases: []string{"i"},
		Usage:   "Ingest a local SARIF result file into the scan store",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "result-file",
				Aliases:     []string{"f"},
				Usage:       "Path to SARIF result file (required)",
				Sources:     cli.EnvVars("REMEDY_RESULT_FILE"),
				Destination: &resultFile,
			},
			&cli.StringFlag{
				Name:        "repo",
				Usage:       "Repository as owner/name (auto-detect from git if not specified)",
				Sources:     cli.EnvVars("REMEDY_REPO"),
				Destination: &input.Repo,
			},
			&cli.StringFlag{
				Name:        "commit-sha",
				Usage:       "Commit SHA (auto-detect from git if not specified)",
				Sources:     cli.EnvVars("REMEDY_COMMIT_SHA"),
				Destination: &input.CommitSHA,
			},
			&cli.Int64Flag{
				Name:        "pr-number",
				Usage:       "Pull request number (optional)",
				Sources:     cli.EnvVars("REMEDY_PR_NUMBER"),
				Destination: &prNumber,
			},
			&cli.StringFlag{
				Name:        "scan-type",
				Usage:       "Scanner that produced the result",
				Value:       "semgrep",
				Sources:     cli.EnvVars("REMEDY_SCAN_TYPE"),
				Destination: &input.ScanType,
			},
		}, database.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			if resultFile == "" {
				return goerr.New("result file is required")
			}

			if input.Repo == "" || input.CommitSHA == "" {
				if err := AutoDetectGitMetadata(&input); err != nil {
					return err
				}
			}
			input.PRNumber = int(prNumber)
			input.ArtifactURL = "file://" + resultFile

			findings, err := usecase.LoadSARIFFile(resultFile)
			if err != nil {
				return err
			}

			repo, closeRepo, err := database.NewRepository(ctx)
			if err != nil {
				return err
			}
			defer safe.CloseFunc(closeRepo)

			uc := usecase.New(infra.New(infra.WithScanRepository(repo)))

			scan, err := uc.CreateScan(ctx, &input)
			if err != nil {
				return err
			}

			if err := uc.IngestReport(ctx, scan.ID, findings); err != nil {
				return err
			}

			logging.Default().Info("ingested SARIF result",
				slog.Any("scan_id", scan.ID),
				slog.String("repo", input.Repo),
				slog.Int("findings", len(findings)),
			)

			return nil
		},
	}
}
