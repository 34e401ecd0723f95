package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/leanport/pkg/cli/config"
	"github.com/secmon-lab/leanport/pkg/domain/model"
	"github.com/secmon-lab/leanport/pkg/domain/types"
	"github.com/secmon-lab/leanport/pkg/infra"
	"github.com/secmon-lab/leanport/pkg/usecase"
	"github.com/secmon-lab/leanport/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func exportCommand() *cli.Command {
	var (
		date        string
		tablePrefix string
		envPrefix   string

		leanplumCfg config.Leanplum
		gcsCfg      config.GCS
		bigQuery    config.BigQuery
		sentryCfg   config.Sentry
	)

	exportFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "date",
			Usage:       "Target date (YYYYMMDD)",
			Sources:     cli.EnvVars("LEANPORT_DATE"),
			Destination: &date,
		},
		&cli.StringFlag{
			Name:        "table-prefix",
			Usage:       "Prefix of external table names",
			Sources:     cli.EnvVars("LEANPORT_TABLE_PREFIX"),
			Destination: &tablePrefix,
		},
		&cli.StringFlag{
			Name:        "prefix",
			Usage:       "Environment prefix of staged object paths (e.g. dev)",
			Sources:     cli.EnvVars("LEANPORT_PREFIX"),
			Destination: &envPrefix,
		},
	}

	return &cli.Command{
		Name:    "export",
		Aliases: []string{"e"},
		Usage:   "Export one day of data to GCS and register external tables",
		Flags: slice.Flatten(
			exportFlags,
			leanplumCfg.Flags(),
			gcsCfg.Flags(),
			bigQuery.Flags(),
			sentryCfg.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			// Validates every argument before any network client exists
			req, err := model.NewExportRequest(
				leanplumCfg.AppID(),
				leanplumCfg.ClientKey(),
				date,
				gcsCfg.Bucket(),
				tablePrefix,
				bigQuery.Dataset(),
				envPrefix,
			)
			if err != nil {
				return err
			}

			logging.Default().Info("starting export",
				slog.Any("Date", date),
				slog.Any("TablePrefix", tablePrefix),
				slog.Any("EnvPrefix", envPrefix),
				slog.Any("Leanplum", leanplumCfg),
				slog.Any("GCS", gcsCfg),
				slog.Any("BigQuery", bigQuery),
				slog.Any("Sentry", sentryCfg),
			)

			if err := sentryCfg.Configure(ctx); err != nil {
				return err
			}

			vendor, err := leanplumCfg.NewClient()
			if err != nil {
				return err
			}
			storageClient, err := gcsCfg.NewClient(ctx)
			if err != nil {
				return err
			}
			bqClient, err := bigQuery.NewClient(ctx)
			if err != nil {
				return err
			}

			clients := infra.New(
				infra.WithVendor(vendor),
				infra.WithStorage(storageClient),
				infra.WithBigQuery(bqClient),
			)

			uc := usecase.New(clients)
			result, err := uc.Export(ctx, req)
			if err != nil {
				return err
			}

			if result.Outcome == model.OutcomeNoData {
				return goerr.Wrap(types.ErrNoData, "vendor produced no files", goerr.V("date", req.Date))
			}

			logging.Default().Info("export completed",
				slog.Any("staged", len(result.Staged)),
				slog.Any("tables", result.Tables),
			)

			return nil
		},
	}
}
