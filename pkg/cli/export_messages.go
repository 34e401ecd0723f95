package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/leanport/pkg/cli/config"
	"github.com/secmon-lab/leanport/pkg/domain/model"
	"github.com/secmon-lab/leanport/pkg/infra"
	"github.com/secmon-lab/leanport/pkg/usecase"
	"github.com/secmon-lab/leanport/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func exportMessagesCommand() *cli.Command {
	var (
		date        string
		tablePrefix string

		leanplumCfg config.Leanplum
		bigQuery    config.BigQuery
		sentryCfg   config.Sentry
	)

	messagesFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "date",
			Usage:       "Load date partition (YYYYMMDD)",
			Sources:     cli.EnvVars("LEANPORT_DATE"),
			Destination: &date,
		},
		&cli.StringFlag{
			Name:        "table-prefix",
			Usage:       "Prefix of the messages table name",
			Sources:     cli.EnvVars("LEANPORT_TABLE_PREFIX"),
			Destination: &tablePrefix,
		},
	}

	return &cli.Command{
		Name:    "export-messages",
		Aliases: []string{"m"},
		Usage:   "Load the Leanplum message catalog into BigQuery",
		Flags: slice.Flatten(
			messagesFlags,
			leanplumCfg.Flags(),
			bigQuery.Flags(),
			sentryCfg.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			req, err := model.NewMessagesRequest(
				leanplumCfg.AppID(),
				leanplumCfg.ClientKey(),
				date,
				tablePrefix,
				bigQuery.Dataset(),
			)
			if err != nil {
				return err
			}

			logging.Default().Info("starting message export",
				slog.Any("Date", date),
				slog.Any("TablePrefix", tablePrefix),
				slog.Any("Leanplum", leanplumCfg),
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
			bqClient, err := bigQuery.NewClient(ctx)
			if err != nil {
				return err
			}

			clients := infra.New(
				infra.WithVendor(vendor),
				infra.WithBigQuery(bqClient),
			)

			uc := usecase.New(clients)
			result, err := uc.ExportMessages(ctx, req)
			if err != nil {
				return err
			}

			logging.Default().Info("message export completed",
				slog.Any("table", result.Table),
				slog.Any("rows", result.Rows),
			)

			return nil
		},
	}
}
