package cli

import (
	"context"
	"errors"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/secmon-lab/leanport/pkg/domain/types"
	"github.com/secmon-lab/leanport/pkg/utils/errutil"
	"github.com/secmon-lab/leanport/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// ConfigureLogging is exported for testing purposes
var ConfigureLogging = logging.Configure

type CLI struct {
}

func New() *CLI {
	return &CLI{}
}

func (x *CLI) Run(argv []string) error {
	var (
		logLevel  string
		logFormat string
		logOutput string
	)

	app := &cli.Command{
		Name:  "leanport",
		Usage: "Export Leanplum analytics data to GCS and BigQuery",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "Log level [debug|info|warn|error]",
				Aliases:     []string{"l"},
				Sources:     cli.EnvVars("LEANPORT_LOG_LEVEL"),
				Destination: &logLevel,
				Value:       "info",
			},
			&cli.StringFlag{
				Name:        "log-format",
				Usage:       "Log format [text|json]",
				Aliases:     []string{"f"},
				Sources:     cli.EnvVars("LEANPORT_LOG_FORMAT"),
				Destination: &logFormat,
				Value:       "text",
			},
			&cli.StringFlag{
				Name:        "log-output",
				Usage:       "Log output [-|stdout|stderr|<file>]",
				Aliases:     []string{"o"},
				Sources:     cli.EnvVars("LEANPORT_LOG_OUTPUT"),
				Destination: &logOutput,
				Value:       "-",
			},
		},
		Commands: []*cli.Command{
			exportCommand(),
			exportMessagesCommand(),
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := ConfigureLogging(logFormat, logLevel, logOutput); err != nil {
				return ctx, err
			}
			return ctx, nil
		},
	}

	err := app.Run(context.Background(), argv)
	defer sentry.Flush(2 * time.Second)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, types.ErrNoData):
		logging.Default().Warn("no data for date", "error", err)
	case errors.Is(err, types.ErrExportNotReady):
		logging.Default().Warn("export not ready, re-run later", "error", err)
	default:
		errutil.HandleError(context.Background(), "fatal error", err)
	}

	return err
}

// ExitCode maps a Run error to the process exit code contract used by the
// invoking scheduler to pick a retry strategy.
func ExitCode(err error) int {
	switch {
	case err == nil:
		// Success - all stages reached DONE
		return 0
	case errors.Is(err, types.ErrExportNotReady):
		// Vendor export for the date is not available yet, retry later
		return 2
	case errors.Is(err, types.ErrNoData):
		// Vendor produced zero files for the date
		return 3
	default:
		// Fatal failure: config, auth, transport, or schema conflict
		return 1
	}
}
