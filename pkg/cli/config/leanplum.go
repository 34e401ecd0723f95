package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/leanport/pkg/domain/types"
	"github.com/secmon-lab/leanport/pkg/infra/leanplum"
	"github.com/urfave/cli/v3"
)

type Leanplum struct {
	appID        string
	clientKey    string
	apiURL       string
	pollInterval time.Duration
	pollTimeout  time.Duration
}

func (x *Leanplum) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "app-id",
			Usage:       "Leanplum application ID",
			Category:    "Leanplum",
			Sources:     cli.EnvVars("LEANPORT_APP_ID"),
			Destination: &x.appID,
		},
		&cli.StringFlag{
			Name:        "client-key",
			Usage:       "Leanplum export API client key",
			Category:    "Leanplum",
			Sources:     cli.EnvVars("LEANPORT_CLIENT_KEY"),
			Destination: &x.clientKey,
		},
		&cli.StringFlag{
			Name:        "leanplum-api-url",
			Usage:       "Leanplum API base URL",
			Category:    "Leanplum",
			Value:       leanplum.DefaultAPIURL,
			Sources:     cli.EnvVars("LEANPORT_LEANPLUM_API_URL"),
			Destination: &x.apiURL,
		},
		&cli.DurationFlag{
			Name:        "poll-interval",
			Usage:       "Interval between export job status checks",
			Category:    "Leanplum",
			Value:       10 * time.Second,
			Sources:     cli.EnvVars("LEANPORT_POLL_INTERVAL"),
			Destination: &x.pollInterval,
		},
		&cli.DurationFlag{
			Name:        "poll-timeout",
			Usage:       "Overall deadline for the export job to finish",
			Category:    "Leanplum",
			Value:       30 * time.Minute,
			Sources:     cli.EnvVars("LEANPORT_POLL_TIMEOUT"),
			Destination: &x.pollTimeout,
		},
	}
}

func (x *Leanplum) AppID() string     { return x.appID }
func (x *Leanplum) ClientKey() string { return x.clientKey }

func (x *Leanplum) Validate() error {
	if x.appID == "" {
		return goerr.Wrap(types.ErrInvalidOption, "app-id is required")
	}
	if x.clientKey == "" {
		return goerr.Wrap(types.ErrInvalidOption, "client-key is required")
	}
	return nil
}

func (x *Leanplum) NewClient() (*leanplum.Client, error) {
	if err := x.Validate(); err != nil {
		return nil, err
	}

	return leanplum.New(
		types.AppID(x.appID),
		types.ClientKey(x.clientKey),
		leanplum.WithAPIURL(x.apiURL),
		leanplum.WithPollInterval(x.pollInterval),
		leanplum.WithPollTimeout(x.pollTimeout),
	), nil
}

func (x *Leanplum) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("AppID", x.appID),
		slog.Any("ClientKey", types.ClientKey(x.clientKey)),
		slog.Any("APIURL", x.apiURL),
		slog.Any("PollInterval", x.pollInterval),
		slog.Any("PollTimeout", x.pollTimeout),
	)
}
