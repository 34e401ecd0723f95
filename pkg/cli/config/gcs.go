package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/leanport/pkg/domain/types"
	"github.com/secmon-lab/leanport/pkg/infra/gcs"
	"github.com/urfave/cli/v3"
)

type GCS struct {
	bucket string
}

func (x *GCS) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "bucket",
			Usage:       "GCS bucket to stage export files in",
			Category:    "GCS",
			Sources:     cli.EnvVars("LEANPORT_BUCKET"),
			Destination: &x.bucket,
		},
	}
}

func (x *GCS) Bucket() string { return x.bucket }

func (x *GCS) Validate() error {
	if x.bucket == "" {
		return goerr.Wrap(types.ErrInvalidOption, "bucket is required")
	}
	return nil
}

func (x *GCS) NewClient(ctx context.Context) (*gcs.Client, error) {
	if err := x.Validate(); err != nil {
		return nil, err
	}
	return gcs.New(ctx, types.BucketName(x.bucket))
}

func (x *GCS) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("Bucket", x.bucket),
	)
}
