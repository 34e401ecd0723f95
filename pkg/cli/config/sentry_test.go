package config_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/leanport/pkg/cli/config"
)

func TestSentryConfigure(t *testing.T) {
	t.Run("empty DSN is not an error", func(t *testing.T) {
		var s config.Sentry
		gt.NoError(t, s.Configure(context.Background()))
	})
}
