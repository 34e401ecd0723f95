package logging_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/leanport/pkg/domain/types"
	"github.com/secmon-lab/leanport/pkg/utils/logging"
)

func TestConfigure(t *testing.T) {
	testCases := map[string]struct {
		format  string
		level   string
		output  string
		isError bool
	}{
		"text to stdout": {"text", "info", "stdout", false},
		"json to stderr": {"json", "debug", "stderr", false},
		"warn level":     {"text", "warn", "-", false},
		"error level":    {"json", "error", "stdout", false},
		"invalid format": {"yaml", "info", "stdout", true},
		"invalid level":  {"text", "verbose", "stdout", true},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			err := logging.Configure(tc.format, tc.level, tc.output)
			if tc.isError {
				gt.Error(t, err)
				gt.True(t, errors.Is(err, types.ErrInvalidOption))
			} else {
				gt.NoError(t, err)
			}
		})
	}

	t.Run("log to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "leanport.log")
		gt.NoError(t, logging.Configure("json", "info", path))
		logging.Default().Info("hello")
	})
}
