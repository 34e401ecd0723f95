package errutil_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/leanport/pkg/utils/errutil"
)

func TestHandleError(t *testing.T) {
	t.Run("handle error with context", func(t *testing.T) {
		ctx := context.Background()
		err := goerr.New("test error", goerr.V("key", "value"))

		// Should not panic
		errutil.HandleError(ctx, "test message", err)
	})

	t.Run("handle nil error", func(t *testing.T) {
		ctx := context.Background()

		// Should not panic
		errutil.HandleError(ctx, "test message", nil)
	})
}
