package gcs_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/leanport/pkg/domain/types"
	"github.com/secmon-lab/leanport/pkg/infra/gcs"
	"github.com/secmon-lab/leanport/pkg/utils/testutil"
	"google.golang.org/api/option"
)

func TestClient(t *testing.T) {
	bucket := testutil.GetEnvOrSkip(t, "TEST_GCS_BUCKET")

	ctx := context.Background()
	client := gt.R1(gcs.New(ctx, types.BucketName(bucket))).NoError(t)
	defer func() {
		gt.NoError(t, client.Close())
	}()

	prefix := time.Now().Format("leanport-test/20060102_150405/")

	t.Run("Put and list objects", func(t *testing.T) {
		gt.NoError(t, client.Put(ctx, prefix+"sessions/sessions-00000.csv", strings.NewReader("sessionId\n1\n")))
		gt.NoError(t, client.Put(ctx, prefix+"sessions/sessions-00001.csv", strings.NewReader("sessionId\n2\n")))

		names := gt.R1(client.List(ctx, prefix)).NoError(t)
		gt.A(t, names).Length(2)
	})

	t.Run("Put overwrites existing object", func(t *testing.T) {
		gt.NoError(t, client.Put(ctx, prefix+"sessions/sessions-00000.csv", strings.NewReader("sessionId\n3\n")))

		names := gt.R1(client.List(ctx, prefix)).NoError(t)
		gt.A(t, names).Length(2)
	})

	t.Run("Delete objects", func(t *testing.T) {
		names := gt.R1(client.List(ctx, prefix)).NoError(t)
		for _, name := range names {
			gt.NoError(t, client.Delete(ctx, name))
		}

		remain := gt.R1(client.List(ctx, prefix)).NoError(t)
		gt.A(t, remain).Length(0)
	})

	t.Run("Delete missing object is not an error", func(t *testing.T) {
		gt.NoError(t, client.Delete(ctx, prefix+"no/such/object.csv"))
	})

	t.Run("List missing prefix returns empty", func(t *testing.T) {
		names := gt.R1(client.List(ctx, "leanport-test/no-such-prefix/")).NoError(t)
		gt.A(t, names).Length(0)
	})
}

func newFakeBucketClient(t *testing.T, deleteStatus int, body string) *gcs.Client {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodDelete {
			w.WriteHeader(deleteStatus)
			_, _ = w.Write([]byte(body))
			return
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	ctx := context.Background()
	return gt.R1(gcs.New(ctx, types.BucketName("gcs-leanplum-export"),
		option.WithEndpoint(srv.URL),
		option.WithoutAuthentication(),
	)).NoError(t)
}

func TestDeleteMissingObject(t *testing.T) {
	// The service reports a cleared prefix entry as 404, e.g. when a racing
	// run for the same date already deleted it. That must not fail the run.
	client := newFakeBucketClient(t, http.StatusNotFound,
		`{"error":{"code":404,"message":"No such object: gcs-leanplum-export/dev/leanplum/20190101/sessions/sessions-00000.csv","errors":[{"reason":"notFound"}]}}`)

	ctx := context.Background()
	gt.NoError(t, client.Delete(ctx, "dev/leanplum/20190101/sessions/sessions-00000.csv"))
}

func TestDeleteDeniedObject(t *testing.T) {
	client := newFakeBucketClient(t, http.StatusForbidden,
		`{"error":{"code":403,"message":"Access denied","errors":[{"reason":"forbidden"}]}}`)

	ctx := context.Background()
	gt.Error(t, client.Delete(ctx, "dev/leanplum/20190101/sessions/sessions-00000.csv"))
}
