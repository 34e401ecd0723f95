package gcs

import (
	"context"
	"errors"
	"io"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/leanport/pkg/domain/interfaces"
	"github.com/secmon-lab/leanport/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// Client is a Google Cloud Storage client bound to one bucket.
type Client struct {
	gcsClient *storage.Client
	bucket    types.BucketName
}

var _ interfaces.ObjectStorage = (*Client)(nil)

func New(ctx context.Context, bucket types.BucketName, options ...option.ClientOption) (*Client, error) {
	gcsClient, err := storage.NewClient(ctx, options...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create GCS client", goerr.V("bucket", bucket))
	}

	return &Client{
		gcsClient: gcsClient,
		bucket:    bucket,
	}, nil
}

// Put implements interfaces.ObjectStorage. Writing to an existing object
// name replaces its content.
func (x *Client) Put(ctx context.Context, name string, r io.Reader) error {
	w := x.gcsClient.Bucket(x.bucket.String()).Object(name).NewWriter(ctx)
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return goerr.Wrap(err, "failed to write object", goerr.V("bucket", x.bucket), goerr.V("object", name))
	}
	if err := w.Close(); err != nil {
		return goerr.Wrap(err, "failed to close object writer", goerr.V("bucket", x.bucket), goerr.V("object", name))
	}

	return nil
}

// Delete implements interfaces.ObjectStorage. Deleting a missing object is
// not an error.
func (x *Client) Delete(ctx context.Context, name string) error {
	err := x.gcsClient.Bucket(x.bucket.String()).Object(name).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return goerr.Wrap(err, "failed to delete object", goerr.V("bucket", x.bucket), goerr.V("object", name))
	}

	return nil
}

// List implements interfaces.ObjectStorage. It returns the names of every
// object under the prefix.
func (x *Client) List(ctx context.Context, prefix string) ([]string, error) {
	it := x.gcsClient.Bucket(x.bucket.String()).Objects(ctx, &storage.Query{Prefix: prefix})

	var names []string
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list objects", goerr.V("bucket", x.bucket), goerr.V("prefix", prefix))
		}
		names = append(names, attrs.Name)
	}

	return names, nil
}

func (x *Client) Close() error {
	return x.gcsClient.Close()
}
