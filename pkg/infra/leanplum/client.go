package leanplum

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/leanport/pkg/domain/interfaces"
	"github.com/secmon-lab/leanport/pkg/domain/model"
	"github.com/secmon-lab/leanport/pkg/domain/types"
	"github.com/secmon-lab/leanport/pkg/utils/logging"
	"github.com/secmon-lab/leanport/pkg/utils/safe"
)

const (
	DefaultAPIURL = "https://api.leanplum.com/api"

	// https://docs.leanplum.com/reference#get_api-action-getmessages
	apiVersion = "1.0.6"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the Leanplum REST API. Data exports are asynchronous on
// the vendor side: exportData starts a job and getExportResults is polled
// until the job finishes.
type Client struct {
	appID     types.AppID
	clientKey types.ClientKey
	apiURL    string

	httpClient   HTTPClient
	pollInterval time.Duration
	pollTimeout  time.Duration
}

var _ interfaces.Vendor = (*Client)(nil)

type Option func(*Client)

func WithHTTPClient(client HTTPClient) Option {
	return func(x *Client) {
		x.httpClient = client
	}
}

func WithAPIURL(apiURL string) Option {
	return func(x *Client) {
		x.apiURL = apiURL
	}
}

func WithPollInterval(d time.Duration) Option {
	return func(x *Client) {
		x.pollInterval = d
	}
}

func WithPollTimeout(d time.Duration) Option {
	return func(x *Client) {
		x.pollTimeout = d
	}
}

func New(appID types.AppID, clientKey types.ClientKey, options ...Option) *Client {
	client := &Client{
		appID:        appID,
		clientKey:    clientKey,
		apiURL:       DefaultAPIURL,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		pollInterval: 10 * time.Second,
		pollTimeout:  30 * time.Minute,
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

// apiResponse is the envelope of every Leanplum API action:
// {"response": [{...}]}.
type apiResponse struct {
	Response []apiResult `json:"response"`
}

type apiResult struct {
	Success  bool              `json:"success"`
	JobID    types.ExportJobID `json:"jobId"`
	State    string            `json:"state"`
	Files    []string          `json:"files"`
	Messages []model.Message   `json:"messages"`
	Error    *apiError         `json:"error"`
}

type apiError struct {
	Message string `json:"message"`
}

const (
	jobStateFinished = "FINISHED"
	jobStateFailed   = "FAILED"
)

// FetchExport implements interfaces.Vendor. It starts the vendor's export
// job for the date, polls until the job finishes, and downloads every
// result file into dir.
func (x *Client) FetchExport(ctx context.Context, date types.ExportDate, dir string) ([]*model.ExportFile, error) {
	jobID, err := x.startExport(ctx, date)
	if err != nil {
		return nil, err
	}

	logging.From(ctx).Info("export job started", "jobID", jobID)

	fileURLs, err := x.waitExport(ctx, jobID)
	if err != nil {
		return nil, err
	}

	files := make([]*model.ExportFile, 0, len(fileURLs))
	for _, fileURL := range fileURLs {
		f, err := x.download(ctx, fileURL, dir)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}

	return files, nil
}

func (x *Client) startExport(ctx context.Context, date types.ExportDate) (types.ExportJobID, error) {
	result, err := x.callAPI(ctx, url.Values{
		"action":       []string{"exportData"},
		"startDate":    []string{date.String()},
		"exportFormat": []string{"csv"},
	})
	if err != nil {
		return "", goerr.Wrap(err, "failed to start export", goerr.V("date", date))
	}
	if result.JobID == "" {
		return "", goerr.Wrap(types.ErrVendorTransport, "exportData returned no job ID", goerr.V("date", date))
	}

	return result.JobID, nil
}

// waitExport polls getExportResults at a constant interval until the job
// reaches FINISHED. If the poll deadline passes while the job is still
// pending, the export is treated as not ready so the scheduler can re-run
// the whole job later.
func (x *Client) waitExport(ctx context.Context, jobID types.ExportJobID) ([]string, error) {
	pollCtx, cancel := context.WithTimeout(ctx, x.pollTimeout)
	defer cancel()

	var files []string
	operation := func() error {
		result, err := x.callAPI(pollCtx, url.Values{
			"action": []string{"getExportResults"},
			"jobId":  []string{jobID.String()},
		})
		if err != nil {
			return backoff.Permanent(err)
		}

		switch result.State {
		case jobStateFinished:
			files = result.Files
			return nil
		case jobStateFailed:
			return backoff.Permanent(goerr.Wrap(types.ErrVendorTransport, "export job failed on vendor side", goerr.V("jobID", jobID)))
		default:
			logging.From(pollCtx).Debug("export job still pending", "jobID", jobID, "state", result.State)
			return goerr.New("export job not finished", goerr.V("state", result.State))
		}
	}

	err := backoff.Retry(operation, backoff.WithContext(backoff.NewConstantBackOff(x.pollInterval), pollCtx))
	if err != nil {
		if errors.Is(pollCtx.Err(), context.DeadlineExceeded) {
			return nil, goerr.Wrap(types.ErrExportNotReady, "export job did not finish within poll timeout",
				goerr.V("jobID", jobID),
				goerr.V("pollTimeout", x.pollTimeout),
			)
		}
		return nil, err
	}

	return files, nil
}

func (x *Client) download(ctx context.Context, fileURL, dir string) (*model.ExportFile, error) {
	table, seq, err := parseExportFileName(fileURL)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build download request", goerr.V("url", fileURL))
	}

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(types.ErrVendorTransport, "failed to download export file",
			goerr.V("url", fileURL),
			goerr.V("cause", err.Error()),
		)
	}
	defer safe.Close(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, goerr.Wrap(types.ErrVendorTransport, "unexpected status downloading export file",
			goerr.V("url", fileURL),
			goerr.V("status", resp.StatusCode),
		)
	}

	localPath := filepath.Join(dir, fmt.Sprintf("%s-%05d.csv", table, seq))
	fd, err := os.Create(filepath.Clean(localPath))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create download file", goerr.V("path", localPath))
	}
	defer safe.Close(fd)

	size, err := io.Copy(fd, resp.Body)
	if err != nil {
		return nil, goerr.Wrap(types.ErrVendorTransport, "failed to write export file",
			goerr.V("url", fileURL),
			goerr.V("path", localPath),
			goerr.V("cause", err.Error()),
		)
	}

	return &model.ExportFile{
		Table:     table,
		Seq:       seq,
		LocalPath: localPath,
		Size:      size,
	}, nil
}

// FetchMessages implements interfaces.Vendor. It retrieves the whole
// message catalog of the app.
func (x *Client) FetchMessages(ctx context.Context) ([]model.Message, error) {
	result, err := x.callAPI(ctx, url.Values{
		"action": []string{"getMessages"},
		"recent": []string{"false"},
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get messages")
	}

	return result.Messages, nil
}

func (x *Client) callAPI(ctx context.Context, params url.Values) (*apiResult, error) {
	params.Set("appId", x.appID.String())
	params.Set("clientKey", x.clientKey.Secret())
	params.Set("apiVersion", apiVersion)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, x.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build API request")
	}

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(types.ErrVendorTransport, "failed to call vendor API",
			goerr.V("action", params.Get("action")),
			goerr.V("cause", err.Error()),
		)
	}
	defer safe.Close(resp.Body)

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, goerr.Wrap(types.ErrVendorAuth, "vendor rejected credentials",
			goerr.V("action", params.Get("action")),
			goerr.V("status", resp.StatusCode),
		)
	case resp.StatusCode != http.StatusOK:
		return nil, goerr.Wrap(types.ErrVendorTransport, "unexpected status from vendor API",
			goerr.V("action", params.Get("action")),
			goerr.V("status", resp.StatusCode),
		)
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, goerr.Wrap(types.ErrVendorTransport, "failed to decode vendor API response",
			goerr.V("action", params.Get("action")),
			goerr.V("cause", err.Error()),
		)
	}
	if len(body.Response) == 0 {
		return nil, goerr.Wrap(types.ErrVendorTransport, "empty vendor API response", goerr.V("action", params.Get("action")))
	}

	result := body.Response[0]
	if result.Error != nil {
		if isAuthErrorMessage(result.Error.Message) {
			return nil, goerr.Wrap(types.ErrVendorAuth, "vendor rejected credentials", goerr.V("message", result.Error.Message))
		}
		return nil, goerr.Wrap(types.ErrVendorTransport, "vendor API returned error",
			goerr.V("action", params.Get("action")),
			goerr.V("message", result.Error.Message),
		)
	}

	return &result, nil
}
