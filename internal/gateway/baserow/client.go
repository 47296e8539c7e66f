// Package baserow is the REST gateway to the upstream table service.
package baserow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	resty "github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"

	"shipment-photo-dashboard/internal/apperr"
	"shipment-photo-dashboard/internal/domain"
	"shipment-photo-dashboard/internal/logx"
	"shipment-photo-dashboard/internal/metrics"
)

// PhotoField is the upstream column that holds row photos.
const PhotoField = "Photo"

// Operation names used in errors, logs and metrics.
const (
	OpListRows   = "list_rows"
	OpUploadFile = "upload_file"
	OpPatchRow   = "patch_row"
)

// Config stores the upstream connection settings.
type Config struct {
	BaseURL string
	Token   string
	TableID string
}

type requestCounter interface {
	WithLabelValues(lvs ...string) prometheus.Counter
}

// Client calls the upstream rows and user-files endpoints.
type Client struct {
	http     *resty.Client
	tableID  string
	logger   logx.Logger
	requests requestCounter
}

// NewClient returns a Client. httpClient may be nil to use a default one;
// requests may be nil to skip metrics.
func NewClient(cfg Config, httpClient *http.Client, logger logx.Logger, requests requestCounter) *Client {
	if logger == nil {
		logger = logx.Nop()
	}
	var rc *resty.Client
	if httpClient != nil {
		rc = resty.NewWithClient(httpClient)
	} else {
		rc = resty.New()
	}
	rc.SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("Authorization", "Token "+cfg.Token).
		SetLogger(restyLogger{l: logger}).
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal).
		SetRetryCount(0)
	return &Client{
		http:     rc,
		tableID:  cfg.TableID,
		logger:   logger,
		requests: requests,
	}
}

// RawRow is one upstream row with each cell kept as raw JSON.
type RawRow map[string]json.RawMessage

// Page is the first page of rows returned by the list endpoint.
type Page struct {
	Rows []RawRow
	// Count is the total number of rows upstream, or -1 when the response
	// did not say.
	Count int
	// HasMore reports that upstream advertised a further page.
	HasMore bool
}

// ListRows fetches rows with human-readable field names. Only the first
// upstream page is returned.
func (c *Client) ListRows(ctx context.Context) (Page, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Cache-Control", "no-store").
		SetQueryParam("user_field_names", "true").
		Get(c.rowsPath())
	if err := c.check(OpListRows, resp, err); err != nil {
		return Page{}, err
	}
	page, err := decodePage(resp.Body())
	if err != nil {
		return Page{}, fmt.Errorf("baserow: %s: %w", OpListRows, err)
	}
	return page, nil
}

// UploadFile streams f to the upload endpoint as a multipart "file" part
// and returns the stored attachment.
func (c *Client) UploadFile(ctx context.Context, f domain.UploadFile) (domain.Attachment, error) {
	pr, pw := io.Pipe()
	defer pr.Close()

	mw := multipart.NewWriter(pw)
	go func() {
		pw.CloseWithError(writeFilePart(mw, f))
	}()

	var att domain.Attachment
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", mw.FormDataContentType()).
		SetBody(pr).
		SetResult(&att).
		ForceContentType("application/json").
		Post("/api/user-files/upload-file/")
	if err := c.check(OpUploadFile, resp, err); err != nil {
		return domain.Attachment{}, err
	}
	if att.Name == "" && att.URL == "" {
		return domain.Attachment{}, fmt.Errorf("baserow: %s: empty attachment in response", OpUploadFile)
	}
	return att, nil
}

// PatchRowPhoto replaces the photo list of rowID with the single attachment.
func (c *Client) PatchRowPhoto(ctx context.Context, rowID int64, att domain.Attachment) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("user_field_names", "true").
		SetHeader("Content-Type", "application/json").
		SetBody(map[string][]domain.Attachment{PhotoField: {att}}).
		Patch(fmt.Sprintf("%s%d/", c.rowsPath(), rowID))
	return c.check(OpPatchRow, resp, err)
}

func (c *Client) rowsPath() string {
	return "/api/database/rows/table/" + url.PathEscape(c.tableID) + "/"
}

// check turns transport failures and non-2xx responses into errors and
// records the outcome.
func (c *Client) check(op string, resp *resty.Response, err error) error {
	if err != nil {
		c.count(op, metrics.OutcomeTransport)
		return fmt.Errorf("baserow: %s: %w", op, err)
	}
	if resp.IsSuccess() {
		c.count(op, metrics.OutcomeOK)
		return nil
	}
	c.count(op, metrics.OutcomeHTTPError)

	body := parseErrorBody(resp.Body())
	c.logger.Warn("upstream request failed",
		logx.String("op", op),
		logx.Int("status", resp.StatusCode()),
		logx.String("upstream_error", body.Error),
		logx.String("upstream_detail", body.detailText()),
	)
	return &apperr.UpstreamError{Op: op, Status: resp.StatusCode(), Message: body.Error}
}

func (c *Client) count(op, outcome string) {
	if c.requests != nil {
		c.requests.WithLabelValues(op, outcome).Inc()
	}
}

func writeFilePart(mw *multipart.Writer, f domain.UploadFile) error {
	if f.Body == nil {
		return errors.New("upload file has no body")
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, escapeQuotes(f.Name)))
	contentType := f.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h.Set("Content-Type", contentType)

	part, err := mw.CreatePart(h)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, f.Body); err != nil {
		return err
	}
	return mw.Close()
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
