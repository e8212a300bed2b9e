// Package backend is the HTTP client for the question-answering service.
//
// The service exposes two endpoints:
//
//	POST /ask     {"question": "..."}       -> {"answer": "..."}
//	POST /upload  multipart field "file"    -> any 2xx on success
//
// Nothing else (headers, auth, other routes) is part of the contract.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/zhubert/pdfchat/internal/document"
	pcerrors "github.com/zhubert/pdfchat/internal/errors"
	"github.com/zhubert/pdfchat/internal/logger"
)

const (
	JSONContentType = "application/json"

	AskPath    = "/ask"
	UploadPath = "/upload"

	// UploadField is the multipart form field carrying the file
	UploadField = "file"

	// maxResponseBytes bounds how much of a response body is read
	maxResponseBytes = 10 << 20
)

// AskRequest is the body of POST /ask
type AskRequest struct {
	Question string `json:"question"`
}

// AskResponse is the body of a successful POST /ask. The backend also echoes
// the question; only the answer is used.
type AskResponse struct {
	Question string  `json:"question,omitempty"`
	Answer   *string `json:"answer"`
}

// errorResponse matches the backend's error body, e.g. {"detail": "..."}
type errorResponse struct {
	Detail string `json:"detail"`
}

// Asker answers questions. The TUI and the CLI depend on this rather than on
// *Client so tests can substitute a fake.
type Asker interface {
	Ask(ctx context.Context, question string) (string, error)
}

// Uploader sends documents to the backend.
type Uploader interface {
	Upload(ctx context.Context, doc document.Document) error
}

// Client talks to the backend over HTTP
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithTimeout bounds every request made through the client. Zero leaves
// requests unbounded; callers can still cancel through the context.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// NewClient creates a client for the backend at baseURL
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Ask sends one question and returns the answer. A well-formed response
// without an answer is an error, same as a transport failure.
func (c *Client) Ask(ctx context.Context, question string) (string, error) {
	log := logger.WithComponent("backend")

	body, err := json.Marshal(AskRequest{Question: question})
	if err != nil {
		return "", pcerrors.AskFailed(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+AskPath, bytes.NewReader(body))
	if err != nil {
		return "", pcerrors.AskFailed(err)
	}
	req.Header.Set("Content-Type", JSONContentType)
	req.Header.Set("Accept", JSONContentType)

	start := time.Now()
	res, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("ask request failed", "error", err)
		return "", pcerrors.AskFailed(err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBytes))
	if err != nil {
		log.Error("failed to read ask response", "error", err)
		return "", pcerrors.AskFailed(err)
	}
	log.Debug("ask response", "status", res.StatusCode, "bytes", len(data), "elapsed", time.Since(start))

	if err := statusError(pcerrors.Op("backend.Ask"), res.StatusCode, data); err != nil {
		log.Warn("ask rejected", "status", res.StatusCode, "error", err)
		return "", err
	}

	var out AskResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return "", pcerrors.MalformedResponse("backend.Ask", err)
	}
	if out.Answer == nil || *out.Answer == "" {
		return "", pcerrors.MissingAnswer()
	}
	return *out.Answer, nil
}

// Upload sends the document as multipart field "file". Any 2xx is success.
func (c *Client) Upload(ctx context.Context, doc document.Document) error {
	f, err := doc.Open()
	if err != nil {
		return err
	}
	defer f.Close()
	return c.UploadReader(ctx, doc.Name, doc.MediaType, f)
}

// UploadReader uploads content read from r under the given file name
func (c *Client) UploadReader(ctx context.Context, name, mediaType string, r io.Reader) error {
	log := logger.WithComponent("backend")

	body, contentType, err := encodeMultipart(name, mediaType, r)
	if err != nil {
		return pcerrors.UploadFailed(name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+UploadPath, body)
	if err != nil {
		return pcerrors.UploadFailed(name, err)
	}
	req.Header.Set("Content-Type", contentType)

	start := time.Now()
	res, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("upload request failed", "file", name, "error", err)
		return pcerrors.UploadFailed(name, err)
	}
	defer res.Body.Close()

	data, _ := io.ReadAll(io.LimitReader(res.Body, maxResponseBytes))
	if err := statusError(pcerrors.Op("backend.Upload"), res.StatusCode, data); err != nil {
		log.Warn("upload rejected", "file", name, "status", res.StatusCode, "error", err)
		return err
	}

	log.Info("upload finished", "file", name, "status", res.StatusCode, "elapsed", time.Since(start))
	return nil
}

// encodeMultipart builds the form body. The part carries the file's own media
// type rather than application/octet-stream because the backend checks it.
func encodeMultipart(name, mediaType string, r io.Reader) (*bytes.Buffer, string, error) {
	if mediaType == "" {
		mediaType = document.PDFMediaType
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, UploadField, name))
	h.Set("Content-Type", mediaType)

	part, err := mw.CreatePart(h)
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, "", err
	}
	if err := mw.Close(); err != nil {
		return nil, "", err
	}
	return &buf, mw.FormDataContentType(), nil
}

// statusError returns nil for 2xx and a KindBackend error otherwise, carrying
// the backend's detail message when the body has one.
func statusError(op pcerrors.Op, status int, body []byte) error {
	if status >= 200 && status < 300 {
		return nil
	}
	var er errorResponse
	if len(body) > 0 && json.Unmarshal(body, &er) == nil {
		return pcerrors.BackendStatus(op, status, er.Detail)
	}
	return pcerrors.BackendStatus(op, status, "")
}
