package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/disco-express/kiosk/internal/logger"
	"github.com/disco-express/kiosk/internal/models"
)

// ErrConnection marks transport-level failures: the server could not be
// reached, or its answer was not something we can interpret. Distinct from
// a structured rejection, which is a valid answer saying no.
var ErrConnection = errors.New("jukebox server unreachable")

// Client is the network surface the kiosk core depends on.
type Client interface {
	Status(ctx context.Context) (models.ServerStatus, error)
	SendMusicRequest(ctx context.Context, req *models.MusicRequest) (*models.JukeBoxError, error)
	ListDocuments(ctx context.Context) ([]string, error)
	GetDocument(ctx context.Context, name string) ([]byte, error)
	GetBannerTexts(ctx context.Context) (*models.BannerSchema, error)
}

// JukeBoxClient talks HTTP to the jukebox request server.
type JukeBoxClient struct {
	http *resty.Client
}

func New(address string, port int, timeout time.Duration) *JukeBoxClient {
	c := resty.New().
		SetBaseURL(fmt.Sprintf("http://%s:%d", address, port)).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")

	return &JukeBoxClient{http: c}
}

// Status polls /status/ and returns the server-reported state.
func (c *JukeBoxClient) Status(ctx context.Context) (models.ServerStatus, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/status/")
	if err != nil {
		return models.StatusUnknown, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	if !resp.IsSuccess() {
		return models.StatusUnknown, fmt.Errorf("%w: status endpoint returned %d", ErrConnection, resp.StatusCode())
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return models.StatusUnknown, fmt.Errorf("%w: %v", ErrConnection, err)
	}

	return models.ServerStatus(body.Status), nil
}

// SendMusicRequest posts a music request. A nil, nil return means the
// server accepted it. A non-nil *JukeBoxError is a structured rejection;
// an error return means the server could not be reached at all.
func (c *JukeBoxClient) SendMusicRequest(ctx context.Context, req *models.MusicRequest) (*models.JukeBoxError, error) {
	logger.Log.Debug("sending music request",
		zap.String("title", req.Title),
		zap.String("interpret", req.Interpret))

	resp, err := c.http.R().SetContext(ctx).SetBody(req).Post("/music_wish/")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	if resp.IsSuccess() {
		return nil, nil
	}

	return parseRejection(resp)
}

// ListDocuments fetches the identifiers of all documents the server offers.
func (c *JukeBoxClient) ListDocuments(ctx context.Context) ([]string, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/documents/")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: documents endpoint returned %d", ErrConnection, resp.StatusCode())
	}

	var docs []string
	if err := json.Unmarshal(resp.Body(), &docs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}

	return docs, nil
}

// GetDocument fetches one document verbatim.
func (c *JukeBoxClient) GetDocument(ctx context.Context, name string) ([]byte, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/documents/" + url.PathEscape(name))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: document %q returned %d", ErrConnection, name, resp.StatusCode())
	}

	return resp.Body(), nil
}

// GetBannerTexts fetches the banner texts shown on the home screen.
func (c *JukeBoxClient) GetBannerTexts(ctx context.Context) (*models.BannerSchema, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/banner/")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: banner endpoint returned %d", ErrConnection, resp.StatusCode())
	}

	var banner models.BannerSchema
	if err := json.Unmarshal(resp.Body(), &banner); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}

	return &banner, nil
}

// parseRejection extracts the error message from a non-2xx body. The
// server uses either "error" or "detail" as the key. A body that fits
// neither is treated as a transport failure.
func parseRejection(resp *resty.Response) (*models.JukeBoxError, error) {
	var body struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("%w: unexpected response %d", ErrConnection, resp.StatusCode())
	}

	msg := body.Error
	if msg == "" {
		msg = body.Detail
	}
	if msg == "" {
		msg = strings.TrimSpace(string(resp.Body()))
	}

	logger.Log.Debug("request rejected by server",
		zap.Int("status", resp.StatusCode()),
		zap.String("error", msg))

	return &models.JukeBoxError{Status: resp.StatusCode(), Error: msg}, nil
}
