package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/pandodao/money-tracker/core"
)

const headerRequestID = "X-Request-Id"

type Config struct {
	BaseURL string `valid:"url,required"`
	// Timeout is left to the transport when zero.
	Timeout time.Duration
}

// Client talks to the money tracker API. Every response goes through decode,
// so callers only ever see the unwrapped payload or a core error.
type Client struct {
	rc     *resty.Client
	logger *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	if _, err := govalidator.ValidateStruct(cfg); err != nil {
		panic(err)
	}

	rc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Accept", "application/json")
	if cfg.Timeout > 0 {
		rc.SetTimeout(cfg.Timeout)
	}

	return &Client{
		rc:     rc,
		logger: logger.With("service", "api"),
	}
}

func (c *Client) Get(ctx context.Context, path string, v any) error {
	return c.do(ctx, http.MethodGet, path, nil, v)
}

func (c *Client) Post(ctx context.Context, path string, body, v any) error {
	return c.do(ctx, http.MethodPost, path, body, v)
}

func (c *Client) do(ctx context.Context, method, path string, body, v any) error {
	requestID := uuid.NewString()
	logger := c.logger.With("method", method, "path", path, "request_id", requestID)

	req := c.rc.R().
		SetContext(ctx).
		SetHeader(headerRequestID, requestID)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		logger.Debug("request failed", "err", err)
		return &core.NetworkError{Op: method + " " + path, Err: err}
	}

	if err := decode(resp.StatusCode(), resp.Body(), v); err != nil {
		logger.Debug("response rejected", "status", resp.StatusCode(), "err", err)
		return err
	}

	logger.Debug("request done", "status", resp.StatusCode(), "duration", resp.Time())
	return nil
}
