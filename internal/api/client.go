// Package api is the service layer over the marketplace HTTP API.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"ondemand-engine/internal/config"
	"ondemand-engine/internal/secrets"
)

// Client wraps one resty client. Every request carries the stored bearer
// token; any 401 wipes the stored session.
type Client struct {
	http    *resty.Client
	session *secrets.Store
	eps     config.Endpoints
	baseURL string
	limiter *HostLimiter
	log     *slog.Logger

	onUnauthorized func()
}

type Option func(*Client)

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithUnauthorizedHandler runs fn after a 401 has cleared the stored session.
func WithUnauthorizedHandler(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

func WithLimiter(l *HostLimiter) Option {
	return func(c *Client) { c.limiter = l }
}

func New(cfg config.Config, session *secrets.Store, opts ...Option) *Client {
	c := &Client{
		session: session,
		eps:     cfg.API.Endpoints,
		baseURL: strings.TrimRight(cfg.API.BaseURL, "/"),
		limiter: NewHostLimiter(cfg.API.MaxRPS, cfg.API.Burst),
		log:     slog.Default(),
	}
	for _, o := range opts {
		o(c)
	}

	c.http = resty.New().
		SetBaseURL(c.baseURL).
		SetTimeout(cfg.Timeout()).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		OnBeforeRequest(c.beforeRequest).
		OnAfterResponse(c.afterResponse)
	return c
}

// SetUnauthorizedHandler installs fn after construction, for callers that
// are themselves built on top of the client.
func (c *Client) SetUnauthorizedHandler(fn func()) { c.onUnauthorized = fn }

func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) beforeRequest(_ *resty.Client, r *resty.Request) error {
	if err := c.limiter.WaitURL(r.Context(), c.baseURL); err != nil {
		return err
	}

	tok, err := c.session.Token()
	if err != nil {
		// Storage trouble must not block the call; it goes out anonymous.
		c.log.Error("read auth token", slog.String("component", "api"), slog.String("error", err.Error()))
	} else if tok != "" {
		r.SetHeader("Authorization", "Bearer "+tok)
	}

	if r.Header.Get("X-Request-ID") == "" {
		r.SetHeader("X-Request-ID", uuid.NewString())
	}
	return nil
}

func (c *Client) afterResponse(_ *resty.Client, resp *resty.Response) error {
	if resp.StatusCode() != http.StatusUnauthorized {
		return nil
	}
	c.log.Warn("unauthorized response, clearing stored session",
		slog.String("component", "api"),
		slog.String("path", resp.Request.URL),
	)
	if err := c.session.Clear(); err != nil {
		c.log.Error("clear stored session", slog.String("component", "api"), slog.String("error", err.Error()))
	}
	if c.onUnauthorized != nil {
		c.onUnauthorized()
	}
	return nil
}

type call struct {
	method   string
	path     string
	query    url.Values
	body     any
	out      any
	fallback string

	file     io.Reader
	field    string
	filename string
}

func (c *Client) do(ctx context.Context, cl call) error {
	req := c.http.R().SetContext(ctx)
	if len(cl.query) > 0 {
		req.SetQueryParamsFromValues(cl.query)
	}
	if cl.body != nil {
		req.SetBody(cl.body)
	}
	if cl.file != nil {
		req.SetFileReader(cl.field, cl.filename, cl.file)
	}

	resp, err := req.Execute(cl.method, cl.path)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		c.log.Warn("request failed", slog.String("component", "api"),
			slog.String("method", cl.method), slog.String("path", cl.path), slog.String("error", err.Error()))
		return &NetworkError{Err: err}
	}

	if resp.IsError() {
		return newServerError(resp.StatusCode(), resp.Body(), cl.fallback)
	}

	if cl.out != nil && len(resp.Body()) > 0 {
		if err := json.Unmarshal(resp.Body(), cl.out); err != nil {
			return fmt.Errorf("decode %s %s: %w", cl.method, cl.path, err)
		}
	}
	return nil
}

// withID fills the :id placeholder of an endpoint template.
func withID(tmpl, id string) string {
	return strings.Replace(tmpl, ":id", url.PathEscape(id), 1)
}
