// Package campaign is the client for the campaign backend's email template
// endpoint.
package campaign

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"postwizard/internal/jsonutil"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const tracerName = "postwizard/campaign"

// Client talks to the campaign backend over HTTP.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	timeout time.Duration
	log     logr.Logger
	tracer  oteltrace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithToken sends token as a bearer credential on every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets a whole-request timeout. Zero keeps the HTTP client's own.
// The client passed to WithHTTPClient is copied, never modified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithLogger sets the logger used for request lines.
func WithLogger(log logr.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithTracerProvider sets where request spans are recorded.
func WithTracerProvider(tp oteltrace.TracerProvider) Option {
	return func(c *Client) { c.tracer = tp.Tracer(tracerName) }
}

// NewClient creates a client for the API rooted at baseURL
// (e.g. http://localhost:4000/v1).
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		log:     logr.Discard(),
		tracer:  otel.GetTracerProvider().Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.http
		hc.Timeout = c.timeout
		c.http = &hc
	}
	return c
}

// SaveTemplate stores the email template of a campaign and returns the
// template as the backend persisted it together with the recipient count.
// Backend rejections are returned as *APIError, network failures as
// *TransportError.
func (c *Client) SaveTemplate(ctx context.Context, campaignID int, subject, body string, replyTo *string) (SaveResult, error) {
	ctx, span := c.tracer.Start(ctx, "campaign.SaveTemplate",
		oteltrace.WithAttributes(attribute.Int("postwizard.campaign.id", campaignID)))
	defer span.End()

	res, status, err := c.saveTemplate(ctx, campaignID, subject, body, replyTo)
	if status != 0 {
		span.SetAttributes(attribute.Int("http.status_code", status))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.log.Error(err, "save template failed", "campaign", campaignID, "status", status)
		return SaveResult{}, err
	}
	span.SetAttributes(attribute.Int("postwizard.recipients", res.NumRecipients))
	c.log.V(1).Info("saved template", "campaign", campaignID, "params", len(res.Template.Params), "recipients", res.NumRecipients)
	return res, nil
}

func (c *Client) saveTemplate(ctx context.Context, campaignID int, subject, body string, replyTo *string) (SaveResult, int, error) {
	payload, err := json.Marshal(saveTemplateRequest{Subject: subject, Body: body, ReplyTo: replyTo})
	if err != nil {
		return SaveResult{}, 0, fmt.Errorf("encode template: %w", err)
	}

	url := fmt.Sprintf("%s/campaign/%d/email/template", c.baseURL, campaignID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(payload))
	if err != nil {
		return SaveResult{}, 0, &TransportError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return SaveResult{}, 0, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	data, err := jsonutil.ReadBody(resp.Body)
	if err != nil {
		return SaveResult{}, resp.StatusCode, &TransportError{Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return SaveResult{}, resp.StatusCode, &APIError{
			StatusCode: resp.StatusCode,
			Message:    jsonutil.MessageOr(data, DefaultSaveErrorMessage),
		}
	}

	var res SaveResult
	if err := jsonutil.UnmarshalWithContext(data, &res, DefaultSaveErrorMessage); err != nil {
		return SaveResult{}, resp.StatusCode, err
	}
	return res, resp.StatusCode, nil
}
