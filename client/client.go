// Package client is a typed client for the Things REST API. Every attempted
// operation, including rejected ones, is reported to a Recorder.
package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/thingsconsole/audit"
	things_errors "github.com/dev-mohitbeniwal/thingsconsole/errors"
	logger "github.com/dev-mohitbeniwal/thingsconsole/logging"
	"github.com/dev-mohitbeniwal/thingsconsole/model"
	"github.com/dev-mohitbeniwal/thingsconsole/util"
)

const (
	apiTokenHeader      = "x-cr-api-token"
	correlationIDHeader = "X-Correlation-Id"
)

// Recorder receives one entry per attempted operation. *audit.ResponseLog
// implements it.
type Recorder interface {
	Record(entryType audit.EntryType, operation string, statusCode int, message string) audit.Entry
}

type discardRecorder struct{}

func (discardRecorder) Record(entryType audit.EntryType, operation string, statusCode int, message string) audit.Entry {
	return audit.Entry{Type: entryType, Operation: operation, StatusCode: statusCode, Message: message}
}

type Credentials struct {
	Username string
	Password string
}

// Config is everything a Client needs; there is no package-level state.
type Config struct {
	BaseURL            string
	Credentials        Credentials
	APIToken           string
	AuthorizationModel model.AuthorizationModel
	HTTPClient         *http.Client
	Recorder           Recorder
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithRecorder(r Recorder) Option {
	return func(c *Client) { c.recorder = r }
}

// WithCorrelationIDs replaces the generator of the X-Correlation-Id header.
func WithCorrelationIDs(next func() string) Option {
	return func(c *Client) { c.nextCorrelationID = next }
}

// Client is safe for concurrent use. It holds no thing state; each call
// returns a fresh projection.
type Client struct {
	baseURL            string
	authorization      string
	apiToken           string
	authorizationModel model.AuthorizationModel
	httpClient         *http.Client
	recorder           Recorder
	validator          *util.ValidationUtil
	nextCorrelationID  func() string
}

func New(cfg Config, opts ...Option) (*Client, error) {
	base, err := url.Parse(strings.TrimSpace(cfg.BaseURL))
	if err != nil {
		return nil, fmt.Errorf("invalid things base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid things base url %q: scheme and host required", cfg.BaseURL)
	}

	authzModel := cfg.AuthorizationModel
	if authzModel == "" {
		authzModel = model.AuthorizationACL
	}
	if _, err := model.ParseAuthorizationModel(string(authzModel)); err != nil {
		return nil, err
	}

	c := &Client{
		baseURL:            strings.TrimRight(base.String(), "/"),
		apiToken:           cfg.APIToken,
		authorizationModel: authzModel,
		httpClient:         cfg.HTTPClient,
		recorder:           cfg.Recorder,
		validator:          util.NewValidationUtil(),
		nextCorrelationID:  uuid.NewString,
	}
	if cfg.Credentials.Username != "" || cfg.Credentials.Password != "" {
		token := cfg.Credentials.Username + ":" + cfg.Credentials.Password
		c.authorization = "Basic " + base64.StdEncoding.EncodeToString([]byte(token))
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}
	if c.recorder == nil {
		c.recorder = discardRecorder{}
	}
	return c, nil
}

func (c *Client) AuthorizationModel() model.AuthorizationModel { return c.authorizationModel }

type call struct {
	operation string
	method    string
	template  string
	params    params
	query     []QueryOption
	body      interface{}
}

// reject records a call refused before anything was sent.
func (c *Client) reject(operation string, err error) error {
	c.recorder.Record(audit.EntryWarning, operation, 0, err.Error())
	logger.Warn("Things request rejected", zap.String("operation", operation), zap.Error(err))
	return err
}

func (c *Client) requireIDs(operation string, ids ...util.Identifier) error {
	if err := c.validator.RequireIdentifiers(operation, ids...); err != nil {
		return c.reject(operation, err)
	}
	return nil
}

func (c *Client) requireModel(operation string, want model.AuthorizationModel) error {
	if c.authorizationModel == want {
		return nil
	}
	return c.reject(operation, &things_errors.ValidationError{
		Operation: operation,
		Field:     "authorizationModel",
		Err:       things_errors.ErrUnsupportedAuthorizationModel,
	})
}

// send performs one call and decodes a successful body into T.
func send[T any](ctx context.Context, c *Client, cl call) (*Result[T], error) {
	path, err := expand(cl.template, cl.params)
	if err != nil {
		return nil, c.reject(cl.operation, &things_errors.ValidationError{Operation: cl.operation, Err: err})
	}
	target := c.baseURL + path
	if q := buildQuery(cl.query); q != nil {
		target += "?" + encodeQuery(q)
	}

	var body io.Reader
	if cl.body != nil {
		data, err := json.Marshal(cl.body)
		if err != nil {
			return nil, c.reject(cl.operation, &things_errors.ValidationError{Operation: cl.operation, Field: "body", Err: err})
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, target, body)
	if err != nil {
		return nil, c.reject(cl.operation, &things_errors.ValidationError{Operation: cl.operation, Err: err})
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.authorization != "" {
		req.Header.Set("Authorization", c.authorization)
	}
	if c.apiToken != "" {
		req.Header.Set(apiTokenHeader, c.apiToken)
	}
	correlationID := c.nextCorrelationID()
	req.Header.Set(correlationIDHeader, correlationID)

	log := logger.WithContext(
		zap.String("operation", cl.operation),
		zap.String("method", cl.method),
		zap.String("path", path),
		zap.String("correlationId", correlationID))

	result := &Result[T]{Operation: cl.operation}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		result.Outcome = OutcomeTransportError
		return result, c.transportFailure(ctx, cl.operation, err, log, "Things request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		result.Outcome = OutcomeTransportError
		return result, c.transportFailure(ctx, cl.operation, err, log, "Reading things response failed")
	}

	result.StatusCode = resp.StatusCode
	result.StatusText = statusText(resp)
	result.Location = resp.Header.Get("Location")
	result.Raw = raw
	message := strings.TrimSpace(string(raw))
	if message == "" {
		message = result.StatusText
	}

	if resp.StatusCode >= http.StatusBadRequest {
		result.Outcome = OutcomeHTTPError
		c.recorder.Record(audit.EntryError, cl.operation, resp.StatusCode, message)
		log.Warn("Things request returned an error status", zap.Int("status", resp.StatusCode))
		return result, &things_errors.StatusError{
			Operation:  cl.operation,
			StatusCode: resp.StatusCode,
			StatusText: result.StatusText,
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	result.Outcome = OutcomeSuccess
	if _, empty := any(result.Body).(NoContent); !empty && len(bytes.TrimSpace(raw)) > 0 && resp.StatusCode < http.StatusMultipleChoices {
		if err := json.Unmarshal(raw, &result.Body); err != nil {
			c.recorder.Record(audit.EntryError, cl.operation, resp.StatusCode, fmt.Sprintf("undecodable response: %v", err))
			log.Error("Decoding things response failed", zap.Int("status", resp.StatusCode), zap.Error(err))
			return result, fmt.Errorf("%s: decode response: %w", cl.operation, err)
		}
	}

	entryType := audit.EntrySuccess
	if resp.StatusCode >= http.StatusMultipleChoices {
		entryType = audit.EntryWarning
	}
	c.recorder.Record(entryType, cl.operation, resp.StatusCode, message)
	log.Debug("Things request completed", zap.Int("status", resp.StatusCode))
	return result, nil
}

// transportFailure reports a call that got no usable response. A call the
// caller cancelled itself is recorded as a warning, not as an error.
func (c *Client) transportFailure(ctx context.Context, operation string, err error, log *zap.Logger, msg string) error {
	if ctx.Err() != nil && errors.Is(err, context.Canceled) {
		c.recorder.Record(audit.EntryWarning, operation, 0, err.Error())
		log.Info("Things request cancelled", zap.Error(err))
	} else {
		c.recorder.Record(audit.EntryError, operation, 0, err.Error())
		log.Error(msg, zap.Error(err))
	}
	return &things_errors.TransportError{Operation: operation, Err: err}
}

func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}
