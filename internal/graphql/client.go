// Ballotsync - Election Reference Data Synchronization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ballotsync

package graphql

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tomtom215/ballotsync/internal/config"
	apperrors "github.com/tomtom215/ballotsync/internal/errors"
	"github.com/tomtom215/ballotsync/internal/logging"
	"github.com/tomtom215/ballotsync/internal/metrics"
)

// maxErrorBodySize limits how much of a response body is kept for error reporting
const maxErrorBodySize = 64 * 1024 // 64KB

// AdminSecretHeader carries the Hasura admin secret.
const AdminSecretHeader = "x-hasura-admin-secret"

// Mutator sends one mutation and returns the affected count reported by the
// backend. A non-nil error is always an *errors.MutationError.
type Mutator interface {
	Mutate(ctx context.Context, op Operation, variables any) (int, error)
}

// Client sends mutations over HTTP.
type Client struct {
	http     *resty.Client
	endpoint string
	limiter  *rate.Limiter
	logger   zerolog.Logger
}

// request is the GraphQL-over-HTTP POST body.
type request struct {
	OperationName string `json:"operationName"`
	Query         string `json:"query"`
	Variables     any    `json:"variables"`
}

// response is the GraphQL-over-HTTP reply. Data is kept raw so each
// operation can inspect its own result key.
type response struct {
	Data   map[string]json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// NewClient creates a Client for cfg. A RateLimit of 0 disables limiting.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewClient(cfg config.DestinationConfig, logger zerolog.Logger) *Client {
	httpClient := resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(0).
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if cfg.AdminSecret != "" {
		httpClient.SetHeader(AdminSecretHeader, cfg.AdminSecret)
	}

	c := &Client{
		http:     httpClient,
		endpoint: cfg.Endpoint,
		logger:   logging.WithComponent(logger, "graphql"),
	}
	if cfg.RateLimit > 0 {
		burst := int(cfg.RateLimit)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	return c
}

// Mutate sends op with variables and applies the success check.
func (c *Client) Mutate(ctx context.Context, op Operation, variables any) (int, error) {
	start := time.Now()
	count, err := c.mutate(ctx, op, variables)
	duration := time.Since(start)

	metrics.RecordMutation(op.Name, duration, err)
	c.logger.Debug().
		Str("operation", op.Name).
		Dur("duration", duration).
		Bool("success", err == nil).
		Msg("mutation sent")

	return count, err
}

func (c *Client) mutate(ctx context.Context, op Operation, variables any) (int, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return 0, apperrors.NewMutationError(op.Name, 0, "", fmt.Errorf("rate limit wait: %w", err))
		}
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(request{
			OperationName: op.Name,
			Query:         op.Document,
			Variables:     variables,
		}).
		Post(c.endpoint)
	if err != nil {
		return 0, apperrors.NewMutationError(op.Name, 0, "", err)
	}

	body := resp.Body()
	if resp.StatusCode() != http.StatusOK {
		return 0, apperrors.NewMutationError(op.Name, resp.StatusCode(), truncateBody(body), nil)
	}

	return checkResponse(op, body)
}

// checkResponse applies the success check to a 200 response body.
func checkResponse(op Operation, body []byte) (int, error) {
	fail := func(cause error) (int, error) {
		return 0, apperrors.NewMutationError(op.Name, http.StatusOK, truncateBody(body), cause)
	}

	var resp response
	if err := json.Unmarshal(body, &resp); err != nil {
		return fail(fmt.Errorf("decode response: %w", err))
	}
	if len(resp.Errors) > 0 {
		messages := make([]string, len(resp.Errors))
		for i, e := range resp.Errors {
			messages[i] = e.Message
		}
		return fail(fmt.Errorf("graphql errors: %s", strings.Join(messages, "; ")))
	}

	raw, ok := resp.Data[op.ResultKey]
	if !ok {
		return fail(fmt.Errorf("response has no data.%s", op.ResultKey))
	}

	count, ok := resultCount(raw)
	if !ok {
		return fail(fmt.Errorf("data.%s is not truthy", op.ResultKey))
	}
	return count, nil
}

// resultCount reports whether a result value is truthy and the count it
// represents: affected_rows for objects that carry it, the value itself for
// numbers, and 1 otherwise.
func resultCount(raw json.RawMessage) (int, bool) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, false
	}

	switch r := v.(type) {
	case nil:
		return 0, false
	case bool:
		if !r {
			return 0, false
		}
		return 1, true
	case float64:
		if r == 0 {
			return 0, false
		}
		return int(r), true
	case string:
		if r == "" {
			return 0, false
		}
		return 1, true
	case map[string]any:
		affected, has := r["affected_rows"]
		if !has {
			return 1, true
		}
		n, isNumber := affected.(float64)
		if !isNumber || n <= 0 {
			return 0, false
		}
		return int(n), true
	default:
		return 1, true
	}
}

// truncateBody returns at most maxErrorBodySize bytes of body.
func truncateBody(body []byte) string {
	if len(body) > maxErrorBodySize {
		return string(body[:maxErrorBodySize]) + "\n... (truncated)"
	}
	return string(body)
}
