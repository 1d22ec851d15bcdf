package apifootball

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/kickoff-api/internal/platform/cache"
	"github.com/riskibarqy/kickoff-api/internal/platform/logging"
	"github.com/riskibarqy/kickoff-api/internal/platform/resilience"
	"github.com/riskibarqy/kickoff-api/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	defaultBaseURL      = "https://v3.football.api-sports.io"
	apiKeyHeader        = "x-apisports-key"
	defaultRetryBackoff = time.Second
	maxResponseBytes    = 6 << 20
)

var errTransient = errors.New("api-football transient failure")

// Metrics receives one observation per upstream attempt outcome.
type Metrics interface {
	ObserveUpstream(operation, outcome string, elapsed time.Duration)
}

type noopMetrics struct{}

func (noopMetrics) ObserveUpstream(string, string, time.Duration) {}

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	MaxRetries     int
	RetryBackoff   time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
	// Cache stores raw response payloads per operation and parameters. Nil disables caching.
	Cache   cache.PayloadCache
	Metrics Metrics
}

// Client reads the API-Football v3 REST API. Every call is a GET whose
// envelope is checked for provider errors before the response is decoded.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	maxRetries     int
	retryBackoff   time.Duration
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	cache          cache.PayloadCache
	metrics        Metrics
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.Named("apifootball")

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 15 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	backoff := cfg.RetryBackoff
	if backoff <= 0 {
		backoff = defaultRetryBackoff
	}
	metrics := cfg.Metrics
	if metrics == nil {
		metrics = noopMetrics{}
	}

	breaker := resilience.NewCircuitBreaker(cfg.CircuitBreaker)
	breaker.OnStateChange(func(from, to resilience.CircuitState) {
		logger.Warn("api-football circuit breaker state changed", "from", from, "to", to)
	})

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		apiKey:         strings.TrimSpace(cfg.APIKey),
		maxRetries:     max(cfg.MaxRetries, 0),
		retryBackoff:   backoff,
		logger:         logger,
		breaker:        breaker,
		circuitEnabled: cfg.CircuitBreaker.Enabled,
		cache:          cfg.Cache,
		metrics:        metrics,
	}
}

// get loads the response field of op into target. It returns false when the
// provider answered with an empty response.
func (c *Client) get(ctx context.Context, op operation, params url.Values, target any) (bool, error) {
	key := op.name + ":" + params.Encode()
	load := func(ctx context.Context) ([]byte, error) {
		return c.fetch(ctx, op, params)
	}

	var (
		raw []byte
		err error
	)
	if c.cache != nil && op.ttl > 0 {
		raw, err = c.cache.GetOrLoad(ctx, key, op.ttl, load)
	} else {
		raw, err = load(ctx)
	}
	if err != nil {
		return false, err
	}

	if isEmptyResponse(raw) {
		return false, nil
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return false, errors.Wrapf(usecase.ErrUpstream, "decode %s response: %v", op.name, err)
	}
	return true, nil
}

// fetch returns the raw response field, so provider errors are never cached.
func (c *Client) fetch(ctx context.Context, op operation, params url.Values) ([]byte, error) {
	fullURL := c.baseURL + op.path
	if encoded := params.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	if !c.circuitEnabled {
		return c.executeRequest(ctx, op, fullURL)
	}

	var raw []byte
	err := c.breaker.Execute(func() error {
		var reqErr error
		raw, reqErr = c.executeRequest(ctx, op, fullURL)
		return reqErr
	}, isCircuitFailure)
	if errors.Is(err, resilience.ErrCircuitOpen) {
		c.metrics.ObserveUpstream(op.name, "circuit_open", 0)
		c.logger.WarnContext(ctx, "api-football circuit breaker rejected request", "operation", op.name, "state", c.breaker.State())
		return nil, errors.Wrap(usecase.ErrDependencyUnavailable, "football data provider is temporarily unavailable")
	}
	return raw, err
}

func (c *Client) executeRequest(ctx context.Context, op operation, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		started := time.Now()
		raw, retryable, err := c.attempt(ctx, fullURL)
		outcome := outcomeOf(err)
		c.metrics.ObserveUpstream(op.name, outcome, time.Since(started))
		if err == nil {
			return raw, nil
		}
		lastErr = err
		if !retryable || attempt == c.maxRetries {
			break
		}

		timer := time.NewTimer(time.Duration(attempt+1) * c.retryBackoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	c.logger.WarnContext(ctx, "api-football request failed",
		"operation", op.name,
		"url", fullURL,
		"error", sanitizeSensitiveText(lastErr.Error(), c.apiKey),
	)
	return nil, lastErr
}

// attempt performs one request and unwraps the envelope.
func (c *Client) attempt(ctx context.Context, fullURL string) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, false, errors.Wrap(err, "build request")
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, false, ctx.Err()
		}
		return nil, true, errors.Mark(
			errors.Wrapf(usecase.ErrUpstream, "send request: %s", sanitizeSensitiveText(err.Error(), c.apiKey)),
			errTransient,
		)
	}
	body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	_ = resp.Body.Close()
	if readErr != nil {
		return nil, true, errors.Mark(errors.Wrapf(usecase.ErrUpstream, "read response body: %v", readErr), errTransient)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := errors.Wrapf(usecase.ErrUpstream, "provider status=%d body=%s", resp.StatusCode, abbreviateBody(body))
		if isRetryableStatus(resp.StatusCode) {
			return nil, true, errors.Mark(statusErr, errTransient)
		}
		return nil, false, statusErr
	}

	var env envelope
	if err := sonic.Unmarshal(body, &env); err != nil {
		return nil, false, errors.Wrapf(usecase.ErrUpstream, "decode envelope: %v body=%s", err, abbreviateBody(body))
	}
	if messages := providerErrors(env.Errors); len(messages) > 0 {
		// Provider-reported errors are retried like transport failures but do
		// not count against the breaker: the provider did answer.
		return nil, true, errors.Wrapf(usecase.ErrUpstream, "provider errors: %s", strings.Join(messages, "; "))
	}
	return []byte(env.Response), false, nil
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, errTransient):
		return "transport_error"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "upstream_error"
	}
}

func isCircuitFailure(err error) bool {
	return err != nil && errors.Is(err, errTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func sanitizeSensitiveText(value, apiKey string) string {
	value = strings.TrimSpace(value)
	if value == "" || apiKey == "" {
		return value
	}
	return strings.ReplaceAll(value, apiKey, "REDACTED")
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
