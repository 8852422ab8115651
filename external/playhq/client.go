package playhq

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/jonboulle/clockwork"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/singleflight"

	"github.com/riskibarqy/cricket-club/internal/platform/logging"
	"github.com/riskibarqy/cricket-club/internal/platform/resilience"
	"github.com/riskibarqy/cricket-club/internal/usecase"
)

const (
	defaultBaseURL = "https://api.playhq.com"
	defaultTimeout = 8 * time.Second
	maxBodyBytes   = 4 << 20
	maxLoggedBody  = 512

	headerAPIKey = "x-api-key"
	headerTenant = "x-phq-tenant"
)

var (
	errTransport    = crerr.New("playhq transport failure")
	errUndecodable  = crerr.New("playhq response is not a fixture list")
	errCircuitShort = crerr.New("playhq circuit open")
)

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	Tenant         string
	Timeout        time.Duration
	Logger         *logging.Logger
	Clock          clockwork.Clock
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to the PlayHQ grade games endpoint. It never retries; a retry is a new request.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	tenant     string
	timeout    time.Duration
	logger     *logging.Logger
	breaker    *resilience.CircuitBreaker
	group      singleflight.Group
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = timeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(cfg.APIKey),
		tenant:     strings.TrimSpace(cfg.Tenant),
		timeout:    httpClient.Timeout,
		logger:     logger,
		breaker:    resilience.NewCircuitBreaker(cfg.CircuitBreaker, cfg.Clock),
	}
}

func (c *Client) Configured() bool {
	return c.apiKey != "" && c.tenant != ""
}

// FetchFixtures returns the games of a grade as a tagged provider result.
// Identical in-flight requests share one upstream call. The shared call is
// detached from every caller and bounded by the client timeout, so one caller
// aborting only ends its own wait and is never counted against the provider.
func (c *Client) FetchFixtures(ctx context.Context, gradeID string) usecase.ProviderResult {
	gradeID = strings.TrimSpace(gradeID)
	if gradeID == "" {
		return usecase.ProviderTransportError{Cause: crerr.New("grade id is required")}
	}
	if !c.Configured() {
		return usecase.ProviderTransportError{Cause: crerr.Wrap(usecase.ErrConfiguration, "playhq credentials missing")}
	}

	if err := ctx.Err(); err != nil {
		return callerAborted(err)
	}

	fullURL := c.baseURL + "/v1/grades/" + url.PathEscape(gradeID) + "/games"
	flight := c.group.DoChan(fullURL, func() (any, error) {
		flightCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
		defer cancel()
		return c.fetch(flightCtx, fullURL), nil
	})

	select {
	case <-ctx.Done():
		return callerAborted(ctx.Err())
	case shared := <-flight:
		result, ok := shared.Val.(usecase.ProviderResult)
		if !ok {
			return usecase.ProviderTransportError{Cause: crerr.Newf("unexpected shared result %T", shared.Val)}
		}
		return result
	}
}

func callerAborted(err error) usecase.ProviderResult {
	return usecase.ProviderTransportError{Cause: crerr.Wrap(err, "fixture request abandoned by caller")}
}

func (c *Client) fetch(ctx context.Context, fullURL string) usecase.ProviderResult {
	if err := c.breaker.Allow(); err != nil {
		c.logger.WarnContext(ctx, "playhq circuit breaker rejected request", "state", c.breaker.State())
		return usecase.ProviderTransportError{Cause: crerr.Mark(crerr.Wrap(err, "fixture provider is temporarily unavailable"), errCircuitShort)}
	}

	result := c.execute(ctx, fullURL)
	switch r := result.(type) {
	case usecase.ProviderTransportError:
		c.breaker.RecordFailure()
	case usecase.ProviderHTTPError:
		if r.StatusCode == http.StatusTooManyRequests || r.StatusCode >= http.StatusInternalServerError {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
	default:
		c.breaker.RecordSuccess()
	}
	return result
}

func (c *Client) execute(ctx context.Context, fullURL string) usecase.ProviderResult {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return usecase.ProviderTransportError{Cause: crerr.Wrap(err, "build request")}
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set(headerAPIKey, c.apiKey)
	req.Header.Set(headerTenant, c.tenant)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		cause := crerr.Mark(crerr.Newf("send request: %s", c.redact(err.Error())), errTransport)
		c.logger.WarnContext(ctx, "playhq request failed", "url", fullURL, "error", cause)
		return usecase.ProviderTransportError{Cause: cause}
	}
	defer resp.Body.Close()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := buf.ReadFrom(io.LimitReader(resp.Body, maxBodyBytes)); err != nil {
		return usecase.ProviderTransportError{Cause: crerr.Mark(crerr.Wrap(err, "read response body"), errTransport)}
	}

	if resp.StatusCode != http.StatusOK {
		return usecase.ProviderHTTPError{
			StatusCode: resp.StatusCode,
			Body:       abbreviate(c.redact(string(buf.B)), maxLoggedBody),
		}
	}

	records, err := decodeRecords(buf.B)
	if err != nil {
		c.logger.WarnContext(ctx, "playhq response could not be decoded", "url", fullURL, "error", err)
		return usecase.ProviderTransportError{Cause: err}
	}
	return usecase.ProviderOK{Records: records}
}

// decodeRecords accepts either a bare JSON array or an object with a "data" array.
// Entries that are not objects become empty records so one bad row never drops the batch.
func decodeRecords(raw []byte) ([]usecase.ExternalFixtureRecord, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, nil
	}

	var items []any
	switch trimmed[0] {
	case '[':
		if err := sonic.Unmarshal(trimmed, &items); err != nil {
			return nil, crerr.Mark(crerr.Wrap(err, "decode fixture array"), errUndecodable)
		}
	case '{':
		var envelope struct {
			Data []any `json:"data"`
		}
		if err := sonic.Unmarshal(trimmed, &envelope); err != nil {
			return nil, crerr.Mark(crerr.Wrap(err, "decode fixture envelope"), errUndecodable)
		}
		items = envelope.Data
	default:
		return nil, crerr.Mark(crerr.Newf("unexpected payload starting with %q", trimmed[0]), errUndecodable)
	}

	out := make([]usecase.ExternalFixtureRecord, 0, len(items))
	for _, item := range items {
		record, _ := item.(map[string]any)
		if record == nil {
			record = map[string]any{}
		}
		out = append(out, usecase.ExternalFixtureRecord(record))
	}
	return out, nil
}

func (c *Client) redact(value string) string {
	if c.apiKey != "" {
		value = strings.ReplaceAll(value, c.apiKey, "REDACTED")
	}
	return value
}

func abbreviate(raw string, limit int) string {
	value := strings.TrimSpace(raw)
	if len(value) <= limit {
		return value
	}
	return fmt.Sprintf("%s...(%d bytes)", value[:limit], len(value))
}
