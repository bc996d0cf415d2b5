// Package speech provides the Azure Cognitive Services TTS client.
package speech

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"
)

const (
	endpointFmt  = "https://%s.tts.speech.microsoft.com/cognitiveservices/v1"
	outputFormat = "audio-16khz-128kbitrate-mono-mp3"

	defaultProsodyRate = 0.85
	defaultHTTPTimeout = 20 * time.Second
	maxRetries         = 3
)

// APIError reports a non-2xx response from the speech service.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("speech service returned status %d: %s", e.StatusCode, e.Body)
}

// IsAuth reports whether err is a credential failure (401/403).
func IsAuth(err error) bool {
	apiErr, ok := asAPIError(err)
	return ok && (apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden)
}

// IsQuota reports whether err is a rate/quota failure (429).
func IsQuota(err error) bool {
	apiErr, ok := asAPIError(err)
	return ok && apiErr.StatusCode == http.StatusTooManyRequests
}

func asAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// Option configures a Client.
type Option func(*Client)

// WithVoice selects the synthesis voice. Default: DefaultVoice.
func WithVoice(voiceID string) Option {
	return func(c *Client) {
		c.voice = voiceID
	}
}

// WithProsodyRate sets the SSML speaking rate. Values below 1.0 slow the
// voice down for learners. Default: 0.85.
func WithProsodyRate(r float64) Option {
	return func(c *Client) {
		c.prosodyRate = r
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithEndpoint overrides the service endpoint. Tests point this at a local
// server.
func WithEndpoint(url string) Option {
	return func(c *Client) {
		c.endpoint = url
	}
}

// WithLimiter overrides the request rate limiter.
func WithLimiter(l *rate.Limiter) Option {
	return func(c *Client) {
		c.limiter = l
	}
}

// Client synthesizes Mandarin speech via the Azure TTS REST API. Requests
// are rate limited and transient failures (5xx, network) are retried with
// exponential backoff; 4xx failures are permanent.
type Client struct {
	httpClient  *http.Client
	endpoint    string
	key         string
	voice       string
	prosodyRate float64
	limiter     *rate.Limiter
}

// NewClient constructs a Client for the given region and subscription key.
func NewClient(region, key string, opts ...Option) *Client {
	c := &Client{
		httpClient:  &http.Client{Timeout: defaultHTTPTimeout},
		endpoint:    fmt.Sprintf(endpointFmt, region),
		key:         key,
		voice:       DefaultVoice,
		prosodyRate: defaultProsodyRate,
		limiter:     rate.NewLimiter(rate.Limit(5), 1),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Synthesize converts text to MP3 audio. It implements audio.Synthesizer.
func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	ssml, err := buildSSML(text, c.voice, c.prosodyRate)
	if err != nil {
		return nil, err
	}

	var data []byte
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(ssml))
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to build synthesis request: %w", err))
		}
		req.Header.Set("Ocp-Apim-Subscription-Key", c.key)
		req.Header.Set("Content-Type", "application/ssml+xml")
		req.Header.Set("X-Microsoft-OutputFormat", outputFormat)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("synthesis request failed: %w", err)
		}
		defer func() {
			if cerr := resp.Body.Close(); cerr != nil {
				// Best-effort body close.
				_ = cerr
			}
		}()

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			apiErr := &APIError{StatusCode: resp.StatusCode, Body: string(bytes.TrimSpace(body))}
			if resp.StatusCode >= 500 {
				return apiErr
			}
			return backoff.Permanent(apiErr)
		}

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read synthesis response: %w", err)
		}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}
	return data, nil
}

func buildSSML(text, voice string, prosodyRate float64) ([]byte, error) {
	var escaped bytes.Buffer
	if err := xml.EscapeText(&escaped, []byte(text)); err != nil {
		return nil, fmt.Errorf("failed to escape synthesis text: %w", err)
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<speak version="1.0" xmlns="http://www.w3.org/2001/10/synthesis" xml:lang="zh-CN">`)
	fmt.Fprintf(&buf, `<voice name="%s"><prosody rate="%.2f">%s</prosody></voice>`, voice, prosodyRate, escaped.String())
	buf.WriteString(`</speak>`)
	return buf.Bytes(), nil
}
