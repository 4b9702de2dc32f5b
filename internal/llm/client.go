package llm

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// CompletionsPath is the proxy endpoint every request is posted to,
// relative to the proxy origin.
const CompletionsPath = "/api/chat/completions"

// DefaultModel is the model identifier passed through to the proxy.
const DefaultModel = "mistralai/mistral-7b-instruct:free"

// RetryBaseDelay is the wait before the first retry; it doubles on each
// further attempt. Tests override this to avoid real sleeps.
var RetryBaseDelay = time.Second

// Config holds the settings of a Client.
type Config struct {
	// BaseURL is the proxy origin, e.g. "http://localhost:7860".
	BaseURL string
	// Model is passed through to the proxy unchanged.
	Model string
	// Timeout bounds each attempt. Zero leaves it to the transport.
	Timeout time.Duration
	// MaxRetries is the number of extra attempts on transient proxy
	// failures. Zero means a single request per call.
	MaxRetries int
	// RequestsPerMinute throttles outbound calls. Zero disables throttling.
	RequestsPerMinute int
	// HTTPClient overrides the default HTTP client.
	HTTPClient *http.Client
}

// Client talks to the completion proxy using the OpenAI chat-completions
// wire format.
type Client struct {
	api        *openai.Client
	model      string
	timeout    time.Duration
	maxRetries int
	limiter    *rateLimiter
}

// NewClient creates a Client for the proxy at cfg.BaseURL.
func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	// The proxy owns the upstream credential; no key is sent from here.
	apiCfg := openai.DefaultConfig("")
	// go-openai appends /chat/completions to the base URL.
	apiCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/") + "/api"
	apiCfg.HTTPClient = &proxyDoer{base: httpClient}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	c := &Client{
		api:        openai.NewClientWithConfig(apiCfg),
		model:      model,
		timeout:    cfg.Timeout,
		maxRetries: cfg.MaxRetries,
	}
	if cfg.RequestsPerMinute > 0 {
		c.limiter = newRateLimiter(cfg.RequestsPerMinute)
	}
	return c
}

// Model returns the model identifier sent with every request.
func (c *Client) Model() string { return c.model }

// CallLLM posts messages to the proxy and returns the first choice's content
// verbatim. Failures are *ProxyError values matching ErrBackendProxy.
func (c *Client) CallLLM(ctx context.Context, messages []Message) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: make([]openai.ChatCompletionMessage, 0, len(messages)),
	}
	for _, msg := range messages {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}

	for attempt := 0; ; attempt++ {
		content, err := c.complete(ctx, req)
		if err == nil {
			return content, nil
		}

		var perr *ProxyError
		if !errors.As(err, &perr) || !perr.Transient() || attempt >= c.maxRetries || ctx.Err() != nil {
			return "", err
		}

		backoff := time.Duration(math.Pow(2, float64(attempt))) * RetryBaseDelay
		log.Printf("llm: transient proxy failure, retrying in %v (attempt %d/%d)", backoff, attempt+1, c.maxRetries)

		select {
		case <-ctx.Done():
			return "", err
		case <-time.After(backoff):
		}
	}
}

func (c *Client) complete(ctx context.Context, req openai.ChatCompletionRequest) (string, error) {
	if c.limiter != nil {
		if err := c.limiter.wait(ctx); err != nil {
			return "", err
		}
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	ctx, failed := withFailure(ctx)
	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		perr := &ProxyError{StatusCode: failed.status, Body: failed.body, Err: err}
		if failed.rejected() {
			log.Printf("llm: API proxy error (status %d): %s", failed.status, failed.body)
		} else {
			log.Printf("llm: API proxy error: %v", err)
		}
		return "", perr
	}

	if len(resp.Choices) == 0 {
		log.Printf("llm: API proxy error: %v", errNoChoices)
		return "", &ProxyError{StatusCode: http.StatusOK, Err: errNoChoices}
	}

	return resp.Choices[0].Message.Content, nil
}

// prompt sends text as a single user-role message.
func (c *Client) prompt(ctx context.Context, text string) (string, error) {
	content, err := c.CallLLM(ctx, []Message{{Role: RoleUser, Content: text}})
	if err != nil {
		return "", fmt.Errorf("calling completion proxy: %w", err)
	}
	return content, nil
}
