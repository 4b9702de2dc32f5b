package llm

import (
	"bytes"
	"context"
	"io"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// failure records the reply status for the call that owns the request
// context, and the body when the status is not 2xx.
type failure struct {
	status int
	body   []byte
}

// rejected reports whether the proxy answered with a non-2xx status.
func (f *failure) rejected() bool {
	return f.status != 0 && (f.status < 200 || f.status >= 300)
}

type failureKey struct{}

func withFailure(ctx context.Context) (context.Context, *failure) {
	f := &failure{}
	return context.WithValue(ctx, failureKey{}, f), f
}

// proxyDoer keeps a copy of error bodies so they reach the caller's
// diagnostic path verbatim, whatever shape the proxy chose for them.
type proxyDoer struct {
	base openai.HTTPDoer
}

func (d *proxyDoer) Do(req *http.Request) (*http.Response, error) {
	resp, err := d.base.Do(req)
	if err != nil {
		return nil, err
	}
	f, _ := req.Context().Value(failureKey{}).(*failure)
	if f != nil {
		f.status = resp.StatusCode
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}

	body, readErr := io.ReadAll(resp.Body)
	resp.Body.Close()
	if readErr != nil {
		body = nil
	}
	if f != nil {
		f.body = body
	}
	resp.Body = io.NopCloser(bytes.NewReader(body))
	return resp, nil
}
