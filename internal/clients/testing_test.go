package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// fakeClient is a scripted GenerativeClient.
type fakeClient struct {
	mu      sync.Mutex
	errs    []error
	text    string
	calls   int
	prompts []string
}

func (f *fakeClient) Name() string  { return "fake" }
func (f *fakeClient) Model() string { return "fake-model" }

func (f *fakeClient) Generate(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.prompts = append(f.prompts, prompt)
	f.calls++
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		return "", err
	}
	return f.text, nil
}

// mockServer replies with status and body on every request and records the
// last request path.
func mockServer(t *testing.T, status int, body string) (*httptest.Server, *string) {
	t.Helper()
	var lastPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if _, err := w.Write([]byte(body)); err != nil {
			t.Errorf("failed to write mock response: %v", err)
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &lastPath
}
