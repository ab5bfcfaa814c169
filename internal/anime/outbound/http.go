package outbound

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/zonbirandosaga-tech/hianime-mapper/internal/pkg/pkgerror"
)

const maxBodyBytes = 8 << 20

// Observer receives one call per upstream exchange.
type Observer interface {
	ObserveUpstream(upstream, outcome string, elapsed time.Duration)
}

type nopObserver struct{}

func (nopObserver) ObserveUpstream(string, string, time.Duration) {}

type upstream struct {
	name     string
	client   *http.Client
	observer Observer
}

func newUpstream(name string, client *http.Client, observer Observer) upstream {
	if client == nil {
		client = http.DefaultClient
	}
	if observer == nil {
		observer = nopObserver{}
	}
	return upstream{name: name, client: client, observer: observer}
}

// doJSON sends req and decodes a 2xx JSON body into out.
func (u upstream) doJSON(req *http.Request, out any) (err error) {
	start := time.Now()
	defer func() {
		outcome := "ok"
		switch {
		case errors.Is(err, pkgerror.ErrNotFound):
			outcome = "not_found"
		case err != nil:
			outcome = "error"
		}
		u.observer.ObserveUpstream(u.name, outcome, time.Since(start))
	}()

	resp, err := u.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", u.name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		//nolint:errcheck // drain for connection reuse
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return &HTTPStatusError{Upstream: u.name, URL: req.URL.String(), StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", u.name, err)
	}

	return nil
}

func (u upstream) get(ctx context.Context, target string, headers map[string]string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", u.name, err)
	}
	req.Header.Set("Accept", "application/json, text/plain, */*")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return u.doJSON(req, out)
}
