package outbound

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/zonbirandosaga-tech/hianime-mapper/internal/pkg/pkgerror"
)

// ErrEncryptedSources is returned when the embed host answers with an
// encrypted source list.
var ErrEncryptedSources = errors.New("embed sources are encrypted")

// HTTPStatusError means an upstream answered with a non-2xx status code.
type HTTPStatusError struct {
	Upstream   string
	URL        string
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	if e == nil {
		return "HTTP status error"
	}
	return fmt.Sprintf("%s: HTTP %d from %s", e.Upstream, e.StatusCode, e.URL)
}

// Unwrap lets errors.Is(err, pkgerror.ErrNotFound) match a 404.
func (e *HTTPStatusError) Unwrap() error {
	if e != nil && e.StatusCode == http.StatusNotFound {
		return pkgerror.ErrNotFound
	}
	return nil
}

func notFound(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, pkgerror.ErrNotFound)...)
}
