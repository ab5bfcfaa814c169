package pkgerror

import (
	"errors"
	"net/http"
	"strings"
	"testing"
)

func TestTypeString(t *testing.T) {
	if got := TypeValidation.String(); got != "ERROR_TYPE_VALIDATION" {
		t.Fatalf("unexpected validation string: %q", got)
	}
	if got := TypeBusiness.String(); got != "ERROR_TYPE_BUSINESS" {
		t.Fatalf("unexpected business string: %q", got)
	}
	if got := TypeServer.String(); got != "ERROR_TYPE_SERVER" {
		t.Fatalf("unexpected server string: %q", got)
	}
	if got := Type(99).String(); got != "ERROR_TYPE_UNKNOWN" {
		t.Fatalf("unexpected unknown type string: %q", got)
	}
}

func TestCodeString(t *testing.T) {
	if got := CodeInvalidInput.String(); got != "ERROR_CODE_INVALID_INPUT" {
		t.Fatalf("unexpected invalid input string: %q", got)
	}
	if got := CodeBadGateway.String(); got != "ERROR_CODE_BAD_GATEWAY" {
		t.Fatalf("unexpected bad gateway string: %q", got)
	}
	if got := CodeInternal.String(); got != "ERROR_CODE_INTERNAL" {
		t.Fatalf("unexpected internal string: %q", got)
	}
	if got := Code(99).String(); got != "ERROR_CODE_INTERNAL" {
		t.Fatalf("unexpected default code string: %q", got)
	}
}

func TestServerError(t *testing.T) {
	root := errors.New("boom")
	err := NewServer(root, "Internal server issue !")
	gerr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if !errors.Is(err, root) {
		t.Fatalf("expected wrapped error")
	}
	if got := gerr.Msg(); got != "Internal server issue !" {
		t.Fatalf("unexpected msg: %q", got)
	}
	if got := gerr.Type(); got != TypeServer {
		t.Fatalf("unexpected type: %v", got)
	}
	if got := gerr.Code(); got != CodeInternal {
		t.Fatalf("unexpected code: %v", got)
	}
	if got := gerr.Error(); got != "boom" {
		t.Fatalf("unexpected error string: %q", got)
	}
	if got := gerr.StatusCode(); got != http.StatusInternalServerError {
		t.Fatalf("unexpected status: %d", got)
	}
}

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid input", NewInvalidInput("missing"), http.StatusBadRequest},
		{"not found", NewNotFound(ErrNotFound, "gone"), http.StatusNotFound},
		{"bad gateway", NewBadGateway(errors.New("upstream"), "bad"), http.StatusBadGateway},
		{"server", NewServer(nil, "oops"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var gerr *Error
			if !errors.As(tc.err, &gerr) {
				t.Fatalf("expected *Error, got %T", tc.err)
			}
			if got := gerr.StatusCode(); got != tc.want {
				t.Fatalf("expected status %d, got %d", tc.want, got)
			}
		})
	}
}

func TestInvalidInputMessage(t *testing.T) {
	err := NewInvalidInput("Both serverId and episodeId are required!").(*Error)
	if got := err.Error(); got != "Both serverId and episodeId are required!" {
		t.Fatalf("unexpected error string: %q", got)
	}
	if got := err.Type(); got != TypeValidation {
		t.Fatalf("unexpected type: %v", got)
	}
}

func TestNotFoundWrapsSentinel(t *testing.T) {
	err := NewNotFound(ErrNotFound, "Resource not found !")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound in chain")
	}
}

func TestErrorFallbackMessages(t *testing.T) {
	validation := new(nil, "", TypeValidation, CodeInternal).(*Error)
	if got := validation.Error(); got != "Validation violation" {
		t.Fatalf("unexpected validation fallback: %q", got)
	}

	business := new(nil, "", TypeBusiness, CodeInternal).(*Error)
	if got := business.Error(); got != "Logical business not meet with requirement" {
		t.Fatalf("unexpected business fallback: %q", got)
	}

	server := new(nil, "", TypeServer, CodeInternal).(*Error)
	if got := server.Error(); got != "Internal error" {
		t.Fatalf("unexpected server fallback: %q", got)
	}
}

func TestErrorStringIncludesDetails(t *testing.T) {
	err := NewBadGateway(errors.New("dial tcp"), "message").(*Error)
	str := err.String()
	if !strings.Contains(str, "ERROR_TYPE_SERVER") {
		t.Fatalf("expected error type in string: %q", str)
	}
	if !strings.Contains(str, "ERROR_CODE_BAD_GATEWAY") {
		t.Fatalf("expected error code in string: %q", str)
	}
	if !strings.Contains(str, "dial tcp") {
		t.Fatalf("expected underlying error in string: %q", str)
	}
}
