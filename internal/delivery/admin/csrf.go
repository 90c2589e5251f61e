package admin

import (
	"context"
	"crypto/rand"
	"html/template"
	"log/slog"
	"net/http"

	"interest/config"
	"interest/internal/domain/constants"

	"github.com/gorilla/csrf"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const csrfKeyLength = 32

type csrfStateKey struct{}

// csrfState carries the echo request through the gorilla handler.
type csrfState struct {
	c    echo.Context
	next echo.HandlerFunc
	err  error
}

// CSRF issues and verifies the anti-forgery token of the list form. It never
// rejects a request itself; handlers read the verdict with NonceValid.
type CSRF struct {
	handler http.Handler
	secure  bool
}

// NewCSRF builds the token middleware from the admin configuration. Without a
// configured key a random one is generated, so tokens do not survive restarts.
func NewCSRF(cfg *config.Config, logger *slog.Logger) (*CSRF, error) {
	var csrfCfg config.CSRFConfig
	if cfg != nil && cfg.Admin != nil {
		csrfCfg = cfg.Admin.CSRF
	}

	authKey := []byte(csrfCfg.AuthKey)
	switch {
	case len(authKey) == 0:
		authKey = make([]byte, csrfKeyLength)
		if _, err := rand.Read(authKey); err != nil {
			return nil, errors.Wrap(err, "failed to generate csrf key")
		}
		logger.Warn("No CSRF auth key configured, using a random key")
	case len(authKey) != csrfKeyLength:
		return nil, errors.Errorf("csrf auth key must be %d bytes, got %d", csrfKeyLength, len(authKey))
	}

	bridge := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		state, ok := r.Context().Value(csrfStateKey{}).(*csrfState)
		if !ok {
			return
		}
		state.c.SetRequest(r)
		state.err = state.next(state.c)
	})

	opts := []csrf.Option{
		csrf.FieldName(constants.NonceFieldName),
		csrf.CookieName(constants.NonceAction),
		csrf.Path("/"),
		csrf.Secure(csrfCfg.Secure),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(bridge),
	}
	if csrfCfg.MaxAge > 0 {
		opts = append(opts, csrf.MaxAge(csrfCfg.MaxAge))
	}

	return &CSRF{
		handler: csrf.Protect(authKey, opts...)(bridge),
		secure:  csrfCfg.Secure,
	}, nil
}

// Middleware runs next behind the token check.
func (m *CSRF) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		state := &csrfState{c: c, next: next}

		r := c.Request()
		r = r.WithContext(context.WithValue(r.Context(), csrfStateKey{}, state))
		if !m.secure {
			r = csrf.PlaintextHTTPRequest(r)
		}

		m.handler.ServeHTTP(c.Response(), r)

		return state.err
	}
}

// NonceValid reports whether the request passed the token check.
func NonceValid(r *http.Request) bool {
	return csrf.Token(r) != "" && csrf.FailureReason(r) == nil
}

// NonceField returns the hidden form field carrying the token.
func NonceField(r *http.Request) template.HTML {
	return csrf.TemplateField(r)
}
