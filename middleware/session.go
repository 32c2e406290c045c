package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/Sharp0802/humus/core/credential"
	"github.com/Sharp0802/humus/core/session"
	"github.com/Sharp0802/humus/pkg/clientip"
)

// sessionKey is used as a key for storing the session in request context.
type sessionKey struct{}

// SessionConfig configures the session middleware.
type SessionConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(r *http.Request) bool
	// Manager loads and saves session pairs (required)
	Manager *session.Manager
	// Optional lets requests without a usable session continue
	// unauthenticated instead of being rejected. Handlers must check
	// GetSession. Operator faults still fail the request.
	Optional bool
	// Logger for structured logging (default: slog with io.Discard)
	Logger *slog.Logger
	// ErrorHandler defines custom response for session failures
	// (default: 401 for client-side failures, 500 for operator faults)
	ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)
}

// Session creates middleware that validates the session pair, rotates it
// when it has aged past the rotation window, and stores the session in the
// request context.
//
// Usage:
//
//	mux := http.NewServeMux()
//	mux.Handle("/me", middleware.Session(manager)(http.HandlerFunc(me)))
//
//	func me(w http.ResponseWriter, r *http.Request) {
//		sess, ok := middleware.GetSession(r.Context())
//		if !ok {
//			http.Error(w, "unauthorized", http.StatusUnauthorized)
//			return
//		}
//		fmt.Fprintf(w, "hello %s", sess.Who())
//	}
func Session(manager *session.Manager) func(http.Handler) http.Handler {
	return SessionWithConfig(SessionConfig{Manager: manager})
}

// SessionWithConfig creates a session middleware with custom configuration.
//
// Rotated pairs are written to the response before the wrapped handler
// runs, so the replacement cookies go out even when the handler starts
// streaming a body or fails later.
//
// Failure handling keeps the error classes apart:
//
//   - Missing cookies and expired refresh credentials are routine client
//     states: 401, logged at Debug.
//   - Tampered envelopes, malformed payloads, owner mismatches, and
//     replayed refresh credentials are security signals: 401, logged at
//     Warn with the failure class.
//   - An unconfigured manager, an encoding failure, or a failed entropy
//     source is an operator fault: 500, logged at Error. Optional mode
//     does not soften these.
func SessionWithConfig(cfg SessionConfig) func(http.Handler) http.Handler {
	if cfg.Manager == nil {
		panic("session middleware: manager is required")
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
			status := http.StatusUnauthorized
			if isOperatorFault(err) {
				status = http.StatusInternalServerError
			}
			http.Error(w, http.StatusText(status), status)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			sess, err := cfg.Manager.Load(r)
			if err != nil {
				logLoadFailure(cfg.Logger, r, err)

				if cfg.Optional && !isOperatorFault(err) {
					next.ServeHTTP(w, r)
					return
				}

				cfg.ErrorHandler(w, r, err)
				return
			}

			if sess.Rotated() {
				if err := cfg.Manager.Save(w, sess); err != nil {
					cfg.Logger.ErrorContext(r.Context(),
						"session middleware: failed to save rotated pair", "error", err)
					cfg.ErrorHandler(w, r, err)
					return
				}
			}

			ctx := context.WithValue(r.Context(), sessionKey{}, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSession retrieves the session from the request context.
// Returns the session and true if found, a zero session and false otherwise.
func GetSession(ctx context.Context) (session.Session, bool) {
	sess, ok := ctx.Value(sessionKey{}).(session.Session)
	return sess, ok
}

// isOperatorFault separates server-side faults from failures caused by the
// request's cookies. Rotation mints a fresh pair, so entropy and encoding
// failures can surface from Load as well as Save.
func isOperatorFault(err error) bool {
	return errors.Is(err, session.ErrNotConfigured) ||
		errors.Is(err, credential.ErrEncode) ||
		errors.Is(err, credential.ErrEntropy)
}

// logLoadFailure maps each failure class to its log level. Clients never
// see these details; the response carries only a status code.
func logLoadFailure(logger *slog.Logger, r *http.Request, err error) {
	ctx := r.Context()

	switch {
	case isOperatorFault(err):
		logger.ErrorContext(ctx, "session middleware: operator fault",
			"error", err, "path", r.URL.Path)
	case errors.Is(err, session.ErrMissingCredential),
		errors.Is(err, session.ErrRefreshExpired):
		logger.DebugContext(ctx, "session middleware: no usable session",
			"error", err, "path", r.URL.Path)
	default:
		// Tamper, malformed payloads, owner mismatch, replayed refresh.
		logger.WarnContext(ctx, "session middleware: credential rejected",
			"error", err, "path", r.URL.Path, "remote", clientip.GetIP(r))
	}
}
