// Package middleware provides net/http middleware for session authentication
// and request logging.
//
// All middleware follow the same pattern: a default constructor for the
// common case, a WithConfig constructor for customization, a Skip predicate
// to bypass specific requests, and an optional *slog.Logger (discarded by
// default for the session middleware, slog.Default for logging).
//
// # Session Middleware
//
// Session validates the credential pair carried by the request cookies,
// transparently rotates pairs that have aged past the rotation window, and
// stores the session in the request context:
//
//	import "github.com/Sharp0802/humus/middleware"
//
//	mux := http.NewServeMux()
//	guard := middleware.SessionWithConfig(middleware.SessionConfig{
//		Manager: manager,
//		Logger:  logger,
//		Skip: func(r *http.Request) bool {
//			return r.URL.Path == "/health"
//		},
//	})
//	mux.Handle("/me", guard(http.HandlerFunc(me)))
//
//	func me(w http.ResponseWriter, r *http.Request) {
//		sess, ok := middleware.GetSession(r.Context())
//		if !ok {
//			http.Error(w, "unauthorized", http.StatusUnauthorized)
//			return
//		}
//		fmt.Fprintf(w, "hello %s", sess.Who())
//	}
//
// Responses expose only status codes: 401 for anything wrong with the
// request's credentials, 500 for operator faults such as an unconfigured
// manager. The failure detail goes to the logger, where tamper signals log
// at Warn and routine anonymous traffic at Debug. Set Optional to let
// requests without a usable session through for handlers that serve both
// states.
//
// # Logging Middleware
//
// Logging emits one structured line per completed request:
//
//	handler := middleware.Logging()(mux)
//
//	// With custom settings
//	handler := middleware.LoggingWithConfig(middleware.LoggingConfig{
//		Logger:               logger,
//		SlowRequestThreshold: 2 * time.Second,
//	})(mux)
//
// Requests slower than the threshold are raised to Warn.
package middleware
