// Package session issues and validates stateless session pairs carried in
// HTTP cookies.
//
// A session is a pair of encrypted credentials: a short-lived access
// credential proving the subject for the last RotationWindow, and a
// long-lived refresh credential allowing the pair to be renewed for up to
// RefreshLifetime. Both travel as cookies, both are sealed with AES-256-GCM
// under a passphrase-derived key, and nothing is kept server side. Any
// process holding the passphrase can validate and rotate sessions, so
// instances scale horizontally with no shared store.
//
// # Basic Usage
//
// Configure a manager once at startup and use it per request:
//
//	import "github.com/Sharp0802/humus/core/session"
//
//	manager, err := session.NewManager(session.Config{
//		Passphrase:   os.Getenv("SESSION_PASSPHRASE"),
//		SecureCookie: true,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Login endpoint, after the application verified the user.
//	func login(w http.ResponseWriter, r *http.Request) {
//		sess, err := session.New(userID)
//		if err != nil {
//			http.Error(w, "login failed", http.StatusInternalServerError)
//			return
//		}
//		if err := manager.Save(w, sess); err != nil {
//			http.Error(w, "login failed", http.StatusInternalServerError)
//			return
//		}
//	}
//
//	// Guarded endpoint.
//	func me(w http.ResponseWriter, r *http.Request) {
//		sess, err := manager.Load(r)
//		if err != nil {
//			http.Error(w, "unauthorized", http.StatusUnauthorized)
//			return
//		}
//		if sess.Rotated() {
//			// The pair aged past the rotation window; hand the
//			// replacement to the client.
//			if err := manager.Save(w, sess); err != nil {
//				http.Error(w, "session error", http.StatusInternalServerError)
//				return
//			}
//		}
//		fmt.Fprintf(w, "hello %s", sess.Who())
//	}
//
//	// Logout endpoint.
//	func logout(w http.ResponseWriter, r *http.Request) {
//		manager.Clear(w)
//	}
//
// # Validation Pipeline
//
// Load runs these checks in order and the first failure wins:
//
//  1. Both cookies present, else ErrMissingCredential.
//  2. Both credentials decode, access first: envelope shape, GCM
//     authentication, payload schema. Failures surface with the cipher or
//     credential error classes.
//  3. Both credentials name the same subject, else ErrOwnerMismatch.
//  4. The refresh credential is not newer than the access credential, else
//     ErrRefreshReused. Rotation always re-stamps the pair together, so a
//     newer refresh means a stale access cookie was replayed against it.
//  5. The refresh credential is younger than RefreshLifetime, else
//     ErrRefreshExpired.
//
// A pair that passes everything is returned unchanged while its access
// credential is younger than RotationWindow. An older pair is replaced by a
// fresh pair for the same subject, stamped at load time; Rotated reports
// this and the caller must Save the replacement. Because rotation re-stamps
// the refresh credential too, a subject active at least once per rotation
// window keeps its session alive indefinitely; RefreshLifetime bounds
// inactivity, not total session age.
//
// # Clock Semantics
//
// All stamps are Unix seconds in UTC. Age is measured as now minus stamp;
// credentials stamped in the future are treated as age zero and stay valid
// until their stamp plus the usual horizons pass.
//
// # Configuration
//
// Config carries the passphrase and the Secure cookie flag, nothing else.
// Managers publish configuration atomically: NewManager for the common
// case, Configure for deferred startup wiring. The zero-value Manager is
// safe to embed and fails every operation with ErrNotConfigured until
// Configure succeeds. Cookie placement (path, domain, SameSite) is
// adjustable through options; the cookie names and HttpOnly are not.
package session
