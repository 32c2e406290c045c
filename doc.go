// Package humus provides stateless session authentication for web services.
// Sessions live entirely inside encrypted browser cookies, so servers keep
// no session store and any replica can validate any request. The library
// implements modern Go patterns including functional options for
// configuration, sentinel errors for failure classification, and a
// lock-free read path for request handling.
//
// # Package Organization
//
// The module is organized into three layers:
//
//   - Core: the credential format, its encryption, and the session lifecycle
//   - Middleware: net/http middleware for guarding routes and logging requests
//   - Utilities: standalone helpers shared by the HTTP layer
//
// # Getting Documentation
//
// For detailed documentation on any package, use the go doc command:
//
//	go doc github.com/Sharp0802/humus/core/session
//	go doc -all github.com/Sharp0802/humus/middleware
//
// # Core Packages
//
//	github.com/Sharp0802/humus/core/cipher     - AES-256-GCM encryption of cookie payloads
//	github.com/Sharp0802/humus/core/config     - Type-safe environment variable loading
//	github.com/Sharp0802/humus/core/credential - Token format and its access/refresh roles
//	github.com/Sharp0802/humus/core/session    - Session pairs, validation, and rotation
//
// # HTTP Middleware Packages
//
//	github.com/Sharp0802/humus/middleware      - Session guard and request logging
//
// # Utility Packages
//
//	github.com/Sharp0802/humus/pkg/clientip    - Real client IP extraction from HTTP requests
//
// # Example Usage
//
//	import (
//		"net/http"
//
//		"github.com/Sharp0802/humus/core/config"
//		"github.com/Sharp0802/humus/core/session"
//		"github.com/Sharp0802/humus/middleware"
//	)
//
//	func main() {
//		var cfg session.Config
//		config.MustLoad(&cfg)
//
//		manager, err := session.NewManager(cfg)
//		if err != nil {
//			panic(err)
//		}
//
//		mux := http.NewServeMux()
//		mux.Handle("/me", middleware.Session(manager)(http.HandlerFunc(me)))
//
//		http.ListenAndServe(":8080", mux)
//	}
//
// A runnable demo with login, a guarded route, and logout lives in
// examples/basic.
package humus
