// Package clientip extracts the real client IP address from HTTP requests.
//
// Deployments behind proxies, load balancers, or CDNs see the intermediary's
// address in RemoteAddr. GetIP consults the common forwarding headers in a
// fixed priority order and falls back to the connection address:
//
//  1. CF-Connecting-IP (Cloudflare)
//  2. DO-Connecting-IP (DigitalOcean)
//  3. X-Forwarded-For (leftmost entry, the original client)
//  4. X-Real-IP (nginx and similar proxies)
//  5. RemoteAddr (direct connection)
//
// Every candidate is validated with net.ParseIP and returned in canonical
// form; unspecified addresses (0.0.0.0, ::) and malformed entries are
// skipped. When no source yields a valid address, the raw RemoteAddr is
// returned unchanged, so the result is always non-empty for a well-formed
// request.
//
// Forwarding headers are client-controlled on direct connections. Deploy
// behind a proxy that overwrites them before using the result for security
// decisions.
package clientip
