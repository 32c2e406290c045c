package clientip

import (
	"net"
	"net/http"
	"strings"
)

// Headers consulted before the connection address, most trustworthy first.
var proxyHeaders = [...]string{
	"CF-Connecting-IP",
	"DO-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// GetIP returns the client IP address for r, preferring proxy headers over
// the connection's remote address. See the package documentation for the
// priority order and validation rules.
func GetIP(r *http.Request) string {
	for _, h := range proxyHeaders {
		v := r.Header.Get(h)
		if v == "" {
			continue
		}
		if h == "X-Forwarded-For" {
			// The leftmost entry of the chain is the original client.
			v, _, _ = strings.Cut(v, ",")
		}
		if ip := normalize(v); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if ip := normalize(host); ip != "" {
		return ip
	}

	return r.RemoteAddr
}

// normalize validates a candidate and returns its canonical form, or the
// empty string when it is not a usable client address.
func normalize(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil || ip.IsUnspecified() {
		return ""
	}
	return ip.String()
}
