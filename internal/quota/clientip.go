package quota

import (
	"net"
	"net/http"
	"strings"
)

// sentinel when no address can be determined
const unknownAddress = "unknown"

// ClientIP extracts the caller's network address, accounting for a reverse
// proxy: first X-Forwarded-For entry, then X-Real-IP, then the raw peer
// address, in that priority order.
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first := strings.TrimSpace(strings.Split(forwarded, ",")[0])
		if first != "" {
			return first
		}
	}

	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}

	if r.RemoteAddr != "" {
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
			return host
		}

		return r.RemoteAddr
	}

	return unknownAddress
}
