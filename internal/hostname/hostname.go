package hostname

import (
	"fmt"
	"net"
	"os"
	"strings"
)

// Split separates a hostname or FQDN into its host and domain parts on the
// first dot. Absent parts are nil: an empty input has neither part, a name
// without a dot has no domain, and a trailing-dot name like "host." keeps
// only its host. A leading dot yields an empty (but present) host, so "."
// splits into host "" and no domain. Everything after the first dot is the
// domain, further dots included: "a.b.c" -> ("a", "b.c").
func Split(fqdn string) (host, domain *string) {
	if fqdn == "" {
		return nil, nil
	}

	parts := strings.SplitN(fqdn, ".", 2)
	h := parts[0]
	if len(parts) == 1 || parts[1] == "" {
		return &h, nil
	}

	d := parts[1]
	return &h, &d
}

// Local splits the hostname reported by the operating system.
func Local() (host, domain *string, err error) {
	name, err := os.Hostname()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read local hostname: %w", err)
	}
	host, domain = Split(name)
	return host, domain, nil
}

// StripPort returns the host part (no port) from strings like "host:port", "[v6]:port", or "host".
func StripPort(s string) string {
	if s == "" {
		return ""
	}
	if h, _, err := net.SplitHostPort(s); err == nil {
		return h
	}
	return s
}
