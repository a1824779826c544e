// Package security validates untrusted input before the server acts on it.
package security

import (
	"errors"
	"fmt"
	"net/netip"
	"net/url"
	"strings"
)

// ErrPrivateHost is returned for URLs that point at the local machine or a
// private network.
var ErrPrivateHost = errors.New("URL cannot point to local or private hosts")

// ValidateImageURL checks a client-supplied source image URL before it is
// handed to an image provider, which fetches it server-side. Only HTTPS URLs
// to public hosts are accepted.
func ValidateImageURL(raw string) (*url.URL, error) {
	if raw == "" {
		return nil, errors.New("empty URL")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}

	if !strings.EqualFold(u.Scheme, "https") {
		return nil, fmt.Errorf("only HTTPS URLs are allowed (got %q)", u.Scheme)
	}
	if u.Hostname() == "" {
		return nil, errors.New("URL must have a hostname")
	}
	if u.User != nil {
		return nil, errors.New("URL must not carry credentials")
	}

	if isLocalOrPrivateHost(strings.ToLower(u.Hostname())) {
		return nil, fmt.Errorf("%w: %s", ErrPrivateHost, u.Hostname())
	}
	return u, nil
}

// isLocalOrPrivateHost reports whether host is localhost or a loopback,
// private, link-local or unspecified address. Names other than localhost are
// not resolved.
func isLocalOrPrivateHost(host string) bool {
	if host == "localhost" || strings.HasSuffix(host, ".localhost") {
		return true
	}

	addr, err := netip.ParseAddr(host)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	return addr.IsLoopback() ||
		addr.IsPrivate() ||
		addr.IsLinkLocalUnicast() ||
		addr.IsLinkLocalMulticast() ||
		addr.IsUnspecified()
}
