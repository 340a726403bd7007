package utilities

import (
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// TrustedProxies resolves the originating client of requests that reach the
// service through known reverse proxies. Forwarding headers from any other
// peer are ignored.
type TrustedProxies struct {
	prefixes []netip.Prefix
}

// NewTrustedProxies parses a list of IP addresses and CIDR ranges.
func NewTrustedProxies(entries []string) (*TrustedProxies, error) {
	p := &TrustedProxies{}

	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		if strings.Contains(entry, "/") {
			prefix, err := netip.ParsePrefix(entry)
			if err != nil {
				return nil, fmt.Errorf("invalid trusted proxy %q: %w", entry, err)
			}
			p.prefixes = append(p.prefixes, prefix.Masked())
			continue
		}

		addr, err := netip.ParseAddr(entry)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy %q: %w", entry, err)
		}
		addr = addr.Unmap()
		p.prefixes = append(p.prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}

	return p, nil
}

func (p *TrustedProxies) trusts(addr netip.Addr) bool {
	if p == nil {
		return false
	}

	addr = addr.Unmap()
	for _, prefix := range p.prefixes {
		if prefix.Contains(addr) {
			return true
		}
	}

	return false
}

// ClientIP returns the peer address of the connection. When the peer is a
// trusted proxy, X-Forwarded-For is walked from the right and the first hop
// that is not a trusted proxy is returned.
func (p *TrustedProxies) ClientIP(r *http.Request) string {
	remote := RemoteIP(r)

	peer, err := netip.ParseAddr(remote)
	if err != nil || !p.trusts(peer) {
		return remote
	}

	var hops []string
	for _, value := range r.Header.Values("X-Forwarded-For") {
		hops = append(hops, strings.Split(value, ",")...)
	}

	for i := len(hops) - 1; i >= 0; i-- {
		hop, err := netip.ParseAddr(strings.TrimSpace(hops[i]))
		if err != nil {
			return remote
		}
		if !p.trusts(hop) {
			return hop.Unmap().String()
		}
	}

	if realIP, err := netip.ParseAddr(strings.TrimSpace(r.Header.Get("X-Real-IP"))); err == nil {
		return realIP.Unmap().String()
	}

	return remote
}

// RealIP replaces r.RemoteAddr with the resolved client address so later
// handlers and the access log see the originating client.
func (p *TrustedProxies) RealIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ip := p.ClientIP(r); ip != RemoteIP(r) {
			r.RemoteAddr = ip
		}
		next.ServeHTTP(w, r)
	})
}

// RemoteIP returns the host part of r.RemoteAddr.
func RemoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
