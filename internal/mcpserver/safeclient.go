package mcpserver

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"
)

// maxCaptureRedirects bounds the redirects followed by one live call.
const maxCaptureRedirects = 10

// isBlockedIP returns true if the IP is private, loopback, link-local, or unspecified.
func isBlockedIP(ip net.IP) bool {
	return ip.IsPrivate() || ip.IsLoopback() || ip.IsLinkLocalUnicast() || ip.IsUnspecified()
}

// captureGuard applies the server's address policy to the live calls made
// while replaying a collection. Collections come from agents, so by default
// every host a request or redirect reaches must resolve to public addresses.
type captureGuard struct {
	allowPrivate bool
	dialer       *net.Dialer
}

// publicAddrs resolves host and fails if any address is blocked.
func (g *captureGuard) publicAddrs(ctx context.Context, host string) ([]net.IPAddr, error) {
	ips, err := net.DefaultResolver.LookupIPAddr(ctx, host)
	if err != nil {
		return nil, err
	}
	if len(ips) == 0 {
		return nil, fmt.Errorf("no IP addresses found for host: %s", host)
	}
	for _, ipAddr := range ips {
		if isBlockedIP(ipAddr.IP) {
			return nil, fmt.Errorf("blocked live call to private/loopback IP: %s (%s)", host, ipAddr.IP)
		}
	}
	return ips, nil
}

func (g *captureGuard) dial(ctx context.Context, network, addr string) (net.Conn, error) {
	if g.allowPrivate {
		return g.dialer.DialContext(ctx, network, addr)
	}
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, err
	}
	ips, err := g.publicAddrs(ctx, host)
	if err != nil {
		return nil, err
	}
	// Dial the checked address so a second lookup cannot swap it.
	return g.dialer.DialContext(ctx, network, net.JoinHostPort(ips[0].IP.String(), port))
}

func (g *captureGuard) checkRedirect(req *http.Request, via []*http.Request) error {
	if len(via) >= maxCaptureRedirects {
		return fmt.Errorf("stopped after %d redirects", maxCaptureRedirects)
	}
	if g.allowPrivate {
		return nil
	}
	_, err := g.publicAddrs(req.Context(), req.URL.Hostname())
	return err
}

// newCaptureClient builds the HTTP client handed to postman.Import for the
// convert tool, honoring the timeout and private-address setting of c.
func newCaptureClient(c serverConfig) *http.Client {
	guard := &captureGuard{
		allowPrivate: c.AllowPrivateIPs,
		dialer:       &net.Dialer{Timeout: 10 * time.Second},
	}
	return &http.Client{
		Timeout:       c.Timeout,
		Transport:     &http.Transport{DialContext: guard.dial},
		CheckRedirect: guard.checkRedirect,
	}
}
