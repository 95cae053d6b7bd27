package probe

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/proxy"
)

// ErrInvalidProxyAddress is returned when the SOCKS5 proxy address is
// not in "host:port" format.
var ErrInvalidProxyAddress = errors.New("invalid proxy address: expected host:port")

// NewHTTPClient creates an HTTP client for direct probing.
// Redirects are followed (paste services sometimes canonicalize slugs
// through a redirect) up to the stdlib default of 10 hops.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
	}
}

// NewSOCKS5Client creates an HTTP client that routes all connections
// through the given SOCKS5 proxy. The proxy address must be in
// "host:port" format (e.g. "127.0.0.1:9050").
//
// This validates the address format but does not contact the proxy;
// an unreachable proxy surfaces as a network error on the first probe,
// which the explorer loop already treats as a negative classification.
func NewSOCKS5Client(proxyAddress string, timeout time.Duration) (*http.Client, error) {
	if !isValidProxyAddress(proxyAddress) {
		return nil, ErrInvalidProxyAddress
	}

	// nil auth: SOCKS5 proxies used for scanning typically run without it
	dialer, err := proxy.SOCKS5("tcp", proxyAddress, nil, proxy.Direct)
	if err != nil {
		return nil, fmt.Errorf("failed to create SOCKS5 dialer: %w", err)
	}

	transport := &http.Transport{
		DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			if cd, ok := dialer.(proxy.ContextDialer); ok {
				return cd.DialContext(ctx, network, addr)
			}
			return dialer.Dial(network, addr)
		},
		// One target host, sequential requests; a small idle pool suffices.
		MaxIdleConns:    2,
		IdleConnTimeout: 30 * time.Second,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}, nil
}

// isValidProxyAddress checks for "host:port" with a port in [1,65535].
// A simple split beats a URL parser here: the format has no scheme and
// no path, just host and port.
func isValidProxyAddress(address string) bool {
	host, port, ok := strings.Cut(address, ":")
	if !ok || host == "" || port == "" {
		return false
	}
	n, err := strconv.Atoi(port)
	if err != nil {
		return false
	}
	return n >= 1 && n <= 65535
}
