// Package net provides networking utilities for jellytube.
package net

import (
	"crypto/tls"
	"net"
	"net/http"
	"net/url"
	"time"
)

// IsPrivateNetwork returns true if the URL or host is on a LAN or loopback address.
//
// Hostnames are resolved; a name that fails to resolve is treated as public.
func IsPrivateNetwork(host string) bool {
	h := hostname(host)
	if h == "" {
		return false
	}
	if h == "localhost" {
		return true
	}

	if ip := net.ParseIP(h); ip != nil {
		return isPrivateIP(ip)
	}

	ips, err := net.LookupIP(h)
	if err != nil {
		return false
	}
	for _, ip := range ips {
		if isPrivateIP(ip) {
			return true
		}
	}
	return false
}

// hostname extracts the bare host from a URL, host:port or host string.
func hostname(host string) string {
	if u, err := url.Parse(host); err == nil && u.Hostname() != "" {
		return u.Hostname()
	}
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return host
}

// isPrivateIP covers RFC 1918, ULA, loopback and link-local ranges.
func isPrivateIP(ip net.IP) bool {
	return ip.IsPrivate() || ip.IsLoopback() || ip.IsLinkLocalUnicast()
}

// NewClient returns an HTTP client for target.
//
// Homelab servers on a private network often use self-signed certificates,
// so certificate verification is skipped for them.
func NewClient(target string, timeout time.Duration) *http.Client {
	if !IsPrivateNetwork(target) {
		return &http.Client{Timeout: timeout}
	}
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy:           http.ProxyFromEnvironment,
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec // LAN only
		},
	}
}
