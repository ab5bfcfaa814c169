// Package pkghttp builds the shared outbound HTTP client used to talk to upstream
// sites: bounded timeouts, optional proxy and a browser User-Agent pool.
package pkghttp
