// Package inbound exposes the anime resolver over HTTP.
package inbound
