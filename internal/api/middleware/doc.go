// Package middleware contains the HTTP middleware shared by every route:
// trace IDs with request logging, panic recovery and request metrics.
package middleware
