// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the request handlers, so the HTTP layer stays independent of the
// database technology behind it.
package store
