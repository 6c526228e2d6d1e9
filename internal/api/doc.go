// Package api handles incoming HTTP requests for tasks: request decoding and
// validation, calls into the task store, and response formatting. It acts as
// an adapter between external clients and store.TaskStore, translating
// storage errors into HTTP status codes and messages.
package api
