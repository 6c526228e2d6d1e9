// Package mongodb implements store.TaskStore on MongoDB using the official
// Go driver. Tasks live in a single "tasks" collection; identifiers are
// ObjectID hex strings.
package mongodb
