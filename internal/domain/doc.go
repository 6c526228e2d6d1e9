// Package domain holds the Task entity and the validation rules every
// storage backend enforces before persisting it.
package domain
