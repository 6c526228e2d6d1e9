// Package postgres implements store.TaskStore on PostgreSQL through
// database/sql and the pgx driver. The schema is managed by goose
// migrations embedded in the binary.
//
// Stores accept a DBTX so that the same code runs against a *sql.DB or a
// *sql.Tx.
package postgres
