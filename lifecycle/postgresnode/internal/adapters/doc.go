// Package adapters lets the PostgreSQL node store run on pgxpool.Pool, sql.DB or sqlx.DB.
//
// Each adapter turns a fully rendered SQL string into rows or an execution result behind the
// common DBAdapter interface, so the node store never depends on a particular driver API.
package adapters
