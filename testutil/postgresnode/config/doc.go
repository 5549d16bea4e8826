// Package config provides PostgreSQL connections for node store tests and the demo.
//
// It contains factory functions for every connection type the node store supports
// (pgx.Pool, sql.DB, sqlx.DB), all pointing at the test database DSN. The DSN can be
// overridden with the NODESTORE_DSN environment variable.
package config
