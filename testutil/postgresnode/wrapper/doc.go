// Package wrapper hides which database connection type backs a node store in tests.
//
// The connection type is chosen with the ADAPTER_TYPE environment variable
// ("pgx.pool", "sql.db" or "sqlx.db"; pgx.pool when unset), so the same integration tests
// run against every adapter. Tests are skipped when the test database cannot be reached.
package wrapper
