// Package postgresnode stores lifecycle node properties in PostgreSQL.
//
// Every property is one row of a key/value table:
//
//	CREATE TABLE node_properties (
//	    node_id        uuid  NOT NULL,
//	    property_key   text  NOT NULL,
//	    property_value jsonb NOT NULL,
//	    PRIMARY KEY (node_id, property_key)
//	);
//
// The table can be created with NodeStore.CreateTable. Values are wrapped in a small jsonb
// envelope that records whether the value is a timestamp, so time.Time values written by the
// timestamp subscriber come back as time.Time (normalized to UTC) instead of as strings.
// All other values round-trip through JSON, which means numbers come back as float64.
//
// A NodeStore can be built on top of a pgxpool.Pool, a sql.DB, or a sqlx.DB:
//
//	store, err := postgresnode.NewNodeStoreFromPGXPool(pool, postgresnode.WithLogger(slog.Default()))
//	if err != nil { ... }
//	node := store.NewNode()
//	event, err := lifecycle.BuildPersistEvent(doc, node, accessor)
//
// SQL statements are built with goqu and executed as plain strings, so the same statements run
// on every supported driver.
package postgresnode
