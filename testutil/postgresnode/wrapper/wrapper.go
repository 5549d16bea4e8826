package wrapper

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/document-lifecycle-go/lifecycle/postgresnode"
	"github.com/AntonStoeckl/document-lifecycle-go/testutil/postgresnode/config"
)

const (
	typePGXPool = "pgx.pool"
	typeSQLDB   = "sql.db"
	typeSQLXDB  = "sqlx.db"
	pingTimeout = 2 * time.Second
)

// Wrapper abstracts over the connection types a NodeStore can be built on.
type Wrapper interface {
	NodeStore() postgresnode.NodeStore
	Close()
}

type pgxPoolWrapper struct {
	pool  *pgxpool.Pool
	store postgresnode.NodeStore
}

func (w *pgxPoolWrapper) NodeStore() postgresnode.NodeStore {
	return w.store
}

func (w *pgxPoolWrapper) Close() {
	w.pool.Close()
}

type sqlDBWrapper struct {
	db    *sql.DB
	store postgresnode.NodeStore
}

func (w *sqlDBWrapper) NodeStore() postgresnode.NodeStore {
	return w.store
}

func (w *sqlDBWrapper) Close() {
	_ = w.db.Close() // nothing useful to do with this error in tests
}

type sqlxWrapper struct {
	db    *sqlx.DB
	store postgresnode.NodeStore
}

func (w *sqlxWrapper) NodeStore() postgresnode.NodeStore {
	return w.store
}

func (w *sqlxWrapper) Close() {
	_ = w.db.Close() // nothing useful to do with this error in tests
}

// CreateWrapperWithTestConfig connects to the test database with the adapter chosen by ADAPTER_TYPE,
// creates the node property table, and registers cleanup with t. Options are passed to the NodeStore.
func CreateWrapperWithTestConfig(t testing.TB, options ...postgresnode.Option) Wrapper {
	t.Helper()

	w := connect(t, options...)
	t.Cleanup(w.Close)

	require.NoError(t, w.NodeStore().CreateTable(context.Background()), "error creating table in test setup")

	return w
}

func connect(t testing.TB, options ...postgresnode.Option) Wrapper {
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	adapterType := strings.ToLower(os.Getenv("ADAPTER_TYPE"))

	switch adapterType {
	case typePGXPool, "":
		poolConfig, err := config.PostgresPGXPoolTestConfig()
		require.NoError(t, err, "error parsing DB config in test setup")

		pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
		require.NoError(t, err, "error creating DB pool in test setup")

		if pingErr := pool.Ping(ctx); pingErr != nil {
			pool.Close()
			t.Skipf("test database not reachable: %v", pingErr)
		}

		store, err := postgresnode.NewNodeStoreFromPGXPool(pool, options...)
		require.NoError(t, err, "error creating node store in test setup")

		return &pgxPoolWrapper{pool: pool, store: store}

	case typeSQLDB:
		db, err := config.PostgresSQLDBTestConfig()
		require.NoError(t, err, "error opening DB in test setup")

		if pingErr := db.PingContext(ctx); pingErr != nil {
			_ = db.Close()
			t.Skipf("test database not reachable: %v", pingErr)
		}

		store, err := postgresnode.NewNodeStoreFromSQLDB(db, options...)
		require.NoError(t, err, "error creating node store in test setup")

		return &sqlDBWrapper{db: db, store: store}

	case typeSQLXDB:
		db, err := config.PostgresSQLXTestConfig()
		require.NoError(t, err, "error opening DB in test setup")

		if pingErr := db.PingContext(ctx); pingErr != nil {
			_ = db.Close()
			t.Skipf("test database not reachable: %v", pingErr)
		}

		store, err := postgresnode.NewNodeStoreFromSQLX(db, options...)
		require.NoError(t, err, "error creating node store in test setup")

		return &sqlxWrapper{db: db, store: store}

	default:
		panic(fmt.Sprintf("unsupported adapter type from env: %s", adapterType))
	}
}
