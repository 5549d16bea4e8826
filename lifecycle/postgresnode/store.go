package postgresnode

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/AntonStoeckl/document-lifecycle-go/lifecycle"
	"github.com/AntonStoeckl/document-lifecycle-go/lifecycle/postgresnode/internal/adapters"
)

const (
	defaultTableName = "node_properties"
	dialectPostgres  = "postgres"
	colNodeID        = "node_id"
	colPropertyKey   = "property_key"
	colPropertyValue = "property_value"
	conflictTarget   = colNodeID + ", " + colPropertyKey
	castJsonb        = "?::jsonb"
	excludedValue    = "EXCLUDED." + colPropertyValue

	operationHas        = "has_property"
	operationGet        = "get_property"
	operationSet        = "set_property"
	operationProperties = "list_properties"
	operationDelete     = "delete_node"
	operationCreate     = "create_table"
)

// NodeStore reads and writes node properties in a PostgreSQL table.
// It is safe for concurrent use as long as the underlying connection pool is.
type NodeStore struct {
	db               adapters.DBAdapter
	tableName        string
	logger           lifecycle.Logger
	contextualLogger lifecycle.ContextualLogger
	metricsCollector lifecycle.MetricsCollector
}

// NewNodeStoreFromPGXPool creates a NodeStore using a pgx Pool with optional configuration.
func NewNodeStoreFromPGXPool(db *pgxpool.Pool, options ...Option) (NodeStore, error) {
	if db == nil {
		return NodeStore{}, ErrNilDatabaseConnection
	}

	return newNodeStore(adapters.NewPGXAdapter(db), options...)
}

// NewNodeStoreFromPGXPoolAndReplica creates a NodeStore that writes to the primary pool
// and reads from the replica pool.
func NewNodeStoreFromPGXPoolAndReplica(db *pgxpool.Pool, replica *pgxpool.Pool, options ...Option) (NodeStore, error) {
	if db == nil || replica == nil {
		return NodeStore{}, ErrNilDatabaseConnection
	}

	return newNodeStore(adapters.NewPGXAdapterWithReplica(db, replica), options...)
}

// NewNodeStoreFromSQLDB creates a NodeStore using a sql.DB with optional configuration.
func NewNodeStoreFromSQLDB(db *sql.DB, options ...Option) (NodeStore, error) {
	if db == nil {
		return NodeStore{}, ErrNilDatabaseConnection
	}

	return newNodeStore(adapters.NewSQLAdapter(db), options...)
}

// NewNodeStoreFromSQLX creates a NodeStore using a sqlx.DB with optional configuration.
func NewNodeStoreFromSQLX(db *sqlx.DB, options ...Option) (NodeStore, error) {
	if db == nil {
		return NodeStore{}, ErrNilDatabaseConnection
	}

	return newNodeStore(adapters.NewSQLXAdapter(db), options...)
}

func newNodeStore(db adapters.DBAdapter, options ...Option) (NodeStore, error) {
	s := NodeStore{
		db:        db,
		tableName: defaultTableName,
	}

	for _, option := range options {
		if err := option(&s); err != nil {
			return NodeStore{}, err
		}
	}

	return s, nil
}

// TableName returns the name of the table the NodeStore works on.
func (s NodeStore) TableName() string {
	return s.tableName
}

// Node returns a handle for the node with the given id. Nothing is read or written until
// one of its methods is called, and a node without properties simply has no rows.
func (s NodeStore) Node(id uuid.UUID) *Node {
	return &Node{store: s, id: id}
}

// NewNode returns a handle for a node with a fresh random id.
func (s NodeStore) NewNode() *Node {
	return s.Node(uuid.New())
}

// CreateTable creates the node property table if it does not exist yet.
func (s NodeStore) CreateTable(ctx context.Context) error {
	sqlQuery := fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS %s (%s uuid NOT NULL, %s text NOT NULL, %s jsonb NOT NULL, PRIMARY KEY (%s, %s))",
		s.tableName, colNodeID, colPropertyKey, colPropertyValue, colNodeID, colPropertyKey,
	)

	if _, err := s.exec(ctx, operationCreate, sqlQuery, ErrCreatingTableFailed); err != nil {
		return err
	}

	s.logOperation(ctx, logMsgTableCreated, logAttrTable, s.tableName)

	return nil
}

// Properties returns all properties of the node with the given id, decoded from their envelopes.
func (s NodeStore) Properties(ctx context.Context, id uuid.UUID) (map[string]any, error) {
	selectStmt := goqu.Dialect(dialectPostgres).
		From(s.tableName).
		Select(colPropertyKey, colPropertyValue).
		Where(goqu.Ex{colNodeID: id.String()}).
		Order(goqu.I(colPropertyKey).Asc())

	sqlQuery, err := s.toSQL(ctx, selectStmt)
	if err != nil {
		return nil, err
	}

	rows, err := s.query(ctx, operationProperties, sqlQuery)
	if err != nil {
		return nil, err
	}
	defer s.closeRows(ctx, rows)

	properties := make(map[string]any)

	for rows.Next() {
		var key string
		var raw []byte

		if scanErr := rows.Scan(&key, &raw); scanErr != nil {
			s.logError(ctx, logMsgScanRowFailed, scanErr, logAttrNodeID, id.String())
			return nil, errors.Join(ErrScanningDBRowFailed, scanErr)
		}

		value, decodeErr := decodeValue(raw)
		if decodeErr != nil {
			s.logError(ctx, logMsgDecodeValueFailed, decodeErr, logAttrNodeID, id.String(), logAttrPropertyKey, key)
			return nil, decodeErr
		}

		properties[key] = value
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		s.logError(ctx, logMsgDBQueryFailed, rowsErr, logAttrNodeID, id.String())
		return nil, errors.Join(ErrQueryingPropertyFailed, rowsErr)
	}

	return properties, nil
}

// DeleteNode removes every property of the node with the given id and reports how many were removed.
func (s NodeStore) DeleteNode(ctx context.Context, id uuid.UUID) (int64, error) {
	deleteStmt := goqu.Dialect(dialectPostgres).
		Delete(s.tableName).
		Where(goqu.Ex{colNodeID: id.String()})

	sqlQuery, _, toSQLErr := deleteStmt.ToSQL()
	if toSQLErr != nil {
		s.logError(ctx, logMsgBuildQueryFailed, toSQLErr)
		return 0, errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	result, err := s.exec(ctx, operationDelete, sqlQuery, ErrDeletingNodeFailed)
	if err != nil {
		return 0, err
	}

	rowsAffected, rowsAffectedErr := result.RowsAffected()
	if rowsAffectedErr != nil {
		s.logError(ctx, logMsgRowsAffectedFailed, rowsAffectedErr)
		return 0, errors.Join(ErrDeletingNodeFailed, rowsAffectedErr)
	}

	s.logOperation(ctx, logMsgNodeDeleted, logAttrNodeID, id.String(), logAttrRowsAffected, rowsAffected)

	return rowsAffected, nil
}

func (s NodeStore) hasProperty(ctx context.Context, id uuid.UUID, key string) (bool, error) {
	selectStmt := goqu.Dialect(dialectPostgres).
		From(s.tableName).
		Select(goqu.L("1")).
		Where(goqu.Ex{colNodeID: id.String(), colPropertyKey: key}).
		Limit(1)

	sqlQuery, err := s.toSQL(ctx, selectStmt)
	if err != nil {
		return false, err
	}

	rows, err := s.query(ctx, operationHas, sqlQuery)
	if err != nil {
		return false, err
	}
	defer s.closeRows(ctx, rows)

	found := rows.Next()

	if rowsErr := rows.Err(); rowsErr != nil {
		s.logError(ctx, logMsgDBQueryFailed, rowsErr, logAttrPropertyKey, key)
		return false, errors.Join(ErrQueryingPropertyFailed, rowsErr)
	}

	return found, nil
}

func (s NodeStore) propertyValue(ctx context.Context, id uuid.UUID, key string) (any, bool, error) {
	selectStmt := goqu.Dialect(dialectPostgres).
		From(s.tableName).
		Select(colPropertyValue).
		Where(goqu.Ex{colNodeID: id.String(), colPropertyKey: key}).
		Limit(1)

	sqlQuery, err := s.toSQL(ctx, selectStmt)
	if err != nil {
		return nil, false, err
	}

	rows, err := s.query(ctx, operationGet, sqlQuery)
	if err != nil {
		return nil, false, err
	}
	defer s.closeRows(ctx, rows)

	if !rows.Next() {
		if rowsErr := rows.Err(); rowsErr != nil {
			s.logError(ctx, logMsgDBQueryFailed, rowsErr, logAttrPropertyKey, key)
			return nil, false, errors.Join(ErrQueryingPropertyFailed, rowsErr)
		}

		return nil, false, nil
	}

	var raw []byte
	if scanErr := rows.Scan(&raw); scanErr != nil {
		s.logError(ctx, logMsgScanRowFailed, scanErr, logAttrPropertyKey, key)
		return nil, false, errors.Join(ErrScanningDBRowFailed, scanErr)
	}

	value, decodeErr := decodeValue(raw)
	if decodeErr != nil {
		s.logError(ctx, logMsgDecodeValueFailed, decodeErr, logAttrPropertyKey, key)
		return nil, false, decodeErr
	}

	return value, true, nil
}

func (s NodeStore) setProperty(ctx context.Context, id uuid.UUID, key string, value any) error {
	encoded, encodeErr := encodeValue(value)
	if encodeErr != nil {
		s.logError(ctx, logMsgEncodeValueFailed, encodeErr, logAttrPropertyKey, key)
		return encodeErr
	}

	insertStmt := goqu.Dialect(dialectPostgres).
		Insert(s.tableName).
		Rows(goqu.Record{
			colNodeID:        id.String(),
			colPropertyKey:   key,
			colPropertyValue: goqu.L(castJsonb, string(encoded)),
		}).
		OnConflict(goqu.DoUpdate(conflictTarget, goqu.Record{colPropertyValue: goqu.L(excludedValue)}))

	sqlQuery, _, toSQLErr := insertStmt.ToSQL()
	if toSQLErr != nil {
		s.logError(ctx, logMsgBuildQueryFailed, toSQLErr, logAttrPropertyKey, key)
		return errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	_, err := s.exec(ctx, operationSet, sqlQuery, ErrWritingPropertyFailed)

	return err
}

func (s NodeStore) toSQL(ctx context.Context, selectStmt *goqu.SelectDataset) (string, error) {
	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		s.logError(ctx, logMsgBuildQueryFailed, toSQLErr)
		return "", errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

// query executes a select statement and records its timing.
func (s NodeStore) query(ctx context.Context, operation string, sqlQuery string) (adapters.DBRows, error) {
	start := time.Now()
	rows, queryErr := s.db.Query(ctx, sqlQuery)
	duration := time.Since(start)
	s.logQueryWithDuration(ctx, sqlQuery, operation, duration)

	if queryErr != nil {
		s.logError(ctx, logMsgDBQueryFailed, queryErr, logAttrQuery, sqlQuery)
		s.recordDuration(ctx, operation, statusError, duration)
		s.recordError(ctx, operation)

		return nil, errors.Join(ErrQueryingPropertyFailed, queryErr)
	}

	s.recordDuration(ctx, operation, statusSuccess, duration)

	return rows, nil
}

// exec executes a statement, records its timing and joins failures with sentinel.
func (s NodeStore) exec(ctx context.Context, operation string, sqlQuery string, sentinel error) (adapters.DBResult, error) {
	start := time.Now()
	result, execErr := s.db.Exec(ctx, sqlQuery)
	duration := time.Since(start)
	s.logQueryWithDuration(ctx, sqlQuery, operation, duration)

	if execErr != nil {
		s.logError(ctx, logMsgDBExecFailed, execErr, logAttrQuery, sqlQuery)
		s.recordDuration(ctx, operation, statusError, duration)
		s.recordError(ctx, operation)

		return nil, errors.Join(sentinel, execErr)
	}

	s.recordDuration(ctx, operation, statusSuccess, duration)

	return result, nil
}

// closeRows closes database rows and logs a failure to do so.
func (s NodeStore) closeRows(ctx context.Context, rows adapters.DBRows) {
	if closeErr := rows.Close(); closeErr != nil {
		s.logWarn(ctx, logMsgCloseRowsFailed, logAttrError, closeErr.Error())
	}
}
