package postgresnode

import "errors"

var ErrNilDatabaseConnection = errors.New("database connection must not be nil")
var ErrEmptyTableName = errors.New("table name must not be empty")
var ErrInvalidTableName = errors.New("table name must be a plain or schema qualified SQL identifier")
var ErrBuildingQueryFailed = errors.New("building the sql query failed")
var ErrQueryingPropertyFailed = errors.New("querying node properties failed")
var ErrScanningDBRowFailed = errors.New("scanning the database row failed")
var ErrWritingPropertyFailed = errors.New("writing the node property failed")
var ErrDeletingNodeFailed = errors.New("deleting the node failed")
var ErrCreatingTableFailed = errors.New("creating the node property table failed")
var ErrEncodingValueFailed = errors.New("encoding the property value failed")
var ErrDecodingValueFailed = errors.New("decoding the property value failed")
