package postgresnode

import (
	"context"
	"fmt"

	"github.com/AntonStoeckl/document-lifecycle-go/lifecycle/postgresnode/internal/adapters"
)

// fakeDB is an adapters.DBAdapter that records statements and returns canned rows.
type fakeDB struct {
	queries      []string
	execs        []string
	rows         [][]any
	queryErr     error
	execErr      error
	rowsErr      error
	rowsAffected int64
}

func (f *fakeDB) Query(_ context.Context, query string) (adapters.DBRows, error) {
	f.queries = append(f.queries, query)

	if f.queryErr != nil {
		return nil, f.queryErr
	}

	return &fakeRows{rows: f.rows, err: f.rowsErr, position: -1}, nil
}

func (f *fakeDB) Exec(_ context.Context, query string) (adapters.DBResult, error) {
	f.execs = append(f.execs, query)

	if f.execErr != nil {
		return nil, f.execErr
	}

	return fakeResult{rowsAffected: f.rowsAffected}, nil
}

type fakeRows struct {
	rows     [][]any
	err      error
	position int
	closed   bool
}

func (r *fakeRows) Next() bool {
	if r.position+1 >= len(r.rows) {
		return false
	}

	r.position++

	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.rows[r.position]
	if len(row) != len(dest) {
		return fmt.Errorf("expected %d destinations, got %d", len(row), len(dest))
	}

	for i, target := range dest {
		switch d := target.(type) {
		case *string:
			v, ok := row[i].(string)
			if !ok {
				return fmt.Errorf("column %d is %T, not string", i, row[i])
			}
			*d = v
		case *[]byte:
			v, ok := row[i].([]byte)
			if !ok {
				return fmt.Errorf("column %d is %T, not []byte", i, row[i])
			}
			*d = v
		default:
			return fmt.Errorf("unsupported scan destination %T", target)
		}
	}

	return nil
}

func (r *fakeRows) Err() error {
	return r.err
}

func (r *fakeRows) Close() error {
	r.closed = true
	return nil
}

type fakeResult struct {
	rowsAffected int64
}

func (r fakeResult) RowsAffected() (int64, error) {
	return r.rowsAffected, nil
}

func givenStoreWithFakeDB(db *fakeDB, options ...Option) NodeStore {
	s, err := newNodeStore(db, options...)
	if err != nil {
		panic(err)
	}

	return s
}
