package repository

import "context"

// Row is a single record exchanged with the store, keyed by column name.
// Columns fetched through a join are nested under the joined table's name.
type Row map[string]any

// Order sorts a selection by one column of the base table.
type Order struct {
	Column string
	Desc   bool
}

// Join pulls columns of a second table into each selected row.
// The join is LEFT unless Eq filters the joined table, which makes it INNER.
type Join struct {
	Table      string
	LocalKey   string
	ForeignKey string
	Columns    []string
	Eq         map[string]any
}

// Query narrows a selection with equality predicates on the base table.
type Query struct {
	Eq    map[string]any
	Join  *Join
	Order []Order
	Limit int
}

// Store is the relational store the board engine persists through.
// Implementations translate driver errors into the sentinel errors of this package.
type Store interface {
	Select(ctx context.Context, table string, q Query) ([]Row, error)
	// Insert writes one row and returns it as stored, defaults included.
	Insert(ctx context.Context, table string, row Row) (Row, error)
	// Update applies values to every row matching eq and reports how many matched.
	Update(ctx context.Context, table string, values Row, eq map[string]any) (int64, error)
	Delete(ctx context.Context, table string, eq map[string]any) (int64, error)
}
