package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/rpggio/corkboard/internal/repository"
)

// Dialect captures what differs between SQL backends.
type Dialect struct {
	Name                  string
	Placeholder           func(n int) string
	IsUniqueViolation     func(error) bool
	IsForeignKeyViolation func(error) bool
}

// Store implements repository.Store over database/sql.
type Store struct {
	db      *sql.DB
	dialect Dialect
}

// New creates a Store for an open connection pool.
func New(db *sql.DB, dialect Dialect) *Store {
	return &Store{db: db, dialect: dialect}
}

var identifierPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

const joinSeparator = "__"

// Select returns the rows of table matching q.
func (s *Store) Select(ctx context.Context, table string, q repository.Query) ([]repository.Row, error) {
	if err := checkIdentifiers(table); err != nil {
		return nil, err
	}

	var b strings.Builder
	var args []any

	b.WriteString("SELECT ")
	b.WriteString(table)
	b.WriteString(".*")
	if j := q.Join; j != nil {
		if err := checkIdentifiers(append([]string{j.Table, j.LocalKey, j.ForeignKey}, j.Columns...)...); err != nil {
			return nil, err
		}
		for _, col := range j.Columns {
			fmt.Fprintf(&b, ", %s.%s AS %s%s%s", j.Table, col, j.Table, joinSeparator, col)
		}
	}
	b.WriteString(" FROM ")
	b.WriteString(table)
	if j := q.Join; j != nil {
		kind := "LEFT"
		if len(j.Eq) > 0 {
			kind = "INNER"
		}
		fmt.Fprintf(&b, " %s JOIN %s ON %s.%s = %s.%s", kind, j.Table, j.Table, j.ForeignKey, table, j.LocalKey)
	}

	conds, condArgs, err := s.predicates(table, q.Eq, 0)
	if err != nil {
		return nil, err
	}
	args = append(args, condArgs...)
	if q.Join != nil {
		joinConds, joinArgs, err := s.predicates(q.Join.Table, q.Join.Eq, len(args))
		if err != nil {
			return nil, err
		}
		conds = append(conds, joinConds...)
		args = append(args, joinArgs...)
	}
	if len(conds) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(conds, " AND "))
	}

	if len(q.Order) > 0 {
		parts := make([]string, 0, len(q.Order))
		for _, o := range q.Order {
			if err := checkIdentifiers(o.Column); err != nil {
				return nil, err
			}
			dir := "ASC"
			if o.Desc {
				dir = "DESC"
			}
			parts = append(parts, fmt.Sprintf("%s.%s %s", table, o.Column, dir))
		}
		b.WriteString(" ORDER BY ")
		b.WriteString(strings.Join(parts, ", "))
	}
	if q.Limit > 0 {
		fmt.Fprintf(&b, " LIMIT %d", q.Limit)
	}

	rows, err := s.db.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select from %s: %w", table, err)
	}
	defer rows.Close()

	var joined string
	if q.Join != nil {
		joined = q.Join.Table
	}
	out, err := scanRows(rows, joined)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s rows: %w", table, err)
	}
	return out, nil
}

// Insert writes row into table and returns the stored row.
func (s *Store) Insert(ctx context.Context, table string, row repository.Row) (repository.Row, error) {
	if len(row) == 0 {
		return nil, fmt.Errorf("insert into %s with no columns: %w", table, repository.ErrInvalidInput)
	}
	cols := sortedKeys(row)
	if err := checkIdentifiers(append([]string{table}, cols...)...); err != nil {
		return nil, err
	}

	placeholders := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, col := range cols {
		placeholders[i] = s.dialect.Placeholder(i + 1)
		args[i] = row[col]
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING *",
		table, strings.Join(cols, ", "), strings.Join(placeholders, ", "))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, s.translate("insert into", table, err)
	}
	defer rows.Close()

	out, err := scanRows(rows, "")
	if err != nil {
		return nil, s.translate("insert into", table, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("failed to insert into %s: no row returned", table)
	}
	return out[0], nil
}

// Update sets values on every row of table matching eq.
func (s *Store) Update(ctx context.Context, table string, values repository.Row, eq map[string]any) (int64, error) {
	if len(values) == 0 || len(eq) == 0 {
		return 0, fmt.Errorf("update %s needs values and a predicate: %w", table, repository.ErrInvalidInput)
	}
	cols := sortedKeys(values)
	if err := checkIdentifiers(append([]string{table}, cols...)...); err != nil {
		return 0, err
	}

	sets := make([]string, len(cols))
	args := make([]any, 0, len(cols)+len(eq))
	for i, col := range cols {
		sets[i] = fmt.Sprintf("%s = %s", col, s.dialect.Placeholder(i+1))
		args = append(args, values[col])
	}
	conds, condArgs, err := s.predicates("", eq, len(args))
	if err != nil {
		return 0, err
	}
	args = append(args, condArgs...)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s", table, strings.Join(sets, ", "), strings.Join(conds, " AND "))
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, s.translate("update", table, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count updated %s rows: %w", table, err)
	}
	return n, nil
}

// Delete removes every row of table matching eq.
func (s *Store) Delete(ctx context.Context, table string, eq map[string]any) (int64, error) {
	if len(eq) == 0 {
		return 0, fmt.Errorf("delete from %s needs a predicate: %w", table, repository.ErrInvalidInput)
	}
	if err := checkIdentifiers(table); err != nil {
		return 0, err
	}
	conds, args, err := s.predicates("", eq, 0)
	if err != nil {
		return 0, err
	}

	query := fmt.Sprintf("DELETE FROM %s WHERE %s", table, strings.Join(conds, " AND "))
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, s.translate("delete from", table, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted %s rows: %w", table, err)
	}
	return n, nil
}

// predicates renders eq as "col = $n" terms, numbering placeholders after offset.
// A nil value renders as IS NULL.
func (s *Store) predicates(qualifier string, eq map[string]any, offset int) ([]string, []any, error) {
	cols := sortedKeys(eq)
	if err := checkIdentifiers(cols...); err != nil {
		return nil, nil, err
	}
	prefix := ""
	if qualifier != "" {
		prefix = qualifier + "."
	}

	conds := make([]string, 0, len(cols))
	var args []any
	for _, col := range cols {
		if eq[col] == nil {
			conds = append(conds, prefix+col+" IS NULL")
			continue
		}
		args = append(args, eq[col])
		conds = append(conds, fmt.Sprintf("%s%s = %s", prefix, col, s.dialect.Placeholder(offset+len(args))))
	}
	return conds, args, nil
}

func (s *Store) translate(op, table string, err error) error {
	switch {
	case s.dialect.IsUniqueViolation != nil && s.dialect.IsUniqueViolation(err):
		return fmt.Errorf("failed to %s %s: %w: %w", op, table, repository.ErrConflict, err)
	case s.dialect.IsForeignKeyViolation != nil && s.dialect.IsForeignKeyViolation(err):
		return fmt.Errorf("failed to %s %s: %w: %w", op, table, repository.ErrForeignKeyViolation, err)
	default:
		return fmt.Errorf("failed to %s %s: %w", op, table, err)
	}
}

func scanRows(rows *sql.Rows, joined string) ([]repository.Row, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out []repository.Row
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		row := make(repository.Row, len(cols))
		var nested repository.Row
		for i, col := range cols {
			v := normalize(values[i])
			if joined != "" && strings.HasPrefix(col, joined+joinSeparator) {
				if nested == nil {
					nested = repository.Row{}
				}
				nested[strings.TrimPrefix(col, joined+joinSeparator)] = v
				continue
			}
			row[col] = v
		}
		if nested != nil {
			row[joined] = nested
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// normalize maps driver values onto the shapes callers expect: text for
// byte slices and ISO-8601 strings for timestamps.
func normalize(v any) any {
	switch t := v.(type) {
	case []byte:
		return string(t)
	case time.Time:
		return t.UTC().Format(time.RFC3339Nano)
	default:
		return v
	}
}

func checkIdentifiers(names ...string) error {
	for _, name := range names {
		if !identifierPattern.MatchString(name) {
			return fmt.Errorf("identifier %q: %w", name, repository.ErrInvalidInput)
		}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
