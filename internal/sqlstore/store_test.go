package sqlstore_test

import (
	"context"
	"testing"

	"github.com/rpggio/corkboard/internal/repository"
	"github.com/rpggio/corkboard/internal/sqlite"
	"github.com/rpggio/corkboard/internal/sqlstore"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *sqlstore.Store {
	t.Helper()
	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Migrate())
	t.Cleanup(func() { db.Close() })
	return db.Store()
}

func TestStore_InsertReturnsDefaults(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	row, err := s.Insert(ctx, "cards", repository.Row{"id": "c1", "list_id": "l1", "title": "Draft", "position": 0})
	require.NoError(t, err)
	require.Equal(t, "c1", row.String("id"))
	require.Equal(t, "", row.String("description"))
	require.False(t, row.Bool("deleted"))
	require.NotEmpty(t, row.String("created_at"))
}

func TestStore_SelectFiltersAndOrders(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	for i, title := range []string{"b", "a", "c"} {
		_, err := s.Insert(ctx, "cards", repository.Row{"id": title, "list_id": "l1", "title": title, "position": 2 - i})
		require.NoError(t, err)
	}
	_, err := s.Insert(ctx, "cards", repository.Row{"id": "x", "list_id": "l2", "title": "x", "position": 0})
	require.NoError(t, err)

	rows, err := s.Select(ctx, "cards", repository.Query{
		Eq:    map[string]any{"list_id": "l1", "deleted": false},
		Order: []repository.Order{{Column: "position"}},
	})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, []string{"c", "a", "b"}, []string{rows[0].String("id"), rows[1].String("id"), rows[2].String("id")})

	rows, err = s.Select(ctx, "cards", repository.Query{
		Order: []repository.Order{{Column: "position", Desc: true}},
		Limit: 1,
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, 2, rows[0].Int("position"))
}

func TestStore_InnerJoinFiltersOnJoinedTable(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	_, err := s.Insert(ctx, "lists", repository.Row{"id": "l1", "board_id": "b1", "title": "Backlog", "position": 0})
	require.NoError(t, err)
	_, err = s.Insert(ctx, "lists", repository.Row{"id": "l2", "board_id": "b2", "title": "Other", "position": 0})
	require.NoError(t, err)
	_, err = s.Insert(ctx, "cards", repository.Row{"id": "c1", "list_id": "l1", "title": "Mine", "position": 0, "deleted": true})
	require.NoError(t, err)
	_, err = s.Insert(ctx, "cards", repository.Row{"id": "c2", "list_id": "l2", "title": "Theirs", "position": 0, "deleted": true})
	require.NoError(t, err)

	rows, err := s.Select(ctx, "cards", repository.Query{
		Eq: map[string]any{"deleted": true},
		Join: &repository.Join{
			Table:      "lists",
			LocalKey:   "list_id",
			ForeignKey: "id",
			Columns:    []string{"board_id", "title"},
			Eq:         map[string]any{"board_id": "b1"},
		},
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "c1", rows[0].String("id"))
	require.Equal(t, "Mine", rows[0].String("title"))
	require.Equal(t, "Backlog", rows[0].Nested("lists").String("title"))
}

func TestStore_ConstraintErrors(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	_, err := s.Insert(ctx, "users", repository.Row{"id": "u1", "username": "ana"})
	require.NoError(t, err)

	_, err = s.Insert(ctx, "users", repository.Row{"id": "u2", "username": "ana"})
	require.ErrorIs(t, err, repository.ErrConflict)

	_, err = s.Insert(ctx, "card_assignments", repository.Row{"card_id": "missing", "user_id": "u1"})
	require.ErrorIs(t, err, repository.ErrForeignKeyViolation)
}

func TestStore_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	_, err := s.Insert(ctx, "boards", repository.Row{"id": "b1", "title": "Roadmap"})
	require.NoError(t, err)

	n, err := s.Update(ctx, "boards", repository.Row{"title": "Plan", "deleted": true}, map[string]any{"id": "b1"})
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	n, err = s.Update(ctx, "boards", repository.Row{"title": "Nope"}, map[string]any{"id": "missing"})
	require.NoError(t, err)
	require.Equal(t, int64(0), n)

	rows, err := s.Select(ctx, "boards", repository.Query{Eq: map[string]any{"id": "b1"}})
	require.NoError(t, err)
	require.Equal(t, "Plan", rows[0].String("title"))
	require.True(t, rows[0].Bool("deleted"))

	n, err = s.Delete(ctx, "boards", map[string]any{"id": "b1"})
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
}

func TestStore_RejectsUnsafeInput(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	_, err := s.Select(ctx, "boards; DROP TABLE boards", repository.Query{})
	require.ErrorIs(t, err, repository.ErrInvalidInput)

	_, err = s.Insert(ctx, "boards", repository.Row{"Title": "x"})
	require.ErrorIs(t, err, repository.ErrInvalidInput)

	_, err = s.Delete(ctx, "boards", nil)
	require.ErrorIs(t, err, repository.ErrInvalidInput)

	_, err = s.Update(ctx, "boards", repository.Row{"title": "x"}, nil)
	require.ErrorIs(t, err, repository.ErrInvalidInput)
}

func TestStore_NullPredicate(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	_, err := s.Insert(ctx, "boards", repository.Row{"id": "b1", "title": "Roadmap"})
	require.NoError(t, err)

	rows, err := s.Select(ctx, "boards", repository.Query{Eq: map[string]any{"id": nil}})
	require.NoError(t, err)
	require.Empty(t, rows)
}
