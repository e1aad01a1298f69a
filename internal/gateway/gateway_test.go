package gateway_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rpggio/corkboard/internal/domain/activity"
	"github.com/rpggio/corkboard/internal/domain/board"
	"github.com/rpggio/corkboard/internal/gateway"
	"github.com/rpggio/corkboard/internal/repository"
	"github.com/rpggio/corkboard/internal/repository/mocks"
	"github.com/rpggio/corkboard/internal/sqlite"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newGateway(t *testing.T) *gateway.Gateway {
	t.Helper()
	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Migrate())
	t.Cleanup(func() { db.Close() })
	return gateway.New(db.Store(), gateway.Options{Timeout: 5 * time.Second})
}

func ptr[T any](v T) *T { return &v }

func TestGateway_BoardsAndLists(t *testing.T) {
	ctx := context.Background()
	gw := newGateway(t)

	b, ok := gw.CreateBoard(ctx, "Roadmap", true)
	require.True(t, ok)
	require.NotEmpty(t, b.ID)
	require.True(t, b.IsPublic)
	require.False(t, b.CreatedAt.IsZero())

	got, ok := gw.GetBoard(ctx, b.ID)
	require.True(t, ok)
	require.Equal(t, "Roadmap", got.Title)

	missing, ok := gw.GetBoard(ctx, "nope")
	require.True(t, ok)
	require.Nil(t, missing)

	_, ok = gw.CreateList(ctx, b.ID, "Done", 1)
	require.True(t, ok)
	backlog, ok := gw.CreateList(ctx, b.ID, "Backlog", 0)
	require.True(t, ok)

	lists, ok := gw.ListLists(ctx, b.ID)
	require.True(t, ok)
	require.Len(t, lists, 2)
	require.Equal(t, "Backlog", lists[0].Title)
	require.Equal(t, "Done", lists[1].Title)

	require.True(t, gw.UpdateList(ctx, backlog.ID, board.ListPatch{Title: ptr("Ideas")}))
	require.False(t, gw.UpdateList(ctx, backlog.ID, board.ListPatch{}))
	require.False(t, gw.UpdateList(ctx, "missing", board.ListPatch{Title: ptr("x")}))

	require.True(t, gw.SoftDelete(ctx, board.KindList, backlog.ID))
	lists, ok = gw.ListLists(ctx, b.ID)
	require.True(t, ok)
	require.Len(t, lists, 1)
	trashed, ok := gw.TrashedLists(ctx, b.ID)
	require.True(t, ok)
	require.Len(t, trashed, 1)
	require.Equal(t, "Ideas", trashed[0].Title)
	require.True(t, trashed[0].Deleted)

	require.True(t, gw.Restore(ctx, board.KindList, backlog.ID, ptr(5)))
	lists, ok = gw.ListLists(ctx, b.ID)
	require.True(t, ok)
	require.Len(t, lists, 2)
	require.Equal(t, 5, lists[1].Position)
}

func TestGateway_BoardTrashIsWorkspaceWide(t *testing.T) {
	ctx := context.Background()
	gw := newGateway(t)

	first, _ := gw.CreateBoard(ctx, "First", false)
	second, _ := gw.CreateBoard(ctx, "Second", false)
	list, _ := gw.CreateList(ctx, first.ID, "Backlog", 0)

	require.True(t, gw.SoftDelete(ctx, board.KindBoard, first.ID))

	active, ok := gw.ListBoards(ctx)
	require.True(t, ok)
	require.Len(t, active, 1)
	require.Equal(t, second.ID, active[0].ID)

	trashed, ok := gw.TrashedBoards(ctx)
	require.True(t, ok)
	require.Len(t, trashed, 1)
	require.Equal(t, first.ID, trashed[0].ID)

	// Trashing a board leaves its lists' flags alone.
	lists, ok := gw.ListLists(ctx, first.ID)
	require.True(t, ok)
	require.Len(t, lists, 1)
	require.Equal(t, list.ID, lists[0].ID)
	require.False(t, lists[0].Deleted)
}

func TestGateway_CardsAndTrashScope(t *testing.T) {
	ctx := context.Background()
	gw := newGateway(t)

	b1, _ := gw.CreateBoard(ctx, "One", false)
	b2, _ := gw.CreateBoard(ctx, "Two", false)
	l1, _ := gw.CreateList(ctx, b1.ID, "Backlog", 0)
	l2, _ := gw.CreateList(ctx, b2.ID, "Backlog", 0)

	c1, ok := gw.CreateCard(ctx, l1.ID, "Write docs", "", 0)
	require.True(t, ok)
	require.Equal(t, "", c1.Description)
	c2, _ := gw.CreateCard(ctx, l2.ID, "Other", "x", 0)

	require.True(t, gw.UpdateCard(ctx, c1.ID, board.CardPatch{Description: ptr("outline")}))
	cards, ok := gw.ListCards(ctx, l1.ID)
	require.True(t, ok)
	require.Len(t, cards, 1)
	require.Equal(t, "outline", cards[0].Description)
	require.Equal(t, "Write docs", cards[0].Title)

	require.True(t, gw.SoftDelete(ctx, board.KindCard, c1.ID))
	require.True(t, gw.SoftDelete(ctx, board.KindCard, c2.ID))

	trashed, ok := gw.TrashedCards(ctx, b1.ID)
	require.True(t, ok)
	require.Len(t, trashed, 1)
	require.Equal(t, c1.ID, trashed[0].ID)
	require.Equal(t, "Write docs", trashed[0].Title)

	require.True(t, gw.HardDelete(ctx, board.KindCard, c1.ID))
	trashed, ok = gw.TrashedCards(ctx, b1.ID)
	require.True(t, ok)
	require.Empty(t, trashed)

	// Purging something already gone still reports success.
	require.True(t, gw.HardDelete(ctx, board.KindCard, c1.ID))
}

func TestGateway_Assignments(t *testing.T) {
	ctx := context.Background()
	gw := newGateway(t)

	b, _ := gw.CreateBoard(ctx, "Roadmap", false)
	l, _ := gw.CreateList(ctx, b.ID, "Backlog", 0)
	c, _ := gw.CreateCard(ctx, l.ID, "Task", "", 0)

	ana, result := gw.CreateUser(ctx, "ana")
	require.Equal(t, board.WriteApplied, result)
	_, result = gw.CreateUser(ctx, "ana")
	require.Equal(t, board.WriteDuplicate, result)
	bo, _ := gw.CreateUser(ctx, "bo")

	require.Equal(t, board.WriteApplied, gw.CreateAssignment(ctx, c.ID, ana.ID))
	require.Equal(t, board.WriteDuplicate, gw.CreateAssignment(ctx, c.ID, ana.ID))
	require.Equal(t, board.WriteApplied, gw.CreateAssignment(ctx, c.ID, bo.ID))
	require.Equal(t, board.WriteFailed, gw.CreateAssignment(ctx, c.ID, "ghost"))

	users, ok := gw.Assignees(ctx, c.ID)
	require.True(t, ok)
	require.Len(t, users, 2)
	require.ElementsMatch(t, []string{"ana", "bo"}, []string{users[0].Username, users[1].Username})

	require.True(t, gw.DeleteAssignment(ctx, c.ID, ana.ID))
	require.True(t, gw.DeleteAssignment(ctx, c.ID, ana.ID))
	users, ok = gw.Assignees(ctx, c.ID)
	require.True(t, ok)
	require.Len(t, users, 1)
	require.Equal(t, "bo", users[0].Username)

	all, ok := gw.ListUsers(ctx)
	require.True(t, ok)
	require.Len(t, all, 2)
	require.Equal(t, "ana", all[0].Username)
}

func TestGateway_StoreFailuresAreReportedNotReturned(t *testing.T) {
	ctx := context.Background()
	store := &mocks.Store{}
	boom := errors.New("connection reset")
	store.On("Select", mock.Anything, mock.Anything, mock.Anything).Return(nil, boom)
	store.On("Insert", mock.Anything, mock.Anything, mock.Anything).Return(nil, boom)
	store.On("Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(int64(0), boom)
	store.On("Delete", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), boom)

	gw := gateway.New(store, gateway.Options{})

	_, ok := gw.GetBoard(ctx, "b1")
	require.False(t, ok)
	_, ok = gw.ListLists(ctx, "b1")
	require.False(t, ok)
	_, ok = gw.CreateCard(ctx, "l1", "t", "", 0)
	require.False(t, ok)
	require.False(t, gw.UpdateCard(ctx, "c1", board.CardPatch{Title: ptr("x")}))
	require.False(t, gw.SoftDelete(ctx, board.KindCard, "c1"))
	require.False(t, gw.HardDelete(ctx, board.KindCard, "c1"))
	require.False(t, gw.DeleteAssignment(ctx, "c1", "u1"))
	require.Equal(t, board.WriteFailed, gw.CreateAssignment(ctx, "c1", "u1"))
	require.False(t, gw.SoftDelete(ctx, board.Kind("widget"), "w1"))
}

func TestGateway_UnparseableTimestampFallsBackToNow(t *testing.T) {
	ctx := context.Background()
	store := &mocks.Store{}
	store.On("Select", mock.Anything, "boards", mock.Anything).Return([]repository.Row{
		{"id": "b1", "title": "Roadmap", "is_public": int64(0), "deleted": int64(0), "created_at": "garbage"},
	}, nil)

	gw := gateway.New(store, gateway.Options{})
	before := time.Now()
	b, ok := gw.GetBoard(ctx, "b1")
	require.True(t, ok)
	require.False(t, b.CreatedAt.Before(before))
}

func TestActivityLog_LogAndList(t *testing.T) {
	ctx := context.Background()
	gw := newGateway(t)
	log := gw.ActivityLog()

	base := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	for i, typ := range []activity.ActivityType{activity.TypeCardCreated, activity.TypeCardMoved, activity.TypeCardCreated} {
		entry := &activity.ActivityEntry{
			BoardID:      "b1",
			EntityKind:   board.KindCard,
			EntityID:     "c1",
			ActivityType: typ,
			Summary:      string(typ),
			CreatedAt:    base.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, log.Log(ctx, entry))
		require.NotZero(t, entry.ID)
	}
	require.NoError(t, log.Log(ctx, &activity.ActivityEntry{BoardID: "b2", EntityKind: board.KindList, EntityID: "l1", ActivityType: activity.TypeListCreated, CreatedAt: base}))

	entries, err := log.List(ctx, activity.ListActivityOptions{BoardID: "b1"})
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.True(t, entries[0].CreatedAt.Equal(base.Add(2*time.Second)))

	typ := activity.TypeCardCreated
	entries, err = log.List(ctx, activity.ListActivityOptions{BoardID: "b1", ActivityType: &typ, Limit: 1})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, activity.TypeCardCreated, entries[0].ActivityType)
	require.Equal(t, board.KindCard, entries[0].EntityKind)
}
