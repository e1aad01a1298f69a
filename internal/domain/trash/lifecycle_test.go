package trash_test

import (
	"context"
	"testing"

	"github.com/rpggio/corkboard/internal/domain/board"
	"github.com/rpggio/corkboard/internal/domain/trash"
	"github.com/rpggio/corkboard/internal/gateway/mocks"
	"github.com/stretchr/testify/require"
)

func TestValidateTransition(t *testing.T) {
	cases := []struct {
		from, to trash.State
		ok       bool
	}{
		{trash.StateActive, trash.StateTrashed, true},
		{trash.StateTrashed, trash.StateActive, true},
		{trash.StateTrashed, trash.StatePurged, true},
		{trash.StateActive, trash.StatePurged, false},
		{trash.StateActive, trash.StateActive, false},
		{trash.StateTrashed, trash.StateTrashed, false},
		{trash.StatePurged, trash.StateActive, false},
		{trash.StatePurged, trash.StateTrashed, false},
	}
	for _, tc := range cases {
		err := trash.ValidateTransition(tc.from, tc.to)
		if tc.ok {
			require.NoError(t, err, "%s -> %s", tc.from, tc.to)
		} else {
			require.ErrorIs(t, err, trash.ErrInvalidTransition, "%s -> %s", tc.from, tc.to)
			require.ErrorIs(t, err, board.ErrPrecondition)
		}
	}
}

func TestLifecycle_RoundTrip(t *testing.T) {
	ctx := context.Background()
	gw := &mocks.Gateway{}
	gw.On("SoftDelete", ctx, board.KindCard, "c1").Return(true).Once()
	pos := 4
	gw.On("Restore", ctx, board.KindCard, "c1", &pos).Return(true).Once()
	gw.On("SoftDelete", ctx, board.KindCard, "c1").Return(true).Once()
	gw.On("HardDelete", ctx, board.KindCard, "c1").Return(true).Once()

	lc := trash.NewLifecycle(gw, nil)
	lc.Track(board.KindCard, "c1", "l1", trash.StateActive)

	entry, err := lc.SendToTrash(ctx, board.KindCard, "c1")
	require.NoError(t, err)
	require.Equal(t, trash.StateTrashed, entry.State)

	entry, err = lc.Restore(ctx, trash.RestoreRequest{Kind: board.KindCard, ID: "c1", Position: &pos})
	require.NoError(t, err)
	require.Equal(t, trash.StateActive, entry.State)
	require.Equal(t, "l1", entry.ParentID)

	_, err = lc.SendToTrash(ctx, board.KindCard, "c1")
	require.NoError(t, err)
	entry, err = lc.Purge(ctx, board.KindCard, "c1")
	require.NoError(t, err)
	require.Equal(t, trash.StatePurged, entry.State)

	// Purged is terminal.
	_, err = lc.Restore(ctx, trash.RestoreRequest{Kind: board.KindCard, ID: "c1"})
	require.ErrorIs(t, err, trash.ErrInvalidTransition)

	gw.AssertExpectations(t)
}

func TestLifecycle_PurgeActiveMakesNoRemoteCall(t *testing.T) {
	ctx := context.Background()
	gw := &mocks.Gateway{}

	lc := trash.NewLifecycle(gw, nil)
	lc.Track(board.KindList, "l1", "b1", trash.StateActive)

	_, err := lc.Purge(ctx, board.KindList, "l1")
	require.ErrorIs(t, err, trash.ErrInvalidTransition)
	require.ErrorIs(t, err, board.ErrPrecondition)

	_, err = lc.Restore(ctx, trash.RestoreRequest{Kind: board.KindList, ID: "l1"})
	require.ErrorIs(t, err, trash.ErrInvalidTransition)

	gw.AssertNotCalled(t, "HardDelete")
	gw.AssertNotCalled(t, "Restore")
	require.Empty(t, gw.Calls)

	entry, ok := lc.Lookup(board.KindList, "l1")
	require.True(t, ok)
	require.Equal(t, trash.StateActive, entry.State)
}

func TestLifecycle_UntrackedAndUnknown(t *testing.T) {
	ctx := context.Background()
	gw := &mocks.Gateway{}
	lc := trash.NewLifecycle(gw, nil)

	_, err := lc.SendToTrash(ctx, board.KindCard, "ghost")
	require.ErrorIs(t, err, trash.ErrUntracked)

	_, err = lc.SendToTrash(ctx, board.Kind("widget"), "w1")
	require.ErrorIs(t, err, trash.ErrUnknownKind)
	require.Empty(t, gw.Calls)
}

func TestLifecycle_TransportFailureKeepsState(t *testing.T) {
	ctx := context.Background()
	gw := &mocks.Gateway{}
	gw.On("SoftDelete", ctx, board.KindBoard, "b1").Return(false)

	lc := trash.NewLifecycle(gw, nil)
	lc.Track(board.KindBoard, "b1", "", trash.StateActive)

	_, err := lc.SendToTrash(ctx, board.KindBoard, "b1")
	require.ErrorIs(t, err, board.ErrTransport)

	entry, _ := lc.Lookup(board.KindBoard, "b1")
	require.Equal(t, trash.StateActive, entry.State)
}

func TestLifecycle_TrashListingsTrackEntries(t *testing.T) {
	ctx := context.Background()
	gw := &mocks.Gateway{}
	gw.On("TrashedBoards", ctx).Return([]board.Board{{ID: "b9", Deleted: true}}, true)
	gw.On("TrashedLists", ctx, "b1").Return([]board.List{{ID: "l9", BoardID: "b1", Deleted: true}}, true)
	gw.On("TrashedCards", ctx, "b1").Return([]board.Card{{ID: "c9", ListID: "l1", Deleted: true}}, true)
	gw.On("TrashedCards", ctx, "b2").Return(nil, false)

	lc := trash.NewLifecycle(gw, nil)

	boards, err := lc.TrashedBoards(ctx)
	require.NoError(t, err)
	require.Len(t, boards, 1)
	_, err = lc.TrashedLists(ctx, "b1")
	require.NoError(t, err)
	_, err = lc.TrashedCards(ctx, "b1")
	require.NoError(t, err)
	_, err = lc.TrashedCards(ctx, "b2")
	require.ErrorIs(t, err, board.ErrTransport)

	entry, ok := lc.Lookup(board.KindBoard, "b9")
	require.True(t, ok)
	require.Equal(t, trash.StateTrashed, entry.State)
	entry, ok = lc.Lookup(board.KindList, "l9")
	require.True(t, ok)
	require.Equal(t, "b1", entry.ParentID)
	entry, ok = lc.Lookup(board.KindCard, "c9")
	require.True(t, ok)
	require.Equal(t, "l1", entry.ParentID)
}
