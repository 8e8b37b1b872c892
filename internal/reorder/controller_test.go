package reorder

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whitecaroot/careers-builder/internal/models"
)

func sections(ids ...string) []models.Section {
	out := make([]models.Section, len(ids))
	for i, id := range ids {
		out[i] = models.Section{ID: id, Title: "Section " + id, OrderIndex: i}
	}
	return out
}

func TestMoveForward(t *testing.T) {
	var persisted []string
	ctrl := NewController(func(ctx context.Context, ids []string) error {
		persisted = ids
		return nil
	}, nil)
	ctrl.Replace(sections("a", "b", "c"))

	// Drag the first section onto the last one.
	require.NoError(t, ctrl.Move(context.Background(), "a", "c"))
	assert.Equal(t, []string{"b", "c", "a"}, ctrl.IDs())
	assert.Equal(t, []string{"b", "c", "a"}, persisted)
}

func TestMoveBackward(t *testing.T) {
	ctrl := NewController(func(ctx context.Context, ids []string) error {
		return nil
	}, nil)
	ctrl.Replace(sections("a", "b", "c"))

	require.NoError(t, ctrl.Move(context.Background(), "c", "a"))
	assert.Equal(t, []string{"c", "a", "b"}, ctrl.IDs())
}

func TestMovePreservesSet(t *testing.T) {
	ctrl := NewController(func(ctx context.Context, ids []string) error {
		return nil
	}, nil)
	ctrl.Replace(sections("a", "b", "c", "d", "e"))

	require.NoError(t, ctrl.Move(context.Background(), "b", "d"))

	got := ctrl.IDs()
	assert.Len(t, got, 5)
	seen := make(map[string]bool)
	for _, id := range got {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	// Untouched sections keep their relative order.
	assert.Equal(t, []string{"a", "c", "d", "b", "e"}, got)
}

func TestMoveNoops(t *testing.T) {
	calls := 0
	ctrl := NewController(func(ctx context.Context, ids []string) error {
		calls++
		return nil
	}, nil)
	ctrl.Replace(sections("a", "b", "c"))

	// Dropped outside any target.
	require.NoError(t, ctrl.Move(context.Background(), "a", ""))
	// Dropped onto itself.
	require.NoError(t, ctrl.Move(context.Background(), "b", "b"))
	// Ids that are no longer listed.
	require.NoError(t, ctrl.Move(context.Background(), "ghost", "a"))
	require.NoError(t, ctrl.Move(context.Background(), "a", "ghost"))

	assert.Equal(t, []string{"a", "b", "c"}, ctrl.IDs())
	assert.Zero(t, calls, "no-op gestures must not persist")
}

func TestMoveRollsBackOnPersistFailure(t *testing.T) {
	boom := errors.New("persist failed")
	ctrl := NewController(func(ctx context.Context, ids []string) error {
		// The optimistic order was sent before the failure.
		assert.Equal(t, []string{"b", "c", "a"}, ids)
		return boom
	}, nil)
	ctrl.Replace(sections("a", "b", "c"))

	err := ctrl.Move(context.Background(), "a", "c")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"a", "b", "c"}, ctrl.IDs(), "failed gesture must restore the prior order")
}

func TestMoveAfterRollbackStartsClean(t *testing.T) {
	fail := true
	ctrl := NewController(func(ctx context.Context, ids []string) error {
		if fail {
			return errors.New("persist failed")
		}
		return nil
	}, nil)
	ctrl.Replace(sections("a", "b", "c"))

	require.Error(t, ctrl.Move(context.Background(), "a", "c"))
	fail = false
	require.NoError(t, ctrl.Move(context.Background(), "b", "c"))
	assert.Equal(t, []string{"a", "c", "b"}, ctrl.IDs())
}
