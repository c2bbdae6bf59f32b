package order

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wellywell/shopsync/internal/order/mocks"
	"github.com/wellywell/shopsync/internal/types"
)

func TestUpsertOutcomes(t *testing.T) {

	ctx := context.Background()
	incoming := types.Order{ExternalID: "ext-1", Status: "new"}
	existing := &types.Order{ID: 5, ExternalID: "ext-1", Status: "old"}

	t.Run("creates when unknown", func(t *testing.T) {
		store := mocks.NewStore(t)
		store.EXPECT().GetOrderByExternalID(ctx, "ext-1").Return(nil, nil).Once()
		store.EXPECT().CreateOrder(ctx, incoming).Return(&types.Order{ID: 1}, nil).Once()

		outcome, err := NewUpserter(store).Upsert(ctx, incoming, true)

		assert.NoError(t, err)
		assert.Equal(t, types.OutcomeCreated, outcome)
	})

	t.Run("updates when known", func(t *testing.T) {
		store := mocks.NewStore(t)
		store.EXPECT().GetOrderByExternalID(ctx, "ext-1").Return(existing, nil).Once()
		store.EXPECT().UpdateOrderByExternalID(ctx, "ext-1", incoming).Return(existing, nil).Once()

		outcome, err := NewUpserter(store).Upsert(ctx, incoming, true)

		assert.NoError(t, err)
		assert.Equal(t, types.OutcomeUpdated, outcome)
	})

	t.Run("skips when known and updates disabled", func(t *testing.T) {
		store := mocks.NewStore(t)
		store.EXPECT().GetOrderByExternalID(ctx, "ext-1").Return(existing, nil).Once()

		outcome, err := NewUpserter(store).Upsert(ctx, incoming, false)

		assert.NoError(t, err)
		assert.Equal(t, types.OutcomeSkipped, outcome)
	})

	t.Run("wraps store errors", func(t *testing.T) {
		store := mocks.NewStore(t)
		storeErr := errors.New("connection reset")
		store.EXPECT().GetOrderByExternalID(ctx, "ext-1").Return(nil, storeErr).Once()

		_, err := NewUpserter(store).Upsert(ctx, incoming, true)

		var persistenceErr *PersistenceError
		assert.ErrorAs(t, err, &persistenceErr)
		assert.Equal(t, "ext-1", persistenceErr.ExternalID)
		assert.ErrorIs(t, err, storeErr)
	})
}

func TestRefresh(t *testing.T) {

	ctx := context.Background()
	incoming := types.Order{ExternalID: "ext-2", Status: "finished"}

	t.Run("updates known order", func(t *testing.T) {
		store := mocks.NewStore(t)
		store.EXPECT().GetOrderByExternalID(ctx, "ext-2").Return(&types.Order{ID: 7}, nil).Once()
		store.EXPECT().UpdateOrderByExternalID(ctx, "ext-2", incoming).Return(&types.Order{ID: 7}, nil).Once()

		outcome, err := NewUpserter(store).Refresh(ctx, incoming)

		assert.NoError(t, err)
		assert.Equal(t, types.OutcomeUpdated, outcome)
	})

	t.Run("skips unknown order", func(t *testing.T) {
		store := mocks.NewStore(t)
		store.EXPECT().GetOrderByExternalID(ctx, "ext-2").Return(nil, nil).Once()

		outcome, err := NewUpserter(store).Refresh(ctx, incoming)

		assert.NoError(t, err)
		assert.Equal(t, types.OutcomeSkipped, outcome)
	})
}
