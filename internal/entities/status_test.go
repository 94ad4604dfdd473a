package entities_test

import (
	"testing"

	"github.com/webshop-oms/order-service/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []entities.Status{
	entities.StatusPending,
	entities.StatusConfirmed,
	entities.StatusProcessing,
	entities.StatusShipping,
	entities.StatusDelivered,
	entities.StatusCancelled,
	entities.StatusReturned,
	entities.StatusRefunded,
}

func TestCanTransition_MatchesTable(t *testing.T) {
	wantEdges := map[entities.Status][]entities.Status{
		entities.StatusPending:    {entities.StatusConfirmed, entities.StatusCancelled},
		entities.StatusConfirmed:  {entities.StatusProcessing, entities.StatusCancelled},
		entities.StatusProcessing: {entities.StatusShipping, entities.StatusCancelled},
		entities.StatusShipping:   {entities.StatusDelivered, entities.StatusCancelled},
		entities.StatusDelivered:  {entities.StatusReturned},
		entities.StatusReturned:   {entities.StatusRefunded, entities.StatusCancelled},
		entities.StatusCancelled:  {},
		entities.StatusRefunded:   {},
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			want := false
			for _, s := range wantEdges[from] {
				if s == to {
					want = true
				}
			}
			assert.Equal(t, want, entities.CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestCanTransition_NoSelfLoops(t *testing.T) {
	for _, s := range allStatuses {
		assert.False(t, entities.CanTransition(s, s), "self loop on %s", s)
	}
}

func TestIsTerminal(t *testing.T) {
	for _, s := range allStatuses {
		switch s {
		case entities.StatusCancelled, entities.StatusRefunded:
			assert.True(t, entities.IsTerminal(s), "%s", s)
		default:
			assert.False(t, entities.IsTerminal(s), "%s", s)
		}
	}
}

func TestLegalNextStatuses_ReturnsCopy(t *testing.T) {
	next := entities.LegalNextStatuses(entities.StatusPending)
	require.Equal(t, []entities.Status{entities.StatusConfirmed, entities.StatusCancelled}, next)

	next[0] = entities.StatusRefunded
	assert.Equal(t,
		[]entities.Status{entities.StatusConfirmed, entities.StatusCancelled},
		entities.LegalNextStatuses(entities.StatusPending),
	)
}

func TestParseStatus(t *testing.T) {
	s, err := entities.ParseStatus("shipping")
	require.NoError(t, err)
	assert.Equal(t, entities.StatusShipping, s)

	_, err = entities.ParseStatus("SHIPPED")
	assert.Error(t, err)
}

func TestCancellable(t *testing.T) {
	for _, s := range allStatuses {
		want := s == entities.StatusPending || s == entities.StatusConfirmed
		assert.Equal(t, want, entities.Cancellable(s), "%s", s)
	}
}
