package order_test

import (
	"testing"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func historyOf(t *testing.T, kinds ...order.EventType) order.History {
	t.Helper()
	events := make([]order.Event, 0, len(kinds))
	for i, kind := range kinds {
		events = append(events, event(t, kind, "10", "2", int64(i+1)))
	}
	h, err := order.NewHistory(events)
	require.NoError(t, err)
	return h
}

func TestCheckHistory(t *testing.T) {
	testCases := []struct {
		name     string
		next     order.EventType
		history  []order.EventType
		failedOn string
	}{
		{"cancel before delivery", order.Cancel, []order.EventType{order.Create, order.Approve}, ""},
		{"cancel after delivery", order.Cancel, []order.EventType{order.Create, order.Approve, order.Process, order.Deliver}, "Deliver"},
		{"decline before approval", order.Decline, []order.EventType{order.Create}, ""},
		{"decline after approval", order.Decline, []order.EventType{order.Create, order.Approve, order.ProducerRequestChange, order.ApproveChangeRequest}, "Approve"},
		{"approve once", order.Approve, []order.EventType{order.Create}, ""},
		{"approve twice", order.Approve, []order.EventType{order.Create, order.Approve}, "Approve"},
		{"process needs approval", order.Process, []order.EventType{order.Create}, "Approve"},
		{"process once", order.Process, []order.EventType{order.Create, order.Approve, order.Process}, "Process"},
		{"process after approval", order.Process, []order.EventType{order.Create, order.Approve}, ""},
		{"deliver needs process", order.Deliver, []order.EventType{order.Create, order.Approve}, "Process"},
		{"deliver needs approval first", order.Deliver, []order.EventType{order.Create}, "Approve"},
		{"deliver once", order.Deliver, []order.EventType{order.Create, order.Approve, order.Process, order.Deliver}, "Deliver"},
		{"consumer change after delivery", order.ConsumerRequestChange, []order.EventType{order.Create, order.Approve, order.Process, order.Deliver}, "Deliver"},
		{"producer change before approval", order.ProducerRequestChange, []order.EventType{order.Create}, "Approve"},
		{"update after approval", order.Update, []order.EventType{order.Create, order.Approve}, "Approve"},
		{"update before approval", order.Update, []order.EventType{order.Create, order.Update}, ""},
		{"dispute without delivery", order.Dispute, []order.EventType{order.Create, order.Approve}, "Deliver"},
		{"dispute after delivery", order.Dispute, []order.EventType{order.Create, order.Approve, order.Process, order.Deliver}, ""},
		{"no requirements for resolve", order.ResolveDispute, []order.EventType{order.Create}, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := order.CheckHistory(tc.next, historyOf(t, tc.history...))

			if tc.failedOn == "" {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, errs.ErrHistoryPreconditionFailed)
			var precondition *errs.HistoryPreconditionFailedError
			require.ErrorAs(t, err, &precondition)
			assert.Equal(t, tc.failedOn, precondition.HistoricalType)
			assert.Equal(t, tc.next.String(), precondition.EventType)
		})
	}
}

func TestCheckHistory_ReportsLowestCodeFirst(t *testing.T) {
	// Approve, Process and Deliver are all present; Approve has the lowest code.
	h := historyOf(t, order.Create, order.Approve, order.Process, order.Deliver)

	for range 20 {
		err := order.CheckHistory(order.Approve, h)

		var precondition *errs.HistoryPreconditionFailedError
		require.ErrorAs(t, err, &precondition)
		assert.Equal(t, "Approve", precondition.HistoricalType)
		assert.False(t, precondition.Required)
	}
}
