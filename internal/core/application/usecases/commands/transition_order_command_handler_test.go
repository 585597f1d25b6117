package commands_test

import (
	"context"
	"testing"

	"dashboard/internal/core/application/usecases/commands"
	"dashboard/internal/core/domain/model/order"
	"dashboard/internal/core/domain/services"
	"dashboard/internal/core/ports"
	"dashboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func seedViews(t *testing.T, id string, status order.Status) *services.ViewIndex {
	t.Helper()
	views := services.NewViewIndex()
	bucket, ok := order.BucketOf(status)
	require.True(t, ok)
	require.NoError(t, views.StorePage(bucket, mustPage(t, 10, 0),
		[]*order.Order{newTestOrder(t, id, status)}, 1))
	return views
}

func mustTransitionCommand(t *testing.T, id string, tr order.Transition, reason string) commands.TransitionOrderCommand {
	t.Helper()
	cmd, err := commands.NewTransitionOrderCommand(mustOrderID(t, id), tr, reason, "")
	require.NoError(t, err)
	return cmd
}

func TestTransitionOrderCommandHandler(t *testing.T) {
	t.Run("should submit an allowed transition and update the views", func(t *testing.T) {
		views := seedViews(t, "o1", order.StatusPending)
		sessions, _ := newTestSessions(t, true)
		client := &MockOrderServiceClient{}
		sink := &MockNotificationSink{}

		startedCall := sink.On("Started", "accept", "o1").Return()
		submitCall := client.On("SubmitTransition",
			mock.Anything, mustOrderID(t, "o1"), order.TransitionAccept,
			ports.TransitionPayload{}, "tok-123",
		).Return(ports.TransitionReceipt{Message: "Order accepted"}, nil)
		succeededCall := sink.On("Succeeded", "accept", "o1", "Order accepted").Return()
		mock.InOrder(startedCall, submitCall, succeededCall)

		handler, err := commands.NewTransitionOrderCommandHandler(views, sessions, client, sink)
		require.NoError(t, err)

		updated, err := handler.Handle(context.Background(), mustTransitionCommand(t, "o1", order.TransitionAccept, ""))

		require.NoError(t, err)
		assert.Equal(t, order.StatusInProgress, updated.Status())
		client.AssertExpectations(t)
		sink.AssertExpectations(t)

		status, err := views.StatusOf(mustOrderID(t, "o1"))
		require.NoError(t, err)
		assert.Equal(t, order.StatusInProgress, status)
	})

	t.Run("should fail without a network call for an order never cached", func(t *testing.T) {
		views := services.NewViewIndex()
		sessions, _ := newTestSessions(t, true)
		client := &MockOrderServiceClient{}
		sink := &MockNotificationSink{}
		sink.On("Started", "accept", "ghost").Return()
		sink.On("Failed", "accept", "ghost", mock.Anything).Return()

		handler, err := commands.NewTransitionOrderCommandHandler(views, sessions, client, sink)
		require.NoError(t, err)

		_, err = handler.Handle(context.Background(), mustTransitionCommand(t, "ghost", order.TransitionAccept, ""))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
		client.AssertNotCalled(t, "SubmitTransition",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		sink.AssertExpectations(t)
	})

	t.Run("should fail without a network call on a forbidden transition", func(t *testing.T) {
		views := seedViews(t, "o1", order.StatusFinished)
		sessions, _ := newTestSessions(t, true)
		client := &MockOrderServiceClient{}
		sink := &MockNotificationSink{}
		sink.On("Started", "decline", "o1").Return()
		sink.On("Failed", "decline", "o1", mock.Anything).Return()

		handler, err := commands.NewTransitionOrderCommandHandler(views, sessions, client, sink)
		require.NoError(t, err)

		_, err = handler.Handle(context.Background(), mustTransitionCommand(t, "o1", order.TransitionDecline, "no"))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		client.AssertNotCalled(t, "SubmitTransition",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should fail without a network call when the session is anonymous", func(t *testing.T) {
		views := seedViews(t, "o1", order.StatusPending)
		sessions, _ := newTestSessions(t, false)
		client := &MockOrderServiceClient{}
		sink := &MockNotificationSink{}
		sink.On("Started", "accept", "o1").Return()
		sink.On("Failed", "accept", "o1", mock.Anything).Return()

		handler, err := commands.NewTransitionOrderCommandHandler(views, sessions, client, sink)
		require.NoError(t, err)

		_, err = handler.Handle(context.Background(), mustTransitionCommand(t, "o1", order.TransitionAccept, ""))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
		client.AssertNotCalled(t, "SubmitTransition",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should end the session when the credential is rejected", func(t *testing.T) {
		views := seedViews(t, "o1", order.StatusPending)
		sessions, listener := newTestSessions(t, true)
		listener.On("SessionEnded", "credential rejected on accept").Return()

		client := &MockOrderServiceClient{}
		client.On("SubmitTransition",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything,
		).Return(ports.TransitionReceipt{}, errs.NewAuthRejectedError("accept", 401))
		sink := &MockNotificationSink{}
		sink.On("Started", "accept", "o1").Return()
		sink.On("Failed", "accept", "o1", mock.Anything).Return()

		handler, err := commands.NewTransitionOrderCommandHandler(views, sessions, client, sink)
		require.NoError(t, err)

		_, err = handler.Handle(context.Background(), mustTransitionCommand(t, "o1", order.TransitionAccept, ""))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrAuthRejected)
		assert.False(t, sessions.Authenticated())
		listener.AssertExpectations(t)

		status, err := views.StatusOf(mustOrderID(t, "o1"))
		require.NoError(t, err)
		assert.Equal(t, order.StatusPending, status)
	})

	t.Run("should leave the cached status untouched on a transport failure", func(t *testing.T) {
		views := seedViews(t, "o1", order.StatusPending)
		sessions, _ := newTestSessions(t, true)
		client := &MockOrderServiceClient{}
		client.On("SubmitTransition",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything,
		).Return(ports.TransitionReceipt{}, errs.NewTransportError("accept", 503))
		sink := &MockNotificationSink{}
		sink.On("Started", "accept", "o1").Return()
		sink.On("Failed", "accept", "o1", mock.Anything).Return()

		handler, err := commands.NewTransitionOrderCommandHandler(views, sessions, client, sink)
		require.NoError(t, err)

		_, err = handler.Handle(context.Background(), mustTransitionCommand(t, "o1", order.TransitionAccept, ""))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrTransportFailure)
		assert.True(t, sessions.Authenticated())

		status, err := views.StatusOf(mustOrderID(t, "o1"))
		require.NoError(t, err)
		assert.Equal(t, order.StatusPending, status)
	})

	t.Run("should pass the decline reason to the order service", func(t *testing.T) {
		views := seedViews(t, "o1", order.StatusPending)
		sessions, _ := newTestSessions(t, true)
		client := &MockOrderServiceClient{}
		client.On("SubmitTransition",
			mock.Anything, mustOrderID(t, "o1"), order.TransitionDecline,
			ports.TransitionPayload{Reason: "out of stock"}, "tok-123",
		).Return(ports.TransitionReceipt{}, nil)
		sink := &MockNotificationSink{}
		sink.On("Started", "decline", "o1").Return()
		sink.On("Succeeded", "decline", "o1", "").Return()

		handler, err := commands.NewTransitionOrderCommandHandler(views, sessions, client, sink)
		require.NoError(t, err)

		updated, err := handler.Handle(context.Background(),
			mustTransitionCommand(t, "o1", order.TransitionDecline, "out of stock"))

		require.NoError(t, err)
		assert.Equal(t, order.StatusDeclined, updated.Status())
		client.AssertExpectations(t)
	})
}
