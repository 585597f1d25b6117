package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/order"
	"dashboard/internal/core/domain/model/session"
	"dashboard/internal/core/domain/services"
	"dashboard/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderServiceClient struct{ mock.Mock }

func (m *MockOrderServiceClient) ListOrders(
	ctx context.Context, bucket order.Bucket, page kernel.Page, token string,
) (ports.OrdersPage, error) {
	args := m.Called(ctx, bucket, page, token)
	return args.Get(0).(ports.OrdersPage), args.Error(1)
}

func (m *MockOrderServiceClient) SubmitTransition(
	ctx context.Context, id kernel.OrderID, t order.Transition, payload ports.TransitionPayload, token string,
) (ports.TransitionReceipt, error) {
	args := m.Called(ctx, id, t, payload, token)
	return args.Get(0).(ports.TransitionReceipt), args.Error(1)
}

type MockCredentialService struct{ mock.Mock }

func (m *MockCredentialService) Login(ctx context.Context, email, password string) (session.Credential, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(session.Credential), args.Error(1)
}

func (m *MockCredentialService) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockCredentialService) Me(ctx context.Context, token string) (session.User, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(session.User), args.Error(1)
}

type MockNotificationSink struct{ mock.Mock }

func (m *MockNotificationSink) Started(operation, orderID string) {
	m.Called(operation, orderID)
}

func (m *MockNotificationSink) Succeeded(operation, orderID, message string) {
	m.Called(operation, orderID, message)
}

func (m *MockNotificationSink) Failed(operation, orderID string, err error) {
	m.Called(operation, orderID, err)
}

type MockTokenStore struct{ mock.Mock }

func (m *MockTokenStore) Save(ctx context.Context, cred session.Credential) error {
	args := m.Called(ctx, cred)
	return args.Error(0)
}

func (m *MockTokenStore) Load(ctx context.Context) (session.Credential, bool, error) {
	args := m.Called(ctx)
	return args.Get(0).(session.Credential), args.Bool(1), args.Error(2)
}

func (m *MockTokenStore) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockSessionListener struct{ mock.Mock }

func (m *MockSessionListener) SessionEnded(reason string) {
	m.Called(reason)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustOrderID(t *testing.T, value string) kernel.OrderID {
	t.Helper()
	id, err := kernel.NewOrderID(value)
	require.NoError(t, err)
	return id
}

func mustPage(t *testing.T, limit, skip int) kernel.Page {
	t.Helper()
	page, err := kernel.NewPage(limit, skip)
	require.NoError(t, err)
	return page
}

func newTestOrder(t *testing.T, id string, status order.Status) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		mustOrderID(t, id),
		status,
		order.PaymentSucceeded,
		order.UploadUploaded,
		75.00,
		time.Date(2025, 11, 3, 9, 30, 0, 0, time.UTC),
		order.Details{Customer: order.CustomerInfo{Name: "Anna", Surname: "Nowak"}},
	)
	require.NoError(t, err)
	return o
}

func testCredential(t *testing.T) session.Credential {
	t.Helper()
	cred, err := session.NewCredential("tok-123", session.User{
		ID:    "u1",
		Email: "admin@example.com",
		Role:  session.RoleAdmin,
	})
	require.NoError(t, err)
	return cred
}

// newTestSessions builds a session guard over mocks, optionally with an
// established session. The listener mock is returned for rejection checks.
func newTestSessions(t *testing.T, authenticated bool) (*services.SessionGuard, *MockSessionListener) {
	t.Helper()

	store := &MockTokenStore{}
	store.On("Save", mock.Anything, mock.Anything).Return(nil).Maybe()
	store.On("Clear", mock.Anything).Return(nil).Maybe()

	listener := &MockSessionListener{}
	views := services.NewViewIndex()

	sessions, err := services.NewSessionGuard(store, views, listener, testLogger())
	require.NoError(t, err)
	if authenticated {
		require.NoError(t, sessions.Establish(context.Background(), testCredential(t)))
	}
	return sessions, listener
}
