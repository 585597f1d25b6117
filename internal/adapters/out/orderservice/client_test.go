package orderservice_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dashboard/internal/adapters/out/orderservice"
	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/order"
	"dashboard/internal/core/ports"
	"dashboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustClient(t *testing.T, baseURL string) *orderservice.Client {
	t.Helper()
	client, err := orderservice.NewClient(baseURL, 2*time.Second)
	require.NoError(t, err)
	return client
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

func TestClientListOrders(t *testing.T) {
	t.Run("should fetch a pending page with the bearer token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/pending-orders", r.URL.Path)
			assert.Equal(t, "20", r.URL.Query().Get("limit"))
			assert.Equal(t, "40", r.URL.Query().Get("skip"))
			assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

			_, _ = w.Write([]byte(`{
				"status": "ok",
				"data": {"orders": [{
					"_id": "68a1f0c2d94b3a0012ef77a1",
					"customer_info": {"name": "Anna", "surname": "Nowak", "email": "anna@example.com"},
					"delivery_method": "delivery",
					"delivery_address": {"street": "Polna", "number": "12", "code": "00-001", "city": "Warszawa"},
					"items": [{"_id": "i1", "product_name": "Poster A2", "price": 49.90, "values": {"paper": "matte"}}],
					"total": 49.90,
					"submitted_at": "2025-11-03T09:30:00Z",
					"is_student": true,
					"payment_intent_id": "pi_123",
					"payment_status": "succeeded",
					"upload_status": "uploaded"
				}]},
				"pagination": {"total": 41, "limit": 20, "skip": 40, "returned": 1}
			}`))
		}))
		defer server.Close()

		result, err := mustClient(t, server.URL).ListOrders(
			context.Background(), order.BucketPending, mustPage(t, 20, 40), "tok-123")

		require.NoError(t, err)
		assert.Equal(t, 41, result.Total)
		assert.Equal(t, 1, result.Returned)
		require.Len(t, result.Orders, 1)

		o := result.Orders[0]
		assert.Equal(t, "68a1f0c2d94b3a0012ef77a1", o.ID().String())
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Equal(t, order.PaymentSucceeded, o.PaymentStatus())
		assert.Equal(t, order.UploadUploaded, o.UploadStatus())
		assert.Equal(t, "Anna", o.Details().Customer.Name)
		assert.Equal(t, "delivery", o.Details().Delivery.Method)
		require.NotNil(t, o.Details().Delivery.Address)
		assert.Equal(t, "Warszawa", o.Details().Delivery.Address.City)
		require.Len(t, o.Details().Items, 1)
		assert.Equal(t, "matte", o.Details().Items[0].Values["paper"])
		assert.True(t, o.Details().IsStudent)
	})

	t.Run("should keep the explicit status of archived records", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/archived-orders", r.URL.Path)
			_, _ = w.Write([]byte(`{
				"status": "ok",
				"data": {"orders": [
					{"_id": "o1", "status": "archived_rejected", "delivery_method": "pickup",
					 "total": 10, "submitted_at": "2025-11-03T09:30:00Z"},
					{"_id": "o2", "delivery_method": "pickup",
					 "total": 12, "submitted_at": "2025-11-03T10:00:00Z"}
				]},
				"pagination": {"total": 2, "limit": 50, "skip": 0, "returned": 2}
			}`))
		}))
		defer server.Close()

		result, err := mustClient(t, server.URL).ListOrders(
			context.Background(), order.BucketArchived, mustPage(t, 50, 0), "tok-123")

		require.NoError(t, err)
		require.Len(t, result.Orders, 2)
		assert.Equal(t, order.StatusArchivedRejected, result.Orders[0].Status())
		assert.Equal(t, order.StatusArchived, result.Orders[1].Status())
	})

	t.Run("should send no authorization header without a token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/orders", r.URL.Path)
			assert.Empty(t, r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(`{"status": "ok", "data": {"orders": []},
				"pagination": {"total": 0, "limit": 50, "skip": 0, "returned": 0}}`))
		}))
		defer server.Close()

		result, err := mustClient(t, server.URL).ListOrders(
			context.Background(), order.BucketCurrent, mustPage(t, 50, 0), "")

		require.NoError(t, err)
		assert.Empty(t, result.Orders)
	})

	t.Run("should classify 401 as a credential rejection", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		_, err := mustClient(t, server.URL).ListOrders(
			context.Background(), order.BucketPending, mustPage(t, 50, 0), "expired")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrAuthRejected)
	})

	t.Run("should classify a server error as a transport failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		_, err := mustClient(t, server.URL).ListOrders(
			context.Background(), order.BucketPending, mustPage(t, 50, 0), "tok")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrTransportFailure)
	})

	t.Run("should classify an unreachable service as a transport failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		server.Close()

		_, err := mustClient(t, server.URL).ListOrders(
			context.Background(), order.BucketCurrent, mustPage(t, 50, 0), "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrTransportFailure)
	})

	t.Run("should reject a page containing a malformed order", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"status": "ok", "data": {"orders": [
				{"_id": "", "total": 10, "submitted_at": "2025-11-03T09:30:00Z"}
			]}, "pagination": {"total": 1, "limit": 50, "skip": 0, "returned": 1}}`))
		}))
		defer server.Close()

		_, err := mustClient(t, server.URL).ListOrders(
			context.Background(), order.BucketPending, mustPage(t, 50, 0), "tok")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestClientSubmitTransition(t *testing.T) {
	t.Run("should post accept without a body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/orders/o1/accept", r.URL.Path)
			assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(`{"success": true, "message": "Order accepted"}`))
		}))
		defer server.Close()

		receipt, err := mustClient(t, server.URL).SubmitTransition(
			context.Background(), mustOrderID(t, "o1"), order.TransitionAccept,
			ports.TransitionPayload{}, "tok-123")

		require.NoError(t, err)
		assert.Equal(t, "Order accepted", receipt.Message)
	})

	t.Run("should post the decline reason", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/orders/o1/decline", r.URL.Path)

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "out of stock", body["reason"])
			_, _ = w.Write([]byte(`{"success": true}`))
		}))
		defer server.Close()

		_, err := mustClient(t, server.URL).SubmitTransition(
			context.Background(), mustOrderID(t, "o1"), order.TransitionDecline,
			ports.TransitionPayload{Reason: "out of stock"}, "tok-123")

		require.NoError(t, err)
	})

	t.Run("should post the default delay message when none is given", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/orders/o1/notify-delay", r.URL.Path)

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "Your order will be delayed", body["message"])
			_, _ = w.Write([]byte(`{"success": true}`))
		}))
		defer server.Close()

		_, err := mustClient(t, server.URL).SubmitTransition(
			context.Background(), mustOrderID(t, "o1"), order.TransitionNotifyDelay,
			ports.TransitionPayload{}, "tok-123")

		require.NoError(t, err)
	})

	t.Run("should use the dedicated route for archiveRejected", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/archive-rejected-order/o1", r.URL.Path)
			_, _ = w.Write([]byte(`{"success": true}`))
		}))
		defer server.Close()

		_, err := mustClient(t, server.URL).SubmitTransition(
			context.Background(), mustOrderID(t, "o1"), order.TransitionArchiveRejected,
			ports.TransitionPayload{}, "tok-123")

		require.NoError(t, err)
	})

	t.Run("should classify 404 as object not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		_, err := mustClient(t, server.URL).SubmitTransition(
			context.Background(), mustOrderID(t, "ghost"), order.TransitionAccept,
			ports.TransitionPayload{}, "tok-123")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should classify 403 as a credential rejection", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		_, err := mustClient(t, server.URL).SubmitTransition(
			context.Background(), mustOrderID(t, "o1"), order.TransitionAccept,
			ports.TransitionPayload{}, "tok-123")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrAuthRejected)
	})

	t.Run("should treat an explicit failure body as a transport failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"success": false, "message": "order already processed"}`))
		}))
		defer server.Close()

		_, err := mustClient(t, server.URL).SubmitTransition(
			context.Background(), mustOrderID(t, "o1"), order.TransitionAccept,
			ports.TransitionPayload{}, "tok-123")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrTransportFailure)
		assert.Contains(t, err.Error(), "order already processed")
	})

	t.Run("should accept an empty response body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		receipt, err := mustClient(t, server.URL).SubmitTransition(
			context.Background(), mustOrderID(t, "o1"), order.TransitionArchive,
			ports.TransitionPayload{}, "tok-123")

		require.NoError(t, err)
		assert.Empty(t, receipt.Message)
	})
}

func TestNewClient(t *testing.T) {
	t.Run("should require a base URL", func(t *testing.T) {
		_, err := orderservice.NewClient("", time.Second)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
