package orderservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/order"
	"dashboard/internal/core/ports"
	"dashboard/internal/pkg/errs"
)

const (
	defaultTimeout = 10 * time.Second

	// defaultDelayMessage is sent with notifyDelay when the operator did not
	// type a custom one.
	defaultDelayMessage = "Your order will be delayed"
)

var _ ports.OrderServiceClient = (*Client)(nil)

// Client talks to the backend order service over HTTP. Every failure is
// classified into the errs taxonomy, so callers can distinguish a rejected
// credential from a backend outage by errors.Is alone.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an order service client for the given base URL.
// A non-positive timeout falls back to the default.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// ListOrders fetches one page of a bucket listing.
func (c *Client) ListOrders(
	ctx context.Context, bucket order.Bucket, page kernel.Page, token string,
) (ports.OrdersPage, error) {
	if err := bucket.Validate(); err != nil {
		return ports.OrdersPage{}, err
	}
	if err := page.Validate(); err != nil {
		return ports.OrdersPage{}, err
	}

	operation := "list-" + bucket.String()
	url := c.baseURL + listPath(bucket) +
		"?limit=" + strconv.Itoa(page.Limit()) + "&skip=" + strconv.Itoa(page.Skip())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ports.OrdersPage{}, errs.NewTransportErrorWithCause(operation, err)
	}
	setHeaders(req, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.OrdersPage{}, errs.NewTransportErrorWithCause(operation, err)
	}
	defer closeBody(resp)

	if err = classifyStatus(operation, resp.StatusCode); err != nil {
		return ports.OrdersPage{}, err
	}

	var body listResponseDTO
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ports.OrdersPage{}, errs.NewTransportErrorWithCause(operation, err)
	}

	fallbackStatus := bucket.Statuses()[0]
	orders := make([]*order.Order, 0, len(body.Data.Orders))
	for _, dto := range body.Data.Orders {
		o, err := dto.toDomain(fallbackStatus)
		if err != nil {
			return ports.OrdersPage{}, errs.NewValueIsInvalidErrorWithCause("orders", err)
		}
		orders = append(orders, o)
	}

	return ports.OrdersPage{
		Orders:   orders,
		Total:    body.Pagination.Total,
		Limit:    body.Pagination.Limit,
		Skip:     body.Pagination.Skip,
		Returned: body.Pagination.Returned,
	}, nil
}

// SubmitTransition posts a lifecycle transition request for one order.
func (c *Client) SubmitTransition(
	ctx context.Context, id kernel.OrderID, t order.Transition, payload ports.TransitionPayload, token string,
) (ports.TransitionReceipt, error) {
	if err := id.Validate(); err != nil {
		return ports.TransitionReceipt{}, err
	}
	if err := t.Validate(); err != nil {
		return ports.TransitionReceipt{}, err
	}

	operation := t.String()

	body, err := transitionBody(t, payload)
	if err != nil {
		return ports.TransitionReceipt{}, errs.NewTransportErrorWithCause(operation, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+transitionPath(id, t), body)
	if err != nil {
		return ports.TransitionReceipt{}, errs.NewTransportErrorWithCause(operation, err)
	}
	setHeaders(req, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.TransitionReceipt{}, errs.NewTransportErrorWithCause(operation, err)
	}
	defer closeBody(resp)

	if resp.StatusCode == http.StatusNotFound {
		return ports.TransitionReceipt{}, errs.NewObjectNotFoundError("order", id.String())
	}
	if err = classifyStatus(operation, resp.StatusCode); err != nil {
		return ports.TransitionReceipt{}, err
	}

	var result transitionResponseDTO
	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil && err != io.EOF {
		return ports.TransitionReceipt{}, errs.NewTransportErrorWithCause(operation, err)
	}
	if result.Success != nil && !*result.Success {
		return ports.TransitionReceipt{}, errs.NewTransportErrorWithCause(operation,
			fmt.Errorf("service reported failure: %s", result.Message))
	}

	return ports.TransitionReceipt{Message: result.Message}, nil
}

func listPath(bucket order.Bucket) string {
	switch bucket {
	case order.BucketPending:
		return "/pending-orders"
	case order.BucketCurrent:
		return "/orders"
	case order.BucketFinished:
		return "/finished-orders"
	case order.BucketCancelled:
		return "/cancelled-orders"
	case order.BucketArchived:
		return "/archived-orders"
	default:
		return ""
	}
}

func transitionPath(id kernel.OrderID, t order.Transition) string {
	if t == order.TransitionArchiveRejected {
		return "/archive-rejected-order/" + id.String()
	}

	segment := ""
	switch t {
	case order.TransitionAccept:
		segment = "accept"
	case order.TransitionDecline:
		segment = "decline"
	case order.TransitionMarkReady:
		segment = "mark-ready"
	case order.TransitionNotifyDelay:
		segment = "notify-delay"
	case order.TransitionArchive:
		segment = "archive"
	}
	return "/orders/" + id.String() + "/" + segment
}

// transitionBody builds the request body. Only decline and notifyDelay
// carry one.
func transitionBody(t order.Transition, payload ports.TransitionPayload) (io.Reader, error) {
	var fields map[string]string
	switch t {
	case order.TransitionDecline:
		fields = map[string]string{"reason": payload.Reason}
	case order.TransitionNotifyDelay:
		message := payload.Message
		if message == "" {
			message = defaultDelayMessage
		}
		fields = map[string]string{"message": message}
	default:
		return nil, nil
	}

	encoded, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(encoded), nil
}

func setHeaders(req *http.Request, token string) {
	req.Header.Set("Accept", "application/json")
	if req.Method == http.MethodPost {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// classifyStatus maps a non-2xx response into the error taxonomy.
func classifyStatus(operation string, statusCode int) error {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return nil
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return errs.NewAuthRejectedError(operation, statusCode)
	default:
		return errs.NewTransportError(operation, statusCode)
	}
}

func closeBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
