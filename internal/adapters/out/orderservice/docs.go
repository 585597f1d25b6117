// Package orderservice implements the OrderServiceClient port over the
// backend order service's HTTP API: one list route per bucket and one
// transition route per lifecycle operation.
package orderservice
