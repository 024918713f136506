package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// OrderStatusProcessing is the fixed initial status assigned to every order.
// No further transitions are performed by this service.
const OrderStatusProcessing = "processing"

// Order documents are semi-structured: callers attach arbitrary fields and
// the service only guarantees the server-assigned createdAt and status.
// By convention the frontend includes a userEmail field so the order shows
// up under GET /api/orders/:email.
type Order = bson.M

// NewOrder copies the caller-supplied document and stamps the server-owned
// fields, discarding any createdAt or status the caller may have sent.
func NewOrder(payload map[string]interface{}, now time.Time) Order {
	doc := make(Order, len(payload)+2)
	for k, v := range payload {
		doc[k] = v
	}
	doc["createdAt"] = now
	doc["status"] = OrderStatusProcessing
	return doc
}
