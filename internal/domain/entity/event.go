package entity

// Interest event actions.
const (
	InterestActionSubscribed   = "subscribed"
	InterestActionUnsubscribed = "unsubscribed"
)

// InterestEvent is published after subscriptions are created or removed.
type InterestEvent struct {
	RequestID       string  `json:"request_id,omitempty"`
	Action          string  `json:"action" validate:"required,oneof=subscribed unsubscribed"`
	RelationshipIDs []int64 `json:"relationship_ids,omitempty"`
	CustomerIDs     []int64 `json:"customer_ids,omitempty"`
	ProductIDs      []int64 `json:"product_ids,omitempty"`
}

// CartItem is one line of a completed order.
type CartItem struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"gte=0"`
}

// OrderCompletedEvent is delivered to the worker when a customer completes checkout.
// Guest orders carry a zero CustomerID.
type OrderCompletedEvent struct {
	OrderID    int64      `json:"order_id" validate:"required,gt=0"`
	CustomerID int64      `json:"customer_id" validate:"gte=0"`
	Items      []CartItem `json:"items" validate:"dive"`
}
