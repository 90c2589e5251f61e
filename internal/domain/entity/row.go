package entity

import "time"

// Row is the flattened view of one subscription in the admin list.
// It is rebuilt on every render and never persisted.
type Row struct {
	ID          int64     `json:"id"` // relationship ID
	ProductID   int64     `json:"product_id"`
	ProductName string    `json:"product_name"`
	ProductSlug string    `json:"product_slug,omitempty"`
	CustomerID  int64     `json:"customer_id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email"`
	SignupDate  time.Time `json:"signup_date"`
}
