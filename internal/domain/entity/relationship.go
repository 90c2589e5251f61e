// Package entity contains the core business objects of the project.
package entity

import "time"

// Relationship is a customer's subscription to interest notifications for a product.
type Relationship struct {
	ID         int64     `json:"relationship_id"` // Identity of the subscription record.
	ProductID  int64     `json:"product_id"`      // The product the customer is interested in.
	CustomerID int64     `json:"customer_id"`     // The subscribing customer.
	Created    time.Time `json:"created"`         // When the customer subscribed.
}

// CustomerRelationship is one subscriber of a product as returned by the
// per-product lookup.
type CustomerRelationship struct {
	CustomerID     int64     `json:"customer_id"`
	RelationshipID int64     `json:"relationship_id"`
	Created        time.Time `json:"created"`
}
