package repository

import (
	"context"

	"interest/internal/domain/entity"
	"interest/internal/errors"
)

// ErrCustomerNotFound is returned when no user profile exists for a customer ID.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository resolves customer profiles.
type CustomerRepository interface {
	// FindByID returns the profile of a customer or ErrCustomerNotFound.
	FindByID(ctx context.Context, id int64) (*entity.Customer, error)
}
