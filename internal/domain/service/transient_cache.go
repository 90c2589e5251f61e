package service

import (
	"context"
	"strconv"
	"time"

	"interest/internal/domain/constants"
	"interest/internal/errors"
)

// ErrCacheMiss is returned by TransientCache.Get when the key is absent.
var ErrCacheMiss = errors.New("cache: key is missing")

// TransientCache is a time-boxed key-value store for recomputable lookups.
type TransientCache interface {
	// Get loads the value stored at key into dst or returns ErrCacheMiss.
	Get(ctx context.Context, key string, dst any) error

	// Set stores value at key for ttl. A zero ttl uses the cache default.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error

	// Delete invalidates key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// ProductsByCustomerKey is the cache key of the products a customer subscribed to.
func ProductsByCustomerKey(customerID int64) string {
	return constants.CacheKeyProductsByCustomer + strconv.FormatInt(customerID, 10)
}

// CustomersByProductKey is the cache key of the subscribers of a product.
func CustomersByProductKey(productID int64) string {
	return constants.CacheKeyCustomersByProduct + strconv.FormatInt(productID, 10)
}
