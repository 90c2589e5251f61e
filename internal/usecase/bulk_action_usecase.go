package usecase

import (
	"context"
	"net/url"
	"strconv"

	"interest/internal/domain/constants"
)

// BulkStatus is the terminal state of one bulk action request
type BulkStatus int

const (
	// BulkIdle means the request was not a bulk unsubscribe for this page
	BulkIdle BulkStatus = iota
	// BulkBadNonce means the anti-forgery token was missing or invalid
	BulkBadNonce
	// BulkNoIDs means no relationship was selected
	BulkNoIDs
	// BulkSuccess means the selected relationships were processed
	BulkSuccess
)

// Redirect error codes
const (
	ErrCodeBadNonce = "bad_nonce"
	ErrCodeNoIDs    = "no_ids"
)

// BulkRequest is one submission of the list form
type BulkRequest struct {
	Action          string
	PageHook        string
	NonceValid      bool
	RelationshipIDs []string
	CustomerIDs     []string
	ProductIDs      []string
}

// BulkOutcome is the result of processing a BulkRequest
type BulkOutcome struct {
	Status BulkStatus

	// Count is the number of relationships deleted without a storage error
	Count int

	// Failed lists relationship IDs whose deletion failed
	Failed []int64
}

// Redirect reports whether the outcome ends the request with a redirect
func (o *BulkOutcome) Redirect() bool {
	return o != nil && o.Status != BulkIdle
}

// RedirectArgs returns the status query arguments of the redirect, nil when idle
func (o *BulkOutcome) RedirectArgs() url.Values {
	if !o.Redirect() {
		return nil
	}

	args := url.Values{}
	switch o.Status {
	case BulkBadNonce:
		args.Set("success", "0")
		args.Set("errcode", ErrCodeBadNonce)
	case BulkNoIDs:
		args.Set("success", "0")
		args.Set("errcode", ErrCodeNoIDs)
	case BulkSuccess:
		args.Set("success", "1")
		args.Set("action", "unsubscribed")
		args.Set("count", strconv.Itoa(o.Count))
	}

	return args
}

// IsBulkUnsubscribe reports whether action selects the unsubscribe bulk action
func IsBulkUnsubscribe(action string) bool {
	return action == constants.BulkActionUnsubscribe
}

// BulkActionUsecase processes list form submissions
type BulkActionUsecase interface {
	// Process runs the guards in order, deletes the selected relationships and invalidates caches
	Process(ctx context.Context, req *BulkRequest) (*BulkOutcome, error)
}
