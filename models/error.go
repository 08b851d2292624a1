package models

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that an entity is absent from both stores.
var ErrNotFound = errors.New("not found")

// RemoteError wraps a network, transport or rejected-write failure from the
// authoritative store. Write paths always surface it to the caller.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string { return fmt.Sprintf("remote %s: %v", e.Op, e.Err) }
func (e *RemoteError) Unwrap() error { return e.Err }

// LocalCacheError wraps a local persistence failure. The cache is disposable,
// so these are logged and suppressed on write-through and cache-fill paths;
// they only surface when the cache was the sole store consulted.
type LocalCacheError struct {
	Op  string
	Err error
}

func (e *LocalCacheError) Error() string { return fmt.Sprintf("local cache %s: %v", e.Op, e.Err) }
func (e *LocalCacheError) Unwrap() error { return e.Err }

// SubscriptionError is the terminal error of a live stream. No snapshots are
// delivered after it.
type SubscriptionError struct {
	Err error
}

func (e *SubscriptionError) Error() string { return fmt.Sprintf("subscription: %v", e.Err) }
func (e *SubscriptionError) Unwrap() error { return e.Err }

// ErrorMessageResponse returns the error message response struct
type ErrorMessageResponse struct {
	Response MessageError
}

// MessageError contains the inner details for the error message response
type MessageError struct {
	Message string
	Error   string
}
