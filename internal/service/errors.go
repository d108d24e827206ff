package service

import "fmt"

// CredentialLookupError means the user's provider credentials could not be resolved.
type CredentialLookupError struct {
	UserID string
	Err    error
}

func (e *CredentialLookupError) Error() string {
	return fmt.Sprintf("failed to retrieve M-Pesa credentials: %v", e.Err)
}

func (e *CredentialLookupError) Unwrap() error { return e.Err }

// ProviderRequestError means the M-Pesa API call failed or returned an unusable response.
type ProviderRequestError struct {
	Err error
}

func (e *ProviderRequestError) Error() string {
	return fmt.Sprintf("M-Pesa API request failed: %v", e.Err)
}

func (e *ProviderRequestError) Unwrap() error { return e.Err }

// PersistenceError means the bulk insert of synced transactions failed.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to insert transactions: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
