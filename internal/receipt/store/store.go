// Package store holds submitted receipts for the lifetime of the process.
package store

import (
	"context"

	"tally/internal/receipt"
)

// Store is interface-driven to keep the domain logic testable and to allow
// swapping in-memory or external persistence without rewiring business code.
// The store owns identifier generation: every key it hands out is unique and
// was produced by an Insert call.
type Store interface {
	// Insert associates a fresh identifier with the given already-validated
	// receipt and returns it. Append-only; there is no update or delete.
	Insert(ctx context.Context, rec receipt.Receipt) (string, error)
	// Find returns the receipt stored under id, or sentinel.ErrNotFound.
	Find(ctx context.Context, id string) (receipt.Receipt, error)
}
