package ports

import "context"

// SlotStore is a local key-value slot. Get returns an error wrapping
// domain.ErrSlotNotFound when nothing was stored under key.
type SlotStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
