package core

import "context"

type PropertyStore interface {
	// Get decodes the value stored under key into value, leaving value
	// untouched when the key is absent.
	Get(ctx context.Context, key string, value any) error
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
}
