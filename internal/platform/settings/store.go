// Package settings persists small user preferences such as the chosen
// language. Values are plain strings keyed by name.
package settings

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("setting not found")

type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
