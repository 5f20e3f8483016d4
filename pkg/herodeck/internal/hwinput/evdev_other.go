//go:build !linux

package hwinput

import (
	"context"
	"log/slog"
)

func Start(ctx context.Context, opts Options, logger *slog.Logger) (<-chan Event, error) {
	return nil, ErrUnsupported
}
