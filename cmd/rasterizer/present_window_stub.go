//go:build !cgo

package main

import (
	"context"
	"errors"
)

func runWindow(_ context.Context, _ *scene, _ Config) error {
	return errors.New("window presenter requires cgo (build with CGO_ENABLED=1)")
}
