//go:build tools

package tools

// Tracks the migration CLI in go.mod: go run github.com/pressly/goose/v3/cmd/goose

import (
	_ "github.com/pressly/goose/v3/cmd/goose"
)
