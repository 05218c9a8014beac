//go:build tools

package tools

// This file tracks the CLI tools declared in the go.mod tool block.
// It is not compiled into the binary.
//
// - github.com/matryer/moq: go generate ./... runs `go tool moq` to regenerate *_mock_test.go
// - github.com/pressly/goose/v3/cmd/goose: ad-hoc migrations; cmd/migrate covers the usual path
