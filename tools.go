//go:build tools

package tools

// mockery is used as an installed binary (not via go run), so no import is
// needed here. Run mockery from the module root to regenerate the mocks in
// pkg/fileio/mocks (see .mockery.yaml).
