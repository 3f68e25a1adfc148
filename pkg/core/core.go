// Package core re-exports the scanning engine as a small stable API surface
// for programs embedding leakgate. The aliases can be replaced by decoupled
// structs later without breaking callers.
package core

import (
	"github.com/leakgate/leakgate/internal/engine"
	"github.com/leakgate/leakgate/internal/rules"
	"github.com/leakgate/leakgate/internal/types"
)

type Config = engine.Config
type Result = engine.Result
type Finding = types.Finding

// Scan is the stable entrypoint for other programs.
func Scan(cfg Config) (Result, error) {
	return engine.Scan(cfg)
}

// RuleIDs returns the built-in rule IDs in registry order.
func RuleIDs() []string { return rules.Default().IDs() }
