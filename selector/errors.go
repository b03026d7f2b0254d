// SPDX-License-Identifier: MIT
// Package: cssb/selector
//
// errors.go — sentinel errors for the selector package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Builder methods attach context via selectorErrorf and `%w`.
//   • The package MUST NOT panic at runtime; every violation is a value.
//
// AI-Hints (practical guidance for implementers and LLMs):
//   • Wrap with the method token: selectorErrorf(MethodTag, "...: %w", ErrOrderViolation).
//   • Return ONLY these sentinels for grammar violations (order/occurrence).
//   • Do NOT stringify fragment values into sentinel definitions.
//   • Check with errors.Is in tests and production code; avoid string comparisons.

package selector

import (
	"errors"
	"fmt"
)

// ErrOrderViolation indicates that a fragment was appended out of the
// fixed grammar order: its rank is strictly lower than the rank of the
// most recently appended fragment (e.g. a Tag after a Class).
// Classification: Validation error (grammar order).
// The chain is fatal: later fragment calls are no-ops and Build reports
// this sentinel; the caller must restart from a facade factory.
// Usage: if errors.Is(err, selector.ErrOrderViolation) { /* reorder calls */ }.
var ErrOrderViolation = errors.New("selector: fragment out of order")

// ErrOccurrenceViolation indicates that a singleton fragment kind (Tag,
// ID, or PseudoElement) was appended a second time at the rank of the
// immediately preceding fragment. Repeatable kinds (Class, Attr,
// PseudoClass) never trigger this.
// The chain is fatal in the same way as ErrOrderViolation.
// Usage: if errors.Is(err, selector.ErrOccurrenceViolation) { /* drop the duplicate */ }.
var ErrOccurrenceViolation = errors.New("selector: singleton fragment repeated")

// selectorErrorf wraps an inner error message with the given method context.
// It returns an error of the form "<Method>: <formatted message>".
//
// Parameters:
//   - method: canonical method name, e.g. MethodTag.
//   - format: format string for the inner message; use %w to keep the
//     sentinel reachable through errors.Is.
//   - args:   values for the format placeholders.
//
// Complexity: O(len(format) + Σlen(args)), negligible for our use.
func selectorErrorf(method, format string, args ...interface{}) error {
	// Prefix with the method name; the outer %w keeps the inner chain
	// (and through it the sentinel) reachable via errors.Is.
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}

// --- Implementation Notes ----------------------------------------------------
//
// 1) Wrapping style (required):
//      selectorErrorf(MethodID, "rank %d after rank %d: %w", r, last, ErrOrderViolation)
//    This preserves the sentinel for errors.Is while adding a deterministic
//    context prefix "ID: rank 2 after rank 3: ...".
//
// 2) Priority (tie-break guidance):
//    • ErrOrderViolation       — the order check runs first (r < lastRank).
//    • ErrOccurrenceViolation  — only when order passes with equal rank on
//      a singleton kind. The two conditions are mutually exclusive.
//
// 3) Testing guidance:
//    Use table tests asserting errors.Is(err, ErrX). Avoid matching error
//    strings. Provide edge cases: duplicate Tag, Class before Tag, a long
//    valid chain, Build-after-Build.
//
// 4) Compatibility:
//    These names and messages are stable and form part of the public
//    contract. Do not rename or change messages.
