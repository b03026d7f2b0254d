// SPDX-License-Identifier: MIT
// Package: cssb/selector
//
// builder.go — the Builder value and the monotonic-rank append engine.
//
// Design contract (strict):
//   - One Builder per chain. Builders are allocated by the facade
//     factories in api.go; nothing is ever stored at package level.
//   - The grammar check is a state machine with a single piece of
//     memory, lastRank. No backtracking, no lookahead: rank comparison
//     IS the entire grammar.
//   - Fail-stop with no partial mutation: a rejected fragment leaves
//     text and lastRank exactly as they were; the violation is latched
//     in err and every later fragment call returns immediately.
//   - Build is a one-shot destructive read. It returns the accumulated
//     text (or the latched violation) and resets the instance to the
//     zero state either way.
//
// AI-Hints (practical):
//   - Chains are linear: b := selector.Tag("a").Class("x"); s, err := b.Build().
//   - Use Err() to inspect a chain mid-flight without consuming it.
//   - Never share one *Builder between goroutines or interleaved chains;
//     isolation is by ownership, not by locking.

package selector

import "strings"

// Builder accumulates one selector under construction. It holds the
// rendered fragment text, the rank of the last accepted fragment, and a
// latched violation, if any. The zero value is ready to use, but chains
// normally start from a facade factory (Tag, ID, Class, ...).
//
// A Builder is mutable state owned exclusively by its chain: it must
// not be shared across goroutines or reused after Build without
// restarting from a factory.
type Builder struct {
	// text is the ordered concatenation of every accepted fragment.
	text strings.Builder

	// lastRank is the rank of the most recently accepted fragment;
	// NoRank until the first append. It is non-decreasing for the life
	// of the chain.
	lastRank int

	// err latches the first grammar violation; once set, every fragment
	// method is a no-op and Build reports it.
	err error
}

// append runs the grammar state machine for one fragment of kind k
// carrying value, mutating the builder only on success.
//
// Checks, in order:
//  1. order:      k's rank must not be lower than lastRank;
//  2. occurrence: equal rank is allowed only for repeatable kinds.
//
// Returns the receiver for chaining in all cases.
// Complexity: O(len(value)); O(1) beyond the text append.
func (b *Builder) append(k Kind, value string) *Builder {
	// A latched violation makes the chain inert; preserve the first error.
	if b.err != nil {
		return b
	}

	r := k.rank()

	// Order check: a fragment may never follow a higher-ranked one.
	if r < b.lastRank {
		b.err = selectorErrorf(k.method(), "rank %d cannot follow rank %d: %w",
			r, b.lastRank, ErrOrderViolation)
		return b
	}

	// Occurrence check: repeating a rank is reserved for repeatable kinds.
	if r == b.lastRank && k.singleton() {
		b.err = selectorErrorf(k.method(), "%s appended twice: %w", k, ErrOccurrenceViolation)
		return b
	}

	// Accept: append the rendered fragment and advance the rank cursor.
	b.text.WriteString(k.render(value))
	b.lastRank = r

	return b
}

// Tag appends a bare element-name fragment (rank 1, singleton).
// The value is inserted verbatim: Tag("div") contributes "div".
func (b *Builder) Tag(value string) *Builder {
	return b.append(KindTag, value)
}

// ID appends an identifier fragment (rank 2, singleton).
// ID("main") contributes "#main".
func (b *Builder) ID(value string) *Builder {
	return b.append(KindID, value)
}

// Class appends a class fragment (rank 3, repeatable).
// Class("editable") contributes ".editable"; consecutive Class calls
// are permitted in any number.
func (b *Builder) Class(value string) *Builder {
	return b.append(KindClass, value)
}

// Attr appends an attribute fragment (rank 4, repeatable).
// Attr(`href$=".png"`) contributes `[href$=".png"]`; the bracketed
// content is not validated.
func (b *Builder) Attr(value string) *Builder {
	return b.append(KindAttr, value)
}

// PseudoClass appends a pseudo-class fragment (rank 5, repeatable).
// PseudoClass("focus") contributes ":focus".
func (b *Builder) PseudoClass(value string) *Builder {
	return b.append(KindPseudoClass, value)
}

// PseudoElement appends a pseudo-element fragment (rank 6, singleton).
// PseudoElement("before") contributes "::before".
func (b *Builder) PseudoElement(value string) *Builder {
	return b.append(KindPseudoElement, value)
}

// Err reports the latched grammar violation, or nil for a healthy
// chain. Unlike Build it does not consume the builder, so it is safe
// for mid-chain inspection.
// Complexity: O(1).
func (b *Builder) Err() error {
	return b.err
}

// Build renders the selector and consumes the builder: it returns the
// accumulated text, then resets text, lastRank and the latched error to
// their zero values on this same instance. The read is destructive by
// contract — a second Build without new fragments yields ("", nil) —
// and a chain that latched a violation yields ("", err) with err
// branching via errors.Is against ErrOrderViolation or
// ErrOccurrenceViolation.
// Complexity: O(len(text)).
func (b *Builder) Build() (string, error) {
	// Surface the latched violation, if any; the reset below still runs
	// so the instance always leaves Build in the zero state.
	err := b.err
	out := ""
	if err == nil {
		out = b.text.String()
	}

	// Destructive reset: the instance is spent.
	b.text.Reset()
	b.lastRank = NoRank
	b.err = nil

	return out, err
}
