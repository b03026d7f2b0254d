// SPDX-License-Identifier: MIT
// Package: cssb/selector
//
// api.go - thin public entry-points for the selector package.
//
// Design contract (strict):
//   - The facade is stateless: the factories below hold no fields and
//     share nothing; each call allocates a fresh Builder so interleaved
//     or concurrent chains can never corrupt one another.
//   - All chain-initiating operations are declared here; the append
//     engine lives in builder.go (single place to read docs).
//   - Safety: never panic; grammar violations latch onto the chain's
//     builder as sentinel errors and surface from Build.
//
// AI-Hints (practical):
//   - Start every chain from a factory: selector.ID("main").Class("box").
//   - Combine joins two FINISHED chains; it renders both operands, so an
//     operand can be combined (or built) only once.
//   - The combinator token is inserted literally — use the exported
//     Descendant/Child/Adjacent/Sibling constants or any string at all.

package selector

// Tag starts a new chain with a bare element-name fragment.
// Equivalent to new(Builder).Tag(value); the returned builder is owned
// by the caller's chain alone.
// Complexity: O(len(value)).
func Tag(value string) *Builder {
	return new(Builder).Tag(value)
}

// ID starts a new chain with an identifier fragment ("#value").
// Complexity: O(len(value)).
func ID(value string) *Builder {
	return new(Builder).ID(value)
}

// Class starts a new chain with a class fragment (".value").
// Complexity: O(len(value)).
func Class(value string) *Builder {
	return new(Builder).Class(value)
}

// Attr starts a new chain with an attribute fragment ("[value]").
// Complexity: O(len(value)).
func Attr(value string) *Builder {
	return new(Builder).Attr(value)
}

// PseudoClass starts a new chain with a pseudo-class fragment (":value").
// Complexity: O(len(value)).
func PseudoClass(value string) *Builder {
	return new(Builder).PseudoClass(value)
}

// PseudoElement starts a new chain with a pseudo-element fragment ("::value").
// Complexity: O(len(value)).
func PseudoElement(value string) *Builder {
	return new(Builder).PseudoElement(value)
}

// Combine joins two finished selectors around a literal combinator
// token, producing a new builder whose text is
//
//	render(a) + " " + combinator + " " + render(b)
//
// Both operands are rendered as a side effect, which consumes them: an
// operand already built or combined contributes the empty string for
// its side, and a nil operand does the same. The token is accepted
// verbatim — no validation, by contract. The result's rank cursor is
// NoRank, so a combined selector imposes no further ordering constraint
// on itself; it is normally terminal.
//
// Combine itself is total and never fails. A violation latched on an
// operand is not lost, though: it propagates onto the result (left
// operand first) and surfaces from the result's Build.
// Complexity: O(len(a.text) + len(combinator) + len(b.text)).
func Combine(a *Builder, combinator string, b *Builder) *Builder {
	out := new(Builder)

	// Render both operands destructively; a nil side reads as "".
	left, errA := renderSide(a)
	right, errB := renderSide(b)

	// Assemble the combined text with single-space padding around the token.
	out.text.WriteString(left)
	out.text.WriteString(combinatorSeparator)
	out.text.WriteString(combinator)
	out.text.WriteString(combinatorSeparator)
	out.text.WriteString(right)

	// Keep a pending operand violation fatal to the combined chain.
	if errA != nil {
		out.err = selectorErrorf(MethodCombine, "left operand: %w", errA)
	} else if errB != nil {
		out.err = selectorErrorf(MethodCombine, "right operand: %w", errB)
	}

	return out
}

// renderSide builds one Combine operand, tolerating nil.
func renderSide(b *Builder) (string, error) {
	if b == nil {
		return "", nil
	}
	return b.Build()
}
