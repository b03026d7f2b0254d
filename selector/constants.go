// Package selector defines shared constants used by the fragment
// grammar and the combinator surface, ensuring consistent rendering and
// error context across all builder methods.
package selector

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the method name for context.
//-----------------------------------------------------------------------------

const (
	// MethodTag is the canonical name for the Tag fragment method.
	MethodTag = "Tag"
	// MethodID is the canonical name for the ID fragment method.
	MethodID = "ID"
	// MethodClass is the canonical name for the Class fragment method.
	MethodClass = "Class"
	// MethodAttr is the canonical name for the Attr fragment method.
	MethodAttr = "Attr"
	// MethodPseudoClass is the canonical name for the PseudoClass fragment method.
	MethodPseudoClass = "PseudoClass"
	// MethodPseudoElement is the canonical name for the PseudoElement fragment method.
	MethodPseudoElement = "PseudoElement"
	// MethodCombine is the canonical name for the Combine operation.
	MethodCombine = "Combine"
)

//-----------------------------------------------------------------------------
// Fragment Rendering Tokens
//-----------------------------------------------------------------------------

// idPrefix marks an identifier fragment ("#value").
const idPrefix = "#"

// classPrefix marks a class fragment (".value").
const classPrefix = "."

// attrOpen and attrClose bracket an attribute fragment ("[value]").
const (
	attrOpen  = "["
	attrClose = "]"
)

// pseudoClassPrefix marks a pseudo-class fragment (":value").
const pseudoClassPrefix = ":"

// pseudoElementPrefix marks a pseudo-element fragment ("::value").
const pseudoElementPrefix = "::"

//-----------------------------------------------------------------------------
// Combinator Tokens
//-----------------------------------------------------------------------------

// combinatorSeparator pads both sides of the combinator token when two
// selectors are joined: render(a) + " " + token + " " + render(b).
const combinatorSeparator = " "

// Conventional CSS combinator tokens. Combine accepts ANY string as its
// token and inserts it literally; these names exist purely so callers
// do not sprinkle one-character literals through their code.
const (
	// Descendant is the whitespace combinator ("a b").
	Descendant = " "
	// Child is the direct-child combinator ("a > b").
	Child = ">"
	// Adjacent is the adjacent-sibling combinator ("a + b").
	Adjacent = "+"
	// Sibling is the general-sibling combinator ("a ~ b").
	Sibling = "~"
)

//-----------------------------------------------------------------------------
// Rank Bounds
//-----------------------------------------------------------------------------

// NoRank is the rank of a builder with no fragments appended yet; every
// fragment rank compares strictly greater than it, so the first append
// in a chain always passes the ordering check.
const NoRank = 0
