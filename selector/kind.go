// SPDX-License-Identifier: MIT
// Package: cssb/selector
//
// kind.go — the fragment-kind enumeration and its grammar table.
//
// Design:
//   • Kind doubles as the grammar rank: the constant's numeric value IS
//     the fragment's required position in the selector (1..6).
//   • Cardinality (singleton vs repeatable) and rendering are resolved
//     from the kind alone; no other state is consulted.
//   • render is pure string assembly — values are inserted verbatim,
//     attribute/pseudo syntax is never validated.

package selector

// Kind enumerates the typed fragments a selector is assembled from.
// The zero Kind is invalid; valid kinds start at KindTag.
type Kind uint8

// Fragment kinds in grammar order. The numeric value of each constant
// is its rank: a fragment may never follow one with a higher rank.
const (
	// KindTag is a bare element name ("div"). Singleton, rank 1.
	KindTag Kind = iota + 1
	// KindID is an identifier fragment ("#main"). Singleton, rank 2.
	KindID
	// KindClass is a class fragment (".editable"). Repeatable, rank 3.
	KindClass
	// KindAttr is an attribute fragment ("[href]"). Repeatable, rank 4.
	KindAttr
	// KindPseudoClass is a pseudo-class fragment (":focus"). Repeatable, rank 5.
	KindPseudoClass
	// KindPseudoElement is a pseudo-element fragment ("::before"). Singleton, rank 6.
	KindPseudoElement
)

// rank returns the kind's fixed position in the grammar (1..6).
// Complexity: O(1).
func (k Kind) rank() int {
	return int(k)
}

// singleton reports whether the kind may appear at most once per
// selector. Tag, ID and PseudoElement are singletons; Class, Attr and
// PseudoClass may repeat back-to-back.
// Complexity: O(1).
func (k Kind) singleton() bool {
	return k == KindTag || k == KindID || k == KindPseudoElement
}

// method returns the canonical builder-method token for error context
// (see selectorErrorf). Unknown kinds map to an explicit marker rather
// than panicking, per the no-panic policy.
// Complexity: O(1).
func (k Kind) method() string {
	switch k {
	case KindTag:
		return MethodTag
	case KindID:
		return MethodID
	case KindClass:
		return MethodClass
	case KindAttr:
		return MethodAttr
	case KindPseudoClass:
		return MethodPseudoClass
	case KindPseudoElement:
		return MethodPseudoElement
	default:
		return "Kind(?)"
	}
}

// String implements fmt.Stringer for diagnostics and wrapped error text.
func (k Kind) String() string {
	return k.method()
}

// render produces the literal fragment text for value:
//
//	KindTag           → value
//	KindID            → "#" + value
//	KindClass         → "." + value
//	KindAttr          → "[" + value + "]"
//	KindPseudoClass   → ":" + value
//	KindPseudoElement → "::" + value
//
// The value is trusted verbatim; validating attribute or pseudo syntax
// is the caller's concern. Unknown kinds render as the empty string.
// Complexity: O(len(value)).
func (k Kind) render(value string) string {
	switch k {
	case KindTag:
		return value
	case KindID:
		return idPrefix + value
	case KindClass:
		return classPrefix + value
	case KindAttr:
		return attrOpen + value + attrClose
	case KindPseudoClass:
		return pseudoClassPrefix + value
	case KindPseudoElement:
		return pseudoElementPrefix + value
	default:
		return ""
	}
}
