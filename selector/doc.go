// Package selector provides a fluent, chainable builder for CSS-style
// selector strings. It assembles typed fragments (tag, #id, .class,
// [attr], :pseudo-class, ::pseudo-element) procedurally — no parsing —
// and enforces the selector grammar at build time.
//
// The package offers the following key components:
//
//   - Facade factories (stateless entry points):
//     – Tag, ID, Class, Attr, PseudoClass, PseudoElement: each allocates
//     a fresh *Builder, appends the first fragment, and returns the
//     builder for chaining. No state ever lives at package level.
//   - Builder (one selector under construction):
//     – fragment methods mirroring the factories, each O(len(value));
//     – Build():  destructive render — returns the accumulated text,
//     then resets the instance to its zero state;
//     – Err():    peek at a pending violation without consuming.
//   - Combine:
//     – joins two finished builders around a literal combinator token;
//     total over its inputs, the token is never validated.
//   - Grammar enforcement (monotonic-rank state machine):
//     – fragments must appear in rank order Tag(1) → ID(2) → Class(3) →
//     Attr(4) → PseudoClass(5) → PseudoElement(6);
//     – Tag, ID and PseudoElement are singletons; Class, Attr and
//     PseudoClass may repeat back-to-back.
//
// Guarantees:
//
//   - Chain isolation: every chain started from a facade factory owns an
//     independent Builder; two interleaved chains never observe each
//     other's fragments.
//   - Fail-stop chains: the first violation (ErrOrderViolation or
//     ErrOccurrenceViolation) is recorded on the builder, later fragment
//     calls become no-ops, and Build surfaces the sentinel. No partial
//     mutation: a failed append leaves text and rank untouched.
//   - No panics at runtime; branch on sentinels with errors.Is.
//   - One-shot render: Build consumes the instance — a second Build on
//     the same builder yields the empty string.
//
// See individual function documentation for detailed contracts,
// parameter descriptions, and performance notes.
package selector
