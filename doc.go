// Package cssb is a compact toolbox of object-construction utilities —
// a fluent CSS-style selector builder plus the small collaborators that
// round it out for exercises and demos.
//
// 🚀 What is cssb?
//
//	A tiny, dependency-light library that brings together:
//		• Selector builder: chainable tag/#id/.class/[attr]/:pseudo fragments
//		  with grammar-order and cardinality checks at build time
//		• Combinators: join two finished selectors with any literal token
//		• Record factory: two-field numeric records with a derived Area()
//		• Codec: JSON round-trip wrappers that rehydrate typed values
//
// ✨ Why choose cssb?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, no panics, no shared state
//   - Pure Go core – the only runtime dep is the JSON codec
//   - Honest chains – every chain owns its builder; two chains never collide
//
// Under the hood, everything is organized under three subpackages:
//
//	selector/ — the fluent builder, fragment grammar & combinators
//	record/   — the Dimensions record factory
//	codec/    — Marshal/Unmarshal round-trip helpers
//
// Quick ASCII example:
//
//	Tag("a") ─ Attr(`href$=".png"`) ─ PseudoClass("focus") ─ Build()
//	                      │
//	                      ▼
//	              a[href$=".png"]:focus
//
// Dive into README.md and examples/ for full walkthroughs, and into
// selector/doc.go for the grammar contract.
//
//	go get github.com/katalvlaran/cssb
package cssb
