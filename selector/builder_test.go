// File: builder_test.go
// Package selector_test contains functional tests for the fragment
// grammar: rank ordering, singleton cardinality, fail-stop chains, and
// the destructive Build contract.
package selector_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cssb/selector"
)

// TestChains_Functional runs table-driven tests over valid chains,
// asserting Build yields the exact literal concatenation of fragments
// in call order with no separators.
func TestChains_Functional(t *testing.T) {
	t.Parallel() // allow this test to run in parallel with others

	tests := []struct {
		name  string
		chain func() *selector.Builder
		want  string
	}{
		{
			name:  "Tag only",
			chain: func() *selector.Builder { return selector.Tag("div") },
			want:  "div",
		},
		{
			name:  "ID only",
			chain: func() *selector.Builder { return selector.ID("main") },
			want:  "#main",
		},
		{
			name:  "PseudoElement only",
			chain: func() *selector.Builder { return selector.PseudoElement("before") },
			want:  "::before",
		},
		{
			name: "ID then repeated classes",
			chain: func() *selector.Builder {
				return selector.ID("main").Class("container").Class("editable")
			},
			want: "#main.container.editable",
		},
		{
			name: "Tag attr pseudo-class",
			chain: func() *selector.Builder {
				return selector.Tag("a").Attr(`href$=".png"`).PseudoClass("focus")
			},
			want: `a[href$=".png"]:focus`,
		},
		{
			name: "full rank ladder 1..6",
			chain: func() *selector.Builder {
				return selector.Tag("input").
					ID("login").
					Class("wide").
					Attr("type=text").
					PseudoClass("hover").
					PseudoElement("placeholder")
			},
			want: "input#login.wide[type=text]:hover::placeholder",
		},
		{
			name: "repeatable kinds repeat back-to-back",
			chain: func() *selector.Builder {
				return selector.Class("a").Class("b").Attr("x").Attr("y").
					PseudoClass("hover").PseudoClass("focus")
			},
			want: ".a.b[x][y]:hover:focus",
		},
		{
			name: "skipping ranks is legal",
			chain: func() *selector.Builder {
				return selector.Tag("ul").PseudoClass("empty")
			},
			want: "ul:empty",
		},
		{
			name:  "empty value renders its prefix alone",
			chain: func() *selector.Builder { return selector.ID("") },
			want:  "#",
		},
	}

	for _, tc := range tests {
		tc := tc // capture loop variable
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			b := tc.chain()
			require.NoError(t, b.Err(), "valid chain must not latch a violation")

			got, err := b.Build()
			require.NoError(t, err, "Build of a valid chain must not error")
			assert.Equal(t, tc.want, got, "rendered selector mismatch")
		})
	}
}

// TestChains_Violations verifies both grammar sentinels over a table of
// invalid chains, branching strictly with errors.Is.
func TestChains_Violations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		chain   func() *selector.Builder
		wantErr error
	}{
		{
			name:    "duplicate Tag",
			chain:   func() *selector.Builder { return selector.Tag("div").Tag("span") },
			wantErr: selector.ErrOccurrenceViolation,
		},
		{
			name:    "duplicate ID",
			chain:   func() *selector.Builder { return selector.ID("a").ID("b") },
			wantErr: selector.ErrOccurrenceViolation,
		},
		{
			name: "duplicate PseudoElement",
			chain: func() *selector.Builder {
				return selector.PseudoElement("before").PseudoElement("after")
			},
			wantErr: selector.ErrOccurrenceViolation,
		},
		{
			name:    "duplicate Tag with identical value",
			chain:   func() *selector.Builder { return selector.Tag("div").Tag("div") },
			wantErr: selector.ErrOccurrenceViolation,
		},
		{
			name:    "Tag after Class",
			chain:   func() *selector.Builder { return selector.Class("a").Tag("div") },
			wantErr: selector.ErrOrderViolation,
		},
		{
			name:    "ID after PseudoClass",
			chain:   func() *selector.Builder { return selector.PseudoClass("hover").ID("x") },
			wantErr: selector.ErrOrderViolation,
		},
		{
			name: "Class after PseudoElement",
			chain: func() *selector.Builder {
				return selector.Tag("p").PseudoElement("before").Class("late")
			},
			wantErr: selector.ErrOrderViolation,
		},
		{
			name:    "Tag after ID",
			chain:   func() *selector.Builder { return selector.ID("main").Tag("div") },
			wantErr: selector.ErrOrderViolation,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			b := tc.chain()
			assert.ErrorIs(t, b.Err(), tc.wantErr, "Err() must expose the latched sentinel")

			got, err := b.Build()
			assert.ErrorIs(t, err, tc.wantErr, "Build must surface the latched sentinel")
			assert.Empty(t, got, "a violated chain renders nothing")
		})
	}
}

// TestChains_FirstViolationWins ensures a chain latches the FIRST
// violation and that later fragment calls cannot overwrite it.
func TestChains_FirstViolationWins(t *testing.T) {
	t.Parallel()

	// Class→Tag latches ErrOrderViolation; the second Tag would have
	// been an occurrence violation but must be a no-op on a dead chain.
	b := selector.Class("a").Tag("div").Tag("div")

	_, err := b.Build()
	assert.ErrorIs(t, err, selector.ErrOrderViolation, "first violation must win")
	assert.NotErrorIs(t, err, selector.ErrOccurrenceViolation, "later no-op calls must not re-latch")
}

// TestBuild_Destructive pins the one-shot render contract: Build
// consumes the instance, so a second Build yields the empty string, and
// new fragments on a spent builder start a fresh selector from rank 0.
func TestBuild_Destructive(t *testing.T) {
	t.Parallel()

	b := selector.Tag("div").Class("box")

	first, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "div.box", first, "first Build returns the accumulated text")

	second, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "", second, "second Build on the same instance is empty")

	// After the reset the rank cursor is back at zero, so even a Tag —
	// the lowest rank — is accepted again on this instance.
	reused, err := b.Tag("span").Build()
	require.NoError(t, err)
	assert.Equal(t, "span", reused)
}

// TestBuild_ResetsAfterViolation verifies that Build clears the latched
// error along with text and rank: the instance leaves Build in the zero
// state even when the chain had failed.
func TestBuild_ResetsAfterViolation(t *testing.T) {
	t.Parallel()

	b := selector.Class("a").Tag("div")

	_, err := b.Build()
	require.ErrorIs(t, err, selector.ErrOrderViolation)

	// Spent instance: no residual error, no residual text.
	got, err := b.Build()
	assert.NoError(t, err, "the violation must not survive the reset")
	assert.Equal(t, "", got)
}

// TestChains_Isolation starts two chains from the facade and interleaves
// their appends; neither may observe the other's fragments.
func TestChains_Isolation(t *testing.T) {
	t.Parallel()

	left := selector.Tag("div")
	right := selector.Tag("table")

	// Interleave mutations across the two chains.
	left.ID("main")
	right.ID("data")
	left.Class("wide")

	gotLeft, err := left.Build()
	require.NoError(t, err)
	gotRight, err := right.Build()
	require.NoError(t, err)

	assert.Equal(t, "div#main.wide", gotLeft, "left chain must only hold its own fragments")
	assert.Equal(t, "table#data", gotRight, "right chain must only hold its own fragments")
}

// TestChains_ValueContentIrrelevant confirms the cardinality check keys
// on rank alone: duplicate singletons fail regardless of value content,
// including empty values.
func TestChains_ValueContentIrrelevant(t *testing.T) {
	t.Parallel()

	for _, values := range [][2]string{{"a", "b"}, {"same", "same"}, {"", ""}} {
		_, err := selector.ID(values[0]).ID(values[1]).Build()
		if !errors.Is(err, selector.ErrOccurrenceViolation) {
			t.Errorf("ID(%q).ID(%q): got %v, want ErrOccurrenceViolation", values[0], values[1], err)
		}
	}
}
