package tui

import (
	"reflect"

	"github.com/osalguero/muster/internal/roster"
)

// RenderCache stores the last base render (banner plus cards, without the
// tooltip overlay) and the inputs it was built from. The base only depends
// on the element sequence, the dark flag, and the frame size, so a repaint
// triggered by a tooltip move can reuse it. Equality of the sequences is
// by value: a reloaded-but-identical roster still hits the cache.
type RenderCache struct {
	valid bool
	base  string

	elems  []roster.Element
	dark   bool
	width  int
	height int
}

// Invalidate drops the cached base render.
func (rc *RenderCache) Invalidate() {
	rc.valid = false
	rc.base = ""
	rc.elems = nil
}

// Get returns the cached base render if the inputs still match.
func (rc *RenderCache) Get(elems []roster.Element, dark bool, width, height int) (string, bool) {
	if !rc.valid || rc.dark != dark || rc.width != width || rc.height != height {
		return "", false
	}
	if !reflect.DeepEqual(rc.elems, elems) {
		return "", false
	}
	return rc.base, true
}

// Put stores a freshly built base render with its inputs.
func (rc *RenderCache) Put(elems []roster.Element, dark bool, width, height int, base string) {
	rc.valid = true
	rc.base = base
	rc.elems = elems
	rc.dark = dark
	rc.width = width
	rc.height = height
}
