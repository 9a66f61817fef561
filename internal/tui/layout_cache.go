package tui

// Card geometry in terminal cells, border included. The hit-testing rects
// and the painted layout both derive from these constants, so a pointer
// coordinate always maps to the card drawn under it.
const (
	cardWidth  = 26
	cardHeight = 7
	// bannerHeight covers the total-points banner and the blank line
	// below it; cards start on the next row.
	bannerHeight = 2
)

// CardRect is one card's screen-space rectangle.
type CardRect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) falls inside the rect.
func (r CardRect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// LayoutCache stores the card rectangles derived from the window size and
// the current element count. Rebuilt on resize and on roster changes.
type LayoutCache struct {
	Cols  int
	Cards []CardRect
}

// buildLayoutCache lays cards out left to right, wrapping into rows.
func (m Model) buildLayoutCache() LayoutCache {
	cols := m.width / cardWidth
	if cols < 1 {
		cols = 1
	}

	count := m.handle.Len()
	cards := make([]CardRect, count)
	for i := range cards {
		cards[i] = CardRect{
			X: (i % cols) * cardWidth,
			Y: bannerHeight + (i/cols)*cardHeight,
			W: cardWidth,
			H: cardHeight,
		}
	}

	return LayoutCache{Cols: cols, Cards: cards}
}

// IndexAt returns the card index under the cell (x, y), or noHover when
// the pointer is over no card.
func (lc LayoutCache) IndexAt(x, y int) int {
	for i, rect := range lc.Cards {
		if rect.Contains(x, y) {
			return i
		}
	}
	return noHover
}
