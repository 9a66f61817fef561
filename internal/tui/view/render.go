// Package view provides view composition helpers for the TUI.
package view

// TooltipRenderer splices a tooltip box over base content at a position.
type TooltipRenderer interface {
	Render(base string, width, height int, content string, x, y int) string
}

// ViewState contains pre-rendered content and tooltip metadata.
type ViewState struct {
	Width            int
	Height           int
	BaseContent      string
	TooltipContent   string
	TooltipX         int
	TooltipY         int
	ShowTooltip      bool
	Tooltip          TooltipRenderer
	EmptyPlaceholder string
}

// Render composes the final view output.
func Render(state ViewState) string {
	if state.Width == 0 || state.Height == 0 {
		if state.EmptyPlaceholder != "" {
			return state.EmptyPlaceholder
		}
		return "Loading..."
	}

	base := state.BaseContent
	if state.ShowTooltip && state.Tooltip != nil {
		return state.Tooltip.Render(base, state.Width, state.Height, state.TooltipContent, state.TooltipX, state.TooltipY)
	}

	return base
}
