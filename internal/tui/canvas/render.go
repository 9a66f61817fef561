package canvas

import (
	"fmt"
	"path"

	"github.com/osalguero/muster/internal/roster"
)

// PointCap is the army point limit. Totals strictly above it render with
// the over-limit banner style. This is a domain constant, not configuration.
const PointCap = 60

// Built-in image ids. Characters and supports always use these; units and
// freeform entries carry their own image filename.
const (
	ImageCharacter = "character"
	ImageSupport   = "support"
)

// assetRoot is the fixed static-asset directory image paths resolve under.
const assetRoot = "static/images"

// tooltipHint is the static second line of every tooltip.
const tooltipHint = "Double click to delete"

// TotalPoints sums the point values of a snapshot. Empty yields 0.
func TotalPoints(elems []roster.Element) int {
	total := 0
	for _, e := range elems {
		total += roster.Points(e)
	}
	return total
}

// OverLimit reports whether a total exceeds the point cap. The cap itself
// is still a legal total; only strictly greater counts.
func OverLimit(total int) bool {
	return total > PointCap
}

// DisplayName returns the variant-specific label for an element. Named
// variants quote the name; freeform entries show their raw label.
func DisplayName(e roster.Element) string {
	switch v := e.(type) {
	case roster.Character:
		return fmt.Sprintf("Character: %q", v.Name)
	case roster.Unit:
		return fmt.Sprintf("Unit: %q", v.Name)
	case roster.Support:
		return fmt.Sprintf("Support: %q", v.Name)
	case roster.Other:
		return v.Label
	default:
		panic(fmt.Sprintf("canvas: unknown element %T", e))
	}
}

// DisplayImage returns the image id for an element: the fixed built-in id
// for characters and supports, the stored reference otherwise.
func DisplayImage(e roster.Element) string {
	switch v := e.(type) {
	case roster.Character:
		return ImageCharacter
	case roster.Unit:
		return v.Image
	case roster.Support:
		return ImageSupport
	case roster.Other:
		return v.Image
	default:
		panic(fmt.Sprintf("canvas: unknown element %T", e))
	}
}

// ImagePath resolves an image id to a path under the static-asset root.
// Built-in ids map to their fixed .png files; element-supplied filenames
// pass through unchanged.
func ImagePath(id string) string {
	if id == ImageCharacter || id == ImageSupport {
		return path.Join(assetRoot, id+".png")
	}
	return path.Join(assetRoot, id)
}

// Inverted reports whether an image renders with the inverted style:
// only the two built-in images invert, and only under the dark theme.
// Unit and freeform images never invert regardless of theme.
func Inverted(id string, dark bool) bool {
	return dark && (id == ImageCharacter || id == ImageSupport)
}

// DisplayPoints formats a point value with singular/plural agreement.
// Zero takes the plural form.
func DisplayPoints(points int) string {
	if points == 1 {
		return "1 Point"
	}
	return fmt.Sprintf("%d Points", points)
}

// TooltipContent builds the cached tooltip fragment for an element.
func TooltipContent(e roster.Element) string {
	return "Details about: " + DisplayName(e) + "\n" + tooltipHint
}
