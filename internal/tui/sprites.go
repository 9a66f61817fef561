package tui

import (
	"path"
	"strings"

	"github.com/osalguero/muster/internal/tui/canvas"
)

// Terminal stand-ins for the image assets: three-line glyph art keyed by
// the image file's base name. Unknown element-supplied images fall back
// to the generic banner sprite.
var sprites = map[string][]string{
	canvas.ImageCharacter: {
		`   _O_   `,
		`  /(|)\  `,
		`   / \   `,
	},
	canvas.ImageSupport: {
		`  .===.  `,
		`  |+++|  `,
		`  '==='  `,
	},
	"unit": {
		` o  o  o `,
		` |\/|\/| `,
		` |  |  | `,
	},
}

var genericSprite = []string{
	`   ___   `,
	`  |###|  `,
	`  |___|  `,
}

// spriteFor picks the glyph art for a resolved image path.
func spriteFor(imagePath string) []string {
	base := path.Base(imagePath)
	name := strings.TrimSuffix(base, path.Ext(base))
	if s, ok := sprites[name]; ok {
		return s
	}
	return genericSprite
}
