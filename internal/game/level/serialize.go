package level

import (
	"strings"

	"github.com/gridward/gridward/internal/game/core"
)

// Serialize writes a grid back to the two-character-per-tile text
// format. Only ground and content are encoded, so serializing a freshly
// parsed level reproduces its grid rows exactly; in-progress enemy
// damage is not representable in the format and is ignored.
func Serialize(g *core.Grid) string {
	var sb strings.Builder
	sb.Grow((g.W*2 + 1) * g.H)

	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			t := g.T[g.Idx(x, y)]
			sb.WriteByte(t.Ground.GroundCode())
			sb.WriteByte(t.Content.ContentCode())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
