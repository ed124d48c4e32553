package hangman

import "github.com/vovakirdan/tui-hangman/internal/core"

// Gallows drawing size in cells.
const (
	GallowsWidth  = 11
	GallowsHeight = 7
)

type bodyPart struct {
	dx, dy int
	r      rune
}

// bodyParts are added one per wrong guess, in order.
var bodyParts = [MaxLives]bodyPart{
	{8, 2, 'O'},  // head
	{8, 3, '|'},  // body
	{7, 3, '/'},  // left arm
	{9, 3, '\\'}, // right arm
	{7, 4, '/'},  // left leg
	{9, 4, '\\'}, // right leg
}

// DrawGallows draws the gallows for stage (0..MaxLives) with its top-left at (x, y).
func DrawGallows(dst *core.Screen, x, y, stage int) {
	stage = core.Clamp(stage, 0, MaxLives)

	// Frame
	dst.DrawHLine(x, y+6, 7, '═', core.ColorBrown)
	dst.SetColored(x+2, y+6, '╧', core.ColorBrown)
	dst.DrawVLine(x+2, y+1, 5, '│', core.ColorBrown)
	dst.SetColored(x+2, y, '┌', core.ColorBrown)
	dst.DrawHLine(x+3, y, 5, '─', core.ColorBrown)
	dst.SetColored(x+8, y, '┐', core.ColorBrown)
	dst.SetColored(x+8, y+1, '│', core.ColorYellow)

	color := core.ColorBrightWhite
	if stage == MaxLives {
		color = core.ColorRed
	}
	for _, p := range bodyParts[:stage] {
		dst.SetColored(x+p.dx, y+p.dy, p.r, color)
	}
}
