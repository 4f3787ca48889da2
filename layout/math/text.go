package math

import (
	"github.com/rivo/uniseg"

	"github.com/texmath/texmath/layout"
)

// LayoutText lays out a run of ordinary text (\text{}, \mbox{}, an
// \operatorname{} body) glyph by grapheme cluster rather than through full
// shaping: each cluster maps to its first rune's glyph at the context's
// current size, concatenated left to right with no kerning or ligature
// substitution. Good enough for the short runs formulas embed; full text
// shaping is out of scope here.
func (ctx *Context) LayoutText(s string) *layout.Frame {
	var frames []*layout.Frame
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.StepString(s, state)
		for _, r := range cluster {
			frames = append(frames, ctx.RuneFrame(r))
			break
		}
	}
	if len(frames) == 0 {
		return layout.NewFrame(layout.Size{})
	}
	gaps := make([]Abs, len(frames)-1)
	return HConcat(frames, gaps)
}
