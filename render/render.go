package render

import (
	"fmt"

	"github.com/texmath/texmath/layout"
)

// Render walks frame and emits its glyphs, rules and colour scopes to b
// in drawing order, with origin as frame's top-left position on the
// backend's surface. A zero origin is the usual top-level call.
func Render(frame *layout.Frame, origin layout.Point, b Backend) error {
	for _, raw := range frame.Items {
		item, ok := raw.(*layout.PositionedItem)
		if !ok {
			return fmt.Errorf("render: frame item %T is not positioned", raw)
		}
		pos := origin.Add(item.Pos)

		switch v := item.Item.(type) {
		case *layout.Frame:
			if err := Render(v, pos, b); err != nil {
				return err
			}

		case *layout.GlyphItem:
			// GlyphItem is only ever pushed at (0, 0) in a one-glyph
			// frame, so the glyph's baseline is the containing frame's
			// own baseline, not pos.Y.
			if err := b.Symbol(pos.X, origin.Y+frame.Baseline, v.GID, v.FontSize); err != nil {
				return err
			}

		case *layout.ShapeItem:
			rect, ok := v.Shape.(*layout.RectShape)
			if !ok {
				return fmt.Errorf("render: unsupported shape %T", v.Shape)
			}
			if err := b.Rule(pos.X, pos.Y, rect.Size.Width, rect.Size.Height); err != nil {
				return err
			}

		case *layout.ColorItem:
			if err := b.BeginColor(v.Color); err != nil {
				return err
			}
			if err := Render(v.Frame, pos, b); err != nil {
				return err
			}
			if err := b.EndColor(); err != nil {
				return err
			}

		default:
			return fmt.Errorf("render: unhandled frame item %T", v)
		}
	}
	return nil
}
