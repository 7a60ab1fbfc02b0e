package board

import "chessview/src/base"

// ClickOutcome reports what a click did to the board. Callers may
// discard it; the logging seam and the tests read it.
type ClickOutcome uint8

const (
	ClickIgnored ClickOutcome = iota
	ClickSelected
	ClickDeselected
	ClickReselected
	ClickMoved
	ClickCaptured
)

func (o ClickOutcome) String() string {
	switch o {
	case ClickIgnored:
		return "ignored"
	case ClickSelected:
		return "selected"
	case ClickDeselected:
		return "deselected"
	case ClickReselected:
		return "reselected"
	case ClickMoved:
		return "moved"
	case ClickCaptured:
		return "captured"
	default:
		return "invalid"
	}
}

// HandleClick is the interaction entry point. It resolves the pixel to
// a cell and runs one step of the selection state machine. Malformed
// input never propagates: an off-board click is ignored.
func (b *Board) HandleClick(x, y int) ClickOutcome {
	pos, err := b.geom.PixelToCell(x, y)
	if err != nil {
		return ClickIgnored
	}

	sel := b.Selected()
	if sel == nil {
		// idle: a click on an occupied cell selects that piece
		return b.selectAt(pos)
	}

	if sel.Position() == pos {
		// toggle off
		b.ClearSelection()
		b.ClearHighlights()
		return ClickDeselected
	}

	if b.tileAt(pos).Highlighted() {
		outcome := ClickMoved
		if victim := b.pieceIndexAt(pos); victim >= 0 {
			// capture by overwrite; removal may shift the selection index
			b.removePieceAt(victim)
			sel = b.Selected()
			outcome = ClickCaptured
		}
		b.tileAt(sel.Position()).SetOccupied(false)
		sel.MoveTo(pos)
		b.tileAt(pos).SetOccupied(true)
		b.ClearSelection()
		b.ClearHighlights()
		return outcome
	}

	// anywhere else drops the selection; an occupied cell re-selects
	b.ClearSelection()
	b.ClearHighlights()
	if b.selectAt(pos) == ClickSelected {
		return ClickReselected
	}
	return ClickIgnored
}

func (b *Board) selectAt(pos base.Point) ClickOutcome {
	i := b.pieceIndexAt(pos)
	if i < 0 {
		return ClickIgnored
	}
	b.selected = i
	p := b.pieces[i]
	p.Select()
	for _, c := range b.CandidateMoves(p) {
		b.tileAt(c).SetHighlighted(true)
	}
	return ClickSelected
}
