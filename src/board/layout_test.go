package board

import (
	"errors"
	"testing"

	"chessview/src/base"
)

func TestPawnRankLayout(t *testing.T) {
	layout := PawnRank()
	if len(layout) != 8 {
		t.Fatalf("PawnRank has %v placements, wanted 8", len(layout))
	}
	for i, pl := range layout {
		if pl.Kind != base.Pawn || pl.Color != base.White {
			t.Errorf("placement %v = %v %v, wanted white pawn", i, pl.Color, pl.Kind)
		}
		if pl.At.Row != 6 || pl.At.Col != i {
			t.Errorf("placement %v at %v, wanted (6,%v)", i, pl.At, i)
		}
	}
}

func TestClassicLayout(t *testing.T) {
	layout := Classic()
	if len(layout) != 32 {
		t.Fatalf("Classic has %v placements, wanted 32", len(layout))
	}
	kinds := map[base.PieceKind]int{}
	for _, pl := range layout {
		kinds[pl.Kind]++
	}
	wantKinds := map[base.PieceKind]int{
		base.Pawn: 16, base.Rook: 4, base.Knight: 4,
		base.Bishop: 4, base.Queen: 2, base.King: 2,
	}
	for kind, want := range wantKinds {
		if kinds[kind] != want {
			t.Errorf("%v count = %v, wanted %v", kind, kinds[kind], want)
		}
	}
}

func TestLayoutByName(t *testing.T) {
	nameTests := []struct {
		name    string
		wantLen int
		wantErr bool
	}{
		{"pawns", 8, false},
		{"", 8, false},
		{"classic", 32, false},
		{"chess960", 0, true},
	}
	for i, test := range nameTests {
		got, err := LayoutByName(test.name)
		if test.wantErr {
			if !errors.Is(err, ErrUnknownLayout) {
				t.Errorf("Test %v: LayoutByName(%q) error = %v, wanted ErrUnknownLayout", i, test.name, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Test %v: LayoutByName(%q) unwanted error: %v", i, test.name, err)
			continue
		}
		if len(got) != test.wantLen {
			t.Errorf("Test %v: LayoutByName(%q) has %v placements, wanted %v", i, test.name, len(got), test.wantLen)
		}
	}
}
