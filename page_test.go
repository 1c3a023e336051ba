package tui

import "testing"

func TestPageCellSX(t *testing.T) {
	p := NewPage(3, 10, 0)
	if got := p.CellSX(); got != CellSX {
		t.Errorf("CellSX() = %d, want %d", got, CellSX)
	}
}

func TestNewPageDimensions(t *testing.T) {
	p := NewPage(3, 10, 0)
	sy, sx := p.Size()
	if sy != 3 || sx != 10 {
		t.Fatalf("Size() = (%d, %d), want (3, 10)", sy, sx)
	}
}

func TestPageMeasureIgnoresAttrMarkers(t *testing.T) {
	p := NewPage(1, 10, 0)
	s := string(encodeAttrRune(2)) + "abc" + string(encodeAttrRune(0))
	if got := p.Measure(s); got != 3 {
		t.Errorf("Measure(%q) = %d, want 3", s, got)
	}
}

func TestPageRegionClampsToBounds(t *testing.T) {
	p := NewPage(5, 5, 0)
	rg := p.Region(-2, -2, 4, 4)
	if rg.cy0 != 0 || rg.cx0 != 0 || rg.cy1 != 2 || rg.cx1 != 2 {
		t.Errorf("clamped region = %+v, want cy0=0 cx0=0 cy1=2 cx1=2", rg)
	}
}

func TestPageFullCoversWholePage(t *testing.T) {
	p := NewPage(4, 6, 0)
	rg := p.Full()
	if rg.cy0 != 0 || rg.cx0 != 0 || rg.cy1 != 4 || rg.cx1 != 6 {
		t.Errorf("Full() = %+v, want the whole page", rg)
	}
}

func TestDiffPagesReportsOnlyChangedCells(t *testing.T) {
	old := NewPage(2, 5, 0)
	neu := NewPage(2, 5, 0)
	neu.Full().Write(1, 2, 1, "x")

	var changes []struct {
		y int
		c Change
	}
	DiffPages(old, neu, func(y int, c Change) {
		changes = append(changes, struct {
			y int
			c Change
		}{y, c})
	})

	if len(changes) != 1 {
		t.Fatalf("got %d changes, want 1: %+v", len(changes), changes)
	}
	if changes[0].y != 1 || changes[0].c.X != 2 || changes[0].c.Text != "x" {
		t.Errorf("change = %+v, want row=1 X=2 Text=x", changes[0])
	}
}

func TestDiffPagesNoChangesWhenEqual(t *testing.T) {
	old := NewPage(2, 5, 1)
	neu := NewPage(2, 5, 1)

	var n int
	DiffPages(old, neu, func(int, Change) { n++ })
	if n != 0 {
		t.Errorf("got %d changes for identical pages, want 0", n)
	}
}
