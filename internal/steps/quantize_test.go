package steps

import "testing"

func TestNearest(t *testing.T) {
	tests := []struct {
		name   string
		table  Table
		v      float64
		want   float64
		wantOK bool
	}{
		{"tie favors earlier entry", Table{0, 5, 10}, 2.5, 0, true},
		{"second tie favors earlier entry", Table{0, 5, 10}, 7.5, 5, true},
		{"closest above", Table{0, 25, 50, 75, 100}, 52, 50, true},
		{"closest below", Table{0, 25, 50, 75, 100}, 70, 75, true},
		{"below range", Table{0, 25, 50}, -10, 0, true},
		{"above range", Table{0, 25, 50}, 99, 50, true},
		{"single entry", Table{42}, 7, 42, true},
		{"empty table passes value through", nil, 13.3, 13.3, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.table.Nearest(tt.v)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Nearest(%v) = (%v, %v), want (%v, %v)", tt.v, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestNearestIndex_Empty(t *testing.T) {
	if got := Table(nil).NearestIndex(1); got != -1 {
		t.Errorf("NearestIndex on empty = %d, want -1", got)
	}
}

func TestNextPrev(t *testing.T) {
	tbl := Table{0, 1, 4, 9}

	tests := []struct {
		v        float64
		wantNext float64
		wantPrev float64
	}{
		{0, 1, 0},
		{1, 4, 0},
		{2, 4, 1},
		{9, 9, 4},
	}
	for _, tt := range tests {
		if got := tbl.Next(tt.v); got != tt.wantNext {
			t.Errorf("Next(%v) = %v, want %v", tt.v, got, tt.wantNext)
		}
		if got := tbl.Prev(tt.v); got != tt.wantPrev {
			t.Errorf("Prev(%v) = %v, want %v", tt.v, got, tt.wantPrev)
		}
	}
}
