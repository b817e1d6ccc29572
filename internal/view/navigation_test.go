package view

import "testing"

func TestNeighbors(t *testing.T) {
	tests := []struct {
		id, total  int
		prev, next int
	}{
		{1, 151, 151, 2},
		{151, 151, 150, 1},
		{75, 151, 74, 76},
		{1, 1, 1, 1},
		{2, 3, 1, 3},
	}

	for _, tt := range tests {
		prev, next := Neighbors(tt.id, tt.total)
		if prev != tt.prev || next != tt.next {
			t.Errorf("Neighbors(%d, %d) = (%d, %d), want (%d, %d)", tt.id, tt.total, prev, next, tt.prev, tt.next)
		}
	}
}
