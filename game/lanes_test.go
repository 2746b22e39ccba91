package game

import (
	"testing"

	"github.com/lixenwraith/lanedriver/constants"
)

func TestLaneToXStaysWithinLane(t *testing.T) {
	laneCount := 3
	laneWidth := constants.WorldWidth / float64(laneCount)

	for lane := 0; lane < laneCount; lane++ {
		x := LaneToX(lane, laneWidth, constants.PlayerWidth)

		laneLeft := float64(lane) * laneWidth
		laneRight := laneLeft + laneWidth

		if x < laneLeft {
			t.Errorf("lane %d: x=%v is left of the lane boundary %v", lane, x, laneLeft)
		}
		if x+constants.PlayerWidth > laneRight {
			t.Errorf("lane %d: right edge %v exceeds lane boundary %v", lane, x+constants.PlayerWidth, laneRight)
		}
	}
}

func TestLaneToXCentersEntity(t *testing.T) {
	laneWidth := 100.0
	entityWidth := 40.0

	x := LaneToX(2, laneWidth, entityWidth)

	laneCenter := 2*laneWidth + laneWidth/2
	entityCenter := x + entityWidth/2
	if entityCenter != laneCenter {
		t.Errorf("Expected entity center %v to match lane center %v", entityCenter, laneCenter)
	}
}

func TestClampLane(t *testing.T) {
	tests := []struct {
		lane, laneCount, want int
	}{
		{-1, 3, 0},
		{-100, 3, 0},
		{0, 3, 0},
		{1, 3, 1},
		{2, 3, 2},
		{3, 3, 2},
		{100, 3, 2},
		{4, 5, 4},
	}

	for _, tt := range tests {
		if got := ClampLane(tt.lane, tt.laneCount); got != tt.want {
			t.Errorf("ClampLane(%d, %d) = %d, want %d", tt.lane, tt.laneCount, got, tt.want)
		}
	}
}
