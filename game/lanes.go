// Package game implements the per-frame simulation: lane traffic,
// spawning, collision, power-up effects, and combo scoring. The whole
// package runs single-threaded; one Step executes to completion before
// the host schedules the next frame.
package game

// LaneToX maps a lane index to the screen x of an entity of the given
// width, centered in the lane.
func LaneToX(lane int, laneWidth, entityWidth float64) float64 {
	return float64(lane)*laneWidth + (laneWidth-entityWidth)/2
}

// ClampLane bounds a lane index to [0, laneCount).
func ClampLane(lane, laneCount int) int {
	if lane < 0 {
		return 0
	}
	if lane >= laneCount {
		return laneCount - 1
	}
	return lane
}
