package agent

import (
	"math"

	"github.com/brensch/rendezvous/game"
)

const (
	// TargetBound clamps each target coordinate, measured from the agent's
	// own origin, so degenerate threat geometry cannot push it to infinity.
	TargetBound = 30

	minThreatDistance = 0.001
)

// ChooseTarget picks a rendezvous cell from logical-frame positions. It
// starts at the midpoint between self and ally and pushes away from the
// pursuer, harder when the pursuer is closer to the midpoint than the
// goodies are to each other.
func ChooseTarget(self, ally, pursuer game.Point) game.Point {
	dx := float64(ally.X - self.X)
	dy := float64(ally.Y - self.Y)
	normDelta := math.Hypot(dx, dy)

	midX := float64(ally.X+self.X) * 0.5
	midY := float64(ally.Y+self.Y) * 0.5

	awayX := midX - float64(pursuer.X)
	awayY := midY - float64(pursuer.Y)
	normAway := math.Max(math.Hypot(awayX, awayY), minThreatDistance)

	scale := 1.0
	if normDelta/2 >= normAway {
		scale = 1 + normDelta/normAway
	}

	return game.Point{
		X: clampCoord(math.Round(midX + awayX*scale)),
		Y: clampCoord(math.Round(midY + awayY*scale)),
	}
}

func clampCoord(v float64) int {
	if v < -TargetBound {
		return -TargetBound
	}
	if v > TargetBound {
		return TargetBound
	}
	return int(v)
}
