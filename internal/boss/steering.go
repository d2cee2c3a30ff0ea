package boss

import (
	"math"

	"github.com/vovakirdan/paddle-rush/internal/core"
)

// AimTarget solves for the paddle Y that would bounce the ball towards the
// player. side is +1 for a paddle on the left wall (it sends balls right)
// and -1 for one on the right wall. halfH is half the paddle's height.
//
// The solve is skipped, and ok is false, when the player is behind the
// paddle, when the ball sits on the player, or when the line to the player is
// too close to vertical (|dir.x| <= eps). Callers then track the ball.
func AimTarget(ball, player core.Vec2, side, halfH, eps float64) (target float64, ok bool) {
	dir := player.Sub(ball).Normalize()
	if dir.X*side <= 0 || math.Abs(dir.X) <= eps {
		return ball.Y, false
	}
	offset := core.ClampF(side*dir.Y/dir.X, -1, 1)
	return ball.Y - offset*halfH, true
}

// TrackTarget follows the ball directly. With a non-zero fraction the target
// is shifted by fraction*height so the ball comes off the paddle's edge:
// towards the player when the player is in front of the paddle, away from
// them otherwise.
func TrackTarget(ball, player core.Vec2, paddleX, side, height, fraction float64) float64 {
	if fraction == 0 || player.Y == ball.Y {
		return ball.Y
	}
	shift := fraction * height
	if player.Y < ball.Y {
		shift = -shift
	}
	if (player.X-paddleX)*side > 0 {
		return ball.Y - shift
	}
	return ball.Y + shift
}

// StepToward moves pos towards target by at most speed*dt without passing
// it. Nothing moves while the distance is within deadzone.
func StepToward(pos, target, speed, deadzone, dt float64) float64 {
	dist := target - pos
	if math.Abs(dist) <= deadzone {
		return pos
	}
	move := math.Copysign(speed*dt, dist)
	if math.Abs(move) > math.Abs(dist) {
		move = dist
	}
	return pos + move
}
