package boss

import (
	"math"
	"testing"

	"github.com/vovakirdan/paddle-rush/internal/core"
)

func TestAimTarget(t *testing.T) {
	ball := core.V(640, 360)
	const halfH, epsilon = 128.0, 0.01

	tests := []struct {
		name   string
		player core.Vec2
		side   float64
		want   float64
		wantOK bool
	}{
		{"straight ahead", core.V(1000, 360), 1, 360, true},
		{"diagonal down", core.V(1000, 720), 1, 360 - halfH, true},
		{"diagonal up from right wall", core.V(280, 0), -1, 360 + halfH, true},
		{"steep angle clamps", core.V(700, 0), 1, 360 + halfH, true},
		{"player behind paddle", core.V(100, 360), 1, 360, false},
		{"near vertical", core.V(640.001, 720), 1, 360, false},
		{"player on the ball", core.V(640, 360), 1, 360, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AimTarget(ball, tt.player, tt.side, halfH, epsilon)
			if ok != tt.wantOK {
				t.Errorf("ok = %v, expected %v", ok, tt.wantOK)
			}
			if math.IsNaN(got) || !near(got, tt.want) {
				t.Errorf("target = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestAimTargetSendsBallToPlayer(t *testing.T) {
	ball := core.V(640, 360)
	player := core.V(1100, 500)
	target, ok := AimTarget(ball, player, 1, 128, 0.01)
	if !ok {
		t.Fatal("expected a valid aim")
	}

	law := BounceLaw{Increment: 0, MaxSpeed: 1000}
	paddle := core.BoxFromCenter(core.V(ball.X-60, target), 64, 256)
	b := Ball{Position: ball, Velocity: core.V(-500, 0), Radius: 40}
	if _, hit := law.Bounce(&b, paddle, AxisX, 1); !hit {
		t.Fatal("expected the paddle to reach the ball")
	}

	want := player.Sub(ball).Normalize()
	got := b.Velocity.Normalize()
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Errorf("ball leaves along %v, expected %v", got, want)
	}
}

func TestTrackTarget(t *testing.T) {
	ball := core.V(640, 360)
	tests := []struct {
		name     string
		player   core.Vec2
		fraction float64
		want     float64
	}{
		{"no offset", core.V(1000, 600), 0, 360},
		{"player in front and below", core.V(1000, 600), 0.25, 360 - 64},
		{"player in front and above", core.V(1000, 100), 0.25, 360 + 64},
		{"player behind", core.V(20, 600), 0.25, 360 + 64},
		{"player level", core.V(1000, 360), 0.25, 360},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrackTarget(ball, tt.player, 100, 1, 256, tt.fraction); got != tt.want {
				t.Errorf("TrackTarget() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestStepTowardConverges(t *testing.T) {
	const target, speed, deadzone, dt = 100.0, 450.0, 10.0, 1.0 / 60

	for _, start := range []float64{600, -400} {
		pos := start
		prev := math.Abs(pos - target)
		steps := 0
		for prev > deadzone {
			pos = StepToward(pos, target, speed, deadzone, dt)
			dist := math.Abs(pos - target)
			if dist >= prev {
				t.Fatalf("start %v: distance went from %v to %v", start, prev, dist)
			}
			if (start-target)*(pos-target) < 0 {
				t.Fatalf("start %v: overshot to %v", start, pos)
			}
			prev = dist
			steps++
			if steps > 1000 {
				t.Fatalf("start %v: did not converge", start)
			}
		}

		settled := pos
		for range 30 {
			pos = StepToward(pos, target, speed, deadzone, dt)
			if pos != settled {
				t.Fatalf("start %v: position moved from %v to %v after settling", start, settled, pos)
			}
		}
	}
}

func TestStepTowardDeadzone(t *testing.T) {
	if got := StepToward(105, 100, 450, 10, 1); got != 105 {
		t.Errorf("inside deadzone moved to %v", got)
	}
	if got := StepToward(200, 100, 450, 10, 1); got != 100 {
		t.Errorf("large step should stop on target, got %v", got)
	}
}
