package character

import (
	gomath "math"

	"github.com/Faultbox/arena/pkg/math"
)

const twoPi = 2 * gomath.Pi

// WrapAngle normalizes an angle to [0, 2π).
func WrapAngle(angle float32) float32 {
	a := gomath.Mod(float64(angle), twoPi)
	if a < 0 {
		a += twoPi
	}
	if a >= twoPi {
		a = 0
	}
	return float32(a)
}

// ShortestAngle returns the signed difference to - from folded into [-π, π].
func ShortestAngle(from, to float32) float32 {
	diff := float64(to - from)
	for diff > gomath.Pi {
		diff -= twoPi
	}
	for diff < -gomath.Pi {
		diff += twoPi
	}
	return float32(diff)
}

// HeadingOf returns the yaw of a horizontal direction, measured from +Z
// toward +X.
func HeadingOf(dir math.Vec3) float32 {
	return float32(gomath.Atan2(float64(dir.X), float64(dir.Z)))
}

// FacingAngle returns the angle of a facing vector measured from +X toward +Z.
func FacingAngle(facing math.Vec3) float32 {
	return float32(gomath.Atan2(float64(facing.Z), float64(facing.X)))
}

// SmoothHeading moves current toward target along the shorter arc by
// fraction of the remaining difference and wraps the result to [0, 2π).
func SmoothHeading(current, target, fraction float32) float32 {
	fraction = math.Clamp(fraction, 0, 1)
	return WrapAngle(current + ShortestAngle(current, target)*fraction)
}
