package model

import "github.com/Faultbox/matrixlab/pkg/math"

// RotKey is a rotation keyframe.
type RotKey struct {
	Frame    int
	Rotation math.Quat
}

// ScaleKey is a scale keyframe.
type ScaleKey struct {
	Frame int
	Scale math.Vec3
}

// bracket finds the keyframes surrounding time and the blend factor between
// them. Keys must be sorted by frame.
func bracket(n int, frame func(int) int, time float32) (prev, next int, t float32) {
	for i := 0; i < n; i++ {
		if float32(frame(i)) > time {
			next = i
			break
		}
		prev = i
		next = i
	}
	if prev == next {
		return prev, next, 0
	}
	f0, f1 := frame(prev), frame(next)
	if f1 != f0 {
		t = (time - float32(f0)) / float32(f1-f0)
	}
	if t < 0 {
		t = 0
	}
	return prev, next, t
}

// InterpolateRotKeys slerps rotation keyframes at the given time. Before
// the first key and after the last the end keys hold.
func InterpolateRotKeys(keys []RotKey, time float32) math.Quat {
	switch len(keys) {
	case 0:
		return math.QuatIdentity()
	case 1:
		return keys[0].Rotation
	}
	prev, next, t := bracket(len(keys), func(i int) int { return keys[i].Frame }, time)
	if prev == next {
		return keys[prev].Rotation
	}
	return keys[prev].Rotation.Slerp(keys[next].Rotation, t)
}

// InterpolateScaleKeys lerps scale keyframes at the given time.
func InterpolateScaleKeys(keys []ScaleKey, time float32) math.Vec3 {
	switch len(keys) {
	case 0:
		return math.Vec3{X: 1, Y: 1, Z: 1}
	case 1:
		return keys[0].Scale
	}
	prev, next, t := bracket(len(keys), func(i int) int { return keys[i].Frame }, time)
	if prev == next {
		return keys[prev].Scale
	}
	return keys[prev].Scale.Lerp(keys[next].Scale, t)
}
