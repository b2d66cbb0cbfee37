package entity

import "testing"

// The obstacle queue holds pointers (AoS). These benchmarks keep an eye on the
// per-frame cost of advancing a queue much larger than a real round produces.

const benchObstacles = 10_000

func fillField(n int) *Field {
	f := NewField(testCanvas)
	for i := 0; i < n; i++ {
		f.PushObstacle(&Obstacle{Body: Body{
			Anchor:   AnchorCenter | AnchorRight,
			Position: Vec2{X: float64(i), Y: 360},
			Size:     Size{W: 75, H: 200},
			Speed:    Vec2{X: -400},
		}})
	}
	return f
}

func BenchmarkField_AdvanceObstacles(b *testing.B) {
	f := fillField(benchObstacles)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		for _, o := range f.Obstacles() {
			o.Update(1.0 / 60.0)
		}
	}
}

func BenchmarkField_IntersectAll(b *testing.B) {
	f := fillField(benchObstacles)
	f.Populate(Size{W: 80, H: 40})
	player := &f.Player().Body
	b.ResetTimer()
	var hits int
	for n := 0; n < b.N; n++ {
		hits = 0
		for _, o := range f.Obstacles() {
			if o.Intersects(player) {
				hits++
			}
		}
	}
	_ = hits
}

func BenchmarkField_PushDrop(b *testing.B) {
	f := NewField(testCanvas)
	for n := 0; n < b.N; n++ {
		f.PushObstacle(&Obstacle{})
		if f.ObstacleCount() > 8 {
			f.DropOldest()
		}
	}
}
