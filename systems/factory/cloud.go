package factory

import (
	"log"
	"math"
	"math/rand"

	"github.com/automoto/cloudcat/archetypes"
	"github.com/automoto/cloudcat/components"
	cfg "github.com/automoto/cloudcat/config"
	"github.com/automoto/cloudcat/shared/gamemath"
	"github.com/automoto/cloudcat/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCloud spawns a cloud at (x, y) with a random sheet frame. Its speed
// is derived once from y and never recomputed.
func CreateCloud(ecs *ecs.ECS, x, y, canvasHeight float64, rng *rand.Rand, nowMillis int64) *donburi.Entry {
	cloud := archetypes.Cloud.Spawn(ecs)
	components.Cloud.SetValue(cloud, components.CloudData{
		X:             x,
		Y:             y,
		Frame:         RandomCloudFrame(rng),
		Speed:         gamemath.ParallaxSpeed(y, canvasHeight, cfg.Clouds.MaxSpeed, cfg.Clouds.DepthDivisor),
		LastFrameTime: nowMillis,
	})
	return cloud
}

// RandomCloudFrame picks a frame uniformly from the sheet's variants.
func RandomCloudFrame(rng *rand.Rand) int {
	return rng.Intn(cfg.Clouds.FrameCount)
}

// RandomCloudY picks a height in the top quarter of the canvas.
func RandomCloudY(canvasHeight float64, rng *rand.Rand) float64 {
	return float64(rng.Intn(int(canvasHeight)/4 + 1))
}

// PopulateClouds spawns count clouds spread across the canvas. Each candidate
// x is resampled while it sits closer than MinDistance to an existing cloud.
// After MaxSpawnAttempts samples the spacing rule is relaxed and the candidate
// furthest from its nearest neighbour is taken, so population always
// terminates with exactly count clouds.
func PopulateClouds(ecs *ecs.ECS, count int, canvasWidth, canvasHeight float64, rng *rand.Rand, nowMillis int64) []*donburi.Entry {
	xs := existingCloudXs(ecs)
	spawned := make([]*donburi.Entry, 0, count)

	attempts := cfg.Clouds.MaxSpawnAttempts
	if attempts < 1 {
		attempts = 1
	}

	for i := 0; i < count; i++ {
		y := RandomCloudY(canvasHeight, rng)

		bestX, bestGap := 0.0, -1.0
		accepted := false
		for a := 0; a < attempts; a++ {
			x := float64(rng.Intn(int(canvasWidth) + 1))
			gap := nearestGap(x, xs)
			if gap >= cfg.Clouds.MinDistance {
				bestX = x
				accepted = true
				break
			}
			if gap > bestGap {
				bestX, bestGap = x, gap
			}
		}
		if !accepted {
			log.Printf("Warning: cloud %d placed %.0f from its neighbour after %d attempts (want %.0f)",
				i, bestGap, attempts, cfg.Clouds.MinDistance)
		}

		spawned = append(spawned, CreateCloud(ecs, bestX, y, canvasHeight, rng, nowMillis))
		xs = append(xs, bestX)
	}

	return spawned
}

// nearestGap returns the horizontal distance from x to the closest of xs.
func nearestGap(x float64, xs []float64) float64 {
	gap := math.Inf(1)
	for _, other := range xs {
		if d := math.Abs(other - x); d < gap {
			gap = d
		}
	}
	return gap
}

func existingCloudXs(ecs *ecs.ECS) []float64 {
	var xs []float64
	tags.Cloud.Each(ecs.World, func(e *donburi.Entry) {
		xs = append(xs, components.Cloud.Get(e).X)
	})
	return xs
}
