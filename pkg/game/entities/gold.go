package entities

import "math/rand"

// Gold pile value range before depth scaling
const (
	GoldMinValue = 10
	GoldMaxValue = 30
)

// GoldValue rolls the value of one gold pile; deeper piles are worth more
func GoldValue(depth int, rng *rand.Rand) int {
	if depth < 1 {
		depth = 1
	}
	return (GoldMinValue + rng.Intn(GoldMaxValue-GoldMinValue+1)) * depth
}
