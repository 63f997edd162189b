package engine

import "math/rand"

// Roller produces uniform 1–6 dice from an injected source so games replay
// bit-for-bit under a fixed seed.
type Roller struct {
	rng *rand.Rand
}

func NewRoller(rng *rand.Rand) *Roller {
	return &Roller{rng: rng}
}

// Roll returns n dice values.
func (r *Roller) Roll(n int) []int {
	dice := make([]int, n)
	for i := range dice {
		dice[i] = r.rng.Intn(6) + 1
	}
	return dice
}

func sum(dice []int) int {
	total := 0
	for _, d := range dice {
		total += d
	}
	return total
}

// isDoubles reports whether the roll is a pair of equal dice.
func isDoubles(dice []int) bool {
	return len(dice) == 2 && dice[0] == dice[1]
}

// matchesMustRoll reports whether any rolled die is in the required set.
func matchesMustRoll(dice []int, required []int) bool {
	for _, d := range dice {
		for _, want := range required {
			if d == want {
				return true
			}
		}
	}
	return false
}
