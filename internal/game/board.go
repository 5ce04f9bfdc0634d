package game

import (
	"math/rand"

	"snakecoach/internal/core"
)

// ValidPlacement reports whether p can hold the food item: strictly
// inside the walls and not on any snake segment.
func ValidPlacement(p core.Position, width, height int, s *Snake) bool {
	return p.InBounds(width, height) && !s.Occupies(p)
}

// RandomPlacement picks a uniformly random free cell for the food item.
// Returns false when the snake fills the whole interior and no free cell
// exists.
func RandomPlacement(rng *rand.Rand, width, height int, s *Snake) (core.Position, bool) {
	var free []core.Position
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			p := core.Position{X: x, Y: y}
			if !s.Occupies(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return core.Position{}, false
	}
	return free[rng.Intn(len(free))], true
}
