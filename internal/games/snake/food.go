package snake

import "github.com/arcadehall/canvas-arcade/internal/config"

// Food is a consumable board item worth a type-specific number of points.
type Food struct {
	Pos    Point
	Type   string
	Points int
}

// rollKind picks a food kind by its configured weight.
func (g *Game) rollKind() config.FoodKind {
	kinds := g.cfg.Food.Kinds
	if len(kinds) == 0 {
		return config.FoodKind{Name: "apple", Weight: 1, Points: 1}
	}

	var total float64
	for _, k := range kinds {
		total += k.Weight
	}

	roll := g.rng.Float64() * total
	for _, k := range kinds {
		roll -= k.Weight
		if roll < 0 {
			return k
		}
	}
	return kinds[len(kinds)-1]
}

// freeCells returns every cell not occupied by the snake, a food, or a
// wall. In border-kill mode the lethal border is excluded so nothing
// spawns where the snake cannot go.
func (g *Game) freeCells() []Point {
	size := g.cfg.Grid.Size
	lo, hi := 0, size
	if g.diff.BorderKills {
		lo, hi = 1, size-1
	}

	occupied := make(map[Point]bool, len(g.snake)+len(g.foods)+len(g.walls))
	for _, seg := range g.snake {
		occupied[seg] = true
	}
	for _, f := range g.foods {
		occupied[f.Pos] = true
	}
	for _, w := range g.walls {
		occupied[w] = true
	}

	cells := make([]Point, 0, size*size)
	for y := lo; y < hi; y++ {
		for x := lo; x < hi; x++ {
			p := Point{X: x, Y: y}
			if !occupied[p] {
				cells = append(cells, p)
			}
		}
	}
	return cells
}

// spawnFood places one food of a weighted-random kind at a uniformly
// random free cell. Returns false when the board is full.
func (g *Game) spawnFood() bool {
	cells := g.freeCells()
	if len(cells) == 0 {
		return false
	}

	kind := g.rollKind()
	g.foods = append(g.foods, Food{
		Pos:    cells[g.rng.Intn(len(cells))],
		Type:   kind.Name,
		Points: kind.Points,
	})
	return true
}

// spawnWall places one wall at a uniformly random free cell.
// Returns false when the board is full.
func (g *Game) spawnWall() bool {
	cells := g.freeCells()
	if len(cells) == 0 {
		return false
	}

	g.walls = append(g.walls, cells[g.rng.Intn(len(cells))])
	return true
}
