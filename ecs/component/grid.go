package component

import "github.com/milk9111/gridpaint/grid"

// Grid holds the tiling built at startup. There is exactly one per world.
type Grid struct {
	*grid.Grid
}

var GridComponent = NewComponent[Grid]()
