package sand

// moveTo swaps the particle at (x, y) into (dx, dy) when the destination
// holds want. It reports whether the move happened.
func (g *Grid) moveTo(x, y, dx, dy int, want Kind) bool {
	if !g.is(dx, dy, want) {
		return false
	}
	g.Swap(g.ToIndex(x, y), g.ToIndex(dx, dy))
	return true
}

// moveSolid: down, down through water, down-left, down-right.
func (g *Grid) moveSolid(x, y int) bool {
	switch {
	case g.moveTo(x, y, x, y+1, Empty):
		return true
	case g.moveTo(x, y, x, y+1, Water):
		return true
	case x > 0 && g.moveTo(x, y, x-1, y+1, Empty):
		return true
	case g.moveTo(x, y, x+1, y+1, Empty):
		return true
	}
	return false
}

// moveLiquid: down, down-left, down-right, left, right.
func (g *Grid) moveLiquid(x, y int) bool {
	switch {
	case g.moveTo(x, y, x, y+1, Empty):
		return true
	case x > 0 && g.moveTo(x, y, x-1, y+1, Empty):
		return true
	case g.moveTo(x, y, x+1, y+1, Empty):
		return true
	case x > 0 && g.moveTo(x, y, x-1, y, Empty):
		return true
	case g.moveTo(x, y, x+1, y, Empty):
		return true
	}
	return false
}

// moveGas: up, up-left, up-right, left, right. Gas pinned to the top row
// does not move at all, sideways included.
func (g *Grid) moveGas(x, y int) bool {
	if y == 0 {
		return false
	}
	switch {
	case g.moveTo(x, y, x, y-1, Empty):
		return true
	case x > 0 && g.moveTo(x, y, x-1, y-1, Empty):
		return true
	case g.moveTo(x, y, x+1, y-1, Empty):
		return true
	case x > 0 && g.moveTo(x, y, x-1, y, Empty):
		return true
	case g.moveTo(x, y, x+1, y, Empty):
		return true
	}
	return false
}
