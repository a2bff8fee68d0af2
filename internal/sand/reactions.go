package sand

// update dispatches the cell at (x, y) to the rule for its kind.
func (g *Grid) update(x, y int) {
	switch g.cells[g.ToIndex(x, y)].Kind {
	case Sand:
		g.moveSolid(x, y)
	case Water:
		g.moveLiquid(x, y)
	case Fire:
		g.updateFire(x, y)
	case Lava:
		g.updateLava(x, y)
	case Acid:
		g.updateAcid(x, y)
	case Smoke, Steam:
		g.moveGas(x, y)
	case Empty, Wood, Iron:
	}
}

// armFuse sets the fuse of an unarmed cell and reports whether it was
// already armed.
func (g *Grid) armFuse(x, y int) bool {
	c := &g.cells[g.ToIndex(x, y)]
	if !c.Fuse {
		c.Fuse = true
		return false
	}
	return true
}

// updateFire ignites every adjacent Wood once armed, or burns out to Smoke
// when no Wood is left. Fire never moves.
func (g *Grid) updateFire(x, y int) {
	if !g.armFuse(x, y) {
		return
	}
	burnt := false
	for _, n := range g.Neighbors(x, y) {
		if g.is(n.X, n.Y, Wood) {
			g.convert(n.X, n.Y, Fire)
			burnt = true
		}
	}
	if !burnt {
		g.convert(x, y, Smoke)
	}
}

// updateLava ignites all adjacent Wood without a fuse. The first adjacent
// Water evaporates: the water cell empties and the lava itself turns to
// Steam. Lava that evaporated water does not move this tick.
func (g *Grid) updateLava(x, y int) {
	evaporated := false
	for _, n := range g.Neighbors(x, y) {
		switch {
		case g.is(n.X, n.Y, Wood):
			g.convert(n.X, n.Y, Fire)
		case !evaporated && g.is(n.X, n.Y, Water):
			g.convert(x, y, Steam)
			g.convert(n.X, n.Y, Empty)
			evaporated = true
		}
	}
	if evaporated {
		return
	}
	g.moveLiquid(x, y)
}

// updateAcid corrodes the first adjacent Iron once armed, then always
// flows like a liquid.
func (g *Grid) updateAcid(x, y int) {
	if !g.armFuse(x, y) {
		return
	}
	for _, n := range g.Neighbors(x, y) {
		if g.is(n.X, n.Y, Iron) {
			g.convert(n.X, n.Y, Acid)
			break
		}
	}
	g.moveLiquid(x, y)
}
