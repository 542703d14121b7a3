package main

// gridMap holds the immutable tile codes of the level. Code 0 is empty floor,
// any other code names a wall material.
type gridMap struct {
	width  int
	height int
	tiles  []uint8
	startX int
	startY int
}

// newGridMap allocates an empty map of the given size.
func newGridMap(width, height int) *gridMap {
	return &gridMap{
		width:  width,
		height: height,
		tiles:  make([]uint8, width*height),
	}
}

// tileAt returns the code at (x, y). The caller must bounds-check first.
func (m *gridMap) tileAt(x, y int) uint8 {
	return m.tiles[y*m.width+x]
}

func (m *gridMap) setTile(x, y int, code uint8) {
	m.tiles[y*m.width+x] = code
}

// inBounds reports whether (x, y) addresses a cell of the map.
func (m *gridMap) inBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// isWall reports whether the coordinates reference a wall cell. Cells outside
// the map count as walls.
func (m *gridMap) isWall(x, y int) bool {
	if !m.inBounds(x, y) {
		return true
	}
	return m.tileAt(x, y) != 0
}

// checkCollision samples the four corners of a square of side size centred on
// (posX, posY). Corner coordinates are truncated toward zero, so a corner at
// -0.4 lands in cell 0.
func (m *gridMap) checkCollision(posX, posY, size float64) bool {
	half := size / 2
	left := int(posX - half)
	right := int(posX + half)
	top := int(posY - half)
	bottom := int(posY + half)
	if left < 0 || right >= m.width || top < 0 || bottom >= m.height {
		return true
	}
	return m.tileAt(left, top) != 0 || m.tileAt(left, bottom) != 0 ||
		m.tileAt(right, top) != 0 || m.tileAt(right, bottom) != 0
}

// startPosition returns the centre of the start cell.
func (m *gridMap) startPosition() (float64, float64) {
	return float64(m.startX) + 0.5, float64(m.startY) + 0.5
}

// clampCoord constrains v to lie within the inclusive [min, max] range.
func clampCoord(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
