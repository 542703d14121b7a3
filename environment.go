package main

import (
	"math"
	"math/rand"
)

// newSyntheticMap builds the fallback level: a border of walls plus one
// partition wall across the left half of the middle row.
func newSyntheticMap(width, height int) *gridMap {
	m := newGridMap(width, height)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			if x == 0 || x == width-1 || y == 0 || y == height-1 || (y == height/2 && x < width/2) {
				m.setTile(x, y, 1)
			}
		}
	}
	// The partition stops short of the centre column, so the centre cell is open.
	m.startX = width / 2
	m.startY = height / 2
	return m
}

// newProceduralMap creates a bordered level with random straight wall segments
// of random material. Cells within wallExclusionRadius of the start cell stay
// open.
func newProceduralMap(width, height int, rng *rand.Rand) *gridMap {
	m := newGridMap(width, height)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			if x == 0 || x == width-1 || y == 0 || y == height-1 {
				m.setTile(x, y, 1)
			}
		}
	}
	m.startX = width / 2
	m.startY = height / 2
	if width <= 4 || height <= 4 {
		return m
	}
	for s := 0; s < wallSegments; s++ {
		lengthRange := wallMaxLen - wallMinLen + 1
		if lengthRange <= 0 {
			lengthRange = 1
		}
		length := wallMinLen + rng.Intn(lengthRange)
		material := uint8(1 + rng.Intn(15))
		horizontal := rng.Intn(2) == 0
		x := rng.Intn(width-4) + 2
		y := rng.Intn(height-4) + 2
		dx, dy := 0, 1
		if horizontal {
			dx, dy = 1, 0
		}
		cx, cy := x, y
		for l := 0; l < length; l++ {
			if cx <= 1 || cx >= width-2 || cy <= 1 || cy >= height-2 {
				break
			}
			m.trySetWall(cx, cy, material)
			cx += dx
			cy += dy
		}
	}
	return m
}

// trySetWall marks a cell as a wall unless it is too close to the start cell.
func (m *gridMap) trySetWall(x, y int, material uint8) {
	dist := math.Hypot(float64(x-m.startX), float64(y-m.startY))
	if dist < wallExclusionRadius {
		return
	}
	m.setTile(x, y, material)
}
