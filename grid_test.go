package main

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
)

// borderedMap returns a width×height map with only the border filled.
func borderedMap(t *testing.T, width, height int) *gridMap {
	t.Helper()
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d %d %d %d\n", width, height, width/2, height/2)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x == 0 || y == 0 || x == width-1 || y == height-1 {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('\n')
	}
	m, err := parseMap(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("parseMap: %v", err)
	}
	return m
}

func TestCheckCollisionOpenNeighbourhood(t *testing.T) {
	m := borderedMap(t, 7, 7)
	for cy := 2; cy <= 4; cy++ {
		for cx := 2; cx <= 4; cx++ {
			for _, fx := range []float64{0, 0.25, 0.5, 0.99} {
				for _, fy := range []float64{0, 0.3, 0.75} {
					for _, size := range []float64{0.1, 0.5, 1.0} {
						x, y := float64(cx)+fx, float64(cy)+fy
						if m.checkCollision(x, y, size) {
							t.Errorf("checkCollision(%.2f, %.2f, %.1f) = true, expected false", x, y, size)
						}
					}
				}
			}
		}
	}
}

func TestCheckCollisionOutsideMap(t *testing.T) {
	m := borderedMap(t, 7, 5)
	cases := []struct{ x, y float64 }{
		{-0.1, 2.5}, {-3, 2.5}, {7, 2.5}, {7.2, 2.5}, {12, 2.5},
		{3.5, -0.2}, {3.5, -4}, {3.5, 5}, {3.5, 5.5},
		{-1, -1}, {8, 9},
	}
	for _, c := range cases {
		if !m.checkCollision(c.x, c.y, agentSize) {
			t.Errorf("checkCollision(%.1f, %.1f) = false, expected true", c.x, c.y)
		}
	}
}

func TestCheckCollisionTruncatesTowardZero(t *testing.T) {
	// An open map with no border: the left corner at -0.35 truncates to cell 0
	// and is therefore not reported as outside.
	m := newGridMap(3, 3)
	if m.checkCollision(0.1, 1.5, 0.9) {
		t.Error("expected corner at -0.35 to truncate into cell 0 without collision")
	}
	if !m.checkCollision(-1.2, 1.5, 0.5) {
		t.Error("expected corner at -1.45 to be outside the map")
	}
}

func TestCheckCollisionHitsWallCorner(t *testing.T) {
	m := borderedMap(t, 5, 5)
	m.setTile(2, 2, 3)
	if !m.checkCollision(1.9, 1.9, 0.5) {
		t.Error("expected bottom-right corner in wall cell (2,2) to collide")
	}
	if m.checkCollision(1.5, 1.5, 0.5) {
		t.Error("expected square inside cell (1,1) to be free")
	}
}

func TestIsWallOutOfBounds(t *testing.T) {
	m := newGridMap(2, 2)
	if !m.isWall(-1, 0) || !m.isWall(0, 2) {
		t.Error("expected out-of-range cells to count as walls")
	}
	if m.isWall(1, 1) {
		t.Error("expected empty cell to not be a wall")
	}
}

func TestSyntheticMapLayout(t *testing.T) {
	m := newSyntheticMap(25, 25)
	for x := 0; x < 25; x++ {
		if m.tileAt(x, 0) != 1 || m.tileAt(x, 24) != 1 {
			t.Fatalf("expected border wall at column %d", x)
		}
	}
	for x := 1; x < 12; x++ {
		if m.tileAt(x, 12) != 1 {
			t.Errorf("expected partition wall at (%d,12)", x)
		}
	}
	if m.tileAt(12, 12) != 0 || m.tileAt(13, 12) != 0 {
		t.Error("expected partition to stop at the centre column")
	}
	if m.startX != 12 || m.startY != 12 {
		t.Errorf("expected start (12,12), got (%d,%d)", m.startX, m.startY)
	}
	x, y := m.startPosition()
	if m.checkCollision(x, y, agentSize) {
		t.Error("expected start position to be free")
	}
}

func TestProceduralMapReproducible(t *testing.T) {
	m1 := newProceduralMap(30, 20, rand.New(rand.NewSource(42)))
	m2 := newProceduralMap(30, 20, rand.New(rand.NewSource(42)))
	for i := range m1.tiles {
		if m1.tiles[i] != m2.tiles[i] {
			t.Fatalf("tile %d differs between maps with the same seed", i)
		}
	}
	for x := 0; x < m1.width; x++ {
		if m1.tileAt(x, 0) == 0 || m1.tileAt(x, m1.height-1) == 0 {
			t.Fatalf("expected border wall at column %d", x)
		}
	}
	for y := 0; y < m1.height; y++ {
		if m1.tileAt(0, y) == 0 || m1.tileAt(m1.width-1, y) == 0 {
			t.Fatalf("expected border wall at row %d", y)
		}
	}
	x, y := m1.startPosition()
	if m1.checkCollision(x, y, agentSize) {
		t.Error("expected the start position to be kept clear")
	}
}
