package main

import "math"

// wallFace names the face of the hit tile that a ray struck.
type wallFace uint8

const (
	faceNorth wallFace = iota
	faceSouth
	faceEast
	faceWest
)

func (f wallFace) String() string {
	switch f {
	case faceNorth:
		return "north"
	case faceSouth:
		return "south"
	case faceEast:
		return "east"
	case faceWest:
		return "west"
	}
	return "unknown"
}

// dark reports whether the face uses the dark variant of its material.
func (f wallFace) dark() bool {
	return f == faceEast || f == faceWest
}

// rayHit is the result of casting one ray. A ray that leaves the map reports
// maxRayDistance and material 0.
type rayHit struct {
	distance float64
	face     wallFace
	texCol   int
	material uint8
}

// The axis angles are computed at run time so they round exactly like an angle
// normalised with float64 arithmetic does.
var (
	halfPi      = float64(math.Pi) / 2
	pi          = float64(math.Pi)
	threeHalfPi = pi + halfPi
)

// castRay walks the grid lines crossed by a ray from (posX, posY) and returns
// the nearest wall. Horizontal and vertical grid lines are traversed as two
// separate families; a family parallel to the ray is skipped.
func castRay(m *gridMap, posX, posY, angle float64) rayHit {
	angle = normalizeAngle(angle)

	horiz := rayHit{distance: maxRayDistance}
	if angle != halfPi && angle != threeHalfPi {
		horiz = castHorizontal(m, posX, posY, angle)
	}
	vert := rayHit{distance: maxRayDistance}
	if angle != 0 && angle != pi {
		vert = castVertical(m, posX, posY, angle)
	}
	if vert.distance < horiz.distance {
		return vert
	}
	return horiz
}

// castHorizontal intersects the ray with horizontal grid lines (constant y).
func castHorizontal(m *gridMap, posX, posY, angle float64) rayHit {
	stepY := 1.0
	if angle < halfPi || angle > threeHalfPi {
		stepY = -1
	}
	stepX := -stepY * math.Tan(angle)

	var initY float64
	if stepY < 0 {
		initY = math.Mod(-posY, 1)
	} else {
		initY = 1 - math.Mod(posY, 1)
	}
	initX := stepX * initY / stepY
	rayX, rayY := posX+initX, posY+initY

	offY := 0
	if stepY <= 0 {
		offY = -1
	}

	hit := false
	for {
		cx, cy := int(rayX), int(rayY)+offY
		if !m.inBounds(cx, cy) {
			break
		}
		if code := m.tileAt(cx, cy); code != 0 {
			hit = true
			break
		}
		rayX += stepX
		rayY += stepY
	}
	if !hit {
		return rayHit{distance: maxRayDistance}
	}

	res := rayHit{
		distance: clampDistance(math.Hypot(rayX-posX, rayY-posY)),
		material: m.tileAt(int(rayX), int(rayY)+offY),
		face:     faceNorth,
	}
	if stepY < 0 {
		res.face = faceSouth
	}
	res.texCol = textureColumn(rayX, res.face)
	return res
}

// castVertical intersects the ray with vertical grid lines (constant x).
func castVertical(m *gridMap, posX, posY, angle float64) rayHit {
	stepX := -1.0
	if angle < pi {
		stepX = 1
	}
	stepY := -stepX / math.Tan(angle)

	var initX float64
	if stepX < 0 {
		initX = math.Mod(-posX, 1)
	} else {
		initX = 1 - math.Mod(posX, 1)
	}
	initY := stepY * initX / stepX
	rayX, rayY := posX+initX, posY+initY

	offX := 0
	if stepX <= 0 {
		offX = -1
	}

	hit := false
	for {
		cx, cy := int(rayX)+offX, int(rayY)
		if !m.inBounds(cx, cy) {
			break
		}
		if code := m.tileAt(cx, cy); code != 0 {
			hit = true
			break
		}
		rayX += stepX
		rayY += stepY
	}
	if !hit {
		return rayHit{distance: maxRayDistance}
	}

	res := rayHit{
		distance: clampDistance(math.Hypot(rayX-posX, rayY-posY)),
		material: m.tileAt(int(rayX)+offX, int(rayY)),
		face:     faceEast,
	}
	if stepX > 0 {
		res.face = faceWest
	}
	res.texCol = textureColumn(rayY, res.face)
	return res
}

// textureColumn maps the off-axis hit coordinate to a texel column. North and
// East faces are seen from the other side and are mirrored.
func textureColumn(coord float64, face wallFace) int {
	_, frac := math.Modf(coord)
	if frac < 0 {
		frac += 1
	}
	col := int(frac * textureRes)
	col = clampCoord(col, 0, textureRes-1)
	if face == faceNorth || face == faceEast {
		col = textureRes - col - 1
	}
	return col
}

func clampDistance(d float64) float64 {
	if math.IsNaN(d) || d > maxRayDistance {
		return maxRayDistance
	}
	return d
}

// columnHeight projects a wall at distance dist seen through a column whose
// ray deviates offset radians from the view direction. Dividing by cos(offset)
// removes the fisheye distortion of per-column angles.
func columnHeight(projDist, dist, offset float64) float64 {
	if dist < minRayDistance {
		dist = minRayDistance
	}
	h := projDist / dist / math.Cos(offset)
	if math.IsNaN(h) || math.IsInf(h, 0) || h > maxColumnHeight {
		return maxColumnHeight
	}
	if h < 0 {
		return 0
	}
	return h
}
