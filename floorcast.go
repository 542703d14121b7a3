package main

import (
	"fmt"
	"math"
)

// floorMode selects how floor intersections are computed across a row.
type floorMode int

const (
	// floorScanline casts the first and last column of each row and steps
	// linearly between them. Floor rays at a fixed row vary almost linearly in
	// world position across a narrow field of view, so the error stays small.
	floorScanline floorMode = iota
	// floorPerPixel casts every pixel.
	floorPerPixel
)

func (m floorMode) String() string {
	if m == floorPerPixel {
		return "pixel"
	}
	return "scanline"
}

func parseFloorMode(s string) (floorMode, error) {
	switch s {
	case "scanline", "":
		return floorScanline, nil
	case "pixel":
		return floorPerPixel, nil
	}
	return floorScanline, fmt.Errorf("unknown floor mode %q (want scanline or pixel)", s)
}

// pose is the snapshot of the agent that one frame is rendered from.
type pose struct {
	x, y  float64
	angle float64
}

// ahead returns the point d cells away along the heading turned by offset
// radians.
func (p pose) ahead(offset, d float64) (float64, float64) {
	sin, cos := math.Sincos(p.angle + offset)
	return p.x + d*sin, p.y - d*cos
}

// frameBuffer is the RGBA target shared by the floor workers and the wall pass.
type frameBuffer struct {
	width, height int
	pix           []byte
}

func newFrameBuffer(width, height int) *frameBuffer {
	return &frameBuffer{width: width, height: height, pix: make([]byte, width*height*4)}
}

// putTexel copies one texel into the pixel at (x, y).
func (fb *frameBuffer) putTexel(x, y int, px []byte) {
	i := (y*fb.width + x) * 4
	copy(fb.pix[i:i+4], px)
}

// clear fills the buffer with opaque black.
func (fb *frameBuffer) clear() {
	for i := 0; i < len(fb.pix); i += 4 {
		fb.pix[i] = 0
		fb.pix[i+1] = 0
		fb.pix[i+2] = 0
		fb.pix[i+3] = 255
	}
}

// floorPoint intersects a ray with the ground plane. hAngle is the ray's
// horizontal offset from the facing direction and vAngle its downward angle.
func floorPoint(p pose, hAngle, vAngle float64) (float64, float64) {
	return p.ahead(hAngle, eyeHeight/math.Tan(vAngle)/math.Cos(hAngle))
}

// sampleCoord maps a world coordinate to a texel index by its fractional
// part. Negative fractions wrap to the other end of the texture.
func sampleCoord(v float64, size int) int {
	_, frac := math.Modf(v)
	i := int(math.Floor(frac * float64(size)))
	if i < 0 {
		i += size
	}
	return clampCoord(i, 0, size-1)
}

// renderFloorRows fills floor rows [r0, r1) and their mirrored ceiling rows.
// Rows are counted from the horizon downward.
func renderFloorRows(fb *frameBuffer, vp *viewport, p pose, ts *textureSet, mode floorMode, r0, r1 int) {
	floor, ceil := ts.floor, ts.ceiling
	w := vp.width
	for r := r0; r < r1; r++ {
		y := vp.horizon + r
		cy := vp.ceilingRow(r)
		vAngle := vp.rowAngles[r]

		if mode == floorPerPixel {
			for x := 0; x < w; x++ {
				wx, wy := floorPoint(p, vp.colAngles[x], vAngle)
				paintFloorPixel(fb, floor, ceil, x, y, cy, wx, wy)
			}
			continue
		}

		wx, wy := floorPoint(p, vp.colAngles[0], vAngle)
		var stepX, stepY float64
		if w > 1 {
			ex, ey := floorPoint(p, vp.colAngles[w-1], vAngle)
			stepX = (ex - wx) / float64(w-1)
			stepY = (ey - wy) / float64(w-1)
		}
		for x := 0; x < w; x++ {
			paintFloorPixel(fb, floor, ceil, x, y, cy, wx, wy)
			wx += stepX
			wy += stepY
		}
	}
}

func paintFloorPixel(fb *frameBuffer, floor, ceil *texture, x, y, cy int, wx, wy float64) {
	fb.putTexel(x, y, floor.texel(sampleCoord(wx, floor.size), sampleCoord(wy, floor.size)))
	if cy >= 0 {
		fb.putTexel(x, cy, ceil.texel(sampleCoord(wx, ceil.size), sampleCoord(wy, ceil.size)))
	}
}
