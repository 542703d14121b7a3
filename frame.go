package main

import (
	"context"
	"log"
	"math"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// renderer sequences a frame: deferred resize, floor pass, wall pass. It owns
// the viewport tables, the frame buffer, and the floor worker pool.
type renderer struct {
	world  *world
	fov    float64
	mode   floorMode
	pool   *floorPool
	tracer trace.Tracer

	vp   *viewport
	fb   *frameBuffer
	hits []rayHit
	pose pose

	resizePending bool
	pendingW      int
	pendingH      int

	floorTask func(index int)
}

// newRenderer creates a renderer for a width×height viewport. The tables are
// built lazily by the first frame.
func newRenderer(w *world, width, height int, fov float64, mode floorMode, workers int, tracer trace.Tracer) *renderer {
	r := &renderer{
		world:  w,
		fov:    fov,
		mode:   mode,
		pool:   newFloorPool(workers),
		tracer: tracer,
	}
	r.floorTask = r.floorBand
	r.requestResize(width, height)
	return r
}

// requestResize records a new viewport size. It takes effect at the start of
// the next frame, never mid-frame.
func (r *renderer) requestResize(width, height int) {
	if width < 1 || height < 1 {
		return
	}
	if r.vp != nil && !r.resizePending && r.vp.width == width && r.vp.height == height {
		return
	}
	r.pendingW, r.pendingH = width, height
	r.resizePending = true
}

func (r *renderer) applyResize(ctx context.Context) {
	_, span := r.tracer.Start(ctx, "renderer.resize")
	defer span.End()
	span.SetAttributes(
		attribute.Int("viewport.width", r.pendingW),
		attribute.Int("viewport.height", r.pendingH),
	)
	r.vp = newViewport(r.pendingW, r.pendingH, r.fov)
	r.fb = newFrameBuffer(r.pendingW, r.pendingH)
	r.hits = make([]rayHit, r.pendingW)
	r.resizePending = false
	log.Printf("Viewport %dx%d (projection distance %.1f)", r.vp.width, r.vp.height, r.vp.projDist)
}

// renderFrame draws the current pose into the frame buffer and returns it.
// The buffer stays valid until the next call.
func (r *renderer) renderFrame(ctx context.Context) *frameBuffer {
	ctx, span := r.tracer.Start(ctx, "renderer.frame")
	defer span.End()

	if r.resizePending {
		r.applyResize(ctx)
	}
	r.pose = r.world.pose()
	r.fb.clear()

	_, floorSpan := r.tracer.Start(ctx, "renderer.floor")
	r.pool.dispatch(r.floorTask)
	floorSpan.End()

	_, wallSpan := r.tracer.Start(ctx, "renderer.walls")
	r.castWalls()
	wallSpan.End()

	return r.fb
}

// floorBand renders the band of floor rows owned by one worker.
func (r *renderer) floorBand(index int) {
	start, end := bandFor(index, r.pool.workers, r.vp.floorRows())
	renderFloorRows(r.fb, r.vp, r.pose, r.world.textures, r.mode, start, end)
}

// castWalls casts one ray per column and draws the wall slices over the floor.
func (r *renderer) castWalls() {
	vp, grid, ts := r.vp, r.world.grid, r.world.textures
	for x := 0; x < vp.width; x++ {
		offset := vp.colAngles[x]
		hit := castRay(grid, r.pose.x, r.pose.y, r.pose.angle+offset)
		r.hits[x] = hit
		if hit.material == 0 {
			continue
		}
		h := columnHeight(vp.projDist, hit.distance, offset)
		drawWallColumn(r.fb, vp, x, h, hit.texCol, ts.wallTexture(hit.material, hit.face))
	}
}

// drawWallColumn scales one texture column to height h, centred on the
// horizon, and clips it to the screen.
func drawWallColumn(fb *frameBuffer, vp *viewport, x int, h float64, texCol int, tex *texture) {
	if h <= 0 {
		return
	}
	top := float64(vp.horizon) - h/2
	y0 := int(math.Ceil(top - 0.5))
	y1 := int(math.Ceil(top + h - 0.5))
	if y0 < 0 {
		y0 = 0
	}
	if y1 > fb.height {
		y1 = fb.height
	}
	tx := clampCoord(texCol*tex.size/textureRes, 0, tex.size-1)
	for y := y0; y < y1; y++ {
		ty := int((float64(y) + 0.5 - top) / h * float64(tex.size))
		fb.putTexel(x, y, tex.texel(tx, clampCoord(ty, 0, tex.size-1)))
	}
}

// close stops the floor workers.
func (r *renderer) close() {
	r.pool.close()
}
