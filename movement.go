package main

import (
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// inputState is the set of movement controls held during one tick.
type inputState struct {
	forward, back       bool
	left, right         bool
	turnLeft, turnRight bool
	sprint              bool
}

// applyInput turns held controls into agent velocities. Each control adds a
// fixed increment, so opposite keys cancel out.
func applyInput(a *agent, in inputState) {
	a.forwardVel, a.strafeVel, a.angularVel = 0, 0, 0
	if in.forward {
		a.forwardVel += agentVelocityBase
	}
	if in.back {
		a.forwardVel -= agentVelocityBase
	}
	if in.left {
		a.strafeVel -= agentVelocityBase
	}
	if in.right {
		a.strafeVel += agentVelocityBase
	}
	if in.turnLeft {
		a.angularVel -= agentAngVelBase
	}
	if in.turnRight {
		a.angularVel += agentAngVelBase
	}
	a.velMult = 1
	if in.sprint {
		a.velMult = sprintMultiplier
	}
}

// keyboardInput reads WASD, the arrow keys, and Shift.
func keyboardInput() inputState {
	return inputState{
		forward:   ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp),
		back:      ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown),
		left:      ebiten.IsKeyPressed(ebiten.KeyA),
		right:     ebiten.IsKeyPressed(ebiten.KeyD),
		turnLeft:  ebiten.IsKeyPressed(ebiten.KeyLeft),
		turnRight: ebiten.IsKeyPressed(ebiten.KeyRight),
		sprint:    ebiten.IsKeyPressed(ebiten.KeyShift),
	}
}

// autoWalker drives the agent along a pseudo-random, collision-aware path for
// a limited time.
type autoWalker struct {
	rng        *rand.Rand
	deadline   time.Time
	turnFrames int
	turnLeft   bool
	walkFrames int
}

func newAutoWalker(duration time.Duration, seed int64) *autoWalker {
	return &autoWalker{
		rng:      rand.New(rand.NewSource(seed)),
		deadline: time.Now().Add(duration),
	}
}

// active reports whether the scripted walk is still running at now.
func (w *autoWalker) active(now time.Time) bool {
	return now.Before(w.deadline)
}

// next returns the controls for one tick. The walker turns in place when the
// cell a short way ahead is a wall and otherwise alternates straight runs with
// short random turns.
func (w *autoWalker) next(a *agent, grid *gridMap) inputState {
	dx, dy := a.direction()
	aheadX := a.posX + dx*(agentSize+0.25)
	aheadY := a.posY + dy*(agentSize+0.25)
	if grid.checkCollision(aheadX, aheadY, agentSize) {
		if w.turnFrames <= 0 {
			w.turnFrames = 10 + w.rng.Intn(20)
			w.turnLeft = w.rng.Intn(2) == 0
		}
	}
	if w.turnFrames > 0 {
		w.turnFrames--
		return inputState{turnLeft: w.turnLeft, turnRight: !w.turnLeft}
	}
	if w.walkFrames <= 0 {
		w.walkFrames = 20 + w.rng.Intn(50)
		if w.rng.Intn(3) == 0 {
			w.turnFrames = 5 + w.rng.Intn(15)
			w.turnLeft = w.rng.Intn(2) == 0
		}
	}
	w.walkFrames--
	return inputState{forward: true}
}
