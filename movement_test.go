package main

import (
	"testing"
	"time"
)

func TestApplyInput(t *testing.T) {
	a := newAgent(0, 0)
	applyInput(a, inputState{forward: true, back: true, right: true, turnLeft: true})
	if a.forwardVel != 0 {
		t.Errorf("opposite keys should cancel, got forward %v", a.forwardVel)
	}
	if a.strafeVel != agentVelocityBase || a.angularVel != -agentAngVelBase || a.velMult != 1 {
		t.Errorf("unexpected velocities %+v", *a)
	}

	applyInput(a, inputState{forward: true, sprint: true})
	if a.forwardVel != agentVelocityBase || a.strafeVel != 0 || a.angularVel != 0 || a.velMult != sprintMultiplier {
		t.Errorf("unexpected sprint velocities %+v", *a)
	}

	applyInput(a, inputState{})
	if a.forwardVel != 0 || a.velMult != 1 {
		t.Errorf("released keys should stop the agent, got %+v", *a)
	}
}

func TestAutoWalkerExploresWithoutColliding(t *testing.T) {
	m := newSyntheticMap(25, 25)
	a := newAgent(m.startPosition())
	w := newAutoWalker(time.Minute, 11)

	travelled := 0.0
	for i := 0; i < 3000; i++ {
		px, py := a.posX, a.posY
		applyInput(a, w.next(a, m))
		a.tick(m, 1/defaultTPS)
		if m.checkCollision(a.posX, a.posY, agentSize) {
			t.Fatalf("tick %d: agent inside a wall at (%v, %v)", i, a.posX, a.posY)
		}
		dx, dy := a.posX-px, a.posY-py
		travelled += dx*dx + dy*dy
	}
	if travelled == 0 {
		t.Fatal("scripted walk never moved the agent")
	}
}

func TestAutoWalkerDeadline(t *testing.T) {
	w := newAutoWalker(time.Second, 1)
	now := time.Now()
	if !w.active(now) {
		t.Fatal("walker should be active before its deadline")
	}
	if w.active(now.Add(2 * time.Second)) {
		t.Fatal("walker should stop after its deadline")
	}
}
