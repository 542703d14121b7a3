package main

import "math"

// agent is the viewer: a pose plus the velocities delivered by the input
// layer. It is mutated once per tick and read-only while a frame renders.
type agent struct {
	posX, posY float64
	angle      float64

	forwardVel float64
	strafeVel  float64
	angularVel float64
	velMult    float64
}

func newAgent(x, y float64) *agent {
	return &agent{posX: x, posY: y, velMult: 1}
}

// direction returns the unit vector the agent faces. Angle 0 faces -Y.
func (a *agent) direction() (float64, float64) {
	return math.Sin(a.angle), -math.Cos(a.angle)
}

// tick integrates the velocities over dt. Each axis is resolved on its own so
// the agent slides along walls instead of stopping dead.
func (a *agent) tick(grid *gridMap, dt float64) {
	if math.Abs(a.forwardVel) < velocityEpsilon &&
		math.Abs(a.strafeVel) < velocityEpsilon &&
		math.Abs(a.angularVel) < velocityEpsilon {
		return
	}

	sin, cos := math.Sincos(a.angle)
	velX := (a.forwardVel*sin + a.strafeVel*cos) * a.velMult
	velY := (-a.forwardVel*cos + a.strafeVel*sin) * a.velMult
	newX := a.posX + velX*dt
	newY := a.posY + velY*dt

	if !grid.checkCollision(newX, a.posY, agentSize) {
		a.posX = newX
	}
	if !grid.checkCollision(a.posX, newY, agentSize) {
		a.posY = newY
	}

	if math.Abs(a.angularVel) >= angularDeadzone {
		a.angle = normalizeAngle(math.Mod(a.angle+twoPi+a.angularVel*a.velMult*dt, twoPi))
	}
}

// normalizeAngle maps any finite angle into [0, 2π).
func normalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, twoPi)
	if angle < 0 {
		angle += twoPi
	}
	if angle >= twoPi {
		angle = 0
	}
	return angle
}
