package main

import (
	"math"
	"time"
)

// Rendering, movement, and map configuration constants used throughout the
// application. These values define the default viewport, the agent's movement
// increments, and the limits applied to ray and floor casting.
const (
	defaultViewW          = 640
	defaultViewH          = 400
	windowScale           = 2
	defaultFOVDeg         = 60.0
	defaultTPS            = 60.0
	textureRes            = 64
	wallHeight            = 1.0
	eyeHeight             = wallHeight / 2
	maxRayDistance        = 1000.0
	maxColumnHeight       = 1 << 15
	minRayDistance        = 1e-6
	agentSize             = 0.5
	agentVelocityBase     = 6.0
	agentAngVelBase       = 2.5
	sprintMultiplier      = 2.0
	angularDeadzone       = 0.01
	velocityEpsilon       = 1e-9
	wallSegments          = 12
	wallMinLen            = 3
	wallMaxLen            = 9
	wallExclusionRadius   = 2
	maxMapSide            = 4096
	minimapScale          = 4
	pgoRecordDuration     = 15 * time.Second
	statusLogInterval     = 5 * time.Second
	audioSampleRate       = 48000
	audioBufferDuration   = 80 * time.Millisecond
	footstepGainSmoothing = 0.002
	tuiKeyHold            = 150 * time.Millisecond
	tuiFrameInterval      = time.Second / 30
	deadlockTimeout       = 2 * time.Second
)

const twoPi = 2 * math.Pi
