package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// loadFootstepSamples decodes a WAV footstep loop, resampled to
// audioSampleRate and downmixed to mono.
func loadFootstepSamples(path string) ([]float32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stream, err := wav.DecodeWithSampleRate(audioSampleRate, f)
	if err != nil {
		return nil, fmt.Errorf("footstep sample %q: %w", path, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("footstep sample %q: %w", path, err)
	}
	samples := downmixPCM16(pcm)
	if len(samples) == 0 {
		return nil, fmt.Errorf("footstep sample %q has no complete stereo frames", path)
	}
	return samples, nil
}

// downmixPCM16 averages little-endian 16-bit stereo frames into mono samples
// in [-1, 1). A trailing partial frame is dropped.
func downmixPCM16(pcm []byte) []float32 {
	frames := len(pcm) / 4
	if frames == 0 {
		return nil
	}
	mono := make([]float32, frames)
	for i := range mono {
		l := int16(binary.LittleEndian.Uint16(pcm[4*i:]))
		r := int16(binary.LittleEndian.Uint16(pcm[4*i+2:]))
		mono[i] = float32(int32(l)+int32(r)) / 65536
	}
	return mono
}

// footstepStream loops a sample buffer and fades it in while the agent moves
// and out when it stops. It produces 16-bit stereo PCM for an audio.Player.
type footstepStream struct {
	mu      sync.Mutex
	samples []float32
	pos     int
	target  float32
	gain    float32
}

func newFootstepStream(samples []float32) *footstepStream {
	return &footstepStream{samples: samples}
}

// SetMoving is called once per tick from the game loop.
func (s *footstepStream) SetMoving(moving bool) {
	s.mu.Lock()
	if moving {
		s.target = 1
	} else {
		s.target = 0
	}
	s.mu.Unlock()
}

func (s *footstepStream) Read(p []byte) (int, error) {
	// Ensure we generate whole stereo frames (4 bytes per frame).
	frameBytes := len(p) - len(p)%4
	if frameBytes == 0 {
		return 0, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < frameBytes; i += 4 {
		s.gain += (s.target - s.gain) * footstepGainSmoothing
		var v float32
		if len(s.samples) > 0 {
			v = s.samples[s.pos] * s.gain
			s.pos++
			if s.pos >= len(s.samples) {
				s.pos = 0
			}
		}
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		pcm := int16(v * 32767)
		p[i] = byte(pcm)
		p[i+1] = byte(pcm >> 8)
		p[i+2] = p[i]
		p[i+3] = p[i+1]
	}
	return frameBytes, nil
}

func (s *footstepStream) Close() error {
	return nil
}

// startFootsteps decodes path and starts a looping player gated by movement.
func startFootsteps(path string) (*footstepStream, *audio.Player, error) {
	samples, err := loadFootstepSamples(path)
	if err != nil {
		return nil, nil, err
	}
	ctx := audio.NewContext(audioSampleRate)
	stream := newFootstepStream(samples)
	player, err := ctx.NewPlayer(stream)
	if err != nil {
		return nil, nil, fmt.Errorf("creating audio player: %w", err)
	}
	player.SetBufferSize(audioBufferDuration)
	player.Play()
	return stream, player, nil
}
