package main

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDownmixPCM16(t *testing.T) {
	pcm := make([]byte, 10)
	binary.LittleEndian.PutUint16(pcm[0:], uint16(16384))
	binary.LittleEndian.PutUint16(pcm[2:], uint16(16384))
	binary.LittleEndian.PutUint16(pcm[4:], uint16(0x8000))
	binary.LittleEndian.PutUint16(pcm[6:], uint16(0x8000))
	samples := downmixPCM16(pcm)
	if len(samples) != 2 {
		t.Fatalf("expected 2 frames (trailing partial frame dropped), got %d", len(samples))
	}
	if samples[0] != 0.5 {
		t.Errorf("sample 0 = %v, expected 0.5", samples[0])
	}
	if samples[1] != -1 {
		t.Errorf("sample 1 = %v, expected -1", samples[1])
	}
	if downmixPCM16(pcm[:3]) != nil {
		t.Error("expected nil for less than one frame")
	}
}

func TestLoadFootstepSamplesRejectsNonWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "steps.wav")
	if err := os.WriteFile(path, []byte("not a wave file"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := loadFootstepSamples(path)
	if err == nil || !strings.Contains(err.Error(), "footstep sample") {
		t.Fatalf("expected a footstep sample error, got %v", err)
	}
	if _, err := loadFootstepSamples(filepath.Join(t.TempDir(), "missing.wav")); !os.IsNotExist(err) {
		t.Fatalf("expected a not-exist error, got %v", err)
	}
}

func TestFootstepStreamSilentWhenIdle(t *testing.T) {
	s := newFootstepStream([]float32{1, 1, 1})
	buf := make([]byte, 4*256)
	n, err := s.Read(buf)
	if err != nil || n != len(buf) {
		t.Fatalf("Read = %d, %v", n, err)
	}
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d = %d while idle", i, b)
		}
	}
}

func TestFootstepStreamFadesIn(t *testing.T) {
	s := newFootstepStream([]float32{1, 1, 1, 1})
	s.SetMoving(true)
	buf := make([]byte, 4*8000)
	if _, err := s.Read(buf); err != nil {
		t.Fatal(err)
	}
	first := int16(binary.LittleEndian.Uint16(buf[0:]))
	last := int16(binary.LittleEndian.Uint16(buf[len(buf)-4:]))
	right := int16(binary.LittleEndian.Uint16(buf[len(buf)-2:]))
	if first >= 1000 {
		t.Errorf("first sample %d, expected a gradual fade in", first)
	}
	if last < 32000 || right != last {
		t.Errorf("last frame (%d, %d), expected both channels near full scale", last, right)
	}

	s.SetMoving(false)
	if _, err := s.Read(buf); err != nil {
		t.Fatal(err)
	}
	if tail := int16(binary.LittleEndian.Uint16(buf[len(buf)-4:])); tail > 100 {
		t.Errorf("sample %d after stopping, expected a fade out", tail)
	}
}

func TestFootstepStreamWholeFrames(t *testing.T) {
	s := newFootstepStream(nil)
	if n, _ := s.Read(make([]byte, 6)); n != 4 {
		t.Fatalf("Read of 6 bytes returned %d, expected 4", n)
	}
	if n, _ := s.Read(make([]byte, 3)); n != 0 {
		t.Fatalf("Read of 3 bytes returned %d, expected 0", n)
	}
}
