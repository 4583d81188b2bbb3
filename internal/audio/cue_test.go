package audio

import (
	"math"
	"testing"
)

func TestBumpSoundLength(t *testing.T) {
	s, err := BumpSound(sampleRate, 0.5)
	if err != nil {
		t.Fatalf("Failed to create bump: %v", err)
	}

	want := sampleRate.N(bumpDuration)
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		for i := 0; i < n; i++ {
			if math.Abs(buf[i][0]) > 0.5+1e-9 {
				t.Fatalf("Sample %d louder than volume: %f", total, buf[i][0])
			}
		}
		if !ok {
			break
		}
	}
	if total != want {
		t.Errorf("Expected %d samples, got %d", want, total)
	}
	if s.Err() != nil {
		t.Errorf("Expected no error, got: %v", s.Err())
	}
}

func TestBumpSoundSilent(t *testing.T) {
	s, err := BumpSound(sampleRate, 0)
	if err != nil {
		t.Fatalf("Failed to create bump: %v", err)
	}
	buf := make([][2]float64, 256)
	n, _ := s.Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i][0] != 0 || buf[i][1] != 0 {
			t.Fatalf("Expected silence, got %v at %d", buf[i], i)
		}
	}
}

func TestPlayBeforeInitializeIsNoop(t *testing.T) {
	p := NewBumpPlayer(1)
	p.Play()
	if p.mixer.Len() != 0 {
		t.Errorf("Expected nothing queued, got %d", p.mixer.Len())
	}
	p.Close()
}

func TestAddQueuesStreamer(t *testing.T) {
	p := NewBumpPlayer(1)
	p.add()
	p.add()
	if p.mixer.Len() != 2 {
		t.Errorf("Expected 2 queued sounds, got %d", p.mixer.Len())
	}
}
