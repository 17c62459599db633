package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(48000)

func drain(t *testing.T, s beep.Streamer, d time.Duration) [][2]float64 {
	t.Helper()
	total := testRate.N(d)
	out := make([][2]float64, 0, total)
	buf := make([][2]float64, 512)
	for len(out) < total {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			break
		}
	}
	return out
}

func assertInRange(t *testing.T, samples [][2]float64) {
	t.Helper()
	for i, s := range samples {
		for ch := 0; ch < 2; ch++ {
			if math.Abs(s[ch]) > 1.0 {
				t.Fatalf("sample %d channel %d clips: %f", i, ch, s[ch])
			}
		}
	}
}

func TestDrivingBeatGeneratorIsEndless(t *testing.T) {
	g := NewDrivingBeatGenerator(testRate)

	samples := drain(t, g, 3*time.Second)
	if len(samples) < testRate.N(3*time.Second) {
		t.Fatal("music generator must never end")
	}
	assertInRange(t, samples)

	// It must actually produce sound, not silence.
	var energy float64
	for _, s := range samples {
		energy += math.Abs(s[0])
	}
	if energy == 0 {
		t.Error("music generator produced silence")
	}
}

func TestImpactGeneratorFadesOut(t *testing.T) {
	g := NewImpactGenerator(testRate)

	samples := drain(t, g, 400*time.Millisecond)
	assertInRange(t, samples)

	// Past the fade window the thud must be silent.
	for i := testRate.N(250 * time.Millisecond); i < len(samples); i++ {
		if samples[i][0] != 0 {
			t.Fatalf("impact still audible at sample %d: %f", i, samples[i][0])
		}
	}
}

func TestJingleGeneratorEndsSilent(t *testing.T) {
	g := NewJingleGenerator(testRate)

	samples := drain(t, g, 1200*time.Millisecond)
	assertInRange(t, samples)

	// Three 300ms notes; after 900ms only silence remains.
	for i := testRate.N(950 * time.Millisecond); i < len(samples); i++ {
		if samples[i][0] != 0 {
			t.Fatalf("jingle still audible at sample %d: %f", i, samples[i][0])
		}
	}
}

func TestUninitializedManagerIsSilentNoop(t *testing.T) {
	m := NewManager()

	// None of these may panic or block without a speaker.
	m.StartMusic()
	m.PlayImpact()
	m.PlayGameOver()
	m.StopMusic()
	m.Cleanup()
}
