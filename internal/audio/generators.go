package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

const (
	beatDuration       = 500 * time.Millisecond
	impactDuration     = 200 * time.Millisecond
	jingleNoteDuration = 300 * time.Millisecond
	jingleAttack       = 10 * time.Millisecond
)

// DrivingBeatGenerator streams an endless synth backing track: a bass
// pulse alternating between two root notes with a square-wave arpeggio
// on top. It never ends, so pausing its Ctrl is the only way to stop it.
type DrivingBeatGenerator struct {
	rate      beep.SampleRate
	position  int
	bassPhase float64
	leadPhase float64
}

// NewDrivingBeatGenerator creates the background music streamer.
func NewDrivingBeatGenerator(rate beep.SampleRate) *DrivingBeatGenerator {
	return &DrivingBeatGenerator{rate: rate}
}

// Four-beat bar at 120 BPM. Bass walks A1/A1/C2/G1, lead arpeggiates
// an A-minor triad one octave up per beat.
var (
	bassNotes = [4]float64{55.00, 55.00, 65.41, 49.00}
	leadNotes = [4]float64{220.00, 261.63, 329.63, 261.63}
)

func (g *DrivingBeatGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	beatSamples := g.rate.N(beatDuration)
	for i := range samples {
		beat := (g.position / beatSamples) % len(bassNotes)
		beatPos := float64(g.position%beatSamples) / float64(beatSamples)

		// Bass: sine pulse that decays over the beat.
		g.bassPhase += bassNotes[beat] / float64(g.rate)
		g.bassPhase -= math.Floor(g.bassPhase)
		bass := math.Sin(2*math.Pi*g.bassPhase) * (1.0 - beatPos) * 0.30

		// Lead: quiet square wave, gated to the first half of each beat.
		g.leadPhase += leadNotes[beat] / float64(g.rate)
		g.leadPhase -= math.Floor(g.leadPhase)
		var lead float64
		if beatPos < 0.5 {
			if g.leadPhase < 0.5 {
				lead = 0.08
			} else {
				lead = -0.08
			}
		}

		val := bass + lead
		samples[i][0] = val
		samples[i][1] = val
		g.position++
	}
	return len(samples), true
}

func (g *DrivingBeatGenerator) Err() error { return nil }

// ImpactGenerator streams a collision thud: a falling sine sweep with a
// burst of noise on top, fading linearly. Endless in principle, so callers
// bound it with beep.Take.
type ImpactGenerator struct {
	rate     beep.SampleRate
	position int
	phase    float64
}

// NewImpactGenerator creates the collision sound streamer.
func NewImpactGenerator(rate beep.SampleRate) *ImpactGenerator {
	return &ImpactGenerator{rate: rate}
}

func (g *ImpactGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	fadeSamples := float64(g.rate.N(impactDuration))
	for i := range samples {
		progress := float64(g.position) / fadeSamples
		if progress > 1.0 {
			progress = 1.0
		}
		gain := 1.0 - progress

		// Sweep from 160Hz down to 40Hz over the thud.
		freq := 160.0 - 120.0*progress
		g.phase += freq / float64(g.rate)
		g.phase -= math.Floor(g.phase)

		val := math.Sin(2*math.Pi*g.phase)*0.5 + (rand.Float64()*2-1)*0.25
		val *= gain

		samples[i][0] = val
		samples[i][1] = val
		g.position++
	}
	return len(samples), true
}

func (g *ImpactGenerator) Err() error { return nil }

// JingleGenerator streams the end-of-run jingle: three descending sine
// notes, each with a short attack and a release tail. Bounded with
// beep.Take by the caller.
type JingleGenerator struct {
	rate     beep.SampleRate
	position int
	phase    float64
}

// NewJingleGenerator creates the game-over sound streamer.
func NewJingleGenerator(rate beep.SampleRate) *JingleGenerator {
	return &JingleGenerator{rate: rate}
}

// E4, C4, G3: a minor-feel descent.
var jingleNotes = [3]float64{329.63, 261.63, 196.00}

func (g *JingleGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	noteSamples := g.rate.N(jingleNoteDuration)
	attackSamples := float64(g.rate.N(jingleAttack))
	for i := range samples {
		note := g.position / noteSamples
		if note >= len(jingleNotes) {
			samples[i][0] = 0
			samples[i][1] = 0
			g.position++
			continue
		}

		notePos := g.position % noteSamples
		gain := 1.0
		if float64(notePos) < attackSamples {
			gain = float64(notePos) / attackSamples
		} else {
			gain = 1.0 - float64(notePos)/float64(noteSamples)
		}

		g.phase += jingleNotes[note] / float64(g.rate)
		g.phase -= math.Floor(g.phase)

		val := math.Sin(2*math.Pi*g.phase) * gain * 0.5
		samples[i][0] = val
		samples[i][1] = val
		g.position++
	}
	return len(samples), true
}

func (g *JingleGenerator) Err() error { return nil }
