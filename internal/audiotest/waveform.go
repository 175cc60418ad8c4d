// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"math"
	"math/rand/v2"

	"github.com/ik5/audsampler/audio"
	"github.com/ik5/audsampler/utils"
)

func frameCount(rate, durationMs int) int {
	return utils.MsToSamples(float64(durationMs), rate)
}

func mono(rate int, samples []float32) *audio.Waveform {
	w, err := audio.NewWaveform(rate, 1, samples)
	if err != nil {
		panic(err)
	}
	return w
}

// Silence returns durationMs of mono zeros.
func Silence(rate, durationMs int) *audio.Waveform {
	return mono(rate, make([]float32, frameCount(rate, durationMs)))
}

// Sine returns a mono sine of the given frequency and amplitude.
func Sine(rate, durationMs int, freq, amplitude float64) *audio.Waveform {
	samples := make([]float32, frameCount(rate, durationMs))
	for i := range samples {
		samples[i] = float32(amplitude * math.Sin(2*math.Pi*freq*float64(i)/float64(rate)))
	}
	return mono(rate, samples)
}

// Noise returns reproducible uniform white noise in [-amplitude, amplitude].
func Noise(rate, durationMs int, amplitude float64, seed uint64) *audio.Waveform {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	samples := make([]float32, frameCount(rate, durationMs))
	for i := range samples {
		samples[i] = float32(amplitude * (2*rng.Float64() - 1))
	}
	return mono(rate, samples)
}

// Bursts returns silence with an exponentially decaying noise burst starting
// at each of onsetsMs. Bursts are broadband so every mel band sees the attack.
func Bursts(rate, durationMs int, onsetsMs []int, seed uint64) *audio.Waveform {
	const decaySeconds = 0.08

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	samples := make([]float32, frameCount(rate, durationMs))
	for _, onset := range onsetsMs {
		start := frameCount(rate, onset)
		for i := start; i < len(samples); i++ {
			env := math.Exp(-float64(i-start) / float64(rate) / decaySeconds)
			if env < 1e-6 {
				break
			}
			samples[i] += float32(0.9 * env * (2*rng.Float64() - 1))
		}
	}
	return mono(rate, samples)
}

// Stereo duplicates a mono waveform into two identical channels.
func Stereo(w *audio.Waveform) *audio.Waveform {
	samples := make([]float32, len(w.Samples)*2)
	for i, s := range w.Samples {
		samples[2*i] = s
		samples[2*i+1] = s
	}
	out, err := audio.NewWaveform(w.SampleRate, 2, samples)
	if err != nil {
		panic(err)
	}
	return out
}
