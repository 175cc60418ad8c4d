// SPDX-License-Identifier: EPL-2.0

package audsampler_test

import (
	"fmt"

	"github.com/ik5/audsampler"
	"github.com/ik5/audsampler/audio"
	"github.com/ik5/audsampler/effects"
	"github.com/ik5/audsampler/internal/audiotest"
	"github.com/ik5/audsampler/stretch"
)

// Example_load mixes a decoded stereo stream down to mono at 8 kHz.
func Example_load() {
	in := audiotest.Stereo(audiotest.Sine(44100, 1000, 440, 0.3))

	w, err := audsampler.Load(audio.NewSource(in), 8000)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Printf("%d Hz, %d channel(s), peak %.2f\n", w.SampleRate, w.Channels, w.Peak())

	// Output:
	// 8000 Hz, 1 channel(s), peak 1.00
}

// Example_analyze cuts a recording with two hits into samples.
func Example_analyze() {
	w := audiotest.Bursts(22050, 3000, []int{500, 1800}, 1)

	samples, err := audsampler.Analyze(w, audsampler.DefaultOptions())
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	last := samples[len(samples)-1].Region
	fmt.Printf("%d samples, first at %d ms, last ends at %d ms\n",
		len(samples), samples[0].Region.StartMs, last.EndMs())

	// Output:
	// 3 samples, first at 0 ms, last ends at 2999 ms
}

// Example_resynthesize runs a slice through an effect chain and stretches it.
func Example_resynthesize() {
	w := audiotest.Sine(22050, 500, 220, 0.5)

	chain, err := effects.ParseChain("lowpass:2000,reverb:40")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	opts := effects.Options{PadMs: 500, FadeInMs: 10, FadeOutMs: 100}
	wet, err := effects.Apply(w, chain, opts)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	long, err := stretch.Sound(wet, 4, 0.8)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Printf("%d ms -> %d ms -> %d ms\n", w.DurationMs(), wet.DurationMs(), long.DurationMs())

	// Output:
	// 500 ms -> 1000 ms -> 4000 ms
}
