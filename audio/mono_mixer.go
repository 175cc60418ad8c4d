// SPDX-License-Identifier: EPL-2.0

package audio

// Downmix averages all channels into a mono buffer. Mono input is cloned.
func Downmix(w *Waveform) *Waveform {
	if w.Channels == 1 {
		return w.Clone()
	}

	channels := w.Channels
	frames := w.Frames()
	dst := make([]float32, frames)
	src := w.Samples

	switch channels {
	case 2: // Stereo (most common)
		for f := range frames {
			idx := f << 1
			dst[f] = (src[idx] + src[idx+1]) * 0.5
		}
	case 4: // Quad
		for f := range frames {
			idx := f << 2
			dst[f] = (src[idx] + src[idx+1] + src[idx+2] + src[idx+3]) * 0.25
		}
	default:
		invChannels := float32(1.0) / float32(channels)
		for f := range frames {
			var sum float32
			base := f * channels
			for c := range channels {
				sum += src[base+c]
			}
			dst[f] = sum * invChannels
		}
	}

	return &Waveform{
		ID:         w.ID,
		SampleRate: w.SampleRate,
		Channels:   1,
		Samples:    dst,
	}
}
