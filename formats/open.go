// SPDX-License-Identifier: EPL-2.0

package formats

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/ik5/audsampler/audio"
	"github.com/ik5/audsampler/formats/aiff"
	"github.com/ik5/audsampler/formats/ffmpeg"
	"github.com/ik5/audsampler/formats/mp3"
	"github.com/ik5/audsampler/formats/vorbis"
	"github.com/ik5/audsampler/formats/wav"
)

// NewRegistry returns a registry with every built-in decoder.
func NewRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("wave", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("oga", vorbis.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})
	return r
}

// Opener loads whole files, choosing a decoder by extension.
type Opener struct {
	Registry *audio.Registry
	// Extractor handles extensions missing from Registry.
	Extractor ffmpeg.Extractor
	// DisableExtractor turns the ffmpeg fallback off.
	DisableExtractor bool
}

// Open decodes path with the built-in registry, falling back to ffmpeg.
func Open(ctx context.Context, path string) (*audio.Waveform, error) {
	return Opener{Registry: NewRegistry()}.Open(ctx, path)
}

// Open decodes path by extension, trying the extractor for formats the
// registry does not know.
func (o Opener) Open(ctx context.Context, path string) (*audio.Waveform, error) {
	ext := filepath.Ext(path)
	log := logrus.WithFields(logrus.Fields{
		"function": "Open",
		"path":     path,
	})

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	registry := o.Registry
	if registry == nil {
		registry = NewRegistry()
	}

	if dec, ok := registry.Get(ext); ok {
		log.WithField("format", ext).Debug("Decoding in-process")
		return decodeFile(dec, path)
	}

	if o.DisableExtractor || !o.Extractor.Available() {
		log.WithField("format", ext).Error("No decoder for format")
		return nil, fmt.Errorf("%q: %w", ext, ErrUnsupportedFormat)
	}

	log.WithField("format", ext).Debug("Falling back to ffmpeg")
	return o.Extractor.Extract(ctx, path)
}

func decodeFile(dec audio.Decoder, path string) (*audio.Waveform, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	defer src.Close()

	w, err := audio.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return w, nil
}
