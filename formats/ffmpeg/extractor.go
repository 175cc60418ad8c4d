// SPDX-License-Identifier: EPL-2.0

package ffmpeg

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ik5/audsampler/audio"
	"github.com/ik5/audsampler/formats/wav"
)

// DefaultBin is looked up on PATH when Extractor.Bin is empty.
const DefaultBin = "ffmpeg"

// Extractor pulls the audio track out of any container ffmpeg understands
// and hands it back as a Waveform.
type Extractor struct {
	// Bin is the ffmpeg executable. Empty means DefaultBin.
	Bin string
	// SampleRate of the extracted audio. 0 keeps the source rate.
	SampleRate int
	// Channels of the extracted audio. 0 keeps the source layout.
	Channels int
}

func (e Extractor) bin() string {
	if e.Bin == "" {
		return DefaultBin
	}
	return e.Bin
}

// Validate rejects negative rates and channel counts.
func (e Extractor) Validate() error {
	if e.SampleRate < 0 || e.Channels < 0 {
		return fmt.Errorf("rate %d, channels %d: %w", e.SampleRate, e.Channels, ErrInvalidConfig)
	}
	return nil
}

// Available reports whether the configured binary can be executed.
func (e Extractor) Available() bool {
	_, err := exec.LookPath(e.bin())
	return err == nil
}

// Args returns the ffmpeg command line used for path, without the binary.
func (e Extractor) Args(path string) []string {
	args := []string{"-nostdin", "-v", "error", "-i", path, "-vn"}
	if e.Channels > 0 {
		args = append(args, "-ac", strconv.Itoa(e.Channels))
	}
	if e.SampleRate > 0 {
		args = append(args, "-ar", strconv.Itoa(e.SampleRate))
	}
	return append(args, "-f", "wav", "-acodec", "pcm_s16le", "pipe:1")
}

// Extract runs ffmpeg on path and decodes its WAV output. Cancelling ctx
// kills the subprocess.
func (e Extractor) Extract(ctx context.Context, path string) (*audio.Waveform, error) {
	log := logrus.WithFields(logrus.Fields{
		"function": "Extract",
		"path":     path,
	})

	if err := e.Validate(); err != nil {
		log.WithField("error", err.Error()).Error("Extractor configuration rejected")
		return nil, err
	}

	bin, err := exec.LookPath(e.bin())
	if err != nil {
		log.WithField("bin", e.bin()).Error("ffmpeg not found")
		return nil, fmt.Errorf("%s: %w", e.bin(), ErrBinaryNotFound)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, e.Args(path)...)
	cmd.Env = append(os.Environ(), "LC_ALL=C")
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.WithField("args", strings.Join(cmd.Args, " ")).Debug("Running ffmpeg")

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("extracting %s: %w", path, ctxErr)
		}
		msg := strings.TrimSpace(stderr.String())
		log.WithFields(logrus.Fields{
			"error":  err.Error(),
			"stderr": msg,
		}).Error("ffmpeg exited with an error")
		return nil, fmt.Errorf("%w: %s: %w", ErrDecoderFailed, msg, err)
	}

	src, err := wav.Decoder{}.Decode(bytes.NewReader(stdout.Bytes()))
	if err != nil {
		return nil, fmt.Errorf("%w: decoding output: %w", ErrDecoderFailed, err)
	}
	defer src.Close()

	w, err := audio.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecoderFailed, err)
	}

	log.WithFields(logrus.Fields{
		"rate":        w.SampleRate,
		"channels":    w.Channels,
		"duration_ms": w.DurationMs(),
	}).Debug("Extracted audio")

	return w, nil
}
