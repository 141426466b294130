// Package media wraps the external ffmpeg/ffprobe tools. Transcription
// backends expect a single-channel 16 kHz PCM WAV file.
package media

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// Converter normalizes uploaded audio into 16 kHz mono WAV files.
type Converter struct {
	ffmpegBin  string
	ffprobeBin string
}

// NewConverter creates a Converter using ffmpeg/ffprobe from PATH.
func NewConverter() *Converter {
	return &Converter{ffmpegBin: "ffmpeg", ffprobeBin: "ffprobe"}
}

// ConvertToWAV converts inputPath into a 16 kHz mono PCM WAV file under
// outputDir and returns its path. A WAV input already in that format is
// copied through without re-encoding.
func (c *Converter) ConvertToWAV(ctx context.Context, inputPath, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	outputPath := filepath.Join(outputDir, base+".wav")

	if strings.EqualFold(filepath.Ext(inputPath), ".wav") {
		if rate, channels, err := c.probeAudioStream(ctx, inputPath); err == nil && rate == 16000 && channels == 1 {
			if err := copyFile(inputPath, outputPath); err == nil {
				return outputPath, nil
			}
		}
	}

	cmd := exec.CommandContext(ctx, c.ffmpegBin,
		"-i", inputPath,
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-y",
		outputPath,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("ffmpeg conversion failed: %s", strings.TrimSpace(string(out)))
	}

	info, err := os.Stat(outputPath)
	if err != nil || info.Size() < 1000 {
		return "", fmt.Errorf("conversion produced an invalid output file")
	}

	return outputPath, nil
}

// Duration returns the audio duration in seconds, or an error when ffprobe
// cannot read the file.
func (c *Converter) Duration(ctx context.Context, audioPath string) (float64, error) {
	cmd := exec.CommandContext(ctx, c.ffprobeBin,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		audioPath,
	)
	out, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe: %w", err)
	}
	return strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
}

// CheckDependencies reports which external tools are reachable.
func (c *Converter) CheckDependencies(ctx context.Context) map[string]bool {
	deps := make(map[string]bool)
	for _, bin := range []string{c.ffmpegBin, c.ffprobeBin} {
		deps[bin] = exec.CommandContext(ctx, bin, "-version").Run() == nil
	}
	return deps
}

func (c *Converter) probeAudioStream(ctx context.Context, audioPath string) (sampleRate, channels int, err error) {
	cmd := exec.CommandContext(ctx, c.ffprobeBin,
		"-v", "error",
		"-select_streams", "a:0",
		"-show_entries", "stream=sample_rate,channels",
		"-of", "default=noprint_wrappers=1:nokey=1",
		audioPath,
	)
	out, err := cmd.Output()
	if err != nil {
		return 0, 0, fmt.Errorf("ffprobe: %w", err)
	}

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) < 2 {
		return 0, 0, fmt.Errorf("unexpected ffprobe output")
	}
	sampleRate, err = strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		return 0, 0, err
	}
	channels, err = strconv.Atoi(strings.TrimSpace(lines[1]))
	if err != nil {
		return 0, 0, err
	}
	return sampleRate, channels, nil
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}
