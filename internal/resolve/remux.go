package resolve

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// FFmpegCommand is the default remux binary.
const FFmpegCommand = "ffmpeg"

// CommandRunner runs an external command and returns its combined output.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// FFmpeg copies a stream into a local container without re-encoding.
type FFmpeg struct {
	binary string
	runner CommandRunner
}

// NewFFmpeg creates a remuxer using binary, or ffmpeg from PATH when empty.
func NewFFmpeg(binary string) *FFmpeg {
	if binary == "" {
		binary = FFmpegCommand
	}
	return &FFmpeg{binary: binary, runner: runCommand}
}

// WithCommandRunner sets a custom command runner (for testing).
func (f *FFmpeg) WithCommandRunner(runner CommandRunner) *FFmpeg {
	f.runner = runner
	return f
}

// Remux stream-copies src into dst. The process is killed if ctx is canceled.
func (f *FFmpeg) Remux(ctx context.Context, src, dst string) error {
	output, err := f.runner(ctx, f.binary, remuxArgs(src, dst)...)
	if err != nil {
		return fmt.Errorf("ffmpeg remux: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}

func remuxArgs(src, dst string) []string {
	return []string{
		"-nostdin",
		"-y",
		"-hide_banner",
		"-loglevel", "warning",
		"-i", src,
		"-c", "copy",
		dst,
	}
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec
	return cmd.CombinedOutput()
}
