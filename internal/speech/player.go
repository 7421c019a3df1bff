package speech

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Player plays an audio file.
type Player interface {
	Available() bool
	Play(ctx context.Context, path string) error
}

// knownPlayers are tried in order when no player is configured.
var knownPlayers = [][]string{
	{"mpg123", "-q"},
	{"ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet"},
	{"mpv", "--no-video", "--really-quiet"},
	{"afplay"},
}

// CommandPlayer plays audio by running an external command with the file
// path as its last argument.
type CommandPlayer struct {
	path string
	args []string
}

// lookPath is exec.LookPath, replaceable in tests.
var lookPath = exec.LookPath

// NewCommandPlayer resolves the player command. An empty command selects
// the first known player on PATH. The result may be unavailable.
func NewCommandPlayer(command string) *CommandPlayer {
	candidates := knownPlayers
	if fields := strings.Fields(command); len(fields) > 0 {
		candidates = [][]string{fields}
	}

	for _, c := range candidates {
		if path, err := lookPath(c[0]); err == nil {
			return &CommandPlayer{path: path, args: c[1:]}
		}
	}
	return &CommandPlayer{}
}

func (p *CommandPlayer) Available() bool {
	return p.path != ""
}

// Play runs the player and waits for it to exit. Cancelling ctx stops
// playback.
func (p *CommandPlayer) Play(ctx context.Context, path string) error {
	if !p.Available() {
		return ErrUnavailable
	}
	args := append(append([]string{}, p.args...), path)
	if out, err := exec.CommandContext(ctx, p.path, args...).CombinedOutput(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("play %s: %w: %s", path, err, strings.TrimSpace(string(out)))
	}
	return nil
}
