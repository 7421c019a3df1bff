package speech

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePlayer struct {
	mu     sync.Mutex
	played []string
}

func (p *fakePlayer) Available() bool { return true }

func (p *fakePlayer) Play(_ context.Context, path string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.played = append(p.played, path)
	return nil
}

func TestDisabled(t *testing.T) {
	var d Disabled
	assert.False(t, d.Available())
	assert.ErrorIs(t, d.Speak(t.Context(), "hello"), ErrUnavailable)
	_, err := d.Listen(t.Context())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestTypedRecognizer_SubmitDeliversTranscript(t *testing.T) {
	r := NewTypedRecognizer()
	assert.False(t, r.Submit("too early"), "nobody is listening yet")

	got := make(chan string, 1)
	go func() {
		text, err := r.Listen(t.Context())
		if err == nil {
			got <- text
		}
	}()

	require.Eventually(t, r.Listening, time.Second, time.Millisecond)
	assert.True(t, r.Submit("  I love reading books  "))

	select {
	case text := <-got:
		assert.Equal(t, "I love reading books", text)
	case <-time.After(time.Second):
		t.Fatal("Listen did not return")
	}
	assert.False(t, r.Listening())
}

func TestTypedRecognizer_CancelStopsListening(t *testing.T) {
	r := NewTypedRecognizer()
	ctx, cancel := context.WithCancel(t.Context())

	done := make(chan error, 1)
	go func() {
		_, err := r.Listen(ctx)
		done <- err
	}()

	require.Eventually(t, r.Listening, time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Listen did not return after cancel")
	}
	assert.False(t, r.Submit("late"), "a cancelled listen takes no input")
}

func TestGoogleSynthesizer_CachesAudio(t *testing.T) {
	var calls []*texttospeechpb.SynthesizeSpeechRequest
	fn := func(_ context.Context, req *texttospeechpb.SynthesizeSpeechRequest) (*texttospeechpb.SynthesizeSpeechResponse, error) {
		calls = append(calls, req)
		return &texttospeechpb.SynthesizeSpeechResponse{AudioContent: []byte("ID3fake")}, nil
	}

	cfg := DefaultConfig()
	cfg.CacheDir = t.TempDir()
	player := &fakePlayer{}
	g := newGoogleSynthesizer(fn, cfg, player)

	require.True(t, g.Available())
	require.NoError(t, g.Speak(t.Context(), "museum"))
	require.NoError(t, g.Speak(t.Context(), "museum"))

	require.Len(t, calls, 1, "second Speak must hit the disk cache")
	assert.Equal(t, "museum", calls[0].GetInput().GetText())
	assert.Equal(t, "en-US-Standard-F", calls[0].GetVoice().GetName())
	assert.Equal(t, texttospeechpb.AudioEncoding_MP3, calls[0].GetAudioConfig().GetAudioEncoding())

	require.Len(t, player.played, 2)
	assert.Equal(t, player.played[0], player.played[1])
	data, err := os.ReadFile(player.played[0])
	require.NoError(t, err)
	assert.Equal(t, "ID3fake", string(data))
	assert.Equal(t, cfg.CacheDir, filepath.Dir(player.played[0]))
}

func TestGoogleSynthesizer_Errors(t *testing.T) {
	fn := func(context.Context, *texttospeechpb.SynthesizeSpeechRequest) (*texttospeechpb.SynthesizeSpeechResponse, error) {
		return nil, errors.New("permission denied")
	}
	cfg := DefaultConfig()
	cfg.CacheDir = t.TempDir()

	g := newGoogleSynthesizer(fn, cfg, &fakePlayer{})
	assert.ErrorContains(t, g.Speak(t.Context(), "hello"), "permission denied")
	assert.NoError(t, g.Speak(t.Context(), "   "), "blank text is a no-op")

	noPlayer := newGoogleSynthesizer(fn, cfg, &CommandPlayer{})
	assert.False(t, noPlayer.Available())
	assert.ErrorIs(t, noPlayer.Speak(t.Context(), "hello"), ErrUnavailable)
}

func TestNewGoogleSynthesizer_Disabled(t *testing.T) {
	_, err := NewGoogleSynthesizer(t.Context(), Config{}, &fakePlayer{})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestNewCommandPlayer(t *testing.T) {
	orig := lookPath
	t.Cleanup(func() { lookPath = orig })

	lookPath = func(file string) (string, error) {
		if file == "mpv" {
			return "/usr/bin/mpv", nil
		}
		return "", errors.New("not found")
	}

	auto := NewCommandPlayer("")
	require.True(t, auto.Available())
	assert.Equal(t, "/usr/bin/mpv", auto.path)
	assert.Equal(t, []string{"--no-video", "--really-quiet"}, auto.args)

	custom := NewCommandPlayer("mpv --volume=50")
	assert.Equal(t, []string{"--volume=50"}, custom.args)

	missing := NewCommandPlayer("vlc")
	assert.False(t, missing.Available())
	assert.ErrorIs(t, missing.Play(t.Context(), "x.mp3"), ErrUnavailable)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("ENGLISHMASTER_TTS_ENABLED", "true")
	t.Setenv("ENGLISHMASTER_TTS_VOICE", "en-GB-Standard-A")
	t.Setenv("ENGLISHMASTER_TTS_CACHE", "/tmp/tts")
	t.Setenv("ENGLISHMASTER_AUDIO_PLAYER", "afplay")

	cfg := ConfigFromEnv()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "en-GB-Standard-A", cfg.Voice)
	assert.Equal(t, "/tmp/tts", cfg.CacheDir)
	assert.Equal(t, "afplay", cfg.Player)
	assert.Equal(t, "en-US", cfg.LanguageCode)
}
