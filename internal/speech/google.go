package speech

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
)

// synthesizeFunc is the single TTS call the synthesizer needs.
type synthesizeFunc func(ctx context.Context, req *texttospeechpb.SynthesizeSpeechRequest) (*texttospeechpb.SynthesizeSpeechResponse, error)

// GoogleSynthesizer speaks text with Google Cloud Text-to-Speech. Audio is
// cached on disk so each sentence is synthesized once.
type GoogleSynthesizer struct {
	synthesize synthesizeFunc
	closer     func() error
	player     Player
	cfg        Config
	logger     *slog.Logger
}

// NewGoogleSynthesizer connects to Google Cloud TTS. It fails when TTS is
// disabled or the client cannot be created (usually missing credentials).
func NewGoogleSynthesizer(ctx context.Context, cfg Config, player Player) (*GoogleSynthesizer, error) {
	if !cfg.Enabled {
		return nil, fmt.Errorf("text-to-speech disabled: %w", ErrUnavailable)
	}

	client, err := texttospeech.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create TTS client: %w", err)
	}

	synth := newGoogleSynthesizer(func(ctx context.Context, req *texttospeechpb.SynthesizeSpeechRequest) (*texttospeechpb.SynthesizeSpeechResponse, error) {
		return client.SynthesizeSpeech(ctx, req)
	}, cfg, player)
	synth.closer = client.Close
	return synth, nil
}

func newGoogleSynthesizer(fn synthesizeFunc, cfg Config, player Player) *GoogleSynthesizer {
	return &GoogleSynthesizer{
		synthesize: fn,
		player:     player,
		cfg:        cfg,
		logger:     slog.Default().With("component", "tts"),
	}
}

// Available reports whether an audio player was found.
func (g *GoogleSynthesizer) Available() bool {
	return g.player != nil && g.player.Available()
}

// Speak synthesizes text (or reuses the cached audio) and plays it.
func (g *GoogleSynthesizer) Speak(ctx context.Context, text string) error {
	if !g.Available() {
		return ErrUnavailable
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	path, err := g.audioFile(ctx, text)
	if err != nil {
		return err
	}
	return g.player.Play(ctx, path)
}

// Close releases the TTS client.
func (g *GoogleSynthesizer) Close() error {
	if g.closer == nil {
		return nil
	}
	return g.closer()
}

// audioFile returns the cached MP3 for text, synthesizing it on a miss.
func (g *GoogleSynthesizer) audioFile(ctx context.Context, text string) (string, error) {
	path := filepath.Join(g.cfg.CacheDir, cacheKey(g.cfg.Voice, text)+".mp3")
	if _, err := os.Stat(path); err == nil {
		return path, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("stat cached audio: %w", err)
	}

	resp, err := g.synthesize(ctx, &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: g.cfg.LanguageCode,
			SsmlGender:   texttospeechpb.SsmlVoiceGender_FEMALE,
			Name:         g.cfg.Voice,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
		},
	})
	if err != nil {
		return "", fmt.Errorf("synthesize speech: %w", err)
	}

	if err := os.MkdirAll(g.cfg.CacheDir, 0o755); err != nil {
		return "", fmt.Errorf("create audio cache: %w", err)
	}
	// Cache entries are always complete files.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, resp.GetAudioContent(), 0o644); err != nil {
		return "", fmt.Errorf("write audio: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return "", fmt.Errorf("write audio: %w", err)
	}

	g.logger.Debug("synthesized audio", "chars", len(text), "path", path)
	return path, nil
}

func cacheKey(voice, text string) string {
	sum := sha256.Sum256([]byte(voice + "\x00" + text))
	return hex.EncodeToString(sum[:])
}
