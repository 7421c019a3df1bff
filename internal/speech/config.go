package speech

import (
	"os"
	"path/filepath"
	"strconv"
)

// Config holds text-to-speech settings.
type Config struct {
	// Enabled turns Google Cloud TTS on. Credentials come from the usual
	// GOOGLE_APPLICATION_CREDENTIALS lookup.
	Enabled bool

	LanguageCode string // Default: "en-US"
	Voice        string // Default: "en-US-Standard-F"

	// CacheDir holds synthesized MP3 files keyed by content hash.
	CacheDir string

	// Player is the audio player command. Empty means auto-detect.
	Player string
}

// DefaultConfig returns TTS defaults. TTS is off unless enabled.
func DefaultConfig() Config {
	return Config{
		LanguageCode: "en-US",
		Voice:        "en-US-Standard-F",
		CacheDir:     defaultCacheDir(),
	}
}

// ConfigFromEnv reads ENGLISHMASTER_TTS_* and ENGLISHMASTER_AUDIO_PLAYER.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if v, err := strconv.ParseBool(os.Getenv("ENGLISHMASTER_TTS_ENABLED")); err == nil {
		cfg.Enabled = v
	}
	if v := os.Getenv("ENGLISHMASTER_TTS_VOICE"); v != "" {
		cfg.Voice = v
	}
	if v := os.Getenv("ENGLISHMASTER_TTS_CACHE"); v != "" {
		cfg.CacheDir = v
	}
	cfg.Player = os.Getenv("ENGLISHMASTER_AUDIO_PLAYER")
	return cfg
}

// defaultCacheDir is $XDG_CACHE_HOME/englishmaster/tts, or the OS cache dir.
func defaultCacheDir() string {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, "englishmaster", "tts")
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "englishmaster", "tts")
	}
	return filepath.Join(dir, "englishmaster", "tts")
}
