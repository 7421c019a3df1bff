package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lotushuong244-bit/englishmaster/internal/app"
	"github.com/lotushuong244-bit/englishmaster/internal/curriculum"
	"github.com/lotushuong244-bit/englishmaster/internal/llm"
	"github.com/lotushuong244-bit/englishmaster/internal/oracle"
	"github.com/lotushuong244-bit/englishmaster/internal/progress"
	"github.com/lotushuong244-bit/englishmaster/internal/speech"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}

	// The TUI owns the terminal, so logs go next to the database.
	logFile, err := os.OpenFile(filepath.Join(filepath.Dir(dbPath), "englishmaster.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	setupLogging(logFile)

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	catalog, err := curriculum.Default()
	if err != nil {
		return fmt.Errorf("load curriculum: %w", err)
	}

	eventRepo := st.EventRepo()
	ledger := progress.NewLedger(st.KVRepo(), eventRepo)
	if _, err := ledger.Load(ctx); err != nil {
		return err
	}

	opts := app.Options{
		Catalog:    catalog,
		Ledger:     ledger,
		Recognizer: speech.NewTypedRecognizer(),
		EventRepo:  eventRepo,
	}

	provider, llmCfg, err := llm.NewProviderFromEnv(ctx, eventRepo)
	switch {
	case errors.Is(err, llm.ErrNotConfigured):
		fmt.Fprintln(os.Stderr, "No AI provider configured (set GEMINI_API_KEY); feedback will be offline.")
	case err != nil:
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI feedback will be offline.")
	default:
		slog.Info("llm provider ready", "provider", llmCfg.Provider, "model", provider.ModelID())
	}
	// A nil provider still yields an oracle that answers with fallbacks.
	svc, err := oracle.NewService(provider, oracle.DefaultConfig())
	if err != nil {
		return fmt.Errorf("create oracle: %w", err)
	}
	defer svc.Close()
	opts.Oracle = svc

	speechCfg := speech.ConfigFromEnv()
	synth, err := speech.NewGoogleSynthesizer(ctx, speechCfg, speech.NewCommandPlayer(speechCfg.Player))
	if err != nil {
		slog.Info("text-to-speech off", "error", err)
		opts.Synthesizer = speech.Disabled{}
	} else {
		defer synth.Close()
		opts.Synthesizer = synth
	}

	return app.Run(ctx, opts)
}
