// Package main provides the CLI entrypoint for cypher.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cypher-zh/cypher/internal/chatproxy"
	"github.com/cypher-zh/cypher/internal/config"
	"github.com/cypher-zh/cypher/internal/model"
	"github.com/cypher-zh/cypher/internal/session"
	"github.com/cypher-zh/cypher/internal/speech"
	"github.com/cypher-zh/cypher/internal/stats"
	"github.com/cypher-zh/cypher/internal/store"
	"github.com/cypher-zh/cypher/internal/tonebank"
	"github.com/cypher-zh/cypher/internal/tui"
)

const (
	defaultQuestions   = 10
	defaultWeakTop     = 2
	defaultWeakFactor  = 2.0
	defaultWeakWindow  = 20
	defaultCurveWindow = 20
	defaultProxyAddr   = ":8787"
	defaultProxyModel  = "gpt-4o-mini"
	defaultSpeechRate  = 0.85
)

var (
	practiceQuestions  int
	practiceVoice      string
	practiceBank       string
	practiceFocusWeak  bool
	practiceWeakTop    int
	practiceWeakFactor float64
	practiceWeakWindow int
	practiceRegion     string
	practiceRate       float64

	statsVoice       string
	statsSince       string
	statsLast        int
	statsCurveWindow int

	bankPath string

	proxyAddr    string
	proxyBaseURL string
	proxyModel   string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cypher",
		Short:         "Mandarin tone practice trainer",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().IntVar(&practiceQuestions, "questions", defaultQuestions, "questions per session")
	rootCmd.Flags().StringVar(&practiceVoice, "voice", speech.DefaultVoice, "voice key or full voice ID")
	rootCmd.Flags().StringVar(&practiceBank, "bank", "", "tone bank file (TSV); default is the built-in bank")
	rootCmd.Flags().BoolVar(&practiceFocusWeak, "focus-weak", false, "bias sampling toward weak tones")
	rootCmd.Flags().IntVar(&practiceWeakTop, "weak-top", defaultWeakTop, "number of weak tones to focus on")
	rootCmd.Flags().Float64Var(&practiceWeakFactor, "weak-factor", defaultWeakFactor, "weight factor for weak tones")
	rootCmd.Flags().IntVar(&practiceWeakWindow, "weak-window", defaultWeakWindow, "number of recent sessions to compute weak tones")
	rootCmd.Flags().StringVar(&practiceRegion, "region", "", "speech service region (e.g. eastus)")
	rootCmd.Flags().Float64Var(&practiceRate, "rate", defaultSpeechRate, "speech prosody rate (0-1]")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVoicesCmd())
	rootCmd.AddCommand(newBankCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newProxyCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "questions", &practiceQuestions, fileCfg.Practice.Questions)
	applyStringConfig(cmd, "voice", &practiceVoice, fileCfg.Practice.Voice)
	applyStringConfig(cmd, "bank", &practiceBank, fileCfg.Practice.Bank)
	applyBoolConfig(cmd, "focus-weak", &practiceFocusWeak, fileCfg.Practice.FocusWeak)
	applyIntConfig(cmd, "weak-top", &practiceWeakTop, fileCfg.Practice.WeakTop)
	applyFloatConfig(cmd, "weak-factor", &practiceWeakFactor, fileCfg.Practice.WeakFactor)
	applyIntConfig(cmd, "weak-window", &practiceWeakWindow, fileCfg.Practice.WeakWindow)
	applyStringConfig(cmd, "region", &practiceRegion, fileCfg.Speech.Region)
	applyFloatConfig(cmd, "rate", &practiceRate, fileCfg.Speech.Rate)
	if fileCfg.Speech.Voice != nil && !cmd.Flags().Changed("voice") && fileCfg.Practice.Voice == nil {
		practiceVoice = *fileCfg.Speech.Voice
	}

	cfg := model.Config{
		Questions:  practiceQuestions,
		Voice:      speech.ResolveVoice(practiceVoice),
		BankPath:   practiceBank,
		FocusWeak:  practiceFocusWeak,
		WeakTop:    practiceWeakTop,
		WeakFactor: practiceWeakFactor,
		WeakWindow: practiceWeakWindow,
	}

	if err := validateConfig(cfg); err != nil {
		return err
	}

	key := strings.TrimSpace(os.Getenv("AZURE_SPEECH_KEY"))
	if key == "" {
		return fmt.Errorf("AZURE_SPEECH_KEY is not set")
	}
	if practiceRegion == "" {
		return fmt.Errorf("speech region is not set (use --region or [speech] region in config)")
	}

	bank, dropped, err := loadBank(cfg.BankPath)
	if err != nil {
		return err
	}
	for _, d := range dropped {
		logErrf("dropped bank entry %q: %s\n", d.Entry.Character, d.Reason)
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	weakSet := map[int]struct{}{}
	weakNoticePrinted := false
	if cfg.FocusWeak {
		aggs, err := st.GetWeakTones(context.Background(), cfg.WeakWindow, cfg.Voice)
		if err != nil {
			logErrf("failed to load weak tones: %v\n", err)
		} else {
			weakSet = stats.SelectWeakTones(aggs, cfg.WeakTop)
			if len(weakSet) == 0 {
				logErrln("no stats available for weak-tone focus yet; using uniform sampling")
				weakNoticePrinted = true
			}
		}
	}

	synth := speech.NewClient(practiceRegion, key,
		speech.WithVoice(cfg.Voice),
		speech.WithProsodyRate(practiceRate),
	)
	gen := session.NewGenerator()
	m := tui.NewModel(cfg, st, gen, bank.Entries(), synth, weakSet, weakNoticePrinted)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// loadBank loads the tone bank from path when given, otherwise from the
// default user bank file when present, otherwise from the built-in bank.
func loadBank(path string) (*tonebank.Bank, []tonebank.Dropped, error) {
	if path == "" {
		defaultPath := config.DefaultBankPath()
		if _, err := os.Stat(defaultPath); err == nil {
			path = defaultPath
		}
	}
	if path == "" {
		return tonebank.Default()
	}
	raw, err := tonebank.LoadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load tone bank %s: %w", path, err)
	}
	bank, dropped, err := tonebank.New(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build tone bank from %s: %w", path, err)
	}
	return bank, dropped, nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newVoicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "voices",
		Short: "List available voices",
		Args:  cobra.NoArgs,
		RunE:  runVoicesCmd,
	}
}

func runVoicesCmd(cmd *cobra.Command, _ []string) error {
	for _, v := range speech.Voices() {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s %s (%s) - %s\n", v.Key, v.Name, v.ID, v.Gender, v.Description); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newBankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bank",
		Short: "Show the loaded tone bank",
		Args:  cobra.NoArgs,
		RunE:  runBankCmd,
	}
	cmd.Flags().StringVar(&bankPath, "bank", "", "tone bank file (TSV); default is the built-in bank")
	return cmd
}

func runBankCmd(cmd *cobra.Command, _ []string) error {
	bank, dropped, err := loadBank(bankPath)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, e := range bank.Entries() {
		if _, err := fmt.Fprintf(out, "%s\t%s\t%d\t%s\n", e.Character, e.Pinyin, e.EffectiveTone, e.Meaning); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	for _, d := range dropped {
		logErrf("dropped %q: %s\n", d.Entry.Character, d.Reason)
	}
	logErrf("%d entries, %d dropped\n", bank.Len(), len(dropped))
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show practice stats",
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsVoice, "voice", "", "voice filter")
	cmd.Flags().StringVar(&statsSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N sessions")
	cmd.Flags().IntVar(&statsCurveWindow, "curve-window", defaultCurveWindow, "moving average window")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	var sinceTime *time.Time
	if statsSince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", statsSince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}

	voice := ""
	if statsVoice != "" {
		voice = speech.ResolveVoice(statsVoice)
	}
	cfg := model.StatsConfig{
		Voice:       voice,
		Since:       sinceTime,
		Last:        statsLast,
		CurveWindow: statsCurveWindow,
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	report, err := stats.BuildReport(context.Background(), st, cfg)
	if err != nil {
		return fmt.Errorf("failed to build stats: %w", err)
	}

	width := 0
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil {
			width = w
		}
	}
	return stats.Render(cmd.OutOrStdout(), report, cfg, width)
}

func newProxyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "proxy",
		Short: "Run the conversation chat proxy",
		Args:  cobra.NoArgs,
		RunE:  runProxyCmd,
	}
	cmd.Flags().StringVar(&proxyAddr, "addr", defaultProxyAddr, "listen address")
	cmd.Flags().StringVar(&proxyBaseURL, "base-url", "", "OpenAI-compatible gateway base URL")
	cmd.Flags().StringVar(&proxyModel, "model", defaultProxyModel, "chat model")
	return cmd
}

func runProxyCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "addr", &proxyAddr, fileCfg.Proxy.Addr)
	applyStringConfig(cmd, "base-url", &proxyBaseURL, fileCfg.Proxy.BaseURL)
	applyStringConfig(cmd, "model", &proxyModel, fileCfg.Proxy.Model)

	key := strings.TrimSpace(os.Getenv("AI_API_KEY"))
	if key == "" {
		return fmt.Errorf("AI_API_KEY is not set")
	}

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	srv, err := chatproxy.NewServer(chatproxy.Config{
		APIKey:  key,
		BaseURL: proxyBaseURL,
		Model:   proxyModel,
		Log:     log,
	})
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{"addr": proxyAddr, "model": proxyModel}).Info("chat proxy listening")
	if err := http.ListenAndServe(proxyAddr, srv.Handler()); err != nil {
		return fmt.Errorf("proxy server failed: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# cypher configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# questions = %d          # Questions per session
# voice = %q              # Voice key or full voice ID
# bank = ""               # Tone bank file (TSV)
# focus-weak = false      # Bias sampling toward weak tones
# weak-top = %d           # Number of weak tones to focus on
# weak-factor = %.1f      # Weight factor for weak tones
# weak-window = %d        # Number of recent sessions to compute weak tones

[speech]
# region = "eastus"       # Azure speech region (key from AZURE_SPEECH_KEY)
# rate = %.2f             # Prosody rate

[proxy]
# addr = %q               # Chat proxy listen address (key from AI_API_KEY)
# base-url = ""           # OpenAI-compatible gateway base URL
# model = %q              # Chat model
`,
		defaultQuestions,
		"xiaoxiao",
		defaultWeakTop,
		defaultWeakFactor,
		defaultWeakWindow,
		defaultSpeechRate,
		defaultProxyAddr,
		defaultProxyModel,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Questions <= 0 {
		return fmt.Errorf("--questions must be > 0")
	}
	if cfg.WeakTop < 0 {
		return fmt.Errorf("--weak-top must be >= 0")
	}
	if cfg.WeakFactor < 0 {
		return fmt.Errorf("--weak-factor must be >= 0")
	}
	if cfg.WeakWindow < 0 {
		return fmt.Errorf("--weak-window must be >= 0")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
