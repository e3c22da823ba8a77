// Package main provides the CLI entrypoint for smokey.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/PsychedelicShayna/smokey/internal/config"
	"github.com/PsychedelicShayna/smokey/internal/generator"
	"github.com/PsychedelicShayna/smokey/internal/model"
	"github.com/PsychedelicShayna/smokey/internal/store"
	"github.com/PsychedelicShayna/smokey/internal/tui"
)

const (
	defaultList   = "english"
	defaultLength = 25
	defaultPool   = 5000
	defaultWidth  = 65
)

var (
	testList   string
	testLength int
	testPool   int
	testWidth  int
	testMods   string

	sampleList   string
	sampleLength int
	samplePool   int
	sampleWidth  int
	sampleMods   string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "smokey",
		Short:         "TUI typing test",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runTestCmd,
	}

	rootCmd.Flags().StringVar(&testList, "list", defaultList, "word list name")
	rootCmd.Flags().IntVar(&testLength, "length", defaultLength, "words per test")
	rootCmd.Flags().IntVar(&testPool, "pool", defaultPool, "restrict sampling to the N most frequent words")
	rootCmd.Flags().IntVar(&testWidth, "width", defaultWidth, "maximum line width")
	rootCmd.Flags().StringVar(&testMods, "mods", "", "comma-separated test mods (punctuation,numbers,symbols)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newWordsCmd())
	rootCmd.AddCommand(newSampleCmd())

	return rootCmd
}

func runTestCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveTestConfig(cmd, testList, testLength, testPool, testWidth, testMods)
	if err != nil {
		return err
	}

	wordPath := config.DefaultWordListPath(cfg.Name)
	if _, err := os.Stat(wordPath); err != nil {
		return wordListLoadError(cfg.Name, wordPath, err)
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

	wordCount, err := st.CountLines(context.Background(), wordPath)
	if err != nil {
		return fmt.Errorf("failed to count word list lines: %w", err)
	}
	if cfg.WordPool > wordCount {
		cfg.WordPool = wordCount
	}

	wordLists, err := listWordLists()
	if err != nil {
		return err
	}
	countFn := func(name string) (int, error) {
		return st.CountLines(context.Background(), config.DefaultWordListPath(name))
	}

	gen := generator.New()
	m, err := tui.NewModel(cfg, gen, wordLists, config.DefaultWordListPath, countFn)
	if err != nil {
		return err
	}
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return m.Err()
}

// resolveTestConfig merges flags with the TOML config and validates the result.
func resolveTestConfig(cmd *cobra.Command, list string, length, pool, width int, mods string) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "list", &list, fileCfg.Test.Words)
	applyIntConfig(cmd, "length", &length, fileCfg.Test.Length)
	applyIntConfig(cmd, "pool", &pool, fileCfg.Test.Pool)
	applyIntConfig(cmd, "width", &width, fileCfg.Test.Width)

	modNames := splitMods(mods)
	if !cmd.Flags().Changed("mods") && len(fileCfg.Test.Mods) > 0 {
		modNames = fileCfg.Test.Mods
	}
	modSet, err := parseMods(modNames)
	if err != nil {
		return model.Config{}, err
	}

	cfg := model.Config{
		Name:     list,
		Length:   length,
		WordPool: pool,
		Width:    width,
		Mods:     modSet,
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func splitMods(mods string) []string {
	parts := strings.Split(mods, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(strings.ToLower(part))
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseMods(names []string) (map[model.TestMod]struct{}, error) {
	set := map[model.TestMod]struct{}{}
	for _, name := range names {
		mod, ok := model.ModFromName(name)
		if !ok {
			return nil, fmt.Errorf("unknown mod %q (available: %s)", name, strings.Join(model.ModNames(), ", "))
		}
		set[mod] = struct{}{}
	}
	return set, nil
}

func validateConfig(cfg model.Config) error {
	if cfg.Name == "" {
		return fmt.Errorf("--list must not be empty")
	}
	if cfg.Length <= 0 {
		return fmt.Errorf("--length must be > 0")
	}
	if cfg.WordPool <= 0 {
		return fmt.Errorf("--pool must be > 0")
	}
	if cfg.Width <= 0 {
		return fmt.Errorf("--width must be > 0")
	}
	return nil
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

func newWordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "words",
		Short: "List installed word lists",
		Args:  cobra.NoArgs,
		RunE:  runWordsCmd,
	}
}

func runWordsCmd(cmd *cobra.Command, _ []string) error {
	names, err := listWordLists()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		logErrf("No word lists found. Put newline-separated lists under %s\n", config.DefaultWordListDir())
		return fmt.Errorf("no word lists found")
	}
	for _, name := range names {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func listWordLists() ([]string, error) {
	dir := config.DefaultWordListDir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read word list directory: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".txt") {
			continue
		}
		names = append(names, strings.TrimSuffix(name, ".txt"))
	}
	sort.Strings(names)
	return names, nil
}

func newSampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print a generated test without running the TUI",
		Args:  cobra.NoArgs,
		RunE:  runSampleCmd,
	}
	cmd.Flags().StringVar(&sampleList, "list", defaultList, "word list name")
	cmd.Flags().IntVar(&sampleLength, "length", defaultLength, "words per test")
	cmd.Flags().IntVar(&samplePool, "pool", defaultPool, "restrict sampling to the N most frequent words")
	cmd.Flags().IntVar(&sampleWidth, "width", defaultWidth, "maximum line width")
	cmd.Flags().StringVar(&sampleMods, "mods", "", "comma-separated test mods (punctuation,numbers,symbols)")
	return cmd
}

func runSampleCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveTestConfig(cmd, sampleList, sampleLength, samplePool, sampleWidth, sampleMods)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("width") {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			cfg.Width = w
		}
	}

	wordPath := config.DefaultWordListPath(cfg.Name)
	if _, err := os.Stat(wordPath); err != nil {
		return wordListLoadError(cfg.Name, wordPath, err)
	}

	buf, err := generator.New().Test(cfg, wordPath)
	if err != nil {
		return fmt.Errorf("failed to generate test: %w", err)
	}
	var b strings.Builder
	for _, line := range buf.Lines {
		for _, span := range line {
			b.WriteString(span.Content)
		}
		b.WriteRune('\n')
	}
	if _, err := fmt.Fprint(cmd.OutOrStdout(), b.String()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
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

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# smokey configuration
# Uncomment a value to enable it. CLI flags override config values.

[test]
# words = %q        # Word list name
# length = %d             # Words per test
# pool = %d             # Restrict sampling to the N most frequent words
# width = %d              # Maximum line width
# mods = []               # Test mods: "punctuation", "numbers", "symbols"
`,
		defaultList,
		defaultLength,
		defaultPool,
		defaultWidth,
	)
}

func wordListLoadError(name, path string, err error) error {
	lines := []string{
		fmt.Sprintf("failed to load word list: %v", err),
		fmt.Sprintf("expected word list at: %s", path),
		fmt.Sprintf("word list %q not found", name),
		"Run: smokey words",
		fmt.Sprintf("Install: put a newline-separated list at %s", path),
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
