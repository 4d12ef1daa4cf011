package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"gradebook/pkg/config"
	"gradebook/pkg/storage"
	"gradebook/pkg/tui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	dataFile string
	verbose  bool

	appCfg = &config.AppConfig{}
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "gradebook",
	Short: "A terminal gradebook for classes, students and subject grades",
	Long: `gradebook keeps the grades of up to 10 classes in a plain text file.

Run without arguments to open the interactive menu, or use the add, delete
and modify commands for one-off changes.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		appCfg = cfg

		logger, err = newLogger(verbose, logDestination(cmd, verbose, cfg.LogFile))
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: runInteractive,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, tui.RenderError(tui.NewStyles(""), err))
		os.Exit(1)
	}
}

// newLogger returns a no-op logger unless debug is set or a log file is
// configured. With a log file set, output goes there instead of stderr.
func newLogger(debug bool, logFile string) (*zap.Logger, error) {
	if !debug && logFile == "" {
		return zap.NewNop(), nil
	}

	zc := zap.NewProductionConfig()
	if debug {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if logFile != "" {
		zc.OutputPaths = []string{logFile}
		zc.ErrorOutputPaths = []string{logFile}
	}
	return zc.Build()
}

// defaultLogFile receives --verbose output while huh forms own the terminal.
var defaultLogFile = filepath.Join(os.TempDir(), "gradebook.log")

// logDestination returns the configured log file, or defaultLogFile when
// debug output would otherwise be written to stderr under a form.
func logDestination(cmd *cobra.Command, debug bool, configured string) string {
	if configured != "" || !debug || !usesForms(cmd) {
		return configured
	}
	return defaultLogFile
}

func usesForms(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "gradebook", "interactive":
		return !plainMenu
	case "config":
		edit, _ := cmd.Flags().GetBool("edit")
		return edit
	}
	return false
}

// openStore returns the file store for the path chosen by flag or config.
func openStore() *storage.FileStore {
	return storage.NewFileStore(appCfg.ResolveDataFile(dataFile, storage.DefaultFile), logger)
}

func styles() tui.Styles {
	return tui.NewStyles(appCfg.AccentColor)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataFile, "file", "f", "", "Gradebook data file (default from config, else gradebook.txt)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging (to stderr, or to a temp log file while forms are shown)")
	rootCmd.Flags().BoolVar(&plainMenu, "plain", false, "Use a numbered text menu instead of interactive forms")
}
