// Package main contains the verdict CLI commands.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/Veraticus/verdict/internal/classifier"
	"github.com/Veraticus/verdict/internal/cli"
	"github.com/Veraticus/verdict/internal/common"
	"github.com/Veraticus/verdict/internal/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// annotationInteractive marks commands that own the terminal; their logs
// must not be written to stderr.
const annotationInteractive = "verdict/interactive"

// errReported signals a failure that has already been shown to the user.
var errReported = errors.New("failure already reported")

var (
	cfgFile string
	envFile string
	version = "dev"
	logFile *os.File
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "verdict",
		Short: "Classify text as OK, REVIEW or BLOCK",
		Long: `verdict sends text to a moderation classifier and shows the verdict:
a badge, the confidence, the per-label probabilities and, when a confident
OK was downgraded, why it needs review.

Run without a subcommand to start the interactive classifier.`,
		Annotations:       map[string]string{annotationInteractive: "true"},
		PersistentPreRunE: initConfig,
		RunE:              runTUI,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/verdict/config.yaml)")
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().String("log-format", "console", "log format (console, json)")
	root.PersistentFlags().String("log-file", "", "write logs to this file instead of stderr")
	root.PersistentFlags().String("url", "", "classifier base URL (default: "+classifier.DefaultBaseURL+")")

	_ = viper.BindPFlag(config.KeyLoggingLevel, root.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag(config.KeyLoggingFormat, root.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag(config.KeyLoggingFile, root.PersistentFlags().Lookup("log-file"))
	_ = viper.BindPFlag(config.KeyClassifierURL, root.PersistentFlags().Lookup("url"))

	addTUIFlags(root)

	root.AddCommand(tuiCmd())
	root.AddCommand(classifyCmd())
	root.AddCommand(serveCmd())
	root.AddCommand(versionCmd())

	return root
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("Received interrupt signal, shutting down gracefully...")
		cancel()
	}()

	err := newRootCmd().ExecuteContext(ctx)
	cancel()
	closeLogFile()

	if err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, cli.FormatError(err.Error()))
		}
		os.Exit(1)
	}
}

func initConfig(cmd *cobra.Command, _ []string) error {
	if err := loadEnvFile(envFile); err != nil {
		return err
	}

	if cfgFile != "" {
		viper.SetConfigFile(config.ExpandPath(cfgFile))
	} else {
		if dir := config.DefaultConfigDir(); dir != "" {
			viper.AddConfigPath(dir)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("VERDICT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	config.SetDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := setupLogging(cmd); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	return nil
}

// loadEnvFile loads path into the environment without overriding variables
// that are already set. A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(config.ExpandPath(path)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func setupLogging(cmd *cobra.Command) error {
	level, err := common.ParseLevel(viper.GetString(config.KeyLoggingLevel))
	if err != nil {
		return err
	}

	w, err := logWriter(cmd)
	if err != nil {
		return err
	}

	return common.SetupLogger(w, level, viper.GetString(config.KeyLoggingFormat))
}

// logWriter picks the log destination: the configured file, otherwise
// stderr, except for interactive commands which get no logs at all.
func logWriter(cmd *cobra.Command) (io.Writer, error) {
	if path := viper.GetString(config.KeyLoggingFile); path != "" {
		path = config.ExpandPath(path)
		if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600) // #nosec G304 -- user-configured log path
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		closeLogFile()
		logFile = f
		return f, nil
	}

	if cmd.Annotations[annotationInteractive] == "true" {
		return io.Discard, nil
	}
	return cmd.ErrOrStderr(), nil
}

func closeLogFile() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "verdict %s\n", version)
		},
	}
}
