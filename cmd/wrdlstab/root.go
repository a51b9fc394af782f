// Root command: persistent flags, configuration and logging.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wrdlstab/internal/config"
)

// Global flag values.
var (
	flagConfig string
	flagJSON   bool
)

// cfg is resolved by PersistentPreRunE so every subcommand can use it.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "wrdlstab",
	Short: "Constraint solver for five-letter word puzzles",
	Long: `wrdlstab narrows a word list down to the answers consistent with the
feedback from previous guesses, ranked by how common each word is.

Rows are written as word:marks, where each mark is '-' (absent),
'y' (present elsewhere) or 'g' (correct), e.g. crate:-y-g-.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v := config.New()
		if err := config.BindFlags(v, cmd.Flags()); err != nil {
			return err
		}
		c, err := config.Load(v, flagConfig)
		if err != nil {
			return err
		}
		cfg = c
		setupLogging(cfg.LogLevel, cmd.Name() == "serve")
		log.Debug().
			Int("length", cfg.Length).
			Str("db", cfg.DB).
			Str("lang", cfg.Lang).
			Str("wordsFile", cfg.WordsFile).
			Msg("config loaded")
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "config file (default: ./wrdlstab.yaml)")
	pf.IntP("length", "n", 5, "word length")
	pf.StringP("words-file", "w", "", "newline-delimited word list (default: frequency corpus, then the built-in list)")
	pf.String("db", "./data/freq.db", "frequency database")
	pf.String("lang", "en", "corpus language")
	pf.Int("top-n", 50000, "use only the N most frequent corpus words")
	pf.Int("max-show", 500, "show at most this many candidates (0 = all)")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(freqCmd)
	rootCmd.AddCommand(tokenCmd)
}

// setupLogging sets the global level. The server logs JSON; everything else
// gets human-readable console output on stderr.
func setupLogging(level string, jsonOutput bool) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	if jsonOutput {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
}
