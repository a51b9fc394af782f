// Freq commands: manage the word-frequency corpus.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wrdlstab/internal/freqdb"
)

var freqCmd = &cobra.Command{
	Use:   "freq",
	Short: "Manage the word-frequency corpus",
}

var freqImportCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Replace the corpus for --lang with a \"word count\" frequency list",
	Long: `Import a frequency list with one "word count" pair per line, such as the
Wikipedia word frequency lists. Use - to read standard input. Counts are
stored as Zipf scores and replace whatever was stored for the language.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			r      io.Reader = cmd.InOrStdin()
			source           = "stdin"
		)
		if args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			r, source = f, filepath.Base(args[0])
		}

		st, err := freqdb.Open(cfg.DB)
		if err != nil {
			return fmt.Errorf("open frequency db: %w", err)
		}
		defer st.Close()

		res, err := st.Import(cmd.Context(), cfg.Lang, source, r)
		if err != nil {
			return err
		}
		log.Info().Str("lang", res.Lang).Int("words", res.Words).Int64("total", res.Total).Str("db", cfg.DB).Msg("corpus imported")
		if flagJSON {
			return printJSON(cmd.OutOrStdout(), res)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "imported %d words for %s\n", res.Words, res.Lang)
		return nil
	},
}

var freqTopCmd = &cobra.Command{
	Use:   "top [N]",
	Short: "Print the most frequent corpus words of the configured length",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n := 20
		if len(args) == 1 {
			if _, err := fmt.Sscan(args[0], &n); err != nil || n < 1 {
				return fmt.Errorf("top: %q is not a positive number", args[0])
			}
		}
		b, err := openBackend(cmd.Context())
		if err != nil {
			return err
		}
		defer b.Close()
		if b.store == nil {
			return fmt.Errorf("no frequency db at %s; run 'wrdlstab freq import' first", cfg.DB)
		}

		ws, err := b.store.TopN(cmd.Context(), cfg.Lang, cfg.TopN, cfg.Length)
		if err != nil {
			return err
		}
		if len(ws) > n {
			ws = ws[:n]
		}
		if flagJSON {
			return printJSON(cmd.OutOrStdout(), ws)
		}
		for _, w := range ws {
			fmt.Fprintln(cmd.OutOrStdout(), w)
		}
		return nil
	},
}

func init() {
	freqCmd.AddCommand(freqImportCmd)
	freqCmd.AddCommand(freqTopCmd)
}
