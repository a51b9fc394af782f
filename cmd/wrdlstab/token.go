// Token command: issue bearer tokens for the word-list upload.
package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wrdlstab/internal/httpserver"
)

var (
	flagSubject string
	flagTTL     time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bearer token for POST /wordlist (needs JWT_SECRET)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.JWTSecret == "" {
			return errors.New("token: set JWT_SECRET (or WRDLSTAB_JWT_SECRET) first")
		}
		tok, exp, err := httpserver.SignToken(cfg.JWTSecret, flagSubject, flagTTL)
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(cmd.OutOrStdout(), map[string]any{"token": tok, "expires": exp.UTC()})
		}
		fmt.Fprintln(cmd.OutOrStdout(), tok)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&flagSubject, "sub", "admin", "token subject")
	tokenCmd.Flags().DurationVar(&flagTTL, "ttl", 24*time.Hour, "token lifetime")
}
