// Serve command: the JSON API.
package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wrdlstab/internal/httpserver"
	"github.com/robalobadob/wrdlstab/internal/store"
	"github.com/robalobadob/wrdlstab/internal/words"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the solver over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := openBackend(cmd.Context())
		if err != nil {
			return err
		}
		defer b.Close()

		cache := words.NewCache(b.source)
		srv := httpserver.New(store.NewMemoryStore(), cache, b.oracle, httpserver.Options{
			Length:       cfg.Length,
			MaxShow:      cfg.MaxShow,
			ClientOrigin: cfg.ClientOrigin,
			JWTSecret:    cfg.JWTSecret,
		})
		if cfg.JWTSecret == "" {
			log.Warn().Msg("JWT_SECRET not set; POST /wordlist is disabled")
		}
		log.Info().
			Str("port", cfg.Port).
			Str("words", cache.String()).
			Bool("ranked", b.oracle != nil).
			Msg("starting wrdlstab server")
		return srv.Start(cmd.Context(), ":"+cfg.Port)
	},
}

func init() {
	serveCmd.Flags().String("port", "5175", "listen port")
	serveCmd.Flags().String("client-origin", "http://localhost:5173", "allowed CORS origin")
}
