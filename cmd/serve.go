package cmd

import (
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/prepquest/internal/httpapi"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the local JSON API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(e *env) error {
			addr := e.cfg.Server.Addr
			if a, _ := cmd.Flags().GetString("addr"); a != "" {
				addr = a
			}
			httpapi.Version = version
			srv := &http.Server{
				Addr:              addr,
				Handler:           httpapi.NewRouter(e.tracker, e.log),
				ReadHeaderTimeout: 5 * time.Second,
			}
			return httpapi.Serve(cmd.Context(), srv, e.log)
		})
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides config)")
}
