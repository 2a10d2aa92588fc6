package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/codetidy/codetidy/internal/server"
)

var (
	serveListen string
	serveModel  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web UI",
	Long: `Serve the form-based web UI: upload a file to standardize it with
Pylint, Black, or lintr, or paste code to translate between Python and R.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveListen, "listen", "l", "", "Listen address (default: CODETIDY_LISTEN or :8080)")
	serveCmd.Flags().StringVar(&serveModel, "model", "", "Model to use (default: CODETIDY_MODEL or gemini-1.5-flash)")
}

func runServe(cmd *cobra.Command, args []string) error {
	svc, cfg, err := buildService(serveModel)
	if err != nil {
		return err
	}

	listen := serveListen
	if listen == "" {
		listen = cfg.Listen
	}

	slog.Info("starting codetidy", "model", cfg.Model, "workdir", cfg.WorkDir)

	srv := server.New(svc, cfg.WorkDir, cfg.Timeout, slog.Default())
	return srv.Run(listen)
}
