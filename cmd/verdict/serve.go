package main

import (
	"fmt"

	"github.com/Veraticus/verdict/internal/cli"
	"github.com/Veraticus/verdict/internal/common"
	"github.com/Veraticus/verdict/internal/config"
	"github.com/Veraticus/verdict/internal/server"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run a stub /predict endpoint",
		Long: `Run a local /predict endpoint that speaks the classifier protocol.

Text is cleaned, scored with a fixed distribution (server.probs) and gated:
an OK verdict below server.min_confidence is reported as REVIEW.

Examples:
  verdict serve
  verdict serve --addr :8080 --min-confidence 0.7
  verdict serve --probs "OK=0.5,REVIEW=0.2,BLOCK=0.3"`,
		RunE: runServe,
	}

	cmd.Flags().String("addr", config.DefaultServerAddr, "listen address")
	cmd.Flags().Float64("min-confidence", server.DefaultMinConfidence, "confidence below which OK becomes REVIEW")
	cmd.Flags().String("probs", config.DefaultProbs, "static distribution as LABEL=value pairs")

	_ = viper.BindPFlag(config.KeyServerAddr, cmd.Flags().Lookup("addr"))
	_ = viper.BindPFlag(config.KeyServerMinConf, cmd.Flags().Lookup("min-confidence"))
	_ = viper.BindPFlag(config.KeyServerProbs, cmd.Flags().Lookup("probs"))

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	settings, err := config.LoadServerSettings(viper.GetViper())
	if err != nil {
		return err
	}

	scorer, err := server.NewStaticScorer(settings.Probs)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", config.KeyServerProbs, err)
	}

	handler, err := server.NewHandler(settings.Endpoint, scorer)
	if err != nil {
		return fmt.Errorf("failed to create handler: %w", err)
	}

	if viper.GetString(config.KeyLoggingLevel) != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	interrupts := cli.NewInterruptHandler(cmd.ErrOrStderr(), "Shutting down classifier endpoint.")
	ctx := interrupts.HandleInterrupts(cmd.Context())

	common.LogInfo("Starting classifier endpoint", common.Fields{
		"addr":           settings.Addr,
		"min_confidence": settings.Endpoint.MinConfidence,
	})
	fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatSuccess("Listening on http://"+settings.Addr+"/predict"))

	return server.Run(ctx, settings.Addr, server.NewRouter(handler))
}
