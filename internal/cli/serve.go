package cli

import (
	"fmt"

	"resumelens/internal/config"
	"resumelens/internal/engine"
	"resumelens/internal/errors"
	"resumelens/internal/server"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start HTTP server for resume analysis",
	Long: `Start an HTTP server that provides REST API endpoints for resume analysis.

Available endpoints:
- POST /analyze: Analyze an uploaded resume file
- GET /health: Health check endpoint
- GET /stats: Server statistics and rate limiting info

TLS Configuration:
- Use --tls-mode to set TLS mode: disabled, server
- Use --cert-file and --key-file for TLS certificates

When vocabulary file watching is enabled, edits to the configured word list
files take effect on the next request without a restart.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringP("port", "p", "", "Port to listen on (default from config)")
	serveCmd.Flags().String("host", "", "Host to bind to (default from config)")
	serveCmd.Flags().String("tls-mode", "", "TLS mode: disabled, server (overrides config)")
	serveCmd.Flags().String("cert-file", "", "Server certificate file (PEM, overrides config)")
	serveCmd.Flags().String("key-file", "", "Server private key file (PEM, overrides config)")

	// Bind flags to viper config keys
	bindFlag := func(key, flagName string) {
		if err := viper.BindPFlag(key, serveCmd.Flags().Lookup(flagName)); err != nil {
			panic(err)
		}
	}

	bindFlag("server.port", "port")
	bindFlag("server.host", "host")
	bindFlag("server.tls.mode", "tls-mode")
	bindFlag("server.tls.certfile", "cert-file")
	bindFlag("server.tls.keyfile", "key-file")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	// Validate TLS configuration after applying overrides
	tempConfig := &config.Config{Server: cfg.Server}
	if err := tempConfig.ValidateTLSConfig(); err != nil {
		return fmt.Errorf("invalid TLS configuration: %w", err)
	}

	vocab, err := buildVocabularyProvider(cfg, logger)
	if err != nil {
		return err
	}
	if closer, ok := vocab.(*config.VocabularyWatcher); ok {
		defer func() {
			if err := closer.Close(); err != nil {
				logger.LogError(err, "Failed to stop vocabulary watcher")
			}
		}()
	}

	eng := engine.New(cfg.Engine, vocab, logger)

	serverCfg := server.ServerConfig{
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		Version:        Version,
		TLSConfig:      cfg.Server.TLS,
		APIKeys:        cfg.Server.APIKeys,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxRequestSize: cfg.App.MaxUploadSize,
		RateLimit:      &cfg.Server.RateLimit,
	}
	return server.NewServer(cfg, serverCfg, eng, vocab, logger).Start()
}

// buildVocabularyProvider picks between a static snapshot and a file watcher
// depending on configuration.
func buildVocabularyProvider(cfg *config.Config, logger *errors.Logger) (config.VocabularyProvider, error) {
	if cfg.Engine.Vocabulary.Watch {
		watcher, err := config.NewVocabularyWatcher(cfg.Engine.Vocabulary, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to start vocabulary watcher: %w", err)
		}
		return watcher, nil
	}

	vocab, err := config.LoadVocabulary(cfg.Engine.Vocabulary)
	if err != nil {
		return nil, fmt.Errorf("failed to load vocabulary: %w", err)
	}
	return config.NewStaticVocabulary(vocab), nil
}
