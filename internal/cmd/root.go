// Package cmd implements the cryptonews demo CLI.
package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	cryptonews "github.com/freecryptonews/client-go"
)

var (
	verbose bool
	logger  *zap.Logger

	version = "dev"
)

// SetVersion is called by the main package to set version information.
func SetVersion(v string) {
	version = v
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "cryptonews",
	Short: "Query the Free Crypto News API",
	Long: `cryptonews is a demo CLI for the Free Crypto News aggregation API.

The free tier requires no API key. Set CRYPTO_NEWS_API_KEY (or --api-key)
for higher rate limits and the premium v1 endpoints.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogger()
	},
}

// Execute runs the root command. Called once from main.
func Execute() error {
	defer func() {
		if logger != nil {
			_ = logger.Sync()
		}
	}()
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("base-url", "", "API base URL (default: hosted endpoint)")
	rootCmd.PersistentFlags().String("api-key", "", "API key (env: CRYPTO_NEWS_API_KEY)")
	rootCmd.PersistentFlags().Duration("timeout", 30*time.Second, "request timeout")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (sets log level to debug)")

	_ = viper.BindPFlag("base_url", rootCmd.PersistentFlags().Lookup("base-url"))
	_ = viper.BindPFlag("api_key", rootCmd.PersistentFlags().Lookup("api-key"))
	_ = viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
}

// initConfig wires environment variables: CRYPTO_NEWS_API_KEY, CRYPTO_NEWS_BASE_URL.
func initConfig() {
	viper.SetEnvPrefix("CRYPTO_NEWS")
	viper.AutomaticEnv()
}

func initLogger() error {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return err
	}
	logger = l
	return nil
}

// newClient builds an SDK client from flags and environment.
func newClient() *cryptonews.Client {
	opts := []cryptonews.Option{
		cryptonews.WithTimeout(viper.GetDuration("timeout")),
	}
	if baseURL := viper.GetString("base_url"); baseURL != "" {
		opts = append(opts, cryptonews.WithBaseURL(baseURL))
		logger.Debug("using custom base URL", zap.String("base_url", baseURL))
	}
	if apiKey := viper.GetString("api_key"); apiKey != "" {
		opts = append(opts, cryptonews.WithAPIKey(apiKey))
		logger.Debug("using API key authentication")
	}
	return cryptonews.New(opts...)
}

// requestContext returns a context bounded by the configured timeout.
func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), viper.GetDuration("timeout"))
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the CLI version",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("cryptonews %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// logRateLimit reports the client's rate-limit snapshot at debug level.
func logRateLimit(client *cryptonews.Client) {
	if info := client.RateLimitInfo(); info != nil {
		logger.Debug("rate limit",
			zap.Int("remaining", info.Remaining),
			zap.Int("limit", info.Limit),
			zap.Int64("reset_at", info.ResetAt),
		)
	}
}
