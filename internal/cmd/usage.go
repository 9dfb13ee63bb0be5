package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	cryptonews "github.com/freecryptonews/client-go"
)

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show API key usage statistics (requires an API key)",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()

		ctx, cancel := requestContext()
		defer cancel()

		usage, err := client.GetUsage(ctx)
		if errors.Is(err, cryptonews.ErrMissingAPIKey) {
			logger.Error("no API key configured; set CRYPTO_NEWS_API_KEY or pass --api-key")
			return err
		}
		if err != nil {
			logger.Error("fetch usage failed", zap.Error(err))
			return err
		}
		logRateLimit(client)

		data, err := json.MarshalIndent(usage, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(usageCmd)
}
