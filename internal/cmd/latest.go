package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/freecryptonews/client-go/internal/output"
)

var (
	latestLimit  int
	latestSource string
)

var latestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Show the latest crypto news",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()

		ctx, cancel := requestContext()
		defer cancel()

		articles, err := client.GetLatest(ctx, latestLimit, latestSource)
		if err != nil {
			logger.Error("fetch latest news failed", zap.Error(err))
			return err
		}
		logRateLimit(client)

		fmt.Println(output.Articles(articles))
		return nil
	},
}

func init() {
	latestCmd.Flags().IntVar(&latestLimit, "limit", 10, "max articles (1-50)")
	latestCmd.Flags().StringVar(&latestSource, "source", "", "filter by source (coindesk, theblock, decrypt, ...)")
	rootCmd.AddCommand(latestCmd)
}
