package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/freecryptonews/client-go/internal/output"
)

var (
	trendingLimit int
	trendingHours int
)

var trendingCmd = &cobra.Command{
	Use:   "trending",
	Short: "Show trending topics with sentiment",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()

		ctx, cancel := requestContext()
		defer cancel()

		result, err := client.GetTrending(ctx, trendingLimit, trendingHours)
		if err != nil {
			logger.Error("fetch trending topics failed", zap.Error(err))
			return err
		}
		logRateLimit(client)

		fmt.Println(output.Trending(result.Trending))
		return nil
	},
}

func init() {
	trendingCmd.Flags().IntVar(&trendingLimit, "limit", 10, "max topics")
	trendingCmd.Flags().IntVar(&trendingHours, "hours", 24, "time window in hours")
	rootCmd.AddCommand(trendingCmd)
}
