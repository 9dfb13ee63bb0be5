package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/freecryptonews/client-go/internal/output"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List the aggregated news sources",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()

		ctx, cancel := requestContext()
		defer cancel()

		sources, err := client.GetSources(ctx)
		if err != nil {
			logger.Error("fetch sources failed", zap.Error(err))
			return err
		}
		logRateLimit(client)

		fmt.Println(output.Sources(sources))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
}
