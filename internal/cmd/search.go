package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/freecryptonews/client-go/internal/output"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <keywords...>",
	Short: "Search news by keywords",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()

		ctx, cancel := requestContext()
		defer cancel()

		keywords := strings.Join(args, " ")
		articles, err := client.Search(ctx, keywords, searchLimit)
		if err != nil {
			logger.Error("search failed", zap.String("keywords", keywords), zap.Error(err))
			return err
		}
		logRateLimit(client)

		fmt.Println(output.Articles(articles))
		return nil
	},
}

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", 10, "max results (1-30)")
	rootCmd.AddCommand(searchCmd)
}
