package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	cryptonews "github.com/freecryptonews/client-go"
)

var (
	coinsPage    int
	coinsPerPage int
	coinsOrder   string
	coinsIDs     string
	coinsPayment string
)

var coinsCmd = &cobra.Command{
	Use:   "coins [coin-id]",
	Short: "Show premium coin market data (requires API key or x402 payment)",
	Long: `Show premium coin market data.

Without arguments, lists a page of coins. With a coin ID, shows that coin.
Authenticate with an API key, or pass --payment with an x402 token produced
by external signing tooling (see https://x402.org).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()

		ctx, cancel := requestContext()
		defer cancel()

		var (
			result map[string]any
			err    error
		)
		if len(args) == 1 {
			result, err = client.GetPremiumCoin(ctx, args[0], coinsPayment)
		} else {
			result, err = client.GetPremiumCoins(ctx, cryptonews.CoinsParams{
				Page:    coinsPage,
				PerPage: coinsPerPage,
				Order:   coinsOrder,
				IDs:     coinsIDs,
			}, coinsPayment)
		}

		var payErr *cryptonews.PaymentRequiredError
		if errors.As(err, &payErr) {
			return reportPaymentRequired(payErr)
		}
		if err != nil {
			logger.Error("fetch coins failed", zap.Error(err))
			return err
		}
		logRateLimit(client)

		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

// reportPaymentRequired decodes and prints the accepted payment methods
// from a 402 response, then returns the original error.
func reportPaymentRequired(payErr *cryptonews.PaymentRequiredError) error {
	if payErr.PaymentHeader == "" {
		logger.Error("payment required, but the server sent no payment requirements")
		return payErr
	}

	reqs, err := cryptonews.DecodePaymentRequirements(payErr.PaymentHeader)
	if err != nil {
		logger.Error("payment required, failed to decode requirements", zap.Error(err))
		return payErr
	}

	fmt.Println("Payment required. Accepted payment methods:")
	for _, accept := range reqs.Accepts {
		fmt.Printf("  - %s of asset %s to %s (%s, %s scheme)\n",
			accept.Amount, accept.Asset, accept.PayTo, accept.Network, accept.Scheme)
	}
	fmt.Println("Produce a payment token with your x402 tooling and retry with --payment.")
	return payErr
}

func init() {
	coinsCmd.Flags().IntVar(&coinsPage, "page", 1, "page number")
	coinsCmd.Flags().IntVar(&coinsPerPage, "per-page", 100, "results per page (max 250)")
	coinsCmd.Flags().StringVar(&coinsOrder, "order", "market_cap_desc", "sort order")
	coinsCmd.Flags().StringVar(&coinsIDs, "ids", "", "comma-separated coin IDs")
	coinsCmd.Flags().StringVar(&coinsPayment, "payment", "", "x402 payment token (forwarded verbatim)")
	rootCmd.AddCommand(coinsCmd)
}
