package main

import (
	"context"

	"github.com/spf13/cobra"
)

// Execute builds the command tree and runs it.
func Execute(ctx context.Context) error {
	root := &cobra.Command{
		Use:   "spurious",
		Short: "Detect spurious regressions with rolling-origin cross-validation",
		Long: "spurious compares the cross-validated forecast error of an OLS regression\n" +
			"against a drift-naive benchmark. A regression that cannot beat the naive\n" +
			"drift line out of sample is flagged as spurious.",
		SilenceUsage: true,
	}
	root.AddCommand(detectCmd(), simulateCmd())
	return root.ExecuteContext(ctx)
}
