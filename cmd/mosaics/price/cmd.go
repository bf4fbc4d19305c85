// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package price

import (
	"fmt"

	"github.com/luxfi/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/luxfi/mosaics/api/nis"
	"github.com/luxfi/mosaics/mosaic/fee"
	"github.com/luxfi/mosaics/utils/units"
)

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "price",
		Short: "Quotes the fee of a mosaic transfer",
		RunE:  priceFunc,
	}
	flags := c.Flags()
	AddFlags(flags)
	return c
}

func priceFunc(c *cobra.Command, args []string) error {
	flags := c.Flags()
	config, err := ParseFlags(flags, args)
	if err != nil {
		return err
	}

	client, err := nis.NewClient(config.URI, nil)
	if err != nil {
		return err
	}

	var logger log.Logger = log.NewNoOpLogger()
	if config.Verbose {
		logger = log.NewLogger("mosaics")
	}
	calculator, err := fee.NewCalculator(config.Fee, client, logger, prometheus.NewRegistry())
	if err != nil {
		return err
	}

	transfer, err := fee.NewTransfer(c.Context(), config.Entries, calculator)
	if err != nil {
		return err
	}

	out := c.OutOrStdout()
	for i, entry := range transfer.List.Entries() {
		fmt.Fprintf(out, "%s %d: %d\n", entry.ID, entry.Quantity, transfer.Fee.Contributions[i])
	}
	fmt.Fprintf(out, "fee: %d (%d.%06d)\n",
		transfer.Fee.Fee,
		transfer.Fee.Fee/units.XEM,
		transfer.Fee.Fee%units.XEM,
	)
	return nil
}
