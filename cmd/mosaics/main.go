// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/luxfi/mosaics/cmd/mosaics/encode"
	"github.com/luxfi/mosaics/cmd/mosaics/price"
)

func main() {
	cmd := &cobra.Command{
		Use:   "mosaics",
		Short: "Encodes mosaic transfers and quotes their fees",
	}
	cmd.AddCommand(
		encode.Command(),
		price.Command(),
	)
	cmd.SilenceUsage = true

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "command failed %v\n", err)
		os.Exit(1)
	}
}
