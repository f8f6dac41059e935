package cmd

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/rateleg/swap-contract/internal/platform/logger"
	"github.com/rateleg/swap-contract/internal/swap"
	"github.com/rateleg/swap-contract/pkg/bitcoin"
)

var cmdTransfer = &cobra.Command{
	Use:   "transfer <contractID> <leg> <address>",
	Short: "Reassigns one leg of a swap to a new party",
	RunE: func(c *cobra.Command, args []string) error {
		if len(args) != 3 {
			return errors.New("Incorrect argument count")
		}

		var leg swap.Leg
		switch args[1] {
		case "fixed":
			leg = swap.FixedLeg
		case "float":
			leg = swap.FloatLeg
		default:
			fmt.Printf("Unknown leg : %s (want fixed or float)\n", args[1])
			return nil
		}

		address, err := bitcoin.DecodeAddress(args[2])
		if err != nil {
			fmt.Printf("Invalid address : %s\n", err)
			return nil
		}

		ctx := logger.ContextWithContractID(logger.NewContext(), args[0])

		_, dbConn, err := environmentDB()
		if err != nil {
			fmt.Printf("Failed to open contract store : %s\n", err)
			return nil
		}
		defer dbConn.Close()

		if err := swap.Transfer(ctx, dbConn, args[0], leg, address.PKH(), time.Now().UnixNano()); err != nil {
			fmt.Printf("Failed to transfer position : %s\n", err)
			return nil
		}

		fmt.Printf("Transferred %s leg of %s to %s\n", leg, args[0], args[2])
		return nil
	},
}
