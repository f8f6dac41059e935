package cmd

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/rateleg/swap-contract/internal/platform/logger"
	"github.com/rateleg/swap-contract/internal/swap"
)

var cmdState = &cobra.Command{
	Use:   "state [contractID]",
	Short: "Shows stored swap state, or lists contract IDs when none given",
	RunE: func(c *cobra.Command, args []string) error {
		if len(args) > 1 {
			return errors.New("Incorrect argument count")
		}

		ctx := logger.NewContext()

		_, dbConn, err := environmentDB()
		if err != nil {
			fmt.Printf("Failed to open contract store : %s\n", err)
			return nil
		}
		defer dbConn.Close()

		if len(args) == 0 {
			ids, err := swap.List(ctx, dbConn)
			if err != nil {
				fmt.Printf("Failed to list swaps : %s\n", err)
				return nil
			}
			for _, id := range ids {
				fmt.Printf("%s\n", id)
			}
			return nil
		}

		s, err := swap.Retrieve(ctx, dbConn, args[0])
		if err != nil {
			fmt.Printf("Failed to retrieve swap : %s\n", err)
			return nil
		}

		fmt.Printf("%s", spew.Sdump(s))
		return nil
	},
}
