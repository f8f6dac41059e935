package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/rateleg/swap-contract/pkg/bitcoin"
)

var cmdGen = &cobra.Command{
	Use:   "gen",
	Short: "Generates a private key in WIF",
	RunE: func(c *cobra.Command, args []string) error {
		if len(args) != 0 {
			return errors.New("Incorrect argument count")
		}

		network := network(c)
		if network == bitcoin.InvalidNet {
			fmt.Printf("Invalid network specified\n")
			return nil
		}

		key, err := bitcoin.GenerateKeyS256(network)
		if err != nil {
			fmt.Printf("Failed to generate key : %s\n", err)
			return nil
		}

		address, err := bitcoin.NewAddressFromPublicKey(key.PublicKey(), network)
		if err != nil {
			fmt.Printf("Failed to generate address : %s\n", err)
			return nil
		}

		fmt.Printf("WIF : %s\n", key.String())
		fmt.Printf("PubKey : %s\n", bitcoin.Base64(key.PublicKey().Bytes()))
		fmt.Printf("Addr : %s\n", address.String())
		return nil
	},
}
