package cmd

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tyler-smith/go-bip32"

	"github.com/rateleg/swap-contract/pkg/bitcoin"
)

var cmdDerive = &cobra.Command{
	Use:   "derive <xkey> <index>",
	Short: "Derives a child key for a party identity from an extended key",
	RunE: func(c *cobra.Command, args []string) error {
		if len(args) != 2 {
			return errors.New("Incorrect argument count")
		}

		network := network(c)
		if network == bitcoin.InvalidNet {
			fmt.Printf("Invalid network specified\n")
			return nil
		}

		xkey, err := bip32.B58Deserialize(args[0])
		if err != nil {
			fmt.Printf("Failed to parse extended key : %s\n", err)
			return nil
		}

		index, err := strconv.ParseUint(args[1], 10, 32)
		if err != nil {
			fmt.Printf("Invalid child index : %s\n", err)
			return nil
		}

		child, err := xkey.NewChildKey(uint32(index))
		if err != nil {
			fmt.Printf("Failed to derive child : %s\n", err)
			return nil
		}

		pubkey, err := bitcoin.DecodePublicKeyBytes(child.PublicKey().Key)
		if err != nil {
			fmt.Printf("Invalid derived public key : %s\n", err)
			return nil
		}

		address, err := bitcoin.NewAddressFromPublicKey(pubkey, network)
		if err != nil {
			fmt.Printf("Failed to generate address : %s\n", err)
			return nil
		}

		hash, err := pubkey.Hash()
		if err != nil {
			fmt.Printf("Failed to hash public key : %s\n", err)
			return nil
		}

		fmt.Printf("XKey : %s\n", child.B58Serialize())
		fmt.Printf("PubKey : %s\n", bitcoin.Base64(pubkey.Bytes()))
		fmt.Printf("PKH : %s\n", hash.String())
		fmt.Printf("Addr : %s\n", address.String())
		return nil
	},
}
