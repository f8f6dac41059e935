package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/rateleg/swap-contract/pkg/bitcoin"
	"github.com/rateleg/swap-contract/pkg/oracle"
	"github.com/rateleg/swap-contract/pkg/rational"
)

var cmdSign = &cobra.Command{
	Use:   "sign <rateNum> <rateDenom> <slot> <oracle wifkey>",
	Short: "Provide oracle signature for a rate observation",
	RunE: func(c *cobra.Command, args []string) error {
		if len(args) != 4 {
			return errors.New("Invalid parameter count")
		}

		return observationSign(c, args)
	},
}

func observationSign(c *cobra.Command, args []string) error {
	num, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Printf("Invalid rate numerator : %s\n", err)
		return nil
	}

	denom, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		fmt.Printf("Invalid rate denominator : %s\n", err)
		return nil
	}

	slot, err := strconv.ParseUint(args[2], 10, 64)
	if err != nil {
		fmt.Printf("Invalid slot : %s\n", err)
		return nil
	}

	key, err := bitcoin.DecodeKeyString(args[3])
	if err != nil {
		fmt.Printf("Invalid WIF key : %s\n", err)
		return nil
	}

	value, err := rational.New(num, denom)
	if err != nil {
		fmt.Printf("Invalid rate : %s\n", err)
		return nil
	}

	observation := oracle.Observation{
		Value:  value,
		AtSlot: slot,
	}

	hash, err := observation.SigHash()
	if err != nil {
		fmt.Printf("Failed to generate sig hash : %s\n", err)
		return nil
	}
	fmt.Printf("Signing rate %s at slot %d\n", value, slot)
	fmt.Printf("Hash : %x\n", hash)

	signed, err := oracle.Sign(key, observation)
	if err != nil {
		fmt.Printf("Failed to sign observation : %s\n", err)
		return nil
	}

	data, err := json.MarshalIndent(signed, "", "  ")
	if err != nil {
		fmt.Printf("Failed to marshal signed observation : %s\n", err)
		return nil
	}

	fmt.Printf("%s\n", data)
	return nil
}
