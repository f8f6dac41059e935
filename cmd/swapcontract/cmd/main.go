package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rateleg/swap-contract/pkg/bitcoin"
)

const (
	FlagNetwork = "network"
)

var scCmd = &cobra.Command{
	Use:   "swapcontract",
	Short: "Rate Swap Contract CLI",
}

func Execute() {
	scCmd.PersistentFlags().String(FlagNetwork, "mainnet", "Bitcoin network : mainnet or testnet")

	scCmd.AddCommand(cmdGen)
	scCmd.AddCommand(cmdDerive)
	scCmd.AddCommand(cmdSign)
	scCmd.AddCommand(cmdCreate)
	scCmd.AddCommand(cmdTransfer)
	scCmd.AddCommand(cmdState)
	scCmd.AddCommand(cmdEvaluate)
	scCmd.Execute()
}

func network(c *cobra.Command) bitcoin.Network {
	name, _ := c.Flags().GetString(FlagNetwork)
	return bitcoin.NetworkFromString(name)
}
