package main

import (
	"github.com/rateleg/swap-contract/cmd/swapcontract/cmd"
)

// Rate Swap Contract CLI
//
func main() {
	cmd.Execute()
}
