package cmd

import (
	"fmt"
	"io/ioutil"
	"path/filepath"
	"time"

	"encoding/json"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/rateleg/swap-contract/internal/platform/logger"
	"github.com/rateleg/swap-contract/internal/swap"
	"github.com/rateleg/swap-contract/pkg/bitcoin"
)

var cmdCreate = &cobra.Command{
	Use:   "create <contractID> <termsFile>",
	Short: "Creates a swap contract record from a JSON terms file",
	RunE: func(c *cobra.Command, args []string) error {
		if len(args) != 2 {
			return errors.New("Incorrect argument count")
		}

		ctx := logger.ContextWithContractID(logger.NewContext(), args[0])

		cfg, dbConn, err := environmentDB()
		if err != nil {
			fmt.Printf("Failed to open contract store : %s\n", err)
			return nil
		}
		defer dbConn.Close()

		path := filepath.FromSlash(args[1])
		data, err := ioutil.ReadFile(path)
		if err != nil {
			fmt.Printf("Failed to read terms file : %s\n", err)
			return nil
		}

		nu := &swap.NewSwap{}
		if err := json.Unmarshal(data, nu); err != nil {
			fmt.Printf("Failed to unmarshal terms file : %s\n", err)
			return nil
		}

		// Terms files may omit the oracle key and use the configured one.
		if len(nu.Terms.OraclePubKey) == 0 && len(cfg.Contract.OraclePubKey) > 0 {
			pubkey, err := bitcoin.Base64Decode(cfg.Contract.OraclePubKey)
			if err != nil {
				fmt.Printf("Invalid configured oracle key : %s\n", err)
				return nil
			}
			nu.Terms.OraclePubKey = pubkey
		}

		if err := swap.Create(ctx, dbConn, args[0], nu, time.Now().UnixNano()); err != nil {
			fmt.Printf("Failed to create swap : %s\n", err)
			return nil
		}

		fmt.Printf("Created swap %s\n", args[0])
		return nil
	},
}
