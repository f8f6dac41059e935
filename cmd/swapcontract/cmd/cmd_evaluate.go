package cmd

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/rateleg/swap-contract/internal/platform/logger"
	"github.com/rateleg/swap-contract/internal/settlement"
	"github.com/rateleg/swap-contract/internal/swap"
	"github.com/rateleg/swap-contract/pkg/inspector"
	"github.com/rateleg/swap-contract/pkg/oracle"
)

const (
	FlagSettle = "settle"
)

var cmdEvaluate = &cobra.Command{
	Use:   "evaluate <contractID> <txFile> <observationFile>",
	Short: "Evaluates a candidate settlement transaction against a swap",
	RunE: func(c *cobra.Command, args []string) error {
		if len(args) != 3 {
			return errors.New("Incorrect argument count")
		}

		return evaluate(c, args)
	},
}

func init() {
	cmdEvaluate.Flags().Bool(FlagSettle, false, "Mark the swap settled when the transaction is accepted")
}

func evaluate(c *cobra.Command, args []string) error {
	ctx := logger.ContextWithContractID(logger.NewContext(), args[0])

	cfg, dbConn, err := environmentDB()
	if err != nil {
		fmt.Printf("Failed to open contract store : %s\n", err)
		return nil
	}
	defer dbConn.Close()

	mode, err := settlement.ClampModeFromString(cfg.Contract.ClampMode)
	if err != nil {
		fmt.Printf("Invalid clamp mode configured : %s\n", err)
		return nil
	}

	s, err := swap.Retrieve(ctx, dbConn, args[0])
	if err != nil {
		fmt.Printf("Failed to retrieve swap : %s\n", err)
		return nil
	}

	txData, err := ioutil.ReadFile(filepath.FromSlash(args[1]))
	if err != nil {
		fmt.Printf("Failed to read tx file : %s\n", err)
		return nil
	}

	itx, err := inspector.NewTransactionFromJSON(txData)
	if err != nil {
		fmt.Printf("Failed to parse tx file : %s\n", err)
		return nil
	}

	obsData, err := ioutil.ReadFile(filepath.FromSlash(args[2]))
	if err != nil {
		fmt.Printf("Failed to read observation file : %s\n", err)
		return nil
	}

	obs := &oracle.SignedObservation{}
	if err := json.Unmarshal(obsData, obs); err != nil {
		fmt.Printf("Failed to parse observation file : %s\n", err)
		return nil
	}

	ok, err := settlement.Evaluate(ctx, s.Terms, s.Parties, obs, itx, mode)
	if err != nil {
		fmt.Printf("Evaluation failed : %s\n", err)
		return nil
	}

	if !ok {
		fmt.Printf("REJECT : transaction does not settle %s\n", args[0])
		return nil
	}

	fmt.Printf("ACCEPT : transaction settles %s (clamp mode %s)\n", args[0], mode)

	shouldSettle, _ := c.Flags().GetBool(FlagSettle)
	if shouldSettle {
		txID := ""
		if itx.Hash != nil {
			txID = itx.Hash.String()
		}
		if err := swap.MarkSettled(ctx, dbConn, args[0], txID, time.Now().UnixNano()); err != nil {
			fmt.Printf("Failed to mark settled : %s\n", err)
			return nil
		}
		fmt.Printf("Marked %s settled\n", args[0])
	}

	return nil
}
