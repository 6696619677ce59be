package commands

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/GlebRadaev/fundtracker/internal/domain"
	"github.com/GlebRadaev/fundtracker/pkg/commitment"
)

var hashCmd = &cobra.Command{
	Use:   "hash",
	Short: "Compute or check the ledger commitments of off-chain text",
}

var hashProjectCmd = &cobra.Command{
	Use:   "project <name> <description>",
	Short: "Data hash the ledger stores for a project",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), commitment.ProjectHash(args[0], args[1]).Hex())
		return nil
	},
}

var hashSpendCmd = &cobra.Command{
	Use:   "spend <description>",
	Short: "Description hash the ledger stores for a spending record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), commitment.DescriptionHash(args[0]).Hex())
		return nil
	},
}

var hashVerifyCmd = &cobra.Command{
	Use:   "verify <text> <hash>",
	Short: "Check that text matches a ledger hash",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := hexutil.Decode(args[1])
		if err != nil || len(raw) != common.HashLength {
			return fmt.Errorf("%w: hash must be 32 bytes of hex", domain.ErrInvalidInput)
		}
		if !commitment.Verify(args[0], common.BytesToHash(raw)) {
			return fmt.Errorf("text does not match %s", args[1])
		}
		fmt.Fprintln(cmd.OutOrStdout(), "match")
		return nil
	},
}

func init() {
	hashCmd.AddCommand(hashProjectCmd, hashSpendCmd, hashVerifyCmd)
	rootCmd.AddCommand(hashCmd)
}
