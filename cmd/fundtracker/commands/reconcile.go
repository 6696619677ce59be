package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/GlebRadaev/fundtracker/internal/cli"
	"github.com/GlebRadaev/fundtracker/internal/domain"
	"github.com/GlebRadaev/fundtracker/internal/service"
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Retry the off-chain half of partial writes",
	Long: `reconcile replays every operation the journal holds as partial: the
ledger accepted it but the off-chain store did not. Operations that fail
again stay partial.`,
	Args: cobra.NoArgs,
	RunE: runReconcile,
}

var operationsStatus string

var operationsCmd = &cobra.Command{
	Use:   "operations",
	Short: "List journaled writes",
	Args:  cobra.NoArgs,
	RunE:  runOperations,
}

func init() {
	operationsCmd.Flags().StringVarP(&operationsStatus, "status", "s", "", "pending, committed, partial or failed")
	rootCmd.AddCommand(reconcileCmd, operationsCmd)
}

func runReconcile(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	return withServices(cmd.Context(), func(s *service.Services) error {
		report, err := s.Reconciler.Run(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "replayed %d, failed %d\n", report.Replayed, report.Failed)
		for _, e := range report.Errors {
			fmt.Fprintln(out, cli.Muted("  "+e))
		}
		return nil
	})
}

func runOperations(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	return withServices(cmd.Context(), func(s *service.Services) error {
		ops, err := s.OperationService.Operations(cmd.Context(), domain.OperationStatus(operationsStatus))
		if err != nil {
			return err
		}
		if len(ops) == 0 {
			fmt.Fprintln(out, "  No operations.")
			return nil
		}
		rows := make([][]string, 0, len(ops))
		for _, op := range ops {
			project := "-"
			if op.ProjectID != nil {
				project = strconv.FormatUint(*op.ProjectID, 10)
			}
			rows = append(rows, []string{
				op.ID,
				string(op.Kind),
				string(op.Status),
				project,
				op.UpdatedAt.Format("2006-01-02 15:04:05"),
				cli.Truncate(op.Error, 40),
			})
		}
		fmt.Fprint(out, cli.RenderTable(cli.Table{
			Headers: []string{"ID", "Kind", "Status", "Project", "Updated", "Error"},
			Rows:    rows,
		}))
		return nil
	})
}
