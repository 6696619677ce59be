package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/GlebRadaev/fundtracker/internal/cli"
	"github.com/GlebRadaev/fundtracker/internal/domain"
	"github.com/GlebRadaev/fundtracker/internal/dto"
	"github.com/GlebRadaev/fundtracker/internal/service"
	"github.com/GlebRadaev/fundtracker/internal/units"
)

var projectsCmd = &cobra.Command{
	Use:   "projects [id]",
	Short: "Print the dashboard, or one project with its spending",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runProjects,
}

func init() {
	rootCmd.AddCommand(projectsCmd)
}

func runProjects(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: project id %q", domain.ErrInvalidInput, args[0])
		}
		return withServices(cmd.Context(), func(s *service.Services) error {
			details, err := s.ProjectService.Project(cmd.Context(), id)
			if err != nil {
				return err
			}
			printProject(out, details, s.ProjectService.Decimals())
			return nil
		})
	}

	return withServices(cmd.Context(), func(s *service.Services) error {
		dash, err := s.ProjectService.Dashboard(cmd.Context())
		if err != nil {
			return err
		}
		printDashboard(out, dash, s.ProjectService.Decimals())
		return nil
	})
}

func printDashboard(out io.Writer, d *domain.Dashboard, decimals int32) {
	title := fmt.Sprintf("FUND TRACKER  chain %d", d.ChainID)
	if d.Demo {
		title += "  (sample data)"
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.RenderTitle(title))
	fmt.Fprint(out, cli.RenderWarnings(d.Warnings))

	if len(d.Projects) == 0 {
		fmt.Fprintln(out, "\n  No projects on the ledger yet.")
		return
	}

	rows := make([][]string, 0, len(d.Projects))
	for i := range d.Projects {
		p := &d.Projects[i]
		rows = append(rows, []string{
			strconv.FormatUint(p.ID, 10),
			cli.Truncate(dto.DisplayName(p), 28),
			units.ToDisplay(p.AllocatedAmount, decimals),
			units.ToDisplay(p.SpentAmount, decimals),
			units.ToDisplay(p.Remaining(), decimals),
			cli.FormatPercent(units.Utilization(p.AllocatedAmount, p.SpentAmount)),
			cli.FormatStatus(p.Status),
		})
	}
	fmt.Fprint(out, cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Project", "Allocated", "Spent", "Remaining", "Used", "Status"},
		Rows:    rows,
	}))
	fmt.Fprintf(out, "  allocated %s  spent %s  remaining %s  active %d\n",
		units.ToDisplay(d.TotalAllocated, decimals),
		units.ToDisplay(d.TotalSpent, decimals),
		units.ToDisplay(d.TotalRemaining, decimals),
		d.ActiveCount,
	)
}

func printProject(out io.Writer, d *domain.ProjectDetails, decimals int32) {
	p := &d.Project
	title := dto.DisplayName(p)
	if d.Demo {
		title += "  (sample data)"
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.RenderTitle(title))
	fmt.Fprint(out, cli.RenderWarnings(d.Warnings))
	if p.Description != "" {
		fmt.Fprintf(out, "  %s\n", p.Description)
	}
	fmt.Fprintf(out, "  owner %s  status %s  allocated %s  remaining %s\n",
		p.ProjectOwner.Hex(),
		cli.FormatStatus(p.Status),
		units.ToDisplay(p.AllocatedAmount, decimals),
		units.ToDisplay(p.Remaining(), decimals),
	)

	if len(d.Spending) == 0 {
		fmt.Fprintln(out, cli.Muted("\n  No spending recorded."))
		return
	}

	rows := make([][]string, 0, len(d.Spending))
	for _, e := range d.Spending {
		description, verified := "", "-"
		if e.Detail != nil {
			description = e.Detail.Description
			verified = "no"
			if e.Verified {
				verified = "yes"
			}
		}
		rows = append(rows, []string{
			e.Record.Timestamp.Format("2006-01-02 15:04"),
			e.Record.Category,
			units.ToDisplay(e.Record.Amount, decimals),
			e.Record.SpentBy.Hex()[:10],
			cli.Truncate(description, 32),
			verified,
		})
	}
	fmt.Fprint(out, cli.RenderTable(cli.Table{
		Title:   "Spending",
		Headers: []string{"When", "Category", "Amount", "By", "Description", "Verified"},
		Rows:    rows,
	}))
}
