package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kdnorth/salesreport/internal/model"
	"github.com/kdnorth/salesreport/internal/session"
)

// exportFlags are the optional output files shared by top and season.
type exportFlags struct {
	pdf   string
	xlsx  string
	chart string
}

func (f *exportFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.pdf, "pdf", "", "write the report to this PDF file")
	cmd.Flags().StringVar(&f.xlsx, "xlsx", "", "write the report and chart to this workbook")
	cmd.Flags().StringVar(&f.chart, "chart", "", "write the chart to this file (.pdf or .xlsx)")
}

func (f *exportFlags) write(out io.Writer, s *session.Session) error {
	for _, path := range []string{f.pdf, f.xlsx} {
		if path == "" {
			continue
		}
		if err := s.SaveReport(path); err != nil {
			return err
		}
		fmt.Fprintf(out, "Saved %s\n", path)
	}
	if f.chart != "" {
		if err := s.SaveChart(f.chart); err != nil {
			return err
		}
		fmt.Fprintf(out, "Saved %s\n", f.chart)
	}
	return nil
}

func newTopCommand(a *app) *cobra.Command {
	var n int
	var exports exportFlags

	cmd := &cobra.Command{
		Use:   "top <file>",
		Short: "Rank merchants by total sales",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("count") {
				n = a.cfg.TopNDefault
			}
			s := a.session()
			if _, err := s.Load(args[0]); err != nil {
				return err
			}
			r, err := s.TopN(n)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if err := printResult(out, s, r); err != nil {
				return err
			}
			return exports.write(out, s)
		},
	}

	cmd.Flags().IntVarP(&n, "count", "n", 10, "number of merchants to show; top_n_default when unset")
	exports.register(cmd)

	return cmd
}

func newSeasonCommand(a *app) *cobra.Command {
	var exports exportFlags

	cmd := &cobra.Command{
		Use:   "season <file>",
		Short: "Compare vacation and non-vacation month sales",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := a.session()
			if _, err := s.Load(args[0]); err != nil {
				return err
			}
			r, err := s.Season()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if err := printResult(out, s, r); err != nil {
				return err
			}
			return exports.write(out, s)
		},
	}

	exports.register(cmd)

	return cmd
}

// printResult writes the clamp notice (if any) and the report lines.
func printResult(out io.Writer, s *session.Session, result any) error {
	if r, ok := result.(model.RankingResult); ok && r.Adjusted() {
		fmt.Fprintf(out, "N이 가맹점 수보다 커서 %d으로 조정됨\n\n", r.N)
	}
	lines, err := s.Report()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, s.Title())
	fmt.Fprintln(out)
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
	return nil
}
