package commands

import (
	"fmt"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/kdnorth/salesreport/internal/importer"
)

func newFilesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "files [directory]",
		Short: "List sales files that can be loaded",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			reg := importer.DefaultRegistry(a.cfg.Input.Encoding)
			files, err := reg.Scan(absDir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(files) == 0 {
				fmt.Fprintf(out, "No %v files in %s\n", reg.Formats(), absDir)
				return nil
			}
			for _, f := range files {
				fmt.Fprintf(out, "%-40s %10s\n", f.Name, humanize.Bytes(uint64(f.Size)))
			}
			return nil
		},
	}
}
