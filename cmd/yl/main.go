package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

// Build metadata, stamped with -ldflags "-X main.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

const rootLong = `Yardline keeps per-player receiving lines: yards, receptions,
touchdowns and the derived yards per reception.

Records live in one SQLite table (MySQL when database.driver is "mysql").
"yl serve" starts the web dashboard on a fresh table; the record commands
work against the existing file.

Configuration is read from yardline.yaml when present and can be
overridden with YARDLINE_DB_* and YARDLINE_DASHBOARD_PORT.`

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "yl",
		Short: "Yardline, a receiving stats tracker",
		Long:  rootLong,
		Example: `  yl serve -p 8080
  yl record add --name "Davante Adams" --yards 100 --receptions 10 --tds 1
  yl record list`,
	}

	cmd.AddCommand(
		newServeCmd(),
		newRecordCmd(),
		newDBCmd(),
		newVersionCmd(),
	)
	return cmd
}

func newVersionCmd() *cobra.Command {
	var short bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the yl build and Go runtime versions",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			if short {
				fmt.Fprintln(out, Version)
				return
			}
			fmt.Fprintf(out, "yl %s\n", Version)
			fmt.Fprintf(out, "  commit: %s\n", Commit)
			fmt.Fprintf(out, "  built:  %s\n", Date)
			fmt.Fprintf(out, "  go:     %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "print only the version number")
	return cmd
}

func execute(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(newRootCmd()))
}
