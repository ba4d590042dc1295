package main

import (
	"os"

	"go-shop-sync/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		formatter := &cli.OutputFormatter{
			Format:    formatFlag(cmd.PersistentFlags().Lookup("format").Value.String()),
			Writer:    os.Stdout,
			ErrWriter: os.Stderr,
		}
		_ = formatter.Error(err)
		os.Exit(cli.GetExitCode(err))
	}
}

// formatFlag falls back to text when the flag itself was the problem.
func formatFlag(format string) string {
	if format == "json" {
		return format
	}
	return "text"
}
