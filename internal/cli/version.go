package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/hanoi/internal/buildinfo"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Println(buildinfo.String())
		},
	}
}
