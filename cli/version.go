package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/juicer149/dev-bootstrap/version"
)

// NewVersionCommand creates the version subcommand.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.GetInfo()
			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				data, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "dev-bootstrap %s\n", info.Short())
			fmt.Fprintf(cmd.OutOrStdout(), "  Commit:      %s\n", info.Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "  Built:       %s\n", info.BuildDate)
			fmt.Fprintf(cmd.OutOrStdout(), "  Go version:  %s\n", info.GoVersion)
			fmt.Fprintf(cmd.OutOrStdout(), "  Platform:    %s\n", info.Platform)
			return nil
		},
	}
}
