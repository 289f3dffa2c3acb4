// Version command for the duebook CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/duebook/duebook/pkg/duebook"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the duebook version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("duebook", duebook.Version)
	},
}
