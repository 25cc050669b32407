// Version command for the turntable CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/turntable/pkg/turntable"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the turntable version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("turntable", turntable.Version)
	},
}
