package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wavekit/wave-nodes-http/pkg/nodes"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the harness version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("wavenode " + nodes.Version)
	},
}
