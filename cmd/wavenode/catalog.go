package main

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wavekit/wave-nodes-http/pkg/catalog"
	"github.com/wavekit/wave-nodes-http/pkg/nodes"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the node catalog manifest",
	RunE: func(cmd *cobra.Command, args []string) error {
		m := nodes.DefaultCatalog().Manifest()

		switch viper.GetViper().GetString("format") {
		case "table":
			fmt.Print(renderManifestTable(m))
			return nil
		case "json":
			out, err := m.JSON()
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		case "yaml", "":
			out, err := m.YAML()
			if err != nil {
				return err
			}
			fmt.Print(string(out))
			return nil
		default:
			return fmt.Errorf("unknown catalog format %q (expected table, json or yaml)", viper.GetViper().GetString("format"))
		}
	},
}

// renderManifestTable flattens the manifest into a terminal table.
func renderManifestTable(m catalog.Manifest) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"NAME", "VERSION", "INPUTS", "OUTPUTS", "DESCRIPTION"})
	for _, n := range m.Nodes {
		table.Append([]string{
			n.Name,
			n.Version,
			strconv.Itoa(len(n.Inputs)),
			strconv.Itoa(len(n.Outputs)),
			n.Description,
		})
	}
	table.Render()

	return buf.String()
}
