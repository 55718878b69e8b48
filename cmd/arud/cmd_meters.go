package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alfarahidi/arud/poem"
)

// metersCmd prints the meter catalog.
var metersCmd = &cobra.Command{
	Use:   "meters",
	Short: "List the sixteen classical meters",
	RunE: func(cmd *cobra.Command, args []string) error {
		infos, err := poem.ListMeters()
		if err != nil {
			return err
		}

		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(infos)
		}
		for _, m := range infos {
			fmt.Printf("%-10s %-10s %-16s %s\n",
				m.Name, m.Arabic, m.Pattern, strings.Join(m.Feet, " "))
		}

		return nil
	},
}
