package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ducnm/elementary/internal/periodic"
)

var elementCmd = &cobra.Command{
	Use:   "element <query>",
	Short: "Look up an element by name, symbol or atomic number",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		matches := periodic.Search(query)
		if len(matches) == 0 {
			return fmt.Errorf("no element matches %q", query)
		}

		for _, e := range matches {
			discovery := "antiquity"
			if e.Discovered() {
				discovery = fmt.Sprintf("%d", e.DiscoveryYear)
			}
			fmt.Printf("%3d  %-3s %-16s %-22s mass %.4g  group %d  period %d  %s, discovered %s\n",
				e.AtomicNumber, e.Symbol, e.Name, e.Category,
				e.AtomicMass, e.Group, e.Period, e.State, discovery)
		}
		return nil
	},
}
