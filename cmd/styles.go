package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/yubetsu/cite/style"
)

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List supported citation styles",
	RunE: func(cmd *cobra.Command, args []string) error {
		names := style.List()
		sort.Strings(names)
		for _, name := range names {
			s, _ := style.Get(name)
			fmt.Printf("%-10s %s\n", name, s.Description())
		}
		return nil
	},
}
