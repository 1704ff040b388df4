package commands

import (
	"fmt"
	"os"

	"aleppo/lib/bookmarklet"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(bookmarkletCmd)
}

var bookmarkletCmd = &cobra.Command{
	Use:   "bookmarklet <app url>",
	Short: "Print the import bookmarklet for the given deployment url.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		link, err := bookmarklet.Build(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		fmt.Println(link)
	},
}
