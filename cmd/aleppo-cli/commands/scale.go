package commands

import (
	"fmt"
	"os"
	"strconv"

	"aleppo/lib/recipe"
	"aleppo/lib/scale"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(scaleCmd)
}

var scaleCmd = &cobra.Command{
	Use:   "scale <ingredient line> <factor>",
	Short: "Scale a single ingredient line, e.g. '1 1/2 cups flour' 2.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		factor, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			fmt.Fprintln(os.Stderr, "factor must be a number")
			os.Exit(1)
		}

		scaled, ok := scale.Ingredient(recipe.Ingredient{Raw: args[0]}, factor)
		if !ok {
			// nothing scalable in the line, print it unchanged
			fmt.Println(args[0])
			return
		}
		fmt.Println(scaled)
	},
}
