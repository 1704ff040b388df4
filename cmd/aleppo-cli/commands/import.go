package commands

import (
	"fmt"
	"os"

	"aleppo/lib/scale"
	"aleppo/lib/scrapers/recipepage"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var importFactor float64

func init() {
	importCmd.Flags().Float64Var(&importFactor, "factor", 1, "Scale ingredient quantities by this factor.")
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <url>",
	Short: "Fetch a recipe page and print what the extractor sees.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client, err := recipepage.NewClient()
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}

		result := client.ScrapeURL(cmd.Context(), args[0])
		if result.Err != "" {
			fmt.Fprintln(os.Stderr, result.Err)
			if result.Recipe == nil {
				os.Exit(1)
			}
		}
		r := result.Recipe

		fmt.Println(r.Title)
		if r.Description != "" {
			fmt.Println(r.Description)
		}
		if r.Servings > 0 {
			fmt.Printf("serves %d", r.Servings)
			if r.PrepTime > 0 || r.CookTime > 0 {
				fmt.Printf(" | prep %dm cook %dm", r.PrepTime, r.CookTime)
			}
			fmt.Println()
		}

		ingredients := newTable()
		ingredients.AppendHeader(table.Row{"#", "Ingredient"})
		for i, ing := range r.Ingredients {
			line := ing.Raw
			if importFactor != 1 {
				if scaled, ok := scale.Ingredient(ing, importFactor); ok {
					line = scaled
				}
			}
			ingredients.AppendRow(table.Row{i + 1, line})
		}
		ingredients.Render()

		steps := newTable()
		steps.AppendHeader(table.Row{"Step", "Instruction"})
		for _, step := range r.Instructions {
			steps.AppendRow(table.Row{step.Step, step.Text})
		}
		steps.Render()
	},
}
