package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "xwgen",
	Short: "Fill crossword grids from a word list",
	Long: `xwgen generates a filled N x N crossword grid from an admissible
word list: every slot spells a dictionary word, no word repeats, and
crossing letters agree.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
