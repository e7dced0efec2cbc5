package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "news-curator",
	Short: "A CLI for managing the News Curator services",
	Long:  `News Curator serves enriched stock news and keeps the market data tables clean through scheduled quality passes...`,
}

func main() {

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your CLI '%s'", err)
		os.Exit(1)
	}
}
