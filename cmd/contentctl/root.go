package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	apiURL    string
	assumeYes bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "contentctl",
	Short: "Manage articles and blogs through the content API",
	Long: `contentctl lists, creates, edits, and deletes the articles and blogs
served by the content backend, rendering them in the terminal.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "http://localhost:4000/api", "Base URL of the content API")
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "Skip delete confirmation prompts")

	rootCmd.AddCommand(newResourceCmd("articles", "article"))
	rootCmd.AddCommand(newResourceCmd("blogs", "blog"))
}
