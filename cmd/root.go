/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "kennel",
	Short: "A small HTTP service for a dog catalog and a timestamp post log.",
	Long: `Kennel serves an in-memory catalog of dogs and an append-only log of
timestamp posts over HTTP/JSON, and ships client commands to talk to it.

State lives in process memory only and is reseeded on every start.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("dev", false, "Use human-readable development logging")
}

func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	dev, _ := cmd.Flags().GetBool("dev")
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
