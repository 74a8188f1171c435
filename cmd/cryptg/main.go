package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/brendoncarroll/go-cryptg"
)

var (
	log = cryptg.Logger

	stdin io.Reader = os.Stdin

	logLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (overrides $LOG)")
	rootCmd.AddCommand(encryptCmd)
	rootCmd.AddCommand(decryptCmd)
	rootCmd.AddCommand(factorCmd)
	rootCmd.AddCommand(benchCmd)
}

var rootCmd = &cobra.Command{
	Use:          "cryptg",
	Short:        "IGE encryption and pq factorization",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if logLevel == "" {
			return nil
		}
		level, err := cryptg.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		log.SetLevel(level)
		return nil
	},
}
