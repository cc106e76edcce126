package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	debug   bool
)

// rootCmd is the base command for the netserve binary
var rootCmd = &cobra.Command{
	Use:   "netserve",
	Short: "A TCP server with a bounded worker pool",
	Long: `Accepts connections on one listening socket and runs a connection
handler for each of them on a fixed-size worker pool. Ships an echo handler
as the reference application.`,
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}
