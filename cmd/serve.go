package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lusion/netserve/config"
	"github.com/lusion/netserve/lib/logger"
	"github.com/lusion/netserve/tcp"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the echo server",
	RunE:  serveRun,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("bind", "", "address to bind to")
	serveCmd.Flags().Int("port", 0, "port to listen on")
	serveCmd.Flags().Int("pool-size", 0, "number of handler workers")
}

func serveRun(cmd *cobra.Command, args []string) error {
	config.SetupConfig(cfgFile)
	props := config.Properties
	if bind, _ := cmd.Flags().GetString("bind"); bind != "" {
		props.Bind = bind
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		props.Port = port
	}
	if poolSize, _ := cmd.Flags().GetInt("pool-size"); poolSize != 0 {
		props.PoolSize = poolSize
	}

	level := props.LogLevel
	if debug {
		level = "debug"
	}
	logger.Setup(&logger.Settings{
		Path:  props.LogPath,
		Name:  props.LogName,
		Ext:   props.LogExt,
		Level: level,
	})

	server := tcp.NewServer().
		PoolSize(props.PoolSize).
		HandleTimeout(props.HandleTimeout).
		ConnectHandler(tcp.MakeEchoHandler())
	return server.Serve(fmt.Sprintf("%s:%d", props.Bind, props.Port))
}
