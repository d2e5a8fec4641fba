// FilePath: cmd/main.go
package main

import (
	"fmt"
	"os"

	tm "github.com/buger/goterm"
	"github.com/itsatony/w4b_v3/server/beeview/internal/config"
	"github.com/itsatony/w4b_v3/server/beeview/internal/server"
	"github.com/spf13/cobra"
	nuts "github.com/vaudience/go-nuts"
)

func main() {
	nuts.InitVersion()
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configFile string

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the paginated log views",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(configFile)
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), nuts.GetVersion())
		},
	}

	root := &cobra.Command{
		Use:          "beeview",
		Short:        "Beestation log viewer",
		SilenceUsage: true,
		RunE:         serveCmd.RunE,
	}
	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to a config file (default ./config/config.yaml)")
	root.AddCommand(serveCmd, versionCmd)
	return root
}

func serve(configFile string) error {
	// Clear console and draw logo
	ClearConsole()
	DrawLogo()
	nuts.L.Infof("[Main] Starting Beestation Log Viewer v%s", nuts.GetVersion())

	// Load configuration
	cfg, err := config.Load(configFile)
	if err != nil {
		nuts.L.Errorf("[Main] Failed to load configuration: %v", err)
		return err
	}

	// Create and start server
	srv := server.New(cfg)
	if err := srv.Start(); err != nil {
		nuts.L.Errorf("[Main] Server error: %v", err)
		return err
	}
	return nil
}

// ClearConsole clears the console screen
func ClearConsole() {
	tm.Clear()
	tm.MoveCursor(1, 1)
	tm.Flush()
}

func DrawLogo() {
	fmt.Println()
	lines := []string{
		"    ____            _    ___             ",
		"   / __ )___  ___  | |  / (_)__ _      __",
		"  / __  / _ \\/ _ \\ | | / / / _ \\ | /| / /",
		" / /_/ /  __/  __/ | |/ / /  __/ |/ |/ / ",
		"/_____/\\___/\\___/  |___/_/\\___/|__/|__/  ",
		"..........................................  " + nuts.GetVersion(),
	}

	for _, line := range lines {
		fmt.Println(line)
	}
}
