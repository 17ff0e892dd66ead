package main

import (
	"fmt"
	"os"
	"strings"

	"reflectr/internal/cli"
	"reflectr/internal/config"
	"reflectr/internal/logging"
)

// configDirFromArgs scans args for the --config flag before cobra
// parsing, since the config must be loaded to build the command tree.
// Both the "--config dir" and "--config=dir" forms are accepted.
func configDirFromArgs(args []string) string {
	dir := config.DefaultConfigDir()
	for i, arg := range args {
		if arg == "--config" && i+1 < len(args) {
			dir = args[i+1]
		} else if v, ok := strings.CutPrefix(arg, "--config="); ok && v != "" {
			dir = v
		}
	}
	return dir
}

func main() {
	cfg, err := config.Load(configDirFromArgs(os.Args[1:]))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewLoggerWithConfig(logging.DefaultLogConfig())

	rootCmd := cli.NewRootCmd(cfg, logger)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
