package main

import (
	"flag"
	"fmt"
	"os"
)

type AppFlags struct {
	GlobalConfigFile string
	ShowDetails      bool
	ShowHistory      bool
	Files            []string
}

func ParseFlags() AppFlags {
	globalConfigFile := flag.String("config", "", "Path to the global YAML/JSON configuration file. If not set, searches default locations.")
	globalConfigFileAlias := flag.String("c", "", "Alias for -config")

	showDetails := flag.Bool("details", false, "Print the full line diff and per-layer breakdown for every pair")
	showDetailsAlias := flag.Bool("d", false, "Alias for -details")

	showHistory := flag.Bool("history", false, "Print recent run history from the usage database and exit")

	flag.Parse()

	flags := AppFlags{
		ShowDetails: *showDetails || *showDetailsAlias,
		ShowHistory: *showHistory,
		Files:       flag.Args(),
	}

	if *globalConfigFile != "" {
		flags.GlobalConfigFile = *globalConfigFile
	} else if *globalConfigFileAlias != "" {
		flags.GlobalConfigFile = *globalConfigFileAlias
	}

	if !flags.ShowHistory && len(flags.Files) < 2 {
		fmt.Fprintln(os.Stderr, "[FATAL] at least two document paths are required")
		flag.Usage()
		os.Exit(1)
	}

	return flags
}
