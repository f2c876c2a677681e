// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/cybrota/ordset/orderedset"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func loadConfigOrDefault() *Config {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}
	return config
}

// printSet prints the chosen traversal and, when asked, the tree drawing
func printSet(session *Session, order orderedset.Order, showTree bool) {
	fmt.Printf("%s%s-order%s: %s\n", Green, order, Reset, session.Traversal(order))
	if showTree {
		fmt.Println(session.Tree())
	}
}

func main() {
	InitializeColors()

	asciiLogo := fmt.Sprintf(`
  ___  _ __ __| |___  ___| |_
 / _ \| '__/ _' / __|/ _ \ __|
| (_) | | | (_| \__ \  __/ |_
 \___/|_|  \__,_|___/\___|\__|
Balanced ordered integer set [Version: %s%s%s]
`, Green, version, Reset)

	runTUI := func(cmd *cobra.Command, args []string) {
		config := loadConfigOrDefault()
		session := NewSession(orderedset.New(), NewRenderCache(config.CacheExpiration()))
		if err := runBubbleTeaApp(session, config); err != nil {
			log.Fatalf("Error running interactive session: %v", err)
		}
	}

	var cmdTUI = &cobra.Command{
		Use:   "tui",
		Short: "Launches the interactive ordered set session",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Tui opens an interactive session over an empty set`),
		Args:  cobra.NoArgs,
		Run:   runTUI,
	}

	var cmdLoad = &cobra.Command{
		Use:   "load FILE...",
		Short: "Insert integers from files and print the result",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Load reads .txt, .csv, .json or .yaml files into one set`),
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()
			order, showTree := outputFlags(cmd, config)

			set := orderedset.New()
			loader := NewLoader(set, config.Loader)
			stats, err := loader.LoadFiles(args)
			if err != nil {
				log.Fatalf("Error loading values: %v", err)
			}

			fmt.Printf("Read %d values from %d files: %s%d inserted%s, %s%d duplicates%s\n",
				stats.Read, stats.Files, Green, stats.Inserted, Reset, Warning, stats.Duplicates, Reset)
			printSet(NewSession(set, NewRenderCache(config.CacheExpiration())), order, showTree)
		},
	}

	var cmdEval = &cobra.Command{
		Use:   "eval SCRIPT",
		Short: "Run session commands against a fresh set",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Eval runs ';' separated session commands, e.g. "insert 5 3 8; remove 3; in"`),
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()
			session := NewSession(orderedset.New(), NewRenderCache(config.CacheExpiration()))

			failed := false
			for _, script := range args {
				for _, result := range session.ExecScript(script) {
					if result.Err != nil {
						failed = true
						fmt.Printf("%s> %s%s\n%s%v%s\n", Info, result.Statement, Reset, Error, result.Err, Reset)
						continue
					}
					fmt.Printf("%s> %s%s\n%s\n", Info, result.Statement, Reset, result.Output)
				}
			}
			if failed {
				os.Exit(1)
			}
		},
	}

	cmdLoad.Flags().String("order", "", "traversal to print: pre, in or post (default from config)")
	cmdLoad.Flags().Bool("tree", false, "also draw the tree")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print Ordset usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the ordset CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show Ordset configuration",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Ordset version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "ordset",
		Version: version,
		Long:    asciiLogo,
		Args:    cobra.NoArgs,
		// Default to the interactive session when no subcommand is provided
		Run: runTUI,
	}
	rootCmd.AddCommand(cmdTUI, cmdLoad, cmdEval, cmdUsage, cmdSettings, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// outputFlags resolves --order and --tree against the configuration
func outputFlags(cmd *cobra.Command, config *Config) (orderedset.Order, bool) {
	order := config.TraversalOrder()
	if name, _ := cmd.Flags().GetString("order"); name != "" {
		parsed, err := orderedset.ParseOrder(name)
		if err != nil {
			log.Fatalf("Invalid --order: %v", err)
		}
		order = parsed
	}

	showTree := config.Display.ShowTree
	if cmd.Flags().Changed("tree") {
		showTree, _ = cmd.Flags().GetBool("tree")
	}
	return order, showTree
}
