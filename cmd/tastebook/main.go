package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tastebook/tastebook-cli/cmd/commands"
	"github.com/tastebook/tastebook-cli/internal/cli"
	"github.com/tastebook/tastebook-cli/pkg/examples"
	"github.com/tastebook/tastebook-cli/pkg/files"
	"github.com/tastebook/tastebook-cli/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	flagQuiet       bool
	flagNoColor     bool
	flagSkipConfirm bool
)

var rootCmd = &cobra.Command{
	Use:   "tastebook",
	Short: "Terminal-based recipe book",
	Long:  `Tastebook is a terminal-based tool for capturing and editing recipes. It stores everything as plain YAML files and provides a TUI for quick, field-at-a-time editing.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.SetGlobalFlags(flagQuiet, flagNoColor, flagSkipConfirm)
	},
	Run: func(cmd *cobra.Command, args []string) {
		// Check if .tastebook directory exists
		if !files.ProjectExists() {
			fmt.Fprintf(os.Stderr, "Error: No .tastebook directory found in the current directory.\n")
			fmt.Fprintf(os.Stderr, "Please run 'tastebook init' first to initialize a new recipe book.\n")
			os.Exit(1)
		}

		// Launch TUI
		app := tui.NewApp()
		p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to start the terminal user interface: %v\n", err)
			fmt.Fprintf(os.Stderr, "This could be due to terminal compatibility issues. Try running in a different terminal.\n")
			os.Exit(1)
		}
	},
}

var initExamples bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new Tastebook recipe book",
	Long:  `Creates the .tastebook folder structure in the current directory`,
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to determine current directory: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Initializing Tastebook in %s...\n", cwd)

		if err := files.InitProjectStructure(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to initialize project structure: %v\n", err)
			fmt.Fprintf(os.Stderr, "Make sure you have write permissions in the current directory.\n")
			os.Exit(1)
		}

		fmt.Println("✓ Created .tastebook folder structure")

		if initExamples {
			if err := examples.Write(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: Failed to write example recipes: %v\n", err)
				os.Exit(1)
			}
			fmt.Println("✓ Added example recipes")
		}

		fmt.Println("\nRun 'tastebook' to start the interactive TUI.")
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Tastebook",
	Long:  `Display the current version of the Tastebook CLI tool`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Tastebook version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&flagSkipConfirm, "yes", "y", false, "Skip confirmation prompts")
	rootCmd.PersistentFlags().StringP("output", "o", "text", "Output format (text, json, yaml)")

	initCmd.Flags().BoolVar(&initExamples, "examples", false, "Seed the book with example recipes")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewListCommand())
	rootCmd.AddCommand(commands.NewShowCommand())
	rootCmd.AddCommand(commands.NewExportCommand())
	rootCmd.AddCommand(commands.NewDeleteCommand())
	rootCmd.AddCommand(commands.NewImportCommand())
	rootCmd.AddCommand(commands.NewArchiveCommand())
	rootCmd.AddCommand(commands.NewRestoreCommand())
	rootCmd.AddCommand(commands.NewTagsCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Command execution failed: %v\n", err)
		os.Exit(1)
	}
}
