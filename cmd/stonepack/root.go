package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/DCX-dev/stonepack/internal/config"
	"github.com/DCX-dev/stonepack/internal/github"
	"github.com/DCX-dev/stonepack/internal/output"
	"github.com/DCX-dev/stonepack/internal/packager"
)

// Global configuration variables
var (
	projectRoot string
	jsonMode    bool
	noColor     bool
	verbose     bool
	configPath  string // Path to config.toml file (--config flag)

	python    string
	repoOwner string
	repoName  string
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stonepack",
		Short: "Build, verify, and distribute Order of the Stone executables",
		Long: `stonepack packages the game Order of the Stone into standalone native
executables and keeps the release pipeline honest:

  - Build Mac and Windows executables with PyInstaller
  - Verify that produced binaries match their target platform
  - Locate Windows build artifacts on GitHub Actions
  - Launch the game from source or from a packaged bundle

Examples:
  # Build for all platforms
  stonepack build

  # Build the Windows executable only
  stonepack build windows

  # Verify everything under releases/ and dist/
  stonepack check

  # Find the newest Windows artifact on GitHub Actions
  stonepack fetch

  # Start the game
  stonepack launch`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load config file
			loader := config.NewLoader(configPath, output.DefaultLogger)
			fileCfg, configFilePath, err := loader.Load()
			if err != nil {
				return err
			}

			// Apply config file values to global flags (if not explicitly set)
			// Priority: default < config.toml < env < flag
			if !cmd.Flags().Changed("project-root") && fileCfg.ProjectRoot != nil {
				projectRoot = *fileCfg.ProjectRoot
			}
			if !cmd.Flags().Changed("verbose") && fileCfg.Verbose != nil {
				verbose = *fileCfg.Verbose
			}
			if !cmd.Flags().Changed("json") && fileCfg.JSON != nil {
				jsonMode = *fileCfg.JSON
			}
			if !cmd.Flags().Changed("no-color") && fileCfg.NoColor != nil {
				noColor = *fileCfg.NoColor
			}
			if !cmd.Flags().Changed("python") && fileCfg.Python != nil {
				python = *fileCfg.Python
			}
			if !cmd.Flags().Changed("owner") && fileCfg.Owner != nil {
				repoOwner = *fileCfg.Owner
			}
			if !cmd.Flags().Changed("repo") && fileCfg.Repo != nil {
				repoName = *fileCfg.Repo
			}

			// Environment variables override config.toml (but not explicit flags)
			if envRoot := os.Getenv("STONEPACK_PROJECT_ROOT"); envRoot != "" && !cmd.Flags().Changed("project-root") {
				projectRoot = envRoot
			}
			if os.Getenv("NO_COLOR") != "" && !cmd.Flags().Changed("no-color") {
				noColor = true
			}

			if configFilePath != "" && verbose {
				output.DefaultLogger.Debug("Using config file: %s", configFilePath)
			}

			// Apply global configuration to logger
			output.DefaultLogger.SetNoColor(noColor)
			output.DefaultLogger.SetVerbose(verbose)
			output.DefaultLogger.SetJSONMode(jsonMode)

			return nil
		},
	}

	// Global flags available on all commands
	cmd.PersistentFlags().StringVar(&projectRoot, "project-root", ".", "Root of the game project tree")
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.toml file")
	cmd.PersistentFlags().StringVar(&python, "python", packager.DefaultPython, "Python interpreter used for PyInstaller and the game runtime")
	cmd.PersistentFlags().StringVar(&repoOwner, "owner", github.DefaultOwner, "GitHub repository owner")
	cmd.PersistentFlags().StringVar(&repoName, "repo", github.DefaultRepo, "GitHub repository name")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	cmd.PersistentFlags().BoolVar(&jsonMode, "json", false, "Output in JSON format where supported")

	cmd.AddCommand(NewBuildCmd())
	cmd.AddCommand(NewCheckCmd())
	cmd.AddCommand(NewFetchCmd())
	cmd.AddCommand(NewLaunchCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}
