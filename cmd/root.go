package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/prettymuchbryce/reportbake/internal/config"
	"github.com/prettymuchbryce/reportbake/internal/crater"
	"github.com/prettymuchbryce/reportbake/internal/fs"
	"github.com/prettymuchbryce/reportbake/internal/pathutil"
	"github.com/prettymuchbryce/reportbake/internal/report"
	"github.com/spf13/cobra"
)

var (
	rootConfigPath string
	rootReportDir  string
	rootOutput     string
	rootLogLevel   string
	rootDryRun     bool
	rootVerbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "reportbake <report-name>",
	Short: "reportbake - Bake a crater report tree into a single JSON manifest",
	Long: `reportbake walks report/<category>/reg/<crate>/<version>/ and writes output.json,
mapping every crate to its classified outcome. <report-name> is the file read from
each version directory for crates that did not succeed.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errors.New("first argument must be report name")
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		SetupLogging("warn")
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		var configPath string
		if cmd.Flags().Changed("config") {
			configPath = pathutil.ExpandTilde(rootConfigPath)
		}

		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if cmd.Flags().Changed("report-dir") {
			cfg.ReportDir = pathutil.Resolve(rootReportDir)
		}
		if cmd.Flags().Changed("output") {
			cfg.Output = pathutil.Resolve(rootOutput)
		}
		if cmd.Flags().Changed("log-level") {
			cfg.Logging.Level = rootLogLevel
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		SetupLogging(cfg.Logging.Level)

		// Create the appropriate filesystem based on dry-run flag
		var filesystem fs.FileSystem
		if rootDryRun {
			filesystem = fs.NewDryRun()
		} else {
			filesystem = fs.NewReal()
		}

		reporter := report.NewStructuredWithWriter(cmd.OutOrStdout(), rootVerbose)

		_, _, err = crater.Bake(filesystem, crater.Options{
			ReportName: args[0],
			ReportDir:  cfg.ReportDir,
			Output:     cfg.Output,
			Exclude:    cfg.Exclude,
		}, reporter)
		return err
	},
}

func init() {
	rootCmd.Flags().StringVarP(&rootConfigPath, "config", "c", "", "path to an optional YAML config file")
	rootCmd.Flags().StringVar(&rootReportDir, "report-dir", config.DefaultReportDir, "root of the report tree")
	rootCmd.Flags().StringVarP(&rootOutput, "output", "o", config.DefaultOutput, "path of the JSON manifest to write")
	rootCmd.Flags().StringVar(&rootLogLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.Flags().BoolVarP(&rootDryRun, "dry-run", "n", false, "classify everything but do not write the manifest to disk")
	rootCmd.Flags().BoolVarP(&rootVerbose, "verbose", "v", false, "list every crate in the summary")
}

func SetVersion(v string) {
	rootCmd.Version = v
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
