// Command genevenn draws Venn diagrams from gene lists kept in Excel
// workbooks. Run without arguments it opens the desktop app; the batch
// subcommand processes workbooks without a display.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/config"
	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/logger"

	"github.com/spf13/cobra"
)

var cfgFile string

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "genevenn",
		Short:   "Venn diagrams for gene lists stored in Excel workbooks",
		Version: AppVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default genevenn.yaml in . or $HOME)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(newBatchCmd())
	return rootCmd
}

func loadConfig(cmd *cobra.Command) (*config.Loader, *config.Config, error) {
	loader := config.NewLoader(cfgFile)

	v := loader.Viper()
	bindings := map[string]string{
		"log_level":                "log-level",
		"engine.layout_policy":     "policy",
		"engine.case_sensitive":    "case-sensitive",
		"style.colors":             "colors",
		"style.alpha":              "alpha",
		"output.dir_name":          "out",
		"output.combined_workbook": "combined",
	}
	for key, name := range bindings {
		if flag := cmd.Flags().Lookup(name); flag != nil && flag.Changed {
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, nil, err
			}
		}
	}

	cfg, err := loader.Load()
	if err != nil {
		return nil, nil, err
	}
	return loader, cfg, nil
}

func runGUI(cmd *cobra.Command) error {
	loader, cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	application, err := NewApplication(cfg)
	if err != nil {
		return err
	}

	// Style edits to the config file take effect on the next render
	loader.Watch(application.ApplyConfig, func(err error) {
		application.logger.Warning("Config", "ignoring invalid config change", map[string]interface{}{
			"error": err.Error(),
		})
	})

	return application.Run(context.Background())
}

func newBatchCmd() *cobra.Command {
	batchCmd := &cobra.Command{
		Use:   "batch <workbook.xlsx> [more workbooks...]",
		Short: "Export diagrams and region tables for every sheet of each workbook",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runBatch(cfg, args)
		},
	}

	batchCmd.Flags().String("policy", "", "layout policy for more than three sets: exact, approximate or reject")
	batchCmd.Flags().Bool("case-sensitive", false, "treat identifiers as case sensitive")
	batchCmd.Flags().StringSlice("colors", nil, "fill colors as hex values, one per set")
	batchCmd.Flags().Float64("alpha", 0, "fill opacity between 0 and 1")
	batchCmd.Flags().String("out", "", "output directory name created beside each workbook")
	batchCmd.Flags().Bool("combined", true, "also write one combined results workbook per input")

	return batchCmd
}

func runBatch(cfg *config.Config, paths []string) error {
	log := logger.NewConsoleLogger(logger.ParseLevel(cfg.LogLevel))

	runner, err := newBatchRunner(cfg, log)
	if err != nil {
		return err
	}
	defer runner.Close()

	ctx := context.Background()
	failures := 0
	for _, path := range paths {
		if err := runner.Process(ctx, path); err != nil {
			log.Error("Batch", err, map[string]interface{}{"workbook": path})
			failures++
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d workbook(s) failed", failures, len(paths))
	}
	return nil
}
