package main

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/brepcsg/brepcsg/pkg/converter"
	"github.com/brepcsg/brepcsg/pkg/converter/kernel"
	"github.com/brepcsg/brepcsg/pkg/converter/mcnp"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "brepcsg",
		Short: "Convert decomposed B-rep solids into transport-code CSG cells",
	}
	root.AddCommand(convertCmd())
	return root
}

func convertCmd() *cobra.Command {
	config := converter.DefaultConfig()
	var (
		modelPath string
		outDir    string
		logLevel  string
	)

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Run the conversion pipeline over a model file",
		RunE: func(cmd *cobra.Command, args []string) error {
			initLogger(logLevel)

			data, err := os.ReadFile(modelPath)
			if err != nil {
				return err
			}
			model, err := converter.LoadModel(data)
			if err != nil {
				return fmt.Errorf("loading model %s: %s", modelPath, err.Error())
			}

			result, err := converter.New(config, kernel.Analytic{}).Process(model)
			if err != nil {
				return err
			}
			for _, warning := range result.Warnings {
				log.Warnf("solid %d [%s]: %s", warning.SolidID, warning.Stage, warning.Message)
			}

			if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
				return err
			}
			for name, content := range mcnp.Serialize(result, mcnp.DefaultNumericFormat) {
				path := filepath.Join(outDir, name)
				if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
					return err
				}
				log.Infof("wrote %s", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&modelPath, "model", "model.json", "model file with decomposed solids")
	cmd.Flags().StringVar(&outDir, "out", ".", "output directory")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "logging level")
	cmd.Flags().BoolVar(&config.Settings.VoidGen, "void", config.Settings.VoidGen,
		"generate void cells")
	cmd.Flags().StringSliceVar(&config.Settings.VoidExclude, "void-exclude", nil,
		"solid labels excluded from void subtraction")
	cmd.Flags().Int64Var(&config.Settings.StartCell, "start-cell", config.Settings.StartCell,
		"first cell number")
	cmd.Flags().Int64Var(&config.Settings.StartSurf, "start-surf", config.Settings.StartSurf,
		"first surface number")
	cmd.Flags().Float64Var(&config.Settings.BoxPadding, "padding", config.Settings.BoxPadding,
		"bounding box padding")
	cmd.Flags().BoolVar(&config.Settings.SortEnclosure, "sort-enclosure",
		config.Settings.SortEnclosure, "group output cells per enclosure")
	cmd.Flags().StringVar(&config.Settings.EnclosureAttribution, "attribution",
		config.Settings.EnclosureAttribution,
		"enclosure group of multi-enclosure solids (outermost or first)")
	cmd.Flags().Float64Var(&config.Options.EnlargeBox, "enlarge",
		config.Options.EnlargeBox, "local box growth for simplification probing")
	return cmd
}

func initLogger(logLevel string) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	level, err := log.ParseLevel(logLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
}
