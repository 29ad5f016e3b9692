package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Volplayed/ukr-document-OCR/corpus"
)

func generatorConfigFromFlags(cmd *cobra.Command) (corpus.GeneratorConfig, error) {
	config := corpus.DefaultGeneratorConfig()
	config.NumLevels, _ = cmd.Flags().GetInt("levels")
	config.MinSeverity, _ = cmd.Flags().GetFloat64("min-severity")
	config.MaxSeverity, _ = cmd.Flags().GetFloat64("max-severity")
	config.Seed, _ = cmd.Flags().GetInt64("seed")
	config.Parallelism, _ = cmd.Flags().GetInt("parallelism")

	if config.NumLevels < 1 {
		return config, errors.New("levels must be a positive number")
	}
	if config.MinSeverity < 0 || config.MaxSeverity > 1 || config.MinSeverity > config.MaxSeverity {
		return config, errors.New("severity range must satisfy 0 <= min <= max <= 1")
	}
	return config, nil
}

func addGeneratorFlags(cmd *cobra.Command) {
	cmd.Flags().String("reference-dir", "train-data/target", "Directory with clean reference .txt documents")
	cmd.Flags().Int("levels", 10, "Number of severity levels in the ramp, one variant per level per document")
	cmd.Flags().Float64("min-severity", 0.1, "Lowest severity in the ramp")
	cmd.Flags().Float64("max-severity", 0.5, "Highest severity in the ramp")
	cmd.Flags().Int64("seed", 0, "Base random seed. Same seed reproduces byte-identical variants")
	cmd.Flags().Int("parallelism", 1, "Number of (document, level) pairs corrupted at the same time")
}

var generateCMD = &cobra.Command{
	Use:   "generate",
	Short: "Generate corrupted variants of clean reference documents",
	Long:  "Reads every .txt document from the reference directory and writes one corrupted variant per severity level to the output directory.",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := generatorConfigFromFlags(cmd)
		if err != nil {
			return err
		}
		config.Progress = func(event corpus.ProgressEvent) {
			fmt.Printf("Generated %s with severity %.2f\n", event.Path, event.Severity)
		}

		referenceDir, _ := cmd.Flags().GetString("reference-dir")
		outputDir, _ := cmd.Flags().GetString("output-dir")

		generator := corpus.NewGenerator(config)
		if err := generator.Generate(cmd.Context(), os.DirFS(referenceDir), outputDir); err != nil {
			return errors.Join(errors.New("failed to generate corrupted variants"), err)
		}
		return nil
	},
}

func init() {
	addGeneratorFlags(generateCMD)
	generateCMD.Flags().String("output-dir", "train-data/examples", "Directory where corrupted variants are written")
}
