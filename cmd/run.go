package main

import (
	"fmt"

	"github.com/spf13/cobra"

	ukrocr "github.com/Volplayed/ukr-document-OCR"
	"github.com/Volplayed/ukr-document-OCR/corpus"
)

var runCMD = &cobra.Command{
	Use:   "run",
	Short: "Run the full training data pipeline",
	Long:  "Generates corrupted variants, assembles both training corpora, writes them as JSON and optionally persists them in the database, all in one pass.",
	RunE: func(cmd *cobra.Command, args []string) error {
		generatorConfig, err := generatorConfigFromFlags(cmd)
		if err != nil {
			return err
		}
		generatorConfig.Progress = func(event corpus.ProgressEvent) {
			fmt.Printf("Generated %s with severity %.2f\n", event.Path, event.Severity)
		}

		store, closeStore, err := openStorageFromFlags(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		referenceDir, _ := cmd.Flags().GetString("reference-dir")
		variantsDir, _ := cmd.Flags().GetString("output-dir")

		engine := ukrocr.New(ukrocr.Config{
			ReferenceDir: referenceDir,
			VariantsDir:  variantsDir,
			Generator:    generatorConfig,
			Storage:      store,
		})
		result, err := engine.Run(cmd.Context())
		if err != nil {
			return err
		}

		documentsOut, _ := cmd.Flags().GetString("documents-out")
		linesOut, _ := cmd.Flags().GetString("lines-out")
		if err := result.Documents.WriteFile(documentsOut); err != nil {
			return err
		}
		if err := result.Lines.WriteFile(linesOut); err != nil {
			return err
		}

		fmt.Printf("Wrote %d document-level and %d line-level examples\n", len(result.Documents), len(result.Lines))
		if result.Run != 0 {
			fmt.Printf("Stored both corpora as run %d\n", result.Run)
		}
		return nil
	},
}

func init() {
	addGeneratorFlags(runCMD)
	runCMD.Flags().String("output-dir", "train-data/examples", "Directory where corrupted variants are written")
	runCMD.Flags().String("documents-out", "train-data/train_data.json", "Output path for the document-level corpus")
	runCMD.Flags().String("lines-out", "train-data/train_data_lines.json", "Output path for the line-level corpus")
	addStorageFlags(runCMD)
}
