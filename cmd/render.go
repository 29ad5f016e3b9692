package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Volplayed/ukr-document-OCR/corpus"
	"github.com/Volplayed/ukr-document-OCR/render"
)

var renderCMD = &cobra.Command{
	Use:   "render",
	Short: "Render reference document lines as training images",
	Long:  "Draws every non-empty line of the reference documents as a PNG image and writes a labels.txt ground-truth file, for recognition model training.",
	RunE: func(cmd *cobra.Command, args []string) error {
		fontPath, _ := cmd.Flags().GetString("font")
		fontBytes, err := os.ReadFile(fontPath)
		if err != nil {
			return errors.Join(errors.New("failed to read font file"), err)
		}

		config := render.DefaultConfig()
		config.FontBytes = fontBytes
		config.FontSize, _ = cmd.Flags().GetFloat64("font-size")
		config.Height, _ = cmd.Flags().GetInt("height")

		renderer, err := render.New(config)
		if err != nil {
			return err
		}
		defer renderer.Close()

		referenceDir, _ := cmd.Flags().GetString("reference-dir")
		documents, err := corpus.LoadDocuments(os.DirFS(referenceDir))
		if err != nil {
			return err
		}

		var lines []string
		for _, document := range documents {
			for _, line := range strings.Split(document.Text, "\n") {
				line = strings.TrimSpace(line)
				if line != "" {
					lines = append(lines, line)
				}
			}
		}

		outDir, _ := cmd.Flags().GetString("out")
		if err := renderer.WriteDataset(outDir, lines); err != nil {
			return err
		}

		fmt.Printf("Rendered %d lines to %s\n", len(lines), outDir)
		return nil
	},
}

func init() {
	renderCMD.Flags().String("reference-dir", "train-data/target", "Directory with clean reference .txt documents")
	renderCMD.Flags().String("font", "", "Path to an OpenType font covering the Ukrainian alphabet")
	renderCMD.Flags().Float64("font-size", 48, "Font size in points")
	renderCMD.Flags().Int("height", 64, "Height of rendered images in pixels")
	renderCMD.Flags().String("out", "train-data/images", "Directory where images and labels.txt are written")
	renderCMD.MarkFlagRequired("font")
}
