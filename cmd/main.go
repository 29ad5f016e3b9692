package main

import "github.com/spf13/cobra"

var mainCMD = &cobra.Command{
	Use:   "ukrocr",
	Short: "Training data tools for Ukrainian document OCR correction",
	Long:  "Generates corrupted variants of clean Ukrainian documents and packages them into training corpora for the text-correction model.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	mainCMD.AddCommand(generateCMD)
	mainCMD.AddCommand(datasetCMD)
	mainCMD.AddCommand(runCMD)
	mainCMD.AddCommand(extractCMD)
	mainCMD.AddCommand(renderCMD)
}

func main() {
	if err := mainCMD.Execute(); err != nil {
		panic(err)
	}
}
