package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Volplayed/ukr-document-OCR/ocr"
)

var extractCMD = &cobra.Command{
	Use:   "extract [image]",
	Short: "Extract text from a scanned document image",
	Long:  "Uploads a PNG or JPEG scan to the recognition server and prints the extracted text.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := os.Open(args[0])
		if err != nil {
			return errors.Join(errors.New("failed to open image file"), err)
		}
		defer file.Close()

		config := ocr.DefaultRemoteConfig()
		config.BaseURL, _ = cmd.Flags().GetString("server")

		remote := ocr.NewRemote(config)
		text, err := remote.Extract(cmd.Context(), file, filepath.Base(args[0]))
		if err != nil {
			return errors.Join(errors.New("failed to extract text from image"), err)
		}

		fmt.Println(text)
		return nil
	},
}

func init() {
	extractCMD.Flags().String("server", "http://127.0.0.1:8000", "Base URL of the recognition server")
}
