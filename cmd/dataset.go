package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/cobra"

	"github.com/Volplayed/ukr-document-OCR/dataset"
	"github.com/Volplayed/ukr-document-OCR/storage"
	"github.com/Volplayed/ukr-document-OCR/storage/postgres"
)

func addStorageFlags(cmd *cobra.Command) {
	cmd.Flags().String("db-url", "", "PostgreSQL connection URL. When set, corpora are also persisted in the database")
	cmd.Flags().String("db-schema", "public", "Database schema for the training data tables")
	cmd.Flags().String("db-prefix", "ukrocr_", "Prefix for the training data tables")
}

// openStorageFromFlags returns a ready training-example store, or nil when no
// database was requested. The caller owns the returned close function.
func openStorageFromFlags(ctx context.Context, cmd *cobra.Command) (storage.Storage, func(), error) {
	dbURL, _ := cmd.Flags().GetString("db-url")
	if dbURL == "" {
		return nil, func() {}, nil
	}

	cfg, err := pgx.ParseConfig(dbURL)
	if err != nil {
		return nil, nil, errors.Join(errors.New("failed to parse database URL"), err)
	}
	db := stdlib.OpenDB(*cfg)

	schema, _ := cmd.Flags().GetString("db-schema")
	prefix, _ := cmd.Flags().GetString("db-prefix")
	store := postgres.NewPostgresStorage(db, postgres.WithDatabaseSchema(schema), postgres.WithDatabasePrefix(prefix))
	if err := store.Install(ctx); err != nil {
		db.Close()
		return nil, nil, errors.Join(errors.New("failed to prepare training data tables"), err)
	}

	return &store, func() { db.Close() }, nil
}

func persistCorpora(ctx context.Context, store storage.Storage, run storage.Run, documents, lines dataset.Corpus) error {
	runID, err := store.CreateRun(ctx, run)
	if err != nil {
		return errors.Join(errors.New("failed to record generation run in storage"), err)
	}
	if err := store.PutExamples(ctx, runID, storage.GranularityDocument, documents); err != nil {
		return errors.Join(errors.New("failed to persist document-level corpus"), err)
	}
	if err := store.PutExamples(ctx, runID, storage.GranularityLine, lines); err != nil {
		return errors.Join(errors.New("failed to persist line-level corpus"), err)
	}
	fmt.Printf("Stored both corpora as run %d\n", runID)
	return nil
}

var datasetCMD = &cobra.Command{
	Use:   "dataset",
	Short: "Assemble training corpora from generated variants",
	Long:  "Pairs previously generated corrupted variants with their clean originals and writes the document-level and line-level training corpora as JSON.",
	RunE: func(cmd *cobra.Command, args []string) error {
		referenceDir, _ := cmd.Flags().GetString("reference-dir")
		variantsDir, _ := cmd.Flags().GetString("variants-dir")

		referenceFS := os.DirFS(referenceDir)
		variantsFS := os.DirFS(variantsDir)

		documents, err := dataset.AssembleDocuments(referenceFS, variantsFS)
		if err != nil {
			return errors.Join(errors.New("failed to assemble document-level corpus"), err)
		}
		lines, err := dataset.AssembleLines(referenceFS, variantsFS)
		if err != nil {
			return errors.Join(errors.New("failed to assemble line-level corpus"), err)
		}

		documentsOut, _ := cmd.Flags().GetString("documents-out")
		linesOut, _ := cmd.Flags().GetString("lines-out")
		if err := documents.WriteFile(documentsOut); err != nil {
			return err
		}
		fmt.Printf("Wrote %d document-level examples to %s\n", len(documents), documentsOut)
		if err := lines.WriteFile(linesOut); err != nil {
			return err
		}
		fmt.Printf("Wrote %d line-level examples to %s\n", len(lines), linesOut)

		store, closeStore, err := openStorageFromFlags(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		defer closeStore()
		if store == nil {
			return nil
		}

		return persistCorpora(cmd.Context(), store, storage.Run{ReferenceDir: referenceDir}, documents, lines)
	},
}

func init() {
	datasetCMD.Flags().String("reference-dir", "train-data/target", "Directory with clean reference .txt documents")
	datasetCMD.Flags().String("variants-dir", "train-data/examples", "Directory with generated corrupted variants")
	datasetCMD.Flags().String("documents-out", "train-data/train_data.json", "Output path for the document-level corpus")
	datasetCMD.Flags().String("lines-out", "train-data/train_data_lines.json", "Output path for the line-level corpus")
	addStorageFlags(datasetCMD)
}
