// Package postgres stores training corpora in a PostgreSQL database.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/Volplayed/ukr-document-OCR/dataset"
	"github.com/Volplayed/ukr-document-OCR/storage"
	"github.com/Volplayed/ukr-document-OCR/storage/postgres/migrations"
)

type PostgresStorage struct {
	db *sql.DB

	databaseName   string
	databaseSchema string
	databasePrefix string

	runTable     string
	exampleTable string
}

func NewPostgresStorage(db *sql.DB, options ...PostgresOption) PostgresStorage {
	storage := PostgresStorage{
		db:             db,
		databaseName:   "postgres",
		databaseSchema: "public",
		databasePrefix: "ukrocr_",
	}

	for _, option := range options {
		option(&storage)
	}

	storage.runTable = fmt.Sprintf("%s.%srun", storage.databaseSchema, storage.databasePrefix)
	storage.exampleTable = fmt.Sprintf("%s.%sexample", storage.databaseSchema, storage.databasePrefix)

	return storage
}

// Make sure that all the tables are created and the store is ready to work.
// You can run this safelly several times.
func (s *PostgresStorage) Install(ctx context.Context) error {
	migrator, err := s.migrator()
	if err != nil {
		return err
	}

	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Join(errors.New("error while performing migration on the database"), err)
	}

	return nil
}

// Completelly removes itselve from the database
func (s *PostgresStorage) UnInstall(ctx context.Context) error {
	migrator, err := s.migrator()
	if err != nil {
		return err
	}

	if err := migrator.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Join(errors.New("error while performing down migration on the database"), err)
	}

	if _, err := s.db.Exec("DROP TABLE " + fmt.Sprintf("%s.%smigrations", s.databaseSchema, s.databasePrefix)); err != nil {
		return errors.Join(errors.New("failed to drop migrations table"), err)
	}

	return nil
}

func (s *PostgresStorage) migrator() (*migrate.Migrate, error) {
	migrationFiles, err := migrations.PrepareMigrations(s.databaseSchema, s.databasePrefix)
	if err != nil {
		return nil, errors.Join(errors.New("failed to prepare migration files"), err)
	}

	driver, err := migratepostgres.WithInstance(s.db, &migratepostgres.Config{
		SchemaName:      s.databaseSchema,
		MigrationsTable: fmt.Sprintf("%smigrations", s.databasePrefix),
	})
	if err != nil {
		return nil, errors.Join(errors.New("failed to create postgres migration driver"), err)
	}

	migrationsSource, err := iofs.New(migrationFiles, ".")
	if err != nil {
		return nil, errors.Join(errors.New("failed to open postgres migrations source"), err)
	}

	migrator, err := migrate.NewWithInstance("migrations", migrationsSource, s.databaseName, driver)
	if err != nil {
		return nil, errors.Join(errors.New("failed to create migrator"), err)
	}

	return migrator, nil
}

func (s *PostgresStorage) CreateRun(ctx context.Context, run storage.Run) (storage.RunID, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (
			reference_dir,
			num_levels,
			min_severity,
			max_severity,
			seed
		)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING run_id
	`, s.runTable)

	var runID storage.RunID
	if err := s.db.QueryRowContext(ctx, query, run.ReferenceDir, run.NumLevels, run.MinSeverity, run.MaxSeverity, run.Seed).Scan(&runID); err != nil {
		return 0, errors.Join(errors.New("failed to insert new run into the database"), err)
	}

	return runID, nil
}

func (s *PostgresStorage) PutExamples(ctx context.Context, run storage.RunID, granularity storage.Granularity, examples []dataset.Example) error {
	if len(examples) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return errors.Join(errors.New("failed to begin examples transaction in database"), err)
	}
	defer tx.Rollback()

	var exists bool
	existsQuery := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE run_id = $1)`, s.runTable)
	if err := tx.QueryRowContext(ctx, existsQuery, run).Scan(&exists); err != nil {
		return errors.Join(errors.New("failed to check run existence in the database"), err)
	}
	if !exists {
		return storage.ErrRunDoesntExist
	}

	insertQuery := fmt.Sprintf(`
		INSERT INTO %s (
			run_id,
			granularity,
			text,
			target
		)
		VALUES ($1, $2, $3, $4)
	`, s.exampleTable)
	for _, example := range examples {
		if _, err := tx.ExecContext(ctx, insertQuery, run, granularity, example.Text, example.Target); err != nil {
			return errors.Join(errors.New("failed to insert training example into the database"), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Join(errors.New("failed to commit examples transaction in the database"), err)
	}

	return nil
}

func (s *PostgresStorage) RunStats(ctx context.Context, run storage.RunID) (*storage.RunStats, error) {
	var exists bool
	existsQuery := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE run_id = $1)`, s.runTable)
	if err := s.db.QueryRowContext(ctx, existsQuery, run).Scan(&exists); err != nil {
		return nil, errors.Join(errors.New("failed to check run existence in the database"), err)
	}
	if !exists {
		return nil, storage.ErrRunDoesntExist
	}

	query := fmt.Sprintf(`
		SELECT granularity, COUNT(*)
		FROM %s
		WHERE run_id = $1
		GROUP BY granularity
	`, s.exampleTable)
	rows, err := s.db.QueryContext(ctx, query, run)
	if err != nil {
		return nil, errors.Join(errors.New("failed to count training examples in the database"), err)
	}
	defer rows.Close()

	stats := storage.RunStats{}
	for rows.Next() {
		var granularity storage.Granularity
		var count uint64
		if err := rows.Scan(&granularity, &count); err != nil {
			return nil, errors.Join(errors.New("failed to scan training example counts"), err)
		}
		switch granularity {
		case storage.GranularityDocument:
			stats.DocumentExamples = count
		case storage.GranularityLine:
			stats.LineExamples = count
		}
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(errors.New("error while reading training example counts"), err)
	}

	return &stats, nil
}
