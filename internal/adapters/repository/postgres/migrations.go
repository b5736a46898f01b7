package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// ApplyMigrations runs every *.up.sql file in dirPath in lexical order.
func ApplyMigrations(ctx context.Context, db *sql.DB, dirPath string) error {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), "up.sql") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		if err := execFile(ctx, db, filepath.Join(dirPath, name)); err != nil {
			return err
		}
	}
	return nil
}

// ApplyMigration runs the single file in dirPath whose name ends with
// "<migrationName>.sql", e.g. "create_votes.down".
func ApplyMigration(ctx context.Context, db *sql.DB, dirPath, migrationName string) error {
	fileName, err := migrationFileName(dirPath, migrationName)
	if err != nil {
		return err
	}
	return execFile(ctx, db, filepath.Join(dirPath, fileName))
}

func execFile(ctx context.Context, db *sql.DB, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read migration file %s: %w", filepath.Base(path), err)
	}

	if _, err := db.ExecContext(ctx, string(content)); err != nil {
		return fmt.Errorf("failed to execute migration %s: %w", filepath.Base(path), err)
	}
	return nil
}

func migrationFileName(dirPath, migrationName string) (string, error) {
	regex, err := regexp.Compile(fmt.Sprintf(`^.*%s\.sql$`, regexp.QuoteMeta(migrationName)))
	if err != nil {
		return "", fmt.Errorf("invalid migration name: %w", err)
	}

	files, err := os.ReadDir(dirPath)
	if err != nil {
		return "", fmt.Errorf("failed to read migrations directory: %w", err)
	}
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		if regex.MatchString(f.Name()) {
			return f.Name(), nil
		}
	}

	return "", fmt.Errorf("migration file not found: %s", migrationName)
}
