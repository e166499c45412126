package database

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Migrations are plain SQL files, one directory per dialect, named <version>_<description>.sql
//
//go:embed migrations
var migrations embed.FS

const schemaVersionTable = "schema_version"

type migration struct {
	version int
	name    string
	sql     string
}

// Migrate applies every embedded migration newer than the recorded schema version.
// Each file runs in its own transaction together with its schema_version row.
func Migrate(db *gorm.DB) error {
	dialect := db.Dialector.Name()
	pending, err := loadMigrations(dialect)
	if err != nil {
		return err
	}

	createVersionTable := fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS %s (version INTEGER PRIMARY KEY, name TEXT NOT NULL)", schemaVersionTable)
	if err := db.Exec(createVersionTable).Error; err != nil {
		return fmt.Errorf("creating %s table: %w", schemaVersionTable, err)
	}

	from, err := CurrentVersion(db)
	if err != nil {
		return err
	}

	applied := from
	for _, m := range pending {
		if m.version <= from {
			continue
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			for _, statement := range splitStatements(m.sql) {
				if err := tx.Exec(statement).Error; err != nil {
					return err
				}
			}
			return tx.Exec(fmt.Sprintf("INSERT INTO %s (version, name) VALUES (?, ?)", schemaVersionTable), m.version, m.name).Error
		})
		if err != nil {
			return fmt.Errorf("applying migration %s: %w", m.name, err)
		}
		log.WithFields(logrus.Fields{
			"version": m.version,
			"name":    m.name,
		}).Info("Applied database migration")
		applied = m.version
	}

	if applied == from {
		log.Infof("Database schema up to date, version %d", from)
	} else {
		log.Infof("Migrated database schema, from %d to %d", from, applied)
	}
	return nil
}

// CurrentVersion returns the highest applied migration version, 0 for a fresh database
func CurrentVersion(db *gorm.DB) (int, error) {
	var version int
	query := fmt.Sprintf("SELECT COALESCE(MAX(version), 0) FROM %s", schemaVersionTable)
	if err := db.Raw(query).Scan(&version).Error; err != nil {
		return 0, fmt.Errorf("retrieving current database migration version: %w", err)
	}
	return version, nil
}

func loadMigrations(dialect string) ([]migration, error) {
	dir := path.Join("migrations", dialect)
	entries, err := fs.ReadDir(migrations, dir)
	if err != nil {
		return nil, fmt.Errorf("no migrations for dialect %q: %w", dialect, err)
	}

	// ReadDir returns entries sorted by filename
	var loaded []migration
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		prefix, _, found := strings.Cut(entry.Name(), "_")
		if !found {
			return nil, fmt.Errorf("migration %s: expected <version>_<name>.sql", entry.Name())
		}
		version, err := strconv.Atoi(prefix)
		if err != nil {
			return nil, fmt.Errorf("migration %s: invalid version: %w", entry.Name(), err)
		}
		content, err := fs.ReadFile(migrations, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading migration %s: %w", entry.Name(), err)
		}
		loaded = append(loaded, migration{
			version: version,
			name:    strings.TrimSuffix(entry.Name(), ".sql"),
			sql:     string(content),
		})
	}
	return loaded, nil
}

// splitStatements breaks a migration file on semicolons. Migrations must not embed ';' in literals.
func splitStatements(script string) []string {
	var statements []string
	for _, statement := range strings.Split(script, ";") {
		if trimmed := strings.TrimSpace(statement); trimmed != "" {
			statements = append(statements, trimmed)
		}
	}
	return statements
}
