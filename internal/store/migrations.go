package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed schema.sql
var initialSchema string

// Migrator handles database schema migrations
type Migrator interface {
	// Migrate applies all pending migrations
	Migrate(ctx context.Context) error

	// CurrentVersion returns the current schema version
	CurrentVersion(ctx context.Context) (int, error)

	// Rollback rolls back to a target version
	Rollback(ctx context.Context, targetVersion int) error

	// GetAppliedMigrations returns a list of all applied migrations
	GetAppliedMigrations(ctx context.Context) ([]MigrationInfo, error)
}

// migration represents a single database migration
type migration struct {
	version int
	name    string
	up      string
	down    string
}

// migrator implements the Migrator interface
type migrator struct {
	db         *DB
	migrations []migration
}

// NewMigrator creates a new database migrator
func NewMigrator(db *DB) Migrator {
	return &migrator{
		db:         db,
		migrations: getMigrations(),
	}
}

// getMigrations returns all available migrations in order
func getMigrations() []migration {
	migrations := []migration{
		{
			version: 1,
			name:    "initial_schema",
			up:      initialSchema,
			down:    getDownMigration1(),
		},
		// Future migrations will be added here
	}

	// Sort by version to ensure correct order
	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].version < migrations[j].version
	})

	return migrations
}

// getDownMigration1 returns the rollback SQL for migration 1
func getDownMigration1() string {
	return `
-- Drop indexes
DROP INDEX IF EXISTS idx_runs_domain;
DROP INDEX IF EXISTS idx_runs_created_at;

-- Drop tables (do NOT drop migrations table - it's managed separately)
DROP TABLE IF EXISTS runs;
`
}

// Migrate applies all pending migrations
func (m *migrator) Migrate(ctx context.Context) error {
	// Ensure migrations table exists
	if err := m.ensureMigrationsTable(ctx); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	// Get current version
	currentVersion, err := m.CurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}

	// Apply pending migrations
	for _, mig := range m.migrations {
		if mig.version <= currentVersion {
			continue // Skip already applied migrations
		}

		if err := m.applyMigration(ctx, mig); err != nil {
			return fmt.Errorf("failed to apply migration %d (%s): %w", mig.version, mig.name, err)
		}
	}

	return nil
}

// CurrentVersion returns the current schema version
func (m *migrator) CurrentVersion(ctx context.Context) (int, error) {
	// Ensure migrations table exists
	if err := m.ensureMigrationsTable(ctx); err != nil {
		return 0, fmt.Errorf("failed to ensure migrations table: %w", err)
	}

	var version int
	query := "SELECT COALESCE(MAX(version), 0) FROM migrations"
	err := m.db.conn.QueryRowContext(ctx, query).Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("failed to query current version: %w", err)
	}

	return version, nil
}

// Rollback rolls back to a target version
func (m *migrator) Rollback(ctx context.Context, targetVersion int) error {
	if targetVersion < 0 {
		return fmt.Errorf("invalid target version: %d", targetVersion)
	}

	// Get current version
	currentVersion, err := m.CurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}

	if targetVersion > currentVersion {
		return fmt.Errorf("cannot rollback to future version %d (current: %d)", targetVersion, currentVersion)
	}

	// Rollback migrations in reverse order
	for i := len(m.migrations) - 1; i >= 0; i-- {
		mig := m.migrations[i]
		if mig.version <= targetVersion {
			break
		}
		if mig.version > currentVersion {
			continue // Skip unapplied migrations
		}

		if err := m.rollbackMigration(ctx, mig); err != nil {
			return fmt.Errorf("failed to rollback migration %d (%s): %w", mig.version, mig.name, err)
		}
	}

	return nil
}

// ensureMigrationsTable creates the migrations table if it doesn't exist
func (m *migrator) ensureMigrationsTable(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS migrations (
		version INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`

	_, err := m.db.conn.ExecContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	return nil
}

// applyMigration applies a single migration within a transaction
func (m *migrator) applyMigration(ctx context.Context, mig migration) error {
	return m.db.WithTx(ctx, func(tx *sql.Tx) error {
		// Execute migration SQL
		// Split by semicolon to handle multiple statements
		statements := splitSQL(mig.up)
		for _, stmt := range statements {
			stmt = strings.TrimSpace(stmt)
			if stmt == "" {
				continue
			}
			// Remove comment lines from the statement
			cleanStmt := removeComments(stmt)
			if cleanStmt == "" {
				continue
			}
			if _, err := tx.ExecContext(ctx, cleanStmt); err != nil {
				return fmt.Errorf("failed to execute statement: %w\nStatement: %s", err, cleanStmt)
			}
		}

		// Record migration in migrations table
		_, err := tx.ExecContext(ctx,
			"INSERT INTO migrations (version, name, applied_at) VALUES (?, ?, CURRENT_TIMESTAMP)",
			mig.version, mig.name)
		if err != nil {
			return fmt.Errorf("failed to record migration: %w", err)
		}

		return nil
	})
}

// rollbackMigration rolls back a single migration within a transaction
func (m *migrator) rollbackMigration(ctx context.Context, mig migration) error {
	return m.db.WithTx(ctx, func(tx *sql.Tx) error {
		// Execute rollback SQL
		statements := splitSQL(mig.down)
		for _, stmt := range statements {
			stmt = strings.TrimSpace(stmt)
			if stmt == "" {
				continue
			}
			// Remove comment lines from the statement
			cleanStmt := removeComments(stmt)
			if cleanStmt == "" {
				continue
			}
			if _, err := tx.ExecContext(ctx, cleanStmt); err != nil {
				return fmt.Errorf("failed to execute rollback statement: %w\nStatement: %s", err, cleanStmt)
			}
		}

		// Remove migration record
		_, err := tx.ExecContext(ctx, "DELETE FROM migrations WHERE version = ?", mig.version)
		if err != nil {
			return fmt.Errorf("failed to remove migration record: %w", err)
		}

		return nil
	})
}

// GetAppliedMigrations returns a list of all applied migrations
func (m *migrator) GetAppliedMigrations(ctx context.Context) ([]MigrationInfo, error) {
	if err := m.ensureMigrationsTable(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure migrations table: %w", err)
	}

	query := "SELECT version, name, applied_at FROM migrations ORDER BY version"
	rows, err := m.db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	var migrations []MigrationInfo
	for rows.Next() {
		var info MigrationInfo
		if err := rows.Scan(&info.Version, &info.Name, &info.AppliedAt); err != nil {
			return nil, fmt.Errorf("failed to scan migration: %w", err)
		}
		migrations = append(migrations, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating migrations: %w", err)
	}

	return migrations, nil
}

// MigrationInfo contains information about an applied migration
type MigrationInfo struct {
	Version   int
	Name      string
	AppliedAt string
}

// splitSQL splits SQL script into individual statements
// Handles string literals so semicolons inside them do not split
func splitSQL(sql string) []string {
	var statements []string
	var current strings.Builder
	inString := false
	stringChar := rune(0)

	for i, ch := range sql {
		switch {
		case ch == '\'' || ch == '"':
			if !inString {
				inString = true
				stringChar = ch
			} else if ch == stringChar {
				// Check if escaped
				if i > 0 && sql[i-1] != '\\' {
					inString = false
				}
			}
			current.WriteRune(ch)

		case ch == ';' && !inString:
			// End of statement
			stmt := strings.TrimSpace(current.String())
			if stmt != "" {
				statements = append(statements, stmt)
			}
			current.Reset()

		default:
			current.WriteRune(ch)
		}
	}

	// Add any remaining content
	if stmt := strings.TrimSpace(current.String()); stmt != "" {
		statements = append(statements, stmt)
	}

	return statements
}

// removeComments removes SQL comment lines from a statement
func removeComments(sql string) string {
	var result strings.Builder
	lines := strings.Split(sql, "\n")

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Skip lines that are ONLY comments (start with --)
		if strings.HasPrefix(trimmed, "--") {
			continue
		}

		if result.Len() > 0 {
			result.WriteString("\n")
		}
		result.WriteString(line)
	}

	return strings.TrimSpace(result.String())
}
