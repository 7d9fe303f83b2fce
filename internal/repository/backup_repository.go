package repository

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"strings"
)

// backupTables lists the user-data tables covered by export/import, with
// their canonical column sets. users and schema_migrations stay out of
// backups: credentials and migration bookkeeping belong to the device,
// not the data snapshot.
var backupTables = []struct {
	name    string
	columns []string
}{
	{"plans", []string{
		"id", "plan_name", "start_date", "end_date", "selected_book_codes",
		"goal_status", "total_read_count", "current_read_count", "goal_percent",
		"rest_day", "read_count_per_day", "created_at",
	}},
	{"bible_grass", []string{"date", "entries"}},
	{"favorite_verses", []string{"id", "book_code", "chapter", "verse", "verse_text", "created_at"}},
	{"meditation_memos", []string{"id", "book_code", "chapter", "verse", "memo", "created_at", "updated_at"}},
	{"prayer_journal", []string{"id", "title", "content", "answered", "created_at", "updated_at"}},
	{"app_settings", []string{"id", "language", "theme", "updated_at"}},
}

type BackupRepository struct {
	db *sql.DB
}

func NewBackupRepository(db *sql.DB) *BackupRepository {
	return &BackupRepository{db: db}
}

// ExportTables reads every backup table into generic row maps.
func (r *BackupRepository) ExportTables(ctx context.Context) (map[string][]map[string]interface{}, error) {
	tables := make(map[string][]map[string]interface{}, len(backupTables))
	for _, table := range backupTables {
		rows, err := r.exportTable(ctx, table.name, table.columns)
		if err != nil {
			return nil, err
		}
		tables[table.name] = rows
	}
	return tables, nil
}

func (r *BackupRepository) exportTable(ctx context.Context, name string, columns []string) ([]map[string]interface{}, error) {
	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(columns, ", "), name)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("export %s: %w", name, err)
	}
	defer rows.Close()

	out := make([]map[string]interface{}, 0)
	for rows.Next() {
		values := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("scan %s row: %w", name, err)
		}

		row := make(map[string]interface{}, len(columns))
		for i, column := range columns {
			if raw, ok := values[i].([]byte); ok {
				row[column] = string(raw)
				continue
			}
			row[column] = values[i]
		}
		out = append(out, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s rows: %w", name, err)
	}

	return out, nil
}

// ImportTables wipes and reloads every known table inside a single
// transaction. Tables and columns this schema does not know are skipped
// silently, so payloads from newer app versions import cleanly.
func (r *BackupRepository) ImportTables(ctx context.Context, payload map[string][]map[string]interface{}) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import tx: %w", err)
	}
	defer tx.Rollback()

	for _, table := range backupTables {
		rows, ok := payload[table.name]
		if !ok {
			continue
		}

		if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", table.name)); err != nil {
			return fmt.Errorf("wipe %s: %w", table.name, err)
		}

		for _, row := range rows {
			columns := make([]string, 0, len(table.columns))
			values := make([]interface{}, 0, len(table.columns))
			for _, column := range table.columns {
				value, present := row[column]
				if !present {
					continue
				}
				columns = append(columns, column)
				values = append(values, normalizeImportValue(value))
			}
			if len(columns) == 0 {
				continue
			}

			placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
			query := fmt.Sprintf(
				"INSERT INTO %s (%s) VALUES (%s)",
				table.name,
				strings.Join(columns, ", "),
				placeholders,
			)
			if _, err := tx.ExecContext(ctx, query, values...); err != nil {
				return fmt.Errorf("insert %s row: %w", table.name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import tx: %w", err)
	}
	return nil
}

// normalizeImportValue undoes JSON's number widening: integral floats
// go back to int64 so integer columns round-trip exactly.
func normalizeImportValue(value interface{}) interface{} {
	if f, ok := value.(float64); ok {
		if f == math.Trunc(f) && !math.IsInf(f, 0) {
			return int64(f)
		}
	}
	return value
}
