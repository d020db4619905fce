package source

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/lib/pq" // postgres driver

	"github.com/developerfelipemoraes/vehiclecatalog/internal/models"
)

// PostgresLoader reads raw records stored as JSON documents in a table.
// Records that fail to decode are skipped rather than failing the load;
// normalization downstream tolerates partial shapes anyway.
type PostgresLoader struct {
	db    *sql.DB
	table string
}

// NewPostgresLoader opens a connection and verifies it
func NewPostgresLoader(connStr, table string) (*PostgresLoader, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if table == "" {
		table = "vehicle_records"
	}
	return &PostgresLoader{db: db, table: table}, nil
}

func (l *PostgresLoader) Name() string {
	return "postgres:" + l.table
}

func (l *PostgresLoader) Load(ctx context.Context) ([]models.RawRecord, error) {
	rows, err := l.db.QueryContext(ctx, fmt.Sprintf(`SELECT payload FROM %s ORDER BY id`, l.table))
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var records []models.RawRecord
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		var record models.RawRecord
		if err := json.Unmarshal(payload, &record); err != nil {
			continue
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}

// Close releases the database connection
func (l *PostgresLoader) Close() error {
	return l.db.Close()
}
