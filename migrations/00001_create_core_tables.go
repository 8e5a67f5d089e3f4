package migrations

import (
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigration(Up, Down)
}

func Up(tx *sql.Tx) error {
	createFileDetailsTable := `
	CREATE TABLE file_details (
		id UUID PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		file_name VARCHAR(255) NOT NULL,
		file_path VARCHAR(500) NOT NULL,
		file_type VARCHAR(20) NOT NULL,
		mime_type VARCHAR(100),
		file_size_in_bytes BIGINT,
		duration_in_seconds DOUBLE PRECISION,
		no_of_mcqs INTEGER,
		width INTEGER,
		height INTEGER,
		is_thumbnail BOOLEAN DEFAULT FALSE,
		thumbnail_id UUID,
		tags JSONB,
		metadata JSONB,
		uploaded_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);
	`
	if _, err := tx.Exec(createFileDetailsTable); err != nil {
		return fmt.Errorf("could not create file_details table: %w", err)
	}

	createMCQTable := `
	CREATE TABLE mcqs (
		id UUID PRIMARY KEY,
		video_id UUID NOT NULL,
		segment_index INTEGER NOT NULL,
		"start" DOUBLE PRECISION NOT NULL,
		"end" DOUBLE PRECISION NOT NULL,
		question TEXT NOT NULL,
		options JSONB NOT NULL,
		answer TEXT NOT NULL
	);
	`
	if _, err := tx.Exec(createMCQTable); err != nil {
		return fmt.Errorf("could not create mcqs table: %w", err)
	}

	if _, err := tx.Exec(`CREATE INDEX idx_mcqs_video_id ON mcqs (video_id);`); err != nil {
		return fmt.Errorf("could not create mcqs video_id index: %w", err)
	}

	return nil
}

func Down(tx *sql.Tx) error {
	dropTables := []string{"mcqs", "file_details"}
	for _, table := range dropTables {
		if _, err := tx.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s;", table)); err != nil {
			return fmt.Errorf("could not drop table %s: %w", table, err)
		}
	}
	return nil
}
