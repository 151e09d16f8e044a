package database

import (
	"context"
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - every statement uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// MySQL executes one statement per Exec, so the schema is kept as a slice
// rather than a single script. The utf8mb4_unicode_ci collation on
// guests.name makes the UNIQUE index case-insensitive.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS layouts (
		id            BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		name          VARCHAR(255) NOT NULL,
		elements_json MEDIUMTEXT NOT NULL,
		created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_layouts_name (name)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS seat_assignments (
		id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		layout_id  BIGINT UNSIGNED NOT NULL,
		seat_id    VARCHAR(255) NOT NULL,
		guest_name VARCHAR(255) NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_assignments_layout_seat (layout_id, seat_id),
		KEY idx_assignments_layout (layout_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS guests (
		id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		token      CHAR(36) NOT NULL,
		name       VARCHAR(255) NOT NULL,
		menu       VARCHAR(255) NOT NULL DEFAULT '',
		appetiser  VARCHAR(255) NOT NULL DEFAULT '',
		allergies  TEXT,
		steak_cook VARCHAR(64) NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_guests_token (token),
		UNIQUE KEY uq_guests_name (name)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
}
