// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/animelar/internal/platform/migration"
)

/*
TestToPgx5DSN rewrites only the postgres URL schemes.
*/
func TestToPgx5DSN(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
		want string
	}{
		{"postgres_scheme", "postgres://u:p@db:5432/animelar", "pgx5://u:p@db:5432/animelar"},
		{"postgresql_scheme", "postgresql://db/animelar?sslmode=disable", "pgx5://db/animelar?sslmode=disable"},
		{"already_pgx5", "pgx5://db/animelar", "pgx5://db/animelar"},
		{"keyword_dsn", "host=db dbname=animelar", "host=db dbname=animelar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, migration.ToPgx5DSN(tt.dsn))
		})
	}
}
