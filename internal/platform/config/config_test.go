// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/animelar/internal/platform/config"
)

/*
TestParseFrom_Defaults verifies the zero-configuration behaviour.
*/
func TestParseFrom_Defaults(t *testing.T) {
	cfg, err := config.ParseFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.ServerPort)
	assert.Equal(t, config.DriverFile, cfg.StoreDriver)
	assert.Equal(t, "./data/db.json", cfg.DataFile)
	assert.Equal(t, "6526385624", cfg.SuperAdminID)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, int32(4), cfg.DatabaseMaxConns)
	assert.Equal(t, 4, cfg.RedisPoolSize)
	assert.True(t, cfg.IsDevelopment())
}

/*
TestParseFrom_PortOverride reads the listening port from the environment.
*/
func TestParseFrom_PortOverride(t *testing.T) {
	cfg, err := config.ParseFrom(map[string]string{
		"PORT":         "8081",
		"STORE_DRIVER": "memory",
	})
	require.NoError(t, err)
	assert.Equal(t, "8081", cfg.ServerPort)
	assert.Equal(t, config.DriverMemory, cfg.StoreDriver)
}

/*
TestParseFrom_PostgresRequiresURL fails fast on incomplete driver settings.
*/
func TestParseFrom_PostgresRequiresURL(t *testing.T) {
	_, err := config.ParseFrom(map[string]string{"STORE_DRIVER": "postgres"})
	assert.Error(t, err)
}

/*
TestValidate_DriverRequirements checks the per-driver required settings.
*/
func TestValidate_DriverRequirements(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		wantErr bool
	}{
		{"memory", config.Config{StoreDriver: "memory"}, false},
		{"file_ok", config.Config{StoreDriver: "file", DataFile: "db.json"}, false},
		{"file_missing_path", config.Config{StoreDriver: "file"}, true},
		{"postgres_missing_url", config.Config{StoreDriver: "postgres"}, true},
		{"postgres_ok", config.Config{StoreDriver: "postgres", DatabaseURL: "postgres://localhost/animelar", DatabaseMaxConns: 4}, false},
		{"postgres_empty_pool", config.Config{StoreDriver: "postgres", DatabaseURL: "postgres://localhost/animelar"}, true},
		{"redis_missing_url", config.Config{StoreDriver: "redis"}, true},
		{"redis_ok", config.Config{StoreDriver: "redis", RedisURL: "redis://localhost:6379/0", RedisPoolSize: 4}, false},
		{"redis_empty_pool", config.Config{StoreDriver: "redis", RedisURL: "redis://localhost:6379/0"}, true},
		{"mongo_ok", config.Config{StoreDriver: " Mongo ", MongoURL: "mongodb://localhost"}, false},
		{"unknown", config.Config{StoreDriver: "sqlite"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
