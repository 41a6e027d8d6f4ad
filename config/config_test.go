package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("MONGO_URI", "")
	t.Setenv("DB_NAME", "")

	cfg := Load()
	if cfg.Port != "5000" {
		t.Errorf("Port = %q, want 5000", cfg.Port)
	}
	if cfg.MongoURI != "mongodb://localhost:27017" {
		t.Errorf("MongoURI = %q", cfg.MongoURI)
	}
	if cfg.DBName != "food_ordering_app" {
		t.Errorf("DBName = %q", cfg.DBName)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("DB_NAME", "food_test")

	cfg := Load()
	if cfg.Port != "9090" || cfg.MongoURI != "mongodb://db:27017" || cfg.DBName != "food_test" {
		t.Errorf("Load = %+v", cfg)
	}
}
