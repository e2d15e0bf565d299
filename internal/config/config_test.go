package config

import "testing"

func TestValidate_ReportsMissingRequired(t *testing.T) {
	c := Config{}
	if err := c.Validate(); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestValidate_MinimalConfigIsEnough(t *testing.T) {
	// Only the app block is mandatory; DB, Redis and Auth are features.
	c := Config{App: AppConfig{Env: "local", Port: 3000}}
	if err := c.Validate(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if c.DB.Enabled() || c.Redis.Enabled() || c.Auth.Enabled() {
		t.Fatalf("no optional feature should be enabled")
	}
}

func TestValidate_RejectsUnknownEnv(t *testing.T) {
	c := Config{App: AppConfig{Env: "qa", Port: 3000}}
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for unknown APP_ENV")
	}
}

func TestValidate_DBRequiresUserAndName(t *testing.T) {
	c := Config{
		App: AppConfig{Env: "local", Port: 3000},
		DB:  DBConfig{Host: "localhost", Port: 5432},
	}
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for DB_HOST without DB_USER and DB_NAME")
	}
}

func TestValidate_ProductionRequiresSSLMode(t *testing.T) {
	c := Config{
		App: AppConfig{Env: "production", Port: 8080},
		DB:  DBConfig{Host: "localhost", Port: 5432, User: "postgres", Password: "x", Name: "campaigns", SSLMode: ""},
	}
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for production without DB_SSLMODE")
	}
}

func TestValidate_LocalDefaultsSSLMode(t *testing.T) {
	c := Config{
		App: AppConfig{Env: "local", Port: 8080},
		DB:  DBConfig{Host: "localhost", Port: 5432, User: "postgres", Password: "x", Name: "campaigns", SSLMode: ""},
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if c.DB.SSLMode != "disable" {
		t.Fatalf("expected sslmode disable default, got %q", c.DB.SSLMode)
	}
}

func TestValidate_RedisRequiresPositiveRateLimit(t *testing.T) {
	c := Config{
		App:   AppConfig{Env: "local", Port: 3000},
		Redis: RedisConfig{Host: "localhost", Port: 6379},
	}
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for RATE_LIMIT_RPM <= 0")
	}

	c.RateLimit.RequestsPerMinute = 60
	if err := c.Validate(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestValidate_ProductionAuthRequiresIssuer(t *testing.T) {
	c := Config{
		App:  AppConfig{Env: "production", Port: 8080},
		Auth: AuthConfig{JWTSecret: "secret"},
	}
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for production auth without JWT_ISSUER")
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "local")
	t.Setenv("APP_PORT", "3000")
	t.Setenv("REDIS_HOST", "localhost")

	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.HTTPAddr() != ":3000" {
		t.Fatalf("addr = %q", c.HTTPAddr())
	}
	if !c.Redis.Enabled() || c.RedisAddr() != "localhost:6379" {
		t.Fatalf("redis = %+v", c.Redis)
	}
	if c.RateLimit.RequestsPerMinute != 120 {
		t.Fatalf("rpm = %d, want default 120", c.RateLimit.RequestsPerMinute)
	}
}
