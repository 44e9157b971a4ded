package config

import "testing"

// TestLoad_Defaults はポートと認証情報ファイルのデフォルト値をテストします。
func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("Expected default port 8080, got %q", cfg.Port)
	}
	if cfg.CredentialsFile != localCredentialsFile {
		t.Errorf("Expected local credentials file default, got %q", cfg.CredentialsFile)
	}
	if len(cfg.AllowedOrigins) == 0 {
		t.Error("Expected a default allowed origin")
	}
}

// TestLoad_ProductionCredentialsFile は本番環境でのデフォルトパスをテストします。
func TestLoad_ProductionCredentialsFile(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "")

	cfg := Load()
	if cfg.CredentialsFile != productionCredentialsFile {
		t.Errorf("Expected production credentials file default, got %q", cfg.CredentialsFile)
	}
}

// TestLoad_ExplicitValuesWin は明示的な環境変数がデフォルトより優先されることを
// テストします。
func TestLoad_ExplicitValuesWin(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "/tmp/sa.json")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com, https://staging.example.com")

	cfg := Load()
	if cfg.Port != "9000" {
		t.Errorf("Expected port 9000, got %q", cfg.Port)
	}
	if cfg.CredentialsFile != "/tmp/sa.json" {
		t.Errorf("Expected the explicit credentials file, got %q", cfg.CredentialsFile)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[0] != "https://app.example.com" {
		t.Errorf("Unexpected allowed origins: %v", cfg.AllowedOrigins)
	}
}
