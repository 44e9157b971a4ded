package config

import (
	"os"
	"strings"
)

// 本番環境でのサービスアカウントファイルのデフォルト配置場所です。
// ローカル開発ではリポジトリ直下のファイルを探します。
const (
	productionCredentialsFile = "/etc/secrets/service-account.json"
	localCredentialsFile      = "service-account.json"
)

// Config はプロセス起動時に一度だけ読み込まれるアプリケーション設定です。
// ビジネスロジック内で os.Getenv を直接呼ばず、この構造体を各サービスの
// コンストラクタに渡します（テスト時に偽の設定を注入できるようにするため）。
type Config struct {
	Port        string
	AppEnv      string
	DatabaseURL string

	// Gemini (生成テキストAPI) の設定
	GeminiAPIKey string

	// 音声合成APIの認証情報ソース。優先順: JSON > ファイル > base64
	CredentialsJSON   string
	CredentialsFile   string
	CredentialsBase64 string

	// CORSで許可するフロントエンドのオリジン
	AllowedOrigins []string
}

// Load は環境変数から設定を読み込み、デフォルト値を適用します。
// .env ファイルの読み込みは main 側の責務です（godotenv）。
func Load() *Config {
	cfg := &Config{
		Port:              os.Getenv("PORT"),
		AppEnv:            os.Getenv("APP_ENV"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		CredentialsJSON:   os.Getenv("GOOGLE_CREDENTIALS_JSON"),
		CredentialsFile:   os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		CredentialsBase64: os.Getenv("GOOGLE_CREDENTIALS_B64"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	// 認証情報ファイルのパスが未指定の場合、デプロイ環境に応じた
	// デフォルトパスを使用します。
	if cfg.CredentialsFile == "" {
		if cfg.AppEnv == "production" {
			cfg.CredentialsFile = productionCredentialsFile
		} else {
			cfg.CredentialsFile = localCredentialsFile
		}
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	} else {
		// フロントエンドのオリジン
		cfg.AllowedOrigins = []string{"http://localhost:3000"}
	}

	return cfg
}
