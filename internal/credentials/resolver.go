package credentials

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/fizza1298/SkillBridge/internal/config"
)

// 音声合成APIの呼び出しに必要なスコープです。
const ttsScope = "https://www.googleapis.com/auth/cloud-platform"

// ErrNoCredentialSource はどの認証情報ソースも設定されていない場合のエラーです。
var ErrNoCredentialSource = errors.New("no credential source configured")

// Resolver はサービスアカウントの認証情報を複数のソースから解決し、
// 音声合成API用のベアラートークンを発行します。
// トークンソースはプロセス全体で一度だけ構築され、期限切れのトークンは
// oauth2側が発行者の有効期限フィールドに基づいて自動的に更新します。
type Resolver struct {
	cfg *config.Config

	mu sync.Mutex
	ts oauth2.TokenSource
}

// NewResolver はResolverの新しいインスタンスを作成します。
// 認証情報の解決は最初のToken呼び出しまで遅延されます。
func NewResolver(cfg *config.Config) *Resolver {
	return &Resolver{cfg: cfg}
}

// Token は有効なベアラートークンを返します。必要であれば認証情報を解決し、
// アイデンティティプロバイダのトークンエンドポイントと交換します。
func (r *Resolver) Token(ctx context.Context) (*oauth2.Token, error) {
	ts, err := r.tokenSource(ctx)
	if err != nil {
		return nil, err
	}
	return ts.Token()
}

// tokenSource は解決済みのトークンソースを返します（初回のみ構築）。
func (r *Resolver) tokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ts != nil {
		return r.ts, nil
	}

	payload, source, err := r.credentialJSON()
	if err != nil {
		return nil, err
	}

	creds, err := google.CredentialsFromJSON(ctx, payload, ttsScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account credentials from %s source: %w", source, err)
	}

	log.Printf("CredentialResolver Info: 認証情報ソース '%s' を使用します。", source)
	r.ts = creds.TokenSource
	return r.ts, nil
}

// credentialJSON は設定された認証情報ソースを固定の優先順で試し、
// 最初に成功したもののJSONペイロードとソース名を返します。
// 優先順: 生JSON > ファイルパス（存在する場合のみ） > base64エンコードJSON。
func (r *Resolver) credentialJSON() ([]byte, string, error) {
	if r.cfg.CredentialsJSON != "" {
		return []byte(r.cfg.CredentialsJSON), "json", nil
	}

	if r.cfg.CredentialsFile != "" {
		if _, err := os.Stat(r.cfg.CredentialsFile); err == nil {
			data, err := os.ReadFile(r.cfg.CredentialsFile)
			if err != nil {
				return nil, "", fmt.Errorf("failed to read credential file %s: %w", r.cfg.CredentialsFile, err)
			}
			return data, "file", nil
		}
	}

	if r.cfg.CredentialsBase64 != "" {
		data, err := base64.StdEncoding.DecodeString(r.cfg.CredentialsBase64)
		if err != nil {
			return nil, "", fmt.Errorf("failed to decode base64 credentials: %w", err)
		}
		return data, "base64", nil
	}

	return nil, "", ErrNoCredentialSource
}
