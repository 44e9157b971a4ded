package services

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/fizza1298/SkillBridge/internal/apperr"
	"github.com/fizza1298/SkillBridge/internal/config"
	"github.com/fizza1298/SkillBridge/internal/prompt"
)

// 使用する生成テキストモデルは固定です。
const (
	geminiAPIBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"
	geminiModel      = "gemini-2.0-flash"
)

// ReplyService は生成テキストAPIへの問い合わせのビジネスロジックを定義する
// インターフェースです。
type ReplyService interface {
	// GetReply は質問をモードに応じた指示文に変換してAPIに送り、
	// 装飾文字を取り除いた回答を返します。
	GetReply(question string, mode prompt.Mode) (string, error)
}

// geminiReplyService はReplyServiceインターフェースの実装です。
type geminiReplyService struct {
	apiURL     string
	apiKey     string
	httpClient *http.Client
}

// NewGeminiReplyService はReplyServiceの新しいインスタンスを作成します。
func NewGeminiReplyService(cfg *config.Config) ReplyService {
	return &geminiReplyService{
		apiURL:     geminiAPIBaseURL + "/" + geminiModel + ":generateContent",
		apiKey:     cfg.GeminiAPIKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// geminiPart / geminiContent / geminiRequest はAPIのリクエストボディの構造です。
type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

// geminiResponse はAPIレスポンスの構造です。
// candidatesやcontentが欠けていてもパニックしないよう、contentはポインタにします。
type geminiResponse struct {
	Candidates []struct {
		Content *struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GetReply は質問を生成テキストAPIに送り、正規化した回答を返します。
// レスポンスに期待した構造が無い場合はエラーにせず空の回答を返します
// （不正なレスポンス形はこのパスでは仕様としてエラー扱いしません）。
func (s *geminiReplyService) GetReply(question string, mode prompt.Mode) (string, error) {
	if question == "" {
		return "", apperr.MissingInput("No question provided")
	}

	instruction := prompt.Build(question, mode)
	requestBody, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: instruction}}}},
	})
	if err != nil {
		return "", apperr.Upstream("failed to encode the generative language API request", err)
	}

	req, err := http.NewRequest("POST", s.apiURL+"?key="+s.apiKey, bytes.NewBuffer(requestBody))
	if err != nil {
		return "", apperr.Upstream("failed to create the generative language API request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Printf("GeminiService Error: HTTPリクエストの送信に失敗しました: %v", err)
		return "", apperr.Upstream("failed to call the generative language API", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("GeminiService Error: レスポンスボディの読み込みに失敗しました: %v", err)
		return "", apperr.Upstream("failed to read the generative language API response", err)
	}

	var geminiResp geminiResponse
	if err := json.Unmarshal(body, &geminiResp); err != nil {
		log.Printf("GeminiService Error: JSONレスポンスのパースに失敗しました: %v 生レスポンスボディ: %s", err, string(body))
		return "", apperr.Upstream("failed to parse the generative language API response", err)
	}

	// candidatesが空でもエラーにせず、空文字列の回答として扱います。
	answer := ""
	if len(geminiResp.Candidates) > 0 {
		content := geminiResp.Candidates[0].Content
		if content != nil && len(content.Parts) > 0 {
			answer = content.Parts[0].Text
		}
	}
	if answer == "" {
		log.Printf("GeminiService Info: レスポンスに候補テキストがありません。空の回答を返します。ステータスコード: %d", resp.StatusCode)
	}

	return prompt.StripMarkdown(answer), nil
}
