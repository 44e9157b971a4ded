package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/fizza1298/SkillBridge/internal/apperr"
)

// 音声合成の声と出力形式は固定です。
const (
	ttsAPIURL       = "https://texttospeech.googleapis.com/v1/text:synthesize"
	ttsLanguageCode = "en-US"
	ttsVoiceName    = "en-US-Standard-C"
	ttsAudioFormat  = "MP3"
)

// TokenProvider は音声合成API用のベアラートークンを供給します。
// credentials.Resolverがこのインターフェースを実装します。
type TokenProvider interface {
	Token(ctx context.Context) (*oauth2.Token, error)
}

// SpeechService は音声合成のビジネスロジックを定義するインターフェースです。
type SpeechService interface {
	// Synthesize はテキストをMP3音声のバイト列に変換します。
	Synthesize(text string) ([]byte, error)
}

// googleSpeechService はSpeechServiceインターフェースの実装です。
type googleSpeechService struct {
	apiURL     string
	tokens     TokenProvider
	httpClient *http.Client
}

// NewSpeechService はSpeechServiceの新しいインスタンスを作成します。
func NewSpeechService(tokens TokenProvider) SpeechService {
	return &googleSpeechService{
		apiURL:     ttsAPIURL,
		tokens:     tokens,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// ttsRequest は音声合成APIのリクエストボディの構造です。
type ttsRequest struct {
	Input struct {
		Text string `json:"text"`
	} `json:"input"`
	Voice struct {
		LanguageCode string `json:"languageCode"`
		Name         string `json:"name"`
	} `json:"voice"`
	AudioConfig struct {
		AudioEncoding string `json:"audioEncoding"`
	} `json:"audioConfig"`
}

// ttsResponse は音声合成APIのレスポンスの構造です。
type ttsResponse struct {
	AudioContent string `json:"audioContent"`
}

// Synthesize はテキストを音声合成APIに送り、デコード済みのMP3バイト列を返します。
// テキストのパスと違い、レスポンスにaudioContentが無い場合はエラーです
// （音声は「空だが正常」に縮退できないため）。
func (s *googleSpeechService) Synthesize(text string) ([]byte, error) {
	if text == "" {
		return nil, apperr.MissingInput("No text provided")
	}

	token, err := s.tokens.Token(context.Background())
	if err != nil {
		log.Printf("SpeechService Error: 認証情報の解決に失敗しました: %v", err)
		return nil, apperr.Upstream("failed to resolve speech credentials", err)
	}

	var ttsReq ttsRequest
	ttsReq.Input.Text = text
	ttsReq.Voice.LanguageCode = ttsLanguageCode
	ttsReq.Voice.Name = ttsVoiceName
	ttsReq.AudioConfig.AudioEncoding = ttsAudioFormat

	requestBody, err := json.Marshal(ttsReq)
	if err != nil {
		return nil, apperr.Upstream("failed to encode the text-to-speech API request", err)
	}

	req, err := http.NewRequest("POST", s.apiURL, bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, apperr.Upstream("failed to create the text-to-speech API request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	token.SetAuthHeader(req)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Printf("SpeechService Error: HTTPリクエストの送信に失敗しました: %v", err)
		return nil, apperr.Upstream("failed to call the text-to-speech API", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.Upstream("failed to read the text-to-speech API response", err)
	}

	var ttsResp ttsResponse
	if err := json.Unmarshal(body, &ttsResp); err != nil {
		log.Printf("SpeechService Error: JSONレスポンスのパースに失敗しました: %v 生レスポンスボディ: %s", err, string(body))
		return nil, apperr.Upstream(fmt.Sprintf("failed to parse the text-to-speech API response: %s", string(body)), err)
	}

	// 診断のため、生のレスポンスボディをエラーメッセージに含めます。
	if ttsResp.AudioContent == "" {
		log.Printf("SpeechService Error: レスポンスにaudioContentがありません。生レスポンスボディ: %s", string(body))
		return nil, apperr.Upstream(fmt.Sprintf("text-to-speech API response missing audioContent: %s", string(body)), nil)
	}

	audio, err := base64.StdEncoding.DecodeString(ttsResp.AudioContent)
	if err != nil {
		return nil, apperr.Upstream("failed to decode the audio payload", err)
	}

	return audio, nil
}
