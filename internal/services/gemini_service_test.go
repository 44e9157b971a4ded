package services

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fizza1298/SkillBridge/internal/apperr"
	"github.com/fizza1298/SkillBridge/internal/prompt"
)

// newTestGeminiService はモックサーバーに向けたgeminiReplyServiceを作成します。
func newTestGeminiService(url string) *geminiReplyService {
	return &geminiReplyService{
		apiURL:     url,
		apiKey:     "test-key",
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

// geminiBody はモックレスポンスのボディを組み立てるヘルパーです。
func geminiBody(text string) string {
	return `{"candidates":[{"content":{"parts":[{"text":` + mustQuote(text) + `}]}}]}`
}

func mustQuote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

// TestGetReply_ReturnsNormalizedAnswer はAPIの回答から装飾文字が取り除かれて
// 返ることをテストします。
func TestGetReply_ReturnsNormalizedAnswer(t *testing.T) {
	var requestBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, geminiBody("**Plants** make food from `sunlight`."))
	}))
	defer server.Close()

	s := newTestGeminiService(server.URL)
	answer, err := s.GetReply("photosynthesis", prompt.ModeExplain)
	if err != nil {
		t.Fatalf("GetReply returned an error: %v", err)
	}
	if answer != "Plants make food from sunlight." {
		t.Errorf("Expected normalized answer, got %q", answer)
	}

	// リクエストボディに contents[0].parts[0].text として指示文が入っていることを確認
	var req geminiRequest
	if err := json.Unmarshal(requestBody, &req); err != nil {
		t.Fatalf("Failed to decode the captured request body: %v", err)
	}
	if len(req.Contents) != 1 || len(req.Contents[0].Parts) != 1 {
		t.Fatalf("Unexpected request structure: %s", string(requestBody))
	}
	if !strings.Contains(req.Contents[0].Parts[0].Text, "photosynthesis") {
		t.Errorf("Prompt %q does not contain the question", req.Contents[0].Parts[0].Text)
	}
}

// TestGetReply_MissingCandidatesReturnsEmptyAnswer はcandidatesが無い
// レスポンスがエラーではなく空の回答になることをテストします。
func TestGetReply_MissingCandidatesReturnsEmptyAnswer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"promptFeedback":{"blockReason":"SAFETY"}}`)
	}))
	defer server.Close()

	s := newTestGeminiService(server.URL)
	answer, err := s.GetReply("a question", prompt.ModeFeedback)
	if err != nil {
		t.Fatalf("Expected success with an empty answer, got error: %v", err)
	}
	if answer != "" {
		t.Errorf("Expected empty answer, got %q", answer)
	}
}

// TestGetReply_EmptyQuestion は空の質問がMissingInputになり、外部呼び出しが
// 一切行われないことをテストします。
func TestGetReply_EmptyQuestion(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	s := newTestGeminiService(server.URL)
	_, err := s.GetReply("", prompt.ModeExplain)

	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Kind != apperr.KindMissingInput {
		t.Fatalf("Expected a MissingInput error, got %v", err)
	}
	if calls != 0 {
		t.Errorf("Expected no API call for an empty question, got %d calls", calls)
	}
}

// TestGetReply_NonJSONBody はJSONでないレスポンスボディがUpstreamエラーに
// なることをテストします。
func TestGetReply_NonJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "<html>bad gateway</html>")
	}))
	defer server.Close()

	s := newTestGeminiService(server.URL)
	_, err := s.GetReply("a question", prompt.ModeExplain)

	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Kind != apperr.KindUpstream {
		t.Fatalf("Expected an Upstream error, got %v", err)
	}
}

// TestGetReply_NetworkFailure は接続できないエンドポイントがUpstreamエラーに
// なることをテストします。
func TestGetReply_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // すぐ閉じて接続エラーを起こす

	s := newTestGeminiService(server.URL)
	_, err := s.GetReply("a question", prompt.ModeExplain)

	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Kind != apperr.KindUpstream {
		t.Fatalf("Expected an Upstream error, got %v", err)
	}
}
