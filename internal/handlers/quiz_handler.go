package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/fizza1298/SkillBridge/internal/apperr"
	"github.com/fizza1298/SkillBridge/internal/models"
	"github.com/fizza1298/SkillBridge/internal/services"
)

// QuizHandler はクイズ回答の保存・取得エンドポイントを処理します。
type QuizHandler struct {
	QuizService services.QuizService
}

// NewQuizHandler はQuizHandlerの新しいインスタンスを作成します。
func NewQuizHandler(s services.QuizService) *QuizHandler {
	return &QuizHandler{QuizService: s}
}

// SaveQuizResult はクイズ回答を保存するハンドラーです。
// POST /api/quiz/{quizKey}
func (h *QuizHandler) SaveQuizResult(w http.ResponseWriter, r *http.Request) {
	quizKey := mux.Vars(r)["quizKey"]

	var req models.QuizSaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, apperr.InvalidInput("Invalid request body"))
		return
	}

	userID := resolveUserID(r, req.UserID)
	if userID == "" {
		respondError(w, apperr.MissingInput("No user id provided"))
		return
	}

	if err := h.QuizService.SaveAnswers(userID, quizKey, req.Answers); err != nil {
		log.Printf("QuizHandler Error: ユーザー %s のクイズ %s の保存に失敗しました: %v", userID, quizKey, err)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

// GetQuizResult は保存済みのクイズ回答を返すハンドラーです。
// レコードが無い場合は3要素のnull配列を返します。
// GET /api/quiz/{quizKey}
func (h *QuizHandler) GetQuizResult(w http.ResponseWriter, r *http.Request) {
	quizKey := mux.Vars(r)["quizKey"]

	// GETでもボディのuser_idを受け付けます（ヘッダーが優先）。
	// ボディが無い・JSONでない場合は単に無視します。
	var req models.QuizSaveRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	userID := resolveUserID(r, req.UserID)
	if userID == "" {
		respondError(w, apperr.MissingInput("No user id provided"))
		return
	}

	answers, err := h.QuizService.GetAnswers(userID, quizKey)
	if err != nil {
		log.Printf("QuizHandler Error: ユーザー %s のクイズ %s の取得に失敗しました: %v", userID, quizKey, err)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]json.RawMessage{"answers": answers})
}

// resolveUserID はユーザーIDを解決します。X-User-Idヘッダーがボディの
// user_idより優先されます。どちらも無ければ空文字列を返します。
func resolveUserID(r *http.Request, bodyUserID string) string {
	if id := r.Header.Get("X-User-Id"); id != "" {
		return id
	}
	return bodyUserID
}
