package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/fizza1298/SkillBridge/internal/apperr"
	"github.com/fizza1298/SkillBridge/internal/models"
	"github.com/fizza1298/SkillBridge/internal/prompt"
	"github.com/fizza1298/SkillBridge/internal/services"
)

// AskHandler はexplain/feedbackエンドポイントを処理します。
type AskHandler struct {
	ReplyService services.ReplyService
}

// NewAskHandler はAskHandlerの新しいインスタンスを作成します。
func NewAskHandler(s services.ReplyService) *AskHandler {
	return &AskHandler{ReplyService: s}
}

// Explain はユーザーのテキストを易しく説明するハンドラーです。
// POST /api/explain
func (h *AskHandler) Explain(w http.ResponseWriter, r *http.Request) {
	h.ask(w, r, prompt.ModeExplain)
}

// Feedback はユーザーの回答にフィードバックを返すハンドラーです。
// POST /api/feedback
func (h *AskHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	h.ask(w, r, prompt.ModeFeedback)
}

func (h *AskHandler) ask(w http.ResponseWriter, r *http.Request, mode prompt.Mode) {
	var req models.AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, apperr.InvalidInput("Invalid request body"))
		return
	}

	answer, err := h.ReplyService.GetReply(req.Question, mode)
	if err != nil {
		log.Printf("AskHandler Error: 回答の取得に失敗しました (mode=%s): %v", mode, err)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"answer": answer})
}
