package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/fizza1298/SkillBridge/internal/apperr"
	"github.com/fizza1298/SkillBridge/internal/models"
	"github.com/fizza1298/SkillBridge/internal/services"
)

// SpeakHandler は音声合成エンドポイントを処理します。
type SpeakHandler struct {
	SpeechService services.SpeechService
}

// NewSpeakHandler はSpeakHandlerの新しいインスタンスを作成します。
func NewSpeakHandler(s services.SpeechService) *SpeakHandler {
	return &SpeakHandler{SpeechService: s}
}

// Speak はテキストをMP3音声に変換して返すハンドラーです。
// 成功時は生の音声バイト列（audio/mpeg）、失敗時はJSONエラーを返します。
// POST /api/speak
func (h *SpeakHandler) Speak(w http.ResponseWriter, r *http.Request) {
	var req models.SpeakRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, apperr.InvalidInput("Invalid request body"))
		return
	}

	audio, err := h.SpeechService.Synthesize(req.Text)
	if err != nil {
		log.Printf("SpeakHandler Error: 音声合成に失敗しました: %v", err)
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(audio); err != nil {
		log.Printf("SpeakHandler Error: 音声データの書き込みに失敗しました: %v", err)
	}
}
