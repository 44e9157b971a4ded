package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/fizza1298/SkillBridge/internal/apperr"
)

// respondJSON はJSONレスポンスを書き込みます。
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("レスポンスのJSONエンコードに失敗しました: %v", err)
	}
}

// respondError はサービス層のエラーを {"error": message} のJSONに変換します。
// ステータスコードはエラーの分類から決まります（境界でのみ変換する方針）。
func respondError(w http.ResponseWriter, err error) {
	respondJSON(w, apperr.StatusCode(err), map[string]string{"error": apperr.Message(err)})
}
