package handlers

import(
	"net/http"
	"log"
	"fmt"
)

// PublicHandler は死活監視用の公開エンドポイントです。
func PublicHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Request to public endpoint: /api/public")
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintf(w, "SkillBridge API is running. (From /api/public)")
}
