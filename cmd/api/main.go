package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/fizza1298/SkillBridge/internal/api/middleware"
	"github.com/fizza1298/SkillBridge/internal/config"
	"github.com/fizza1298/SkillBridge/internal/credentials"
	"github.com/fizza1298/SkillBridge/internal/database"
	"github.com/fizza1298/SkillBridge/internal/handlers"
	"github.com/fizza1298/SkillBridge/internal/services"
)

func main() {
	if os.Getenv("APP_ENV") != "production" {
		err := godotenv.Load()
		if err != nil {
			log.Printf("warning: Error loading .env file (this is fine in production): %v", err)
		}
	}

	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("エラー: DATABASE_URL 環境変数が設定されていません。")
	}

	dbService, err := database.NewDatabaseService(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("データベースの初期化に失敗しました: %v", err)
	}
	defer dbService.DB.Close()

	quizRepo := database.NewQuizRepository(dbService.DB)
	quizService := services.NewQuizService(quizRepo)
	replyService := services.NewGeminiReplyService(cfg)
	resolver := credentials.NewResolver(cfg)
	speechService := services.NewSpeechService(resolver)

	askHandler := handlers.NewAskHandler(replyService)
	quizHandler := handlers.NewQuizHandler(quizService)
	speakHandler := handlers.NewSpeakHandler(speechService)

	r := mux.NewRouter()
	// 認証不要な公開エンドポイント
	r.HandleFunc("/api/public", handlers.PublicHandler).Methods("GET")

	// 生成テキスト（explain/feedbackの2モード）
	r.HandleFunc("/api/explain", askHandler.Explain).Methods("POST")
	r.HandleFunc("/api/feedback", askHandler.Feedback).Methods("POST")

	// クイズ回答の保存・取得（X-User-Idヘッダーまたはボディのuser_id）
	r.HandleFunc("/api/quiz/{quizKey}", quizHandler.SaveQuizResult).Methods("POST")
	r.HandleFunc("/api/quiz/{quizKey}", quizHandler.GetQuizResult).Methods("GET")

	// 音声合成（MP3バイト列を返す）
	r.HandleFunc("/api/speak", speakHandler.Speak).Methods("POST")

	handler := middleware.CORSHandler(cfg.AllowedOrigins)(r)

	log.Printf("Server starting on :%s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handler))
}
