package models

import (
	"encoding/json"
	"time"
)

// QuizResult はquiz_resultsテーブルのレコードに対応する構造体です。
// (user_id, quiz_key) の組につきレコードは最大1件で、保存のたびに
// answersは全置換されます。
type QuizResult struct {
	ID        string          `json:"id"` // UUID
	UserID    string          `json:"user_id"`
	QuizKey   string          `json:"quiz_key"`
	Answers   json.RawMessage `json:"answers"` // 設問ごとの回答のJSON配列（未回答はnull）
	UpdatedAt time.Time       `json:"updated_at"`
}

// QuizSaveRequest はクイズ回答保存リクエスト用の構造体です。
// user_idはX-User-Idヘッダーでも指定でき、ヘッダーが優先されます。
type QuizSaveRequest struct {
	UserID  string          `json:"user_id"`
	Answers json.RawMessage `json:"answers"`
}

// AskRequest はexplain/feedbackエンドポイントのリクエスト用の構造体です。
type AskRequest struct {
	Question string `json:"question"`
}

// SpeakRequest は音声合成エンドポイントのリクエスト用の構造体です。
type SpeakRequest struct {
	Text string `json:"text"`
}
