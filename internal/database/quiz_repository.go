package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// QuizRepository はクイズ回答のデータベース操作を定義するインターフェースです。
type QuizRepository interface {
	// UpsertAnswers は (user_id, quiz_key) をキーに回答を保存します。
	// レコードが無ければ作成し、あればanswersを全置換します（last-write-wins）。
	UpsertAnswers(userID, quizKey string, answers []byte) error

	// GetAnswers は保存済みの回答を返します。レコードが無い場合は (nil, nil) を返します。
	GetAnswers(userID, quizKey string) ([]byte, error)
}

// quizRepositoryImpl はQuizRepositoryインターフェースの実装です。
type quizRepositoryImpl struct {
	db *sql.DB
}

// NewQuizRepository はQuizRepositoryの新しいインスタンスを作成します。
func NewQuizRepository(db *sql.DB) QuizRepository {
	return &quizRepositoryImpl{db: db}
}

// UpsertAnswers は回答レコードを作成または全置換します。
// (user_id, quiz_key) のユニーク制約に基づくupsertで、updated_atは書き込みのたびに更新されます。
func (r *quizRepositoryImpl) UpsertAnswers(userID, quizKey string, answers []byte) error {
	query := `
		INSERT INTO quiz_results (id, user_id, quiz_key, answers, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, quiz_key)
		DO UPDATE SET answers = EXCLUDED.answers, updated_at = EXCLUDED.updated_at
	`
	_, err := r.db.Exec(query, uuid.NewString(), userID, quizKey, answers, time.Now())
	if err != nil {
		return fmt.Errorf("クイズ回答の保存に失敗しました: %w", err)
	}
	return nil
}

// GetAnswers は (user_id, quiz_key) に対応する回答を取得します。
func (r *quizRepositoryImpl) GetAnswers(userID, quizKey string) ([]byte, error) {
	var answers []byte
	query := `SELECT answers FROM quiz_results WHERE user_id = $1 AND quiz_key = $2`
	err := r.db.QueryRow(query, userID, quizKey).Scan(&answers)
	if err == sql.ErrNoRows {
		return nil, nil // レコードが存在しない場合はエラーにしない
	}
	if err != nil {
		return nil, fmt.Errorf("クイズ回答の取得に失敗しました: %w", err)
	}
	return answers, nil
}
