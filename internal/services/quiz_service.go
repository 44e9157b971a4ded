package services

import (
	"encoding/json"

	"github.com/fizza1298/SkillBridge/internal/apperr"
	"github.com/fizza1298/SkillBridge/internal/database"
)

// defaultAnswerCount は未保存クイズに返すプレースホルダーの長さです。
// 全クイズが3問であるという暫定的な仮定で、実際のクイズの設問数と
// 一致する保証はありません。呼び出し側はこの長さに依存しないでください。
const defaultAnswerCount = 3

// QuizService はクイズ回答の保存・取得のビジネスロジックを定義する
// インターフェースです。
type QuizService interface {
	// SaveAnswers は回答を検証して (user_id, quiz_key) キーでupsertします。
	SaveAnswers(userID, quizKey string, answers json.RawMessage) error

	// GetAnswers は保存済みの回答を返します。レコードが無い場合は
	// 3要素のnull配列を返します。
	GetAnswers(userID, quizKey string) (json.RawMessage, error)
}

// quizServiceImpl はQuizServiceインターフェースの実装です。
type quizServiceImpl struct {
	quizRepo database.QuizRepository
}

// NewQuizService はQuizServiceの新しいインスタンスを作成します。
func NewQuizService(quizRepo database.QuizRepository) QuizService {
	return &quizServiceImpl{quizRepo: quizRepo}
}

// SaveAnswers は回答がJSON配列であることを検証してから保存します。
// 配列でない値（オブジェクト・スカラー・null・欠落）はInvalidInputです。
func (s *quizServiceImpl) SaveAnswers(userID, quizKey string, answers json.RawMessage) error {
	var sequence []json.RawMessage
	if err := json.Unmarshal(answers, &sequence); err != nil {
		return apperr.InvalidInput("answers must be a list")
	}
	// JSONのnullはエラーなしでnilスライスになるため、別途弾きます。
	if sequence == nil {
		return apperr.InvalidInput("answers must be a list")
	}

	return s.quizRepo.UpsertAnswers(userID, quizKey, answers)
}

// GetAnswers は保存済みの回答をそのまま返します。
func (s *quizServiceImpl) GetAnswers(userID, quizKey string) (json.RawMessage, error) {
	stored, err := s.quizRepo.GetAnswers(userID, quizKey)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return defaultAnswers(), nil
	}
	return stored, nil
}

// defaultAnswers は未回答クイズ用のプレースホルダー配列を作成します。
func defaultAnswers() json.RawMessage {
	// nilのjson.RawMessageはnullとしてエンコードされます。
	placeholder := make([]json.RawMessage, defaultAnswerCount)
	b, err := json.Marshal(placeholder)
	if err != nil {
		// 固定長のnull配列のエンコードは失敗しない
		panic(err)
	}
	return b
}
