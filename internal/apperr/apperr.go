package apperr

import (
	"errors"
	"net/http"
)

// Kind はAPIエラーの分類です。ハンドラ層でHTTPステータスコードに変換されます。
type Kind int

const (
	// KindMissingInput は必須フィールドが空の場合のエラーです (400)。
	KindMissingInput Kind = iota
	// KindInvalidInput はフィールドの形が不正な場合のエラーです (400)。
	KindInvalidInput
	// KindUpstream は外部API・認証情報解決・ネットワークの失敗です (500)。
	KindUpstream
)

// Error はサービス層が返す構造化エラーです。
// 例外を投げる代わりに明示的に返し、境界（ハンドラ）でのみステータスに変換します。
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// MissingInput は必須入力が空の場合のエラーを作成します。
func MissingInput(message string) *Error {
	return &Error{Kind: KindMissingInput, Message: message}
}

// InvalidInput は入力の形が不正な場合のエラーを作成します。
func InvalidInput(message string) *Error {
	return &Error{Kind: KindInvalidInput, Message: message}
}

// Upstream は外部呼び出しの失敗を包んだエラーを作成します。
func Upstream(message string, err error) *Error {
	return &Error{Kind: KindUpstream, Message: message, Err: err}
}

// StatusCode はエラーに対応するHTTPステータスコードを返します。
// 分類されていないエラーは500として扱います。
func StatusCode(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case KindMissingInput, KindInvalidInput:
			return http.StatusBadRequest
		case KindUpstream:
			return http.StatusInternalServerError
		}
	}
	return http.StatusInternalServerError
}

// Message はクライアントに返すエラーメッセージを返します。
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Error()
	}
	return err.Error()
}
