package prompt

import (
	"fmt"
	"regexp"
)

// Mode は生成テキストAPIに送る指示テンプレートの種類です。
type Mode string

const (
	// ModeExplain はユーザーのテキストを易しく説明するモードです。
	ModeExplain Mode = "explain"
	// ModeFeedback はユーザーの回答にフィードバックを返すモードです。
	ModeFeedback Mode = "feedback"
)

// ParseMode は文字列をModeに変換します。未知の値や空文字列はexplainになります。
func ParseMode(s string) Mode {
	if s == string(ModeFeedback) {
		return ModeFeedback
	}
	return ModeExplain
}

// Build はユーザーのテキストとモードから、生成テキストAPIへそのまま送る
// 指示文を組み立てます。決定的な純粋関数で、副作用はありません。
// テキストはそのまま引用符付きで埋め込みます（プロンプトインジェクション対策は
// このシステムのスコープ外です）。
func Build(text string, mode Mode) string {
	if mode == ModeFeedback {
		return fmt.Sprintf(
			"Give feedback on the following answer in 1-2 short and simple sentences. "+
				"Do not mention the person's age. "+
				"Start by acknowledging something positive, then suggest one improvement. "+
				"The answer is: \"%s\"",
			text,
		)
	}
	return fmt.Sprintf(
		"Explain \"%s\" in 1-2 short and simple sentences. "+
			"Use simple words, and do not mention the person or their age.",
		text,
	)
}

// markdownChars はAPIの返答から取り除く装飾文字です。ハイフンは文字クラスの
// 末尾に置いて範囲指定にならないようにしています。
var markdownChars = regexp.MustCompile("[*_`>#-]")

// StripMarkdown は返答に含まれるマークダウン風の装飾文字を全て取り除きます。
// 行頭だけでなく出現箇所すべてが対象で、本文中の正当なハイフンや
// アンダースコアも消える荒いフィルタです。冪等です。
func StripMarkdown(s string) string {
	return markdownChars.ReplaceAllString(s, "")
}
