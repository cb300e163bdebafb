package model

import (
	"fmt"
	"time"
)

// dateStringLayout はAPIレスポンスで使用する日付フォーマット。
// 時刻成分を含まない人間可読な形式（例: "Thu Jan 05 2023"）。
const dateStringLayout = "Mon Jan 02 2006"

// dateInputLayouts はリクエストで受け付ける日付フォーマット（優先順）。
var dateInputLayouts = []string{
	"2006-01-02",
	time.RFC3339,
}

// FormatDate は日付をAPIレスポンス用の文字列に変換する。
// タイムゾーンによる日付のずれを避けるためUTCで整形する。
func FormatDate(t time.Time) string {
	return t.UTC().Format(dateStringLayout)
}

// ParseDate はリクエストの日付文字列を解析する。
// "2006-01-02" またはRFC3339形式を受け付け、いずれにも一致しない場合はエラーを返す。
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateInputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported date format: %q", s)
}
