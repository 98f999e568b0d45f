package respond

import (
	"regexp"
)

var (
	// スプレッドシートIDのマスク（URLに含まれるドキュメントID）
	sheetIDPattern = regexp.MustCompile(`/spreadsheets/d/[a-zA-Z0-9-_]+`)

	// URL内の認証情報のマスク
	urlUserinfoPattern = regexp.MustCompile(`://([^:/@]+):([^@/]+)@`)

	// key= 形式のクエリパラメータのマスク
	queryKeyPattern = regexp.MustCompile(`([?&](?:key|token|apikey)=)[^&\s]+`)
)

// SanitizeError は機密情報をマスクしたエラーメッセージを返す
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = sheetIDPattern.ReplaceAllString(msg, "/spreadsheets/d/****")
	msg = urlUserinfoPattern.ReplaceAllString(msg, "://$1:****@")
	msg = queryKeyPattern.ReplaceAllString(msg, "${1}****")
	return msg
}
