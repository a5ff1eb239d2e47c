package main

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys. The English text doubles as the key.
const (
	msgRendering = "rendering %d×%d at zoom %.2f (%d iterations)\n"
	msgWrote     = "wrote %s\n"
	msgAllocErr  = "memory allocation error: %v\n"
	msgInputErr  = "invalid input: %v\n"
	msgFailed    = "render failed: %v\n"
)

var supported = []language.Tag{language.English, language.Japanese}

var matcher = language.NewMatcher(supported)

func init() {
	ja := language.Japanese
	for key, text := range map[string]string{
		msgRendering: "%d×%d 倍率 %.2f で描画中 (反復 %d 回)\n",
		msgWrote:     "%s を保存しました\n",
		msgAllocErr:  "メモリ確保エラー: %v\n",
		msgInputErr:  "入力エラー: %v\n",
		msgFailed:    "描画に失敗しました: %v\n",
	} {
		if err := message.SetString(ja, key, text); err != nil {
			panic(err)
		}
	}
}

// newPrinter returns a printer for a locale such as "ja", "ja_JP.UTF-8"
// or "en-US". Unknown or empty locales fall back to English.
func newPrinter(locale string) *message.Printer {
	if i := strings.IndexByte(locale, '.'); i >= 0 {
		locale = locale[:i]
	}
	locale = strings.ReplaceAll(locale, "_", "-")
	_, idx := language.MatchStrings(matcher, locale)
	return message.NewPrinter(supported[idx])
}
