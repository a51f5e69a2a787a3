// Package main provides localization for the videoout CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Render command
		"Presented %d frames (%d rejected), video rect %s, format %s": "%d フレームを表示しました (拒否 %d)、映像領域 %s、フォーマット %s",
		"Saved %d snapshots to %s":                                    "%d 枚のスナップショットを %s に保存しました",

		// Probe command
		"Codec: %s (%s)":               "コーデック: %s (%s)",
		"Frame size: %s":               "フレームサイズ: %s",
		"Duration: %s":                 "再生時間: %s",
		"Video rect in %dx%d (%s): %s": "%dx%d (%s) での映像領域: %s",

		// Version command
		"videoout version %s": "videoout バージョン %s",
	})
}
