package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Renderer lifecycle
		"Renderer opened":                               "レンダラーを開きました",
		"Renderer closed":                               "レンダラーを閉じました",
		"Backend refused to open":                       "バックエンドがオープンを拒否しました",
		"Backend refused to close":                      "バックエンドがクローズを拒否しました",
		"Frame rejected: renderer is closed":            "フレームを拒否しました: レンダラーが閉じています",
		"Frame rejected: no usable pixel format for %s": "フレームを拒否しました: %s に使用できるピクセルフォーマットがありません",
		"Backend rejected frame %d":                     "バックエンドがフレーム %d を拒否しました",

		// Geometry
		"Frame size changed: %dx%d -> %dx%d":         "フレームサイズ変更: %dx%d -> %dx%d",
		"Video rect %s -> %s (%s)":                   "映像領域 %s -> %s (%s)",
		"Ignoring unknown aspect ratio mode %d":      "不明なアスペクト比モード %d を無視します",
		"Rejected aspect ratio %v":                   "アスペクト比 %v を拒否しました",
		"Rejected non-finite region of interest %+v": "有限でない関心領域 %+v を拒否しました",

		// Format and color
		"Rejected preferred pixel format %s": "優先ピクセルフォーマット %s を拒否しました",
		"Rejected %s: not a number":          "%s を拒否しました: 数値ではありません",
		"Backend did not apply %s %.3f":      "バックエンドは %s %.3f を適用しませんでした",

		// gg backend
		"Surface %s":                    "描画面 %s",
		"Frame without image data":      "画像データのないフレーム",
		"Subtitle filter %s failed: %v": "字幕フィルター %s が失敗しました: %v",
		"OSD filter %s failed: %v":      "OSDフィルター %s が失敗しました: %v",

		// Sources
		"Decoded %s: %s %s": "%s をデコードしました: %s %s",

		// Present stage
		"Presenting %d frames on %s at %dx%d": "%d フレームを %s に %dx%d で表示中",
		"Frame %d rejected":                   "フレーム %d は拒否されました",
		"Presented %d of %d frames":           "%d / %d フレームを表示しました",
		"Setting rejected: %s":                "設定が拒否されました: %s",
		"Failed to save snapshot %d: %v":      "スナップショット %d の保存に失敗しました: %v",
		"Interrupted, shutting down...":       "中断されました。終了しています...",
	})
}
