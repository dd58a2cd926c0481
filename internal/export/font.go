package export

import (
	"os"

	"github.com/kdnorth/salesreport/internal/apperr"
)

// FontCandidates are TTF files known to carry Hangul glyphs, in search order.
var FontCandidates = []string{
	"C:/Windows/Fonts/malgun.ttf",
	"/usr/share/fonts/truetype/nanum/NanumGothic.ttf",
	"/usr/share/fonts/nanum/NanumGothic.ttf",
	"/usr/share/fonts/opentype/nanum/NanumGothic.ttf",
	"/Library/Fonts/NanumGothic.ttf",
	"/Library/Fonts/AppleGothic.ttf",
	"/System/Library/Fonts/Supplemental/AppleGothic.ttf",
}

// FindFont returns configured when set, otherwise the first candidate that
// exists on disk.
func FindFont(configured string) (string, error) {
	return findFont(configured, FontCandidates)
}

func findFont(configured string, candidates []string) (string, error) {
	if configured != "" {
		if _, err := os.Stat(configured); err != nil {
			return "", apperr.Wrap(apperr.KindReport, err, "configured font not usable")
		}
		return configured, nil
	}
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", apperr.New(apperr.KindReport, "no Hangul TTF font found; set report.font_path")
}
