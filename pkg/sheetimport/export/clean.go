package export

import (
	"strings"
	"unicode"

	"github.com/ukaji3/sheetimport-go/pkg/sheetimport/models"
	"golang.org/x/text/unicode/norm"
)

// cleaner applies the text transforms requested by a configuration.
type cleaner struct {
	trim     bool
	collapse bool
	nfc      bool
}

func newCleaner(cfg models.ImportConfiguration) cleaner {
	return cleaner{trim: cfg.TrimWhitespace, collapse: cfg.CollapseSpaces, nfc: cfg.NormalizeUnicode}
}

func (c cleaner) enabled() bool {
	return c.trim || c.collapse || c.nfc
}

// value cleans a text cell; other kinds are returned unchanged.
func (c cleaner) value(v models.Value) models.Value {
	if v.Kind != models.KindText {
		return v
	}
	return models.Text(c.text(v.Text))
}

func (c cleaner) text(s string) string {
	if c.nfc {
		s = norm.NFC.String(s)
	}
	if c.collapse {
		s = collapseSpaces(s)
	}
	if c.trim {
		s = strings.TrimSpace(s)
	}
	return s
}

// rows cleans every cell of rows in place.
func (c cleaner) rows(rows [][]models.Value) {
	for _, row := range rows {
		for i := range row {
			row[i] = c.value(row[i])
		}
	}
}

// collapseSpaces folds each run of whitespace into a single space.
func collapseSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !space {
				b.WriteByte(' ')
			}
			space = true
			continue
		}
		space = false
		b.WriteRune(r)
	}
	return b.String()
}
