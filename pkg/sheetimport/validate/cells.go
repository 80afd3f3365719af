package validate

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ukaji3/sheetimport-go/pkg/sheetimport/i18n"
	"github.com/ukaji3/sheetimport-go/pkg/sheetimport/infer"
	"github.com/ukaji3/sheetimport-go/pkg/sheetimport/models"
)

// cellRules holds the per-cell checks enabled for one sheet.
type cellRules struct {
	types      []typedColumn
	maxLen     int
	special    bool
	unique     []int
	seen       []map[string]int
	duplicates map[int]bool
	rowKeys    map[string]bool
}

func (v *validator) rulesFor(s *models.SheetPreview) *cellRules {
	r := &cellRules{types: resolveTypes(s, v.cfg.ColumnTypes), special: v.cfg.WarnSpecialCharacters}
	if v.cfg.MaxTextLength != nil {
		r.maxLen = *v.cfg.MaxTextLength
	}

	added := make(map[int]bool)
	for _, col := range v.cfg.UniqueColumns {
		if idx := s.HeaderIndex(col); idx >= 0 && !added[idx] {
			added[idx] = true
			r.unique = append(r.unique, idx)
			r.seen = append(r.seen, make(map[string]int))
		}
	}

	if v.cfg.DetectDuplicateRows {
		if s.DuplicateRows != nil {
			r.duplicates = make(map[int]bool, len(s.DuplicateRows))
			for _, n := range s.DuplicateRows {
				r.duplicates[n] = true
			}
		} else {
			r.rowKeys = make(map[string]bool)
		}
	}
	return r
}

func (r *cellRules) active() bool {
	return len(r.types) > 0 || r.maxLen > 0 || r.special || len(r.unique) > 0 ||
		r.duplicates != nil || r.rowKeys != nil
}

// cells runs the optional per-cell rules in row order.
func (v *validator) cells(s *models.SheetPreview) {
	r := v.rulesFor(s)
	if !r.active() {
		return
	}

	for i, row := range s.AllRows() {
		rowNum := s.RowNumber(i)

		for _, tc := range r.types {
			if tc.idx >= len(row) {
				continue
			}
			got := infer.Classify(row[tc.idx])
			if got == models.TypeEmpty || infer.Matches(tc.typ, got) {
				continue
			}
			msg := v.p.Sprintf(i18n.MsgInvalidType, row[tc.idx].String(), tc.name, string(got), string(tc.typ))
			v.add(models.NewIssue(models.KindInvalidType, s.Name, msg).AtRow(rowNum).AtColumn(tc.name))
		}

		for col, val := range row {
			if val.Kind != models.KindText {
				continue
			}
			name := headerAt(s, col)
			if r.maxLen > 0 {
				if n := utf8.RuneCountInString(val.Text); n > r.maxLen {
					v.add(models.NewIssue(models.KindLongText, s.Name, v.p.Sprintf(i18n.MsgLongText, name, n, r.maxLen)).
						AtRow(rowNum).AtColumn(name))
				}
			}
			if r.special && hasSpecialCharacters(val.Text) {
				v.add(models.NewIssue(models.KindSpecialCharacters, s.Name, v.p.Sprintf(i18n.MsgSpecialCharacters, name)).
					AtRow(rowNum).AtColumn(name).
					WithSuggestion(v.p.Sprintf(i18n.SugSpecialCharacters)))
			}
		}

		for k, idx := range r.unique {
			if idx >= len(row) || row[idx].IsEmpty() {
				continue
			}
			key := uniqueKey(row[idx])
			if first, ok := r.seen[k][key]; ok {
				name := headerAt(s, idx)
				msg := v.p.Sprintf(i18n.MsgDuplicateValue, row[idx].String(), name, first)
				v.add(models.NewIssue(models.KindDuplicateData, s.Name, msg).AtRow(rowNum).AtColumn(name))
				continue
			}
			r.seen[k][key] = rowNum
		}

		if r.isDuplicateRow(rowNum, row) {
			v.add(models.NewIssue(models.KindPotentialDuplicate, s.Name, v.p.Sprintf(i18n.MsgDuplicateRow)).
				AtRow(rowNum).
				WithSuggestion(v.p.Sprintf(i18n.SugDuplicateRow)))
		}
	}
}

func (r *cellRules) isDuplicateRow(rowNum int, row []models.Value) bool {
	if r.duplicates != nil {
		return r.duplicates[rowNum]
	}
	if r.rowKeys == nil {
		return false
	}
	key := models.RowKey(row)
	if r.rowKeys[key] {
		return true
	}
	r.rowKeys[key] = true
	return false
}

func headerAt(s *models.SheetPreview, idx int) string {
	if idx < len(s.Headers) && s.Headers[idx] != "" {
		return s.Headers[idx]
	}
	return "#" + strconv.Itoa(idx+1)
}

// uniqueKey folds case and surrounding space so "Ana@X.com " repeats "ana@x.com".
func uniqueKey(v models.Value) string {
	return strings.ToLower(strings.TrimSpace(v.String()))
}

// hasSpecialCharacters reports control characters other than tab and line breaks,
// or replacement characters left by a failed decode.
func hasSpecialCharacters(s string) bool {
	for _, r := range s {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
		case r == utf8.RuneError:
			return true
		case unicode.IsControl(r):
			return true
		}
	}
	return false
}
