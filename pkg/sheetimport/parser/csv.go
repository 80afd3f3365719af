package parser

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ukaji3/sheetimport-go/pkg/sheetimport/models"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// fallbackCharset decodes text that is not valid UTF-8.
const fallbackCharset = "windows-1252"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// separators are the candidate field delimiters, in tie-break order.
var separators = []rune{',', ';', '\t', '|'}

// GetEncoding returns the named encoding, or nil for UTF-8.
func GetEncoding(encName string) (encoding.Encoding, error) {
	encName = strings.ToLower(encName)
	if encName == "" || encName == "utf-8" || encName == "utf8" {
		return nil, nil
	}
	enc, err := htmlindex.Get(encName)
	if err != nil {
		err = fmt.Errorf("%q: %w", encName, err)
	}
	return enc, err
}

// parseCSV reads delimited text as a single sheet.
func parseCSV(fileName string, data []byte, opts Options) ([]models.SheetPreview, error) {
	r, err := decodeText(data, opts.Charset)
	if err != nil {
		return nil, &CorruptFileError{FileName: fileName, Err: err}
	}

	br := bufio.NewReaderSize(r, 1<<16)
	sample, err := br.Peek(4096)
	if err != nil && len(sample) == 0 {
		return nil, &CorruptFileError{FileName: fileName, Err: err}
	}

	cr := csv.NewReader(br)
	cr.Comma = sniffSeparator(sample)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	b := newSheetBuilder(csvSheetName(fileName, opts), opts)
	rowNum := 0
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &CorruptFileError{FileName: fileName, Err: err}
		}
		rowNum++
		values := make([]models.Value, len(record))
		for i, s := range record {
			values[i] = Normalize(RawCell{Type: excelize.CellTypeInlineString, Value: s})
		}
		b.row(rowNum, values)
	}

	sheet := b.finish()
	sheet.IsActive = true
	return []models.SheetPreview{sheet}, nil
}

// decodeText returns a UTF-8 reader over data, honoring a forced charset.
func decodeText(data []byte, charset string) (io.Reader, error) {
	if charset == "" {
		if utf8.Valid(data) {
			return bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)), nil
		}
		charset = fallbackCharset
	}
	enc, err := GetEncoding(charset)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)), nil
	}
	return enc.NewDecoder().Reader(bytes.NewReader(data)), nil
}

// sniffSeparator picks the candidate delimiter occurring most often in the
// first line outside quotes. Defaults to comma.
func sniffSeparator(sample []byte) rune {
	line := sample
	if i := bytes.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}

	counts := make(map[rune]int, len(separators))
	inQuotes := false
	for _, r := range string(line) {
		if r == '"' {
			inQuotes = !inQuotes
			continue
		}
		if !inQuotes {
			counts[r]++
		}
	}

	sep, best := ',', 0
	for _, c := range separators {
		if counts[c] > best {
			sep, best = c, counts[c]
		}
	}
	return sep
}

func csvSheetName(fileName string, opts Options) string {
	if opts.SheetName != "" {
		return opts.SheetName
	}
	base := filepath.Base(fileName)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if name == "" || name == "." {
		return "Sheet1"
	}
	return name
}
