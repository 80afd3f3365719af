package parser

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/richardlehane/mscfb"
)

// Format is a spreadsheet container format.
type Format string

const (
	FormatUnknown   Format = ""
	FormatXLSX      Format = "xlsx"
	FormatCSV       Format = "csv"
	FormatXLSB      Format = "xlsb"
	FormatODS       Format = "ods"
	FormatXLS       Format = "xls"
	FormatEncrypted Format = "encrypted"
	FormatDOCX      Format = "docx"
	FormatDOC       Format = "doc"
	FormatZip       Format = "zip"
)

// Supported reports whether Parse can decode the format.
func (f Format) Supported() bool {
	return f == FormatXLSX || f == FormatCSV
}

var (
	zipMagic = []byte("PK")
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
)

const odsMimeType = "application/vnd.oasis.opendocument.spreadsheet"

// DetectFormat identifies the container of data.
// It returns an error wrapping ErrCorruptFile when the bytes are not a
// readable container; unsupported formats are returned without error.
func DetectFormat(data []byte) (Format, error) {
	if len(data) == 0 {
		return FormatUnknown, fmt.Errorf("%w: empty input", ErrCorruptFile)
	}

	switch {
	case bytes.HasPrefix(data, zipMagic):
		return detectZip(data)
	case bytes.HasPrefix(data, oleMagic):
		return detectOLE(data)
	}

	if looksBinary(data) {
		return FormatUnknown, fmt.Errorf("%w: binary content", ErrCorruptFile)
	}
	return FormatCSV, nil
}

// detectZip classifies an OPC/ODF zip package by its well-known parts.
func detectZip(data []byte) (Format, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return FormatUnknown, fmt.Errorf("%w: %v", ErrCorruptFile, err)
	}

	if mime, err := readZipFile(r, "mimetype"); err == nil && mime != nil {
		if strings.TrimSpace(string(mime)) == odsMimeType {
			return FormatODS, nil
		}
	}

	switch {
	case hasZipFile(r, "xl/workbook.xml"):
		return FormatXLSX, nil
	case hasZipFile(r, "xl/workbook.bin"):
		return FormatXLSB, nil
	case hasZipFile(r, "word/document.xml"):
		return FormatDOCX, nil
	}
	return FormatZip, nil
}

// detectOLE walks the compound file directory looking for a known stream.
func detectOLE(data []byte) (Format, error) {
	doc, err := mscfb.New(bytes.NewReader(data))
	if err != nil {
		return FormatUnknown, fmt.Errorf("%w: %v", ErrCorruptFile, err)
	}

	for {
		entry, err := doc.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return FormatUnknown, fmt.Errorf("%w: %v", ErrCorruptFile, err)
		}
		switch entry.Name {
		case "Workbook", "Book":
			return FormatXLS, nil
		case "EncryptedPackage":
			return FormatEncrypted, nil
		case "WordDocument":
			return FormatDOC, nil
		}
	}
	return FormatUnknown, fmt.Errorf("%w: compound file without workbook stream", ErrCorruptFile)
}

// readZipFile returns the content of the named part, or nil if absent.
func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}

func hasZipFile(r *zip.Reader, name string) bool {
	for _, f := range r.File {
		if strings.EqualFold(f.Name, name) {
			return true
		}
	}
	return false
}

// looksBinary reports NUL bytes or invalid UTF-8 that is not plausibly a
// single-byte text encoding within the first 4KiB.
func looksBinary(data []byte) bool {
	sample := data
	if len(sample) > 4096 {
		sample = sample[:4096]
	}
	if bytes.IndexByte(sample, 0) >= 0 {
		return true
	}
	if utf8.Valid(sample) {
		return false
	}
	// Single-byte charsets rarely use C0 control codes besides whitespace.
	for _, b := range sample {
		if b < 0x20 && b != '\t' && b != '\n' && b != '\r' && b != '\f' {
			return true
		}
	}
	return false
}
