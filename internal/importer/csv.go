package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/korean"

	"github.com/kdnorth/salesreport/internal/apperr"
)

// Supported text encodings for CSV input.
const (
	EncodingEUCKR = "euc-kr"
	EncodingUTF8  = "utf-8"
	EncodingAuto  = "auto"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVParser reads comma-separated sales exports.
type CSVParser struct {
	// Encoding is one of EncodingEUCKR (the default when empty),
	// EncodingUTF8 or EncodingAuto.
	Encoding string
}

// Format returns the parser name.
func (p *CSVParser) Format() string { return "csv" }

// Parse decodes r and returns the header and rows.
func (p *CSVParser) Parse(r io.Reader) (RawTable, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return RawTable{}, fmt.Errorf("reading CSV: %w", err)
	}

	text, err := Decode(raw, p.Encoding)
	if err != nil {
		return RawTable{}, err
	}

	cr := csv.NewReader(strings.NewReader(text))
	cr.TrimLeadingSpace = true
	// short rows are allowed; missing cells read as blank
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return RawTable{}, apperr.Wrap(apperr.KindSchema, err, "malformed CSV")
	}
	if len(records) == 0 {
		return RawTable{}, apperr.New(apperr.KindSchema, "no header row")
	}

	return RawTable{
		Header: trimAll(records[0]),
		Rows:   records[1:],
	}, nil
}

// Decode converts raw bytes in the named encoding to a UTF-8 string.
// Input that is not valid in that encoding is an EncodingError.
func Decode(raw []byte, encoding string) (string, error) {
	switch NormalizeEncoding(encoding) {
	case EncodingUTF8:
		raw = bytes.TrimPrefix(raw, utf8BOM)
		if !utf8.Valid(raw) {
			return "", apperr.New(apperr.KindEncoding, "input is not valid utf-8")
		}
		return string(raw), nil

	case EncodingAuto:
		if bytes.HasPrefix(raw, utf8BOM) || utf8.Valid(raw) {
			return Decode(raw, EncodingUTF8)
		}
		return Decode(raw, EncodingEUCKR)

	case EncodingEUCKR:
		out, err := korean.EUCKR.NewDecoder().Bytes(raw)
		if err != nil {
			return "", apperr.Wrap(apperr.KindEncoding, err, "input is not euc-kr encoded")
		}
		// The decoder substitutes U+FFFD for invalid sequences rather
		// than failing.
		if bytes.ContainsRune(out, utf8.RuneError) {
			return "", apperr.New(apperr.KindEncoding, "input is not euc-kr encoded")
		}
		return string(out), nil
	}
	return "", apperr.Newf(apperr.KindEncoding, "unsupported encoding %q", encoding)
}

// NormalizeEncoding maps aliases like "EUC_KR", "cp949" or "UTF8" onto
// the canonical names. Unknown names are returned lower-cased.
func NormalizeEncoding(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	switch strings.NewReplacer("-", "", "_", "").Replace(n) {
	case "", "euckr", "cp949", "uhc":
		return EncodingEUCKR
	case "utf8":
		return EncodingUTF8
	case "auto":
		return EncodingAuto
	}
	return n
}

func trimAll(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.TrimSpace(c)
	}
	return out
}
