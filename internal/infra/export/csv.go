// Package export writes the subscription list as a spreadsheet-friendly CSV file.
package export

import (
	"encoding/csv"
	"io"
	"regexp"
	"strconv"
	"strings"

	"interest/internal/domain/entity"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ContentType of the export stream.
const ContentType = "text/csv; charset=utf-16le"

const signupLayout = "2006-01-02 15:04:05"

// Header is the first record of the export.
var Header = []string{
	"relationship_id",
	"product_id",
	"product_name",
	"customer_id",
	"username",
	"display_name",
	"email",
	"signup_date",
}

var (
	longNumberRe = regexp.MustCompile(`^\+?\d{8,}$`)
	dateLikeRe   = regexp.MustCompile(`^\d{4}.\d{1,2}.\d{1,2}`)
)

// CleanValue prepares one cell for spreadsheet import: boolean flags become
// TRUE or FALSE, and values a spreadsheet would reinterpret get a leading quote.
func CleanValue(value string) string {
	switch value {
	case "t":
		return "TRUE"
	case "f":
		return "FALSE"
	case "":
		return ""
	}

	if strings.HasPrefix(value, "0") || longNumberRe.MatchString(value) || dateLikeRe.MatchString(value) {
		return "'" + value
	}

	// Formula prefixes
	switch value[0] {
	case '=', '+', '-', '@':
		return "'" + value
	}

	return value
}

// Record returns the cleaned export record of row.
func Record(row *entity.Row) []string {
	record := []string{
		strconv.FormatInt(row.ID, 10),
		strconv.FormatInt(row.ProductID, 10),
		row.ProductName,
		strconv.FormatInt(row.CustomerID, 10),
		row.Username,
		row.DisplayName,
		row.Email,
		row.SignupDate.UTC().Format(signupLayout),
	}
	for i, value := range record {
		record[i] = CleanValue(value)
	}

	return record
}

// WriteRows writes the header and rows to w as UTF-16LE with a byte order mark.
func WriteRows(w io.Writer, rows []*entity.Row) error {
	encoded := transform.NewWriter(w, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder())
	writer := csv.NewWriter(encoded)

	if err := writer.Write(Header); err != nil {
		return errors.Wrap(err, "failed to write export header")
	}

	for _, row := range rows {
		if err := writer.Write(Record(row)); err != nil {
			return errors.Wrapf(err, "failed to write export row %d", row.ID)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.Wrap(err, "failed to flush export")
	}

	return errors.Wrap(encoded.Close(), "failed to encode export")
}
