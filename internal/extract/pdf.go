package extract

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/dslipak/pdf"

	"resumelens/internal/errors"
)

// extractPDF pulls text out of a PDF, row by row so the physical line
// structure survives into the hint pass. The pdf library panics on some
// malformed inputs, so the whole parse runs under a recover.
func extractPDF(content []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = errors.NewExtractionError(errors.ErrCodeUnsupportedFormat,
				fmt.Sprintf("malformed PDF: %v", r), nil)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", errors.NewExtractionError(errors.ErrCodeUnsupportedFormat,
			"failed to open PDF", err)
	}

	var sb strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			// Fall back to the flat text stream for pages whose content
			// stream resists row grouping.
			if flat := flatPageText(reader); flat != "" {
				return flat, nil
			}
			return "", errors.NewExtractionError(errors.ErrCodeUnsupportedFormat,
				fmt.Sprintf("failed to read PDF page %d", pageNum), err)
		}

		for _, row := range rows {
			var fragments []string
			for _, word := range row.Content {
				if s := strings.TrimSpace(word.S); s != "" {
					fragments = append(fragments, s)
				}
			}
			if len(fragments) > 0 {
				sb.WriteString(strings.Join(fragments, " "))
				sb.WriteByte('\n')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String(), nil
}

// flatPageText extracts the document as one undifferentiated text stream
func flatPageText(reader *pdf.Reader) string {
	rs, err := reader.GetPlainText()
	if err != nil {
		return ""
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, rs); err != nil {
		return ""
	}
	return buf.String()
}
