package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"resumelens/internal/errors"
)

// extractDOCX walks word/document.xml token by token. Paragraph ends become
// newlines and tabs become spaces, so the paragraph structure the author
// chose carries through to line classification.
func extractDOCX(content []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", errors.NewExtractionError(errors.ErrCodeUnsupportedFormat,
			"not a valid DOCX container", err)
	}

	var docFile *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", errors.NewExtractionError(errors.ErrCodeUnsupportedFormat,
			"DOCX container has no word/document.xml", nil)
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", errors.NewExtractionError(errors.ErrCodeUnsupportedFormat,
			"failed to open word/document.xml", err)
	}
	defer rc.Close()

	return walkDocumentXML(rc)
}

// walkDocumentXML streams the WordprocessingML tokens and keeps only the
// text runs. Only w:t character data is text; everything else is structure.
func walkDocumentXML(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)

	var sb strings.Builder
	inText := false

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", errors.NewExtractionError(errors.ErrCodeUnsupportedFormat,
				"malformed document.xml", err)
		}

		switch tok := token.(type) {
		case xml.StartElement:
			switch tok.Name.Local {
			case "t":
				inText = true
			case "tab":
				sb.WriteByte(' ')
			case "br", "cr":
				sb.WriteByte('\n')
			}
		case xml.EndElement:
			switch tok.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				sb.Write(tok)
			}
		}
	}

	return sb.String(), nil
}

// extractDOC handles legacy .doc uploads. Many files sent with the legacy
// MIME type are DOCX underneath, so the zip path is attempted first; a
// genuine OLE binary cannot be parsed and is rejected.
func extractDOC(content []byte) (string, error) {
	if text, err := extractDOCX(content); err == nil {
		return text, nil
	}
	return "", errors.NewExtractionError(errors.ErrCodeUnsupportedFormat,
		"legacy binary .doc files are not supported, convert to DOCX or PDF", nil)
}
