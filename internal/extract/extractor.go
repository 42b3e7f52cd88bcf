// Package extract converts uploaded resume documents into plain text with
// per-line formatting hints. It is the only package that touches raw
// document bytes; everything downstream works on ExtractedText.
package extract

import (
	"context"
	"fmt"

	"resumelens/internal/config"
	"resumelens/internal/errors"
	"resumelens/internal/types"
)

// Extractor turns a Document into ExtractedText, enforcing the configured
// size, line and time limits.
type Extractor struct {
	cfg    config.ExtractorConfig
	logger *errors.Logger
}

// New creates an extractor with the given limits
func New(cfg config.ExtractorConfig, logger *errors.Logger) *Extractor {
	return &Extractor{cfg: cfg, logger: logger}
}

// Extract produces the plain-text form of doc. Format dispatch happens on
// doc.Format, never on file extension alone. The raw parse runs under the
// configured timeout so a pathological document cannot stall a request.
func (e *Extractor) Extract(ctx context.Context, doc types.Document) (*types.ExtractedText, error) {
	if len(doc.Content) == 0 {
		return nil, errors.NewValidationError(errors.ErrCodeEmptyDocument,
			"document is empty", nil).WithContext("document", doc.Name)
	}
	if int64(len(doc.Content)) > e.cfg.MaxBytes {
		return nil, errors.NewValidationError(errors.ErrCodeDocumentTooLarge,
			fmt.Sprintf("document exceeds %d byte limit", e.cfg.MaxBytes), nil).
			WithContext("document", doc.Name).
			WithContext("size", len(doc.Content))
	}

	ctx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	type parsed struct {
		text string
		err  error
	}
	done := make(chan parsed, 1)
	go func() {
		text, err := e.parseRaw(doc)
		done <- parsed{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, errors.NewExtractionError(errors.ErrCodeExtractionTimeout,
			"text extraction did not finish in time", ctx.Err()).
			WithContext("document", doc.Name).
			WithContext("timeout", e.cfg.Timeout.String())
	case res := <-done:
		if res.err != nil {
			return nil, res.err
		}
		return e.assemble(doc, res.text)
	}
}

// parseRaw dispatches to the format-specific parser
func (e *Extractor) parseRaw(doc types.Document) (string, error) {
	switch doc.Format {
	case types.FormatPDF:
		return extractPDF(doc.Content)
	case types.FormatDOCX:
		return extractDOCX(doc.Content)
	case types.FormatDOC:
		return extractDOC(doc.Content)
	default:
		return "", errors.NewValidationError(errors.ErrCodeUnsupportedFormat,
			fmt.Sprintf("unsupported document format: %s", doc.Format), nil).
			WithContext("document", doc.Name)
	}
}

// assemble normalizes the raw text into lines and enforces post-parse limits
func (e *Extractor) assemble(doc types.Document, raw string) (*types.ExtractedText, error) {
	extracted := normalize(raw)

	if len(extracted.Lines) > e.cfg.MaxLines {
		return nil, errors.NewValidationError(errors.ErrCodeDocumentTooLarge,
			fmt.Sprintf("document exceeds %d line limit", e.cfg.MaxLines), nil).
			WithContext("document", doc.Name).
			WithContext("lines", len(extracted.Lines))
	}
	if len(extracted.Lines) == 0 {
		return nil, errors.NewExtractionError(errors.ErrCodeEmptyDocument,
			"no extractable text in document", nil).
			WithContext("document", doc.Name)
	}

	e.logger.Debug("document extracted",
		"document", doc.Name,
		"format", string(doc.Format),
		"lines", len(extracted.Lines))

	return extracted, nil
}
