package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	apperrors "resumelens/internal/errors"
	"resumelens/internal/observability"
	"resumelens/internal/types"
	"resumelens/internal/utils"

	"go.opentelemetry.io/otel/attribute"
)

// createAnalyzeHandler wraps the analyze handler with observability
func (s *Server) createAnalyzeHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumelens.api")
		ctx, span := tracer.Start(ctx, "api.analyze")
		defer span.End()

		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		doc, err := s.readUpload(r)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid upload", err.Error(), statusForError(err))
			return
		}

		// Add request attributes to span
		span.SetAttributes(
			attribute.String("request.document", doc.Name),
			attribute.String("request.format", string(doc.Format)),
			attribute.Int("request.size_bytes", len(doc.Content)),
			attribute.String("operation", "analyze"),
		)

		// Track the analysis with observability
		metrics := om.GetMetrics()
		var result *types.AnalysisResult
		err = metrics.TrackAnalysisOperation(ctx, "analyze", func(ctx context.Context) *observability.AnalysisOutcome {
			analyzed, analyzeErr := s.Engine.Analyze(ctx, doc)
			result = analyzed
			outcome := &observability.AnalysisOutcome{Error: analyzeErr}
			if analyzed != nil {
				outcome.Score = analyzed.OverallScore
				outcome.Band = string(analyzed.OverallBand)
			}
			return outcome
		}, om)

		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "analysis"))
			metrics.RecordBusinessMetric(ctx, "resume_analyzed", false, om,
				attribute.String("error_code", apperrors.CodeOf(err)))
			writeErrorResponse(w, "Failed to analyze resume", err.Error(), statusForError(err))
			return
		}

		// Record success metrics
		metrics.RecordBusinessMetric(ctx, "resume_analyzed", true, om,
			attribute.String("format", string(doc.Format)),
			attribute.Int("overall_score", result.OverallScore))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("response.overall_score", result.OverallScore),
			attribute.String("response.band", string(result.OverallBand)),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// readUpload reads the resume file from a multipart form. The document
// format is taken from the declared part Content-Type, with the filename
// extension as fallback when the MIME type is generic or missing.
func (s *Server) readUpload(r *http.Request) (types.Document, error) {
	if err := r.ParseMultipartForm(s.MaxRequestSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return types.Document{}, apperrors.NewValidationError(
				apperrors.ErrCodeDocumentTooLarge,
				fmt.Sprintf("upload exceeds limit of %d bytes", maxBytesErr.Limit),
				err,
			)
		}
		return types.Document{}, apperrors.NewValidationError(
			apperrors.ErrCodeInvalidRequest,
			"request must be multipart/form-data with a resume file part",
			err,
		)
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		return types.Document{}, apperrors.NewValidationError(
			apperrors.ErrCodeInvalidRequest,
			"resume file part is required",
			err,
		)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			s.Logger.Debug("Failed to close upload part", "error", closeErr.Error())
		}
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		return types.Document{}, apperrors.NewIOError(
			apperrors.ErrCodeFileNotReadable,
			"failed to read uploaded resume",
			err,
		)
	}

	format, ok := types.FormatForMIME(header.Header.Get("Content-Type"))
	if !ok {
		format, ok = utils.FormatForFile(header.Filename)
	}
	if !ok {
		return types.Document{}, apperrors.NewValidationError(
			apperrors.ErrCodeUnsupportedFormat,
			fmt.Sprintf("cannot determine document format for %q, upload a .pdf, .doc or .docx file", header.Filename),
			nil,
		)
	}

	name := header.Filename
	if strings.TrimSpace(name) == "" {
		name = "resume"
	}

	return types.Document{
		Name:    name,
		Format:  format,
		Content: data,
	}, nil
}

// statusForError maps analysis error codes to HTTP status codes
func statusForError(err error) int {
	switch apperrors.CodeOf(err) {
	case apperrors.ErrCodeInvalidRequest, apperrors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case apperrors.ErrCodeUnsupportedFormat:
		return http.StatusUnsupportedMediaType
	case apperrors.ErrCodeDocumentTooLarge:
		return http.StatusRequestEntityTooLarge
	case apperrors.ErrCodeEmptyDocument:
		return http.StatusUnprocessableEntity
	case apperrors.ErrCodeExtractionTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		return originalMiddleware(func(w http.ResponseWriter, r *http.Request) {
			// Check if this request was rate limited by examining the response
			// We'll wrap the ResponseWriter to detect rate limit responses
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			next(wrapper, r)

			// If rate limited, record metric
			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics := om.GetMetrics()
				metrics.RecordBusinessMetric(r.Context(), "rate_limit_hit", true, om,
					attribute.String("endpoint", r.URL.Path),
					attribute.String("method", r.Method))
			}
		})
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
