package common

import (
	"context"

	"resumelens/internal/errors"
	"resumelens/internal/types"
)

// LogDetailsFunc defines how to log the start of an operation.
type LogDetailsFunc func(doc types.Document, cfg CommandConfig)

// AnalysisFunc is the signature of any operation that turns a document into
// an analysis result.
type AnalysisFunc func(context.Context, types.Document) (*types.AnalysisResult, error)

// RunAnalysisCommand encapsulates the common logic for file-based CLI
// commands: load the resume, run the analysis, hand the result to the
// output pipeline.
func RunAnalysisCommand(
	ctx context.Context,
	logger *errors.Logger,
	cmdConfig CommandConfig,
	filename string,
	analyze AnalysisFunc,
	logDetails LogDetailsFunc,
) error {
	// Pass the logger when creating helpers
	fileProcessor := NewFileProcessor(logger)
	outputHandler := NewOutputHandler(logger)

	doc, err := fileProcessor.ReadResume(filename)
	if err != nil {
		return err
	}

	logDetails(doc, cmdConfig)

	result, err := analyze(ctx, doc)
	if err != nil {
		return err
	}

	return outputHandler.HandleOutput(result, cmdConfig)
}
