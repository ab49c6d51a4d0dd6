package errors

import "errors"

// Enricher wraps plain errors with a category and suggestions.
type Enricher interface {
	Enrich(err error, affectedPath string) error
}

// NewEnricher creates an Enricher with the default matcher and generator.
func NewEnricher() Enricher {
	return &enricher{
		matcher:   NewPatternMatcher(),
		generator: NewSuggestionGenerator(),
	}
}

type enricher struct {
	matcher   PatternMatcher
	generator SuggestionGenerator
}

// Enrich categorises err and attaches suggestions. Errors that are already
// actionable pass through unchanged; nil stays nil.
func (e *enricher) Enrich(err error, affectedPath string) error {
	if err == nil {
		return nil
	}

	var actionable ActionableError
	if errors.As(err, &actionable) {
		return actionable
	}

	message := err.Error()
	category := e.matcher.Match(message)
	suggestions := e.generator.Generate(category, affectedPath)

	return NewActionableError(message, category, suggestions, affectedPath)
}
