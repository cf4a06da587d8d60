// Package escalation decides whether a generated reply needs a human.
package escalation

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/open-policy-agent/opa/rego"
	"github.com/rs/zerolog"
)

const query = "data.escalation.escalate"

// DefaultPolicy escalates replies that admit uncertainty or are very short.
// Input: {"reply": <raw reply>, "token_count": <whitespace token count>}.
const DefaultPolicy = `
package escalation

import rego.v1

low_confidence_phrases := ["i don't know", "i'm not sure", "cannot", "unable to", "sorry —"]

min_tokens := 6

default escalate := false

escalate if {
	some phrase in low_confidence_phrases
	indexof(lower(input.reply), phrase) != -1
}

escalate if {
	input.token_count < min_tokens
}
`

// Classifier evaluates the escalation policy.
type Classifier struct {
	query  rego.PreparedEvalQuery
	logger zerolog.Logger
}

// NewClassifier prepares the given rego module. The module must define
// data.escalation.escalate as a boolean.
func NewClassifier(ctx context.Context, policyContent string, logger zerolog.Logger) (*Classifier, error) {
	r := rego.New(
		rego.Query(query),
		rego.Module("escalation.rego", policyContent),
	)

	prepared, err := r.PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare rego: %w", err)
	}

	return &Classifier{
		query:  prepared,
		logger: logger.With().Str("component", "escalation").Logger(),
	}, nil
}

// NewClassifierFromFile loads the policy from path, or DefaultPolicy when
// path is empty.
func NewClassifierFromFile(ctx context.Context, path string, logger zerolog.Logger) (*Classifier, error) {
	if path == "" {
		return NewClassifier(ctx, DefaultPolicy, logger)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read escalation policy: %w", err)
	}
	return NewClassifier(ctx, string(content), logger)
}

// ShouldEscalate reports whether reply should be handed to a human. An
// evaluation failure escalates.
func (c *Classifier) ShouldEscalate(ctx context.Context, reply string) bool {
	input := map[string]interface{}{
		"reply":       reply,
		"token_count": len(strings.Fields(reply)),
	}

	results, err := c.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to evaluate escalation policy")
		return true
	}
	if len(results) == 0 || len(results[0].Expressions) == 0 {
		c.logger.Error().Msg("escalation policy produced no decision")
		return true
	}

	decision, ok := results[0].Expressions[0].Value.(bool)
	if !ok {
		c.logger.Error().Interface("value", results[0].Expressions[0].Value).Msg("escalation policy returned a non-boolean")
		return true
	}
	return decision
}
