package clarity

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/campuskit/claritycore/internal/domain"
)

// MatchThreshold is the minimum exclusive score for a retrieval hit. Anything
// at or below it is reported as no match rather than a weak guess.
const MatchThreshold = 20

// domainTitleBonus rewards documents whose curated title names the detected
// domain. Large on purpose: a correct domain classification should beat pure
// keyword overlap.
const domainTitleBonus = 100

// DocumentSource provides the retrieval corpus: all policies and procedures.
type DocumentSource interface {
	ListDocuments(ctx context.Context) ([]domain.Document, error)
}

// Match is a retrieval result above the threshold.
type Match struct {
	Document domain.Document
	Score    int
	// Domain is the lexicon-detected domain of the query, empty when none
	// was detected. It may disagree with the document's own domain tag.
	Domain string
}

// Engine selects the single best-matching document for a query.
type Engine struct {
	lexicon *Lexicon
	source  DocumentSource
	logger  *zap.Logger
}

// NewEngine creates a retrieval engine over the given corpus source.
func NewEngine(lexicon *Lexicon, source DocumentSource, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{lexicon: lexicon, source: source, logger: logger}
}

// Retrieve scores every document in the corpus against the query and returns
// the strictly highest scorer above MatchThreshold, or nil when nothing
// qualifies. Ties keep the first document seen; corpus iteration order is the
// source's stable listing order. A corpus read failure is propagated.
func (e *Engine) Retrieve(ctx context.Context, query string) (*Match, error) {
	detected, _ := e.lexicon.Detect(query)

	docs, err := e.source.ListDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("load document corpus: %w", err)
	}

	var best *Match
	for i := range docs {
		doc := docs[i]
		score := Score(query, doc.Title, doc.FlattenedContent())
		if detected != "" && strings.Contains(strings.ToLower(doc.Title), strings.ToLower(detected)) {
			score += domainTitleBonus
		}
		if best == nil || score > best.Score {
			best = &Match{Document: doc, Score: score, Domain: detected}
		}
	}

	if best == nil || best.Score <= MatchThreshold {
		e.logger.Debug("no document above threshold",
			zap.String("query", query),
			zap.String("detected_domain", detected),
		)
		return nil, nil
	}

	e.logger.Debug("document matched",
		zap.String("query", query),
		zap.String("code", best.Document.Code),
		zap.Int("score", best.Score),
		zap.String("detected_domain", detected),
	)
	return best, nil
}
