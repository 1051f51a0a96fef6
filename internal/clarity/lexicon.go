// Package clarity implements the retrieval, triage and Process Clarity Index
// (PCI) logic of the campus portal: keyword document retrieval, intent
// classification, and confusion scoring over the interaction log.
package clarity

import (
	"strings"

	"github.com/campuskit/claritycore/internal/domain"
)

// LexiconEntry maps one domain to the lowercase keywords that signal it.
type LexiconEntry struct {
	Domain   string
	Keywords []string
}

// Lexicon performs coarse domain detection on raw query text. Entries are an
// ordered list, not a map: the first entry with a contained keyword wins, and
// that tie-break must stay deterministic.
type Lexicon struct {
	entries []LexiconEntry
}

// NewLexicon builds a lexicon from ordered entries. The slice is copied so the
// lexicon is immutable after construction.
func NewLexicon(entries []LexiconEntry) *Lexicon {
	copied := make([]LexiconEntry, len(entries))
	copy(copied, entries)
	return &Lexicon{entries: copied}
}

// DefaultLexicon returns the campus domain keyword table.
func DefaultLexicon() *Lexicon {
	return NewLexicon([]LexiconEntry{
		{Domain: domain.DomainHostel, Keywords: []string{"hostel", "warden", "outpass", "visitor", "mess"}},
		{Domain: domain.DomainFees, Keywords: []string{"fee", "payment", "refund", "fine", "scholarship"}},
		{Domain: domain.DomainExams, Keywords: []string{"exam", "result", "revaluation", "hall ticket", "marksheet"}},
		{Domain: domain.DomainAcademics, Keywords: []string{"attendance", "course", "credit", "syllabus", "transcript"}},
	})
}

// Detect returns the first domain whose keyword is contained in the query,
// case-insensitively. ok is false when no keyword matches.
func (l *Lexicon) Detect(query string) (dom string, ok bool) {
	q := strings.ToLower(query)
	for _, e := range l.entries {
		for _, kw := range e.Keywords {
			if strings.Contains(q, kw) {
				return e.Domain, true
			}
		}
	}
	return "", false
}

// Domains returns the domain tags in lexicon order.
func (l *Lexicon) Domains() []string {
	out := make([]string, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.Domain
	}
	return out
}
