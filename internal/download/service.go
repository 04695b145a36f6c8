package download

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/vmunix/ondemand/internal/catalog"
)

// DefaultMaxResults is the number of candidates listed for an ambiguous fragment.
const DefaultMaxResults = 10

// maxSuggestions caps the "did you mean" list for a fragment with no match.
const maxSuggestions = 3

// Outcome classifies a title lookup.
type Outcome int

const (
	OutcomeNoMatch Outcome = iota
	OutcomeAmbiguous
	OutcomeDispatched
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNoMatch:
		return "no match"
	case OutcomeAmbiguous:
		return "ambiguous"
	case OutcomeDispatched:
		return "dispatched"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Match is the result of MatchAndDownload. Only a single match downloads anything.
type Match struct {
	Outcome     Outcome
	Title       catalog.Title   // set when Outcome is OutcomeDispatched
	Candidates  []catalog.Title // at most the configured maximum
	Truncated   bool            // more candidates exist than were listed
	Suggestions []string        // close titles when nothing matched
}

// Report renders the outcome for the terminal.
func (m *Match) Report() string {
	var b strings.Builder
	switch m.Outcome {
	case OutcomeNoMatch:
		b.WriteString("No results")
		if len(m.Suggestions) > 0 {
			b.WriteString("\n\nDid you mean:\n")
			for _, s := range m.Suggestions {
				b.WriteString("  " + s + "\n")
			}
		}
	case OutcomeAmbiguous:
		b.WriteString("Multiple titles found:\n\n")
		for _, t := range m.Candidates {
			b.WriteString(t.Title + "\n")
		}
		if m.Truncated {
			b.WriteString("...\n")
		}
	case OutcomeDispatched:
		fmt.Fprintf(&b, "Dispatched %s", m.Title.Title)
	}
	return b.String()
}

// TitleStore looks titles up in the catalog.
type TitleStore interface {
	FindTitles(fragment string, limit int) ([]catalog.Title, error)
	AllTitles() ([]catalog.Title, error)
}

// Downloader downloads every part of one title.
type Downloader interface {
	DownloadAll(ctx context.Context, title catalog.Title, outputDir string, concurrency int) error
}

// Service matches a user fragment to exactly one title before downloading it.
type Service struct {
	titles     TitleStore
	downloader Downloader
	maxResults int
	log        *slog.Logger
}

// NewService creates a service. maxResults below 1 uses DefaultMaxResults.
func NewService(titles TitleStore, downloader Downloader, maxResults int, log *slog.Logger) *Service {
	if maxResults < 1 {
		maxResults = DefaultMaxResults
	}
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		titles:     titles,
		downloader: downloader,
		maxResults: maxResults,
		log:        log.With("component", "download"),
	}
}

// Lookup classifies fragment without downloading. It reads one row past the
// limit so truncation is known without counting.
func (s *Service) Lookup(fragment string) (*Match, error) {
	found, err := s.titles.FindTitles(fragment, s.maxResults+1)
	if err != nil {
		return nil, fmt.Errorf("find titles: %w", err)
	}

	switch len(found) {
	case 0:
		m := &Match{Outcome: OutcomeNoMatch}
		all, err := s.titles.AllTitles()
		if err != nil {
			s.log.Warn("suggestions unavailable", "error", err)
			return m, nil
		}
		m.Suggestions = Suggest(fragment, all, maxSuggestions)
		return m, nil
	case 1:
		return &Match{Outcome: OutcomeDispatched, Title: found[0]}, nil
	default:
		m := &Match{Outcome: OutcomeAmbiguous, Candidates: found}
		if len(found) > s.maxResults {
			m.Candidates = found[:s.maxResults]
			m.Truncated = true
		}
		return m, nil
	}
}

// MatchAndDownload downloads the title matching fragment when exactly one
// does. Zero or several matches are reported through the returned Match and
// are not errors; nothing is fetched for them.
func (s *Service) MatchAndDownload(ctx context.Context, fragment, outputDir string, concurrency int) (*Match, error) {
	m, err := s.Lookup(fragment)
	if err != nil {
		return nil, err
	}
	if m.Outcome != OutcomeDispatched {
		s.log.Info("no download", "fragment", fragment, "outcome", m.Outcome, "candidates", len(m.Candidates))
		return m, nil
	}

	if err := s.downloader.DownloadAll(ctx, m.Title, outputDir, concurrency); err != nil {
		return m, err
	}
	return m, nil
}
