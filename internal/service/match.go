package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mwhite7112/woodpantry-ingredient-groups/internal/grouping"
)

// MatchRequest asks which candidate a noisy string most likely is. Scorer
// names a scorer ("dice" or "levenshtein"); empty uses the service default.
type MatchRequest struct {
	Text       string
	Candidates []string
	Scorer     string
}

// MatchResult is returned by Match.
type MatchResult struct {
	Match string
	Index int
	Score float64
}

// Match resolves req.Text against req.Candidates. Both sides are normalized
// before scoring; the returned Match is the candidate as supplied.
func (s *Service) Match(ctx context.Context, req MatchRequest) (MatchResult, error) {
	if err := ctx.Err(); err != nil {
		return MatchResult{}, err
	}

	score := s.scorer
	if req.Scorer != "" {
		named, ok := grouping.ScorerByName(req.Scorer)
		if !ok {
			return MatchResult{}, fmt.Errorf("%w: unknown scorer %q", ErrInvalidRequest, req.Scorer)
		}
		score = named
	}

	normalized := make([]string, len(req.Candidates))
	for i, c := range req.Candidates {
		normalized[i] = grouping.Normalize(c)
	}

	best, bestScore, err := grouping.BestMatchWith(score, grouping.Normalize(req.Text), normalized)
	if err != nil {
		if errors.Is(err, grouping.ErrEmptyCandidates) {
			return MatchResult{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
		}
		return MatchResult{}, err
	}

	idx := 0
	for i, c := range normalized {
		if c == best {
			idx = i
			break
		}
	}

	return MatchResult{Match: req.Candidates[idx], Index: idx, Score: bestScore}, nil
}
