package grouping

import (
	"github.com/agnivade/levenshtein"
)

// Scorer returns a 0.0–1.0 similarity between two normalized strings.
type Scorer func(a, b string) float64

// Dice returns the Dice coefficient over the sets of character bigrams of a
// and b: 2*|A∩B| / (|A|+|B|). Identical strings score 1.0; otherwise a string
// shorter than two characters scores 0.0.
func Dice(a, b string) float64 {
	if a == b {
		return 1.0
	}
	ra, rb := []rune(a), []rune(b)
	if len(ra) < 2 || len(rb) < 2 {
		return 0.0
	}
	ba, bb := bigrams(ra), bigrams(rb)
	shared := 0
	for bg := range ba {
		if _, ok := bb[bg]; ok {
			shared++
		}
	}
	return 2 * float64(shared) / float64(len(ba)+len(bb))
}

type bigram [2]rune

func bigrams(r []rune) map[bigram]struct{} {
	set := make(map[bigram]struct{}, len(r)-1)
	for i := 0; i < len(r)-1; i++ {
		set[bigram{r[i], r[i+1]}] = struct{}{}
	}
	return set
}

// Levenshtein returns 1.0 - distance/max(len(a), len(b)), counting runes.
func Levenshtein(a, b string) float64 {
	if a == b {
		return 1.0
	}
	maxLen := len([]rune(a))
	if lb := len([]rune(b)); lb > maxLen {
		maxLen = lb
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(maxLen)
}

// ScorerByName resolves a configured scorer name. Unknown names report false.
func ScorerByName(name string) (Scorer, bool) {
	switch name {
	case "", "dice":
		return Dice, true
	case "levenshtein":
		return Levenshtein, true
	default:
		return nil, false
	}
}

// BestMatch returns the candidate most similar to s under Dice.
func BestMatch(s string, candidates []string) (string, error) {
	match, _, err := BestMatchWith(Dice, s, candidates)
	return match, err
}

// BestMatchWith returns the candidate scoring highest against s, and its
// score. Ties go to the earliest candidate.
func BestMatchWith(score Scorer, s string, candidates []string) (string, float64, error) {
	if len(candidates) == 0 {
		return "", 0, ErrEmptyCandidates
	}
	if score == nil {
		score = Dice
	}
	best, bestScore := 0, score(s, candidates[0])
	for i := 1; i < len(candidates); i++ {
		if sc := score(s, candidates[i]); sc > bestScore {
			best, bestScore = i, sc
		}
	}
	return candidates[best], bestScore, nil
}
