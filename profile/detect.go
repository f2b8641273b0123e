package profile

import "strings"

// DetectThreshold is the minimum match score a candidate profile must exceed
// to win detection; below it the default profile is used.
const DetectThreshold = 3

// Detect scores each candidate profile against the document text and returns
// the best match. When no candidate clears the threshold, or no candidates
// are given, the built-in default wins.
func Detect(text string, candidates []Profile) Profile {
	return DetectWithDefault(text, candidates, Default())
}

// DetectWithDefault is Detect with an explicit fallback profile
func DetectWithDefault(text string, candidates []Profile, fallback Profile) Profile {
	lower := strings.ToLower(text)

	best := fallback
	bestScore := 0
	for _, p := range candidates {
		if score := matchScore(lower, p); score > bestScore {
			best = p
			bestScore = score
		}
	}
	if bestScore > DetectThreshold {
		return best
	}
	return fallback
}

// matchScore rates how well lowered document text matches a profile.
// Bank name is the strongest signal; header keywords outweigh generic
// section keywords. Only the leading keywords of each list are consulted
// so verbose profiles do not outscore specific ones.
func matchScore(lower string, p Profile) int {
	score := 0
	if name := strings.ToLower(p.Name); name != "" && strings.Contains(lower, name) {
		score += 10
	}
	for i, kw := range p.SkipKeywords {
		if i >= 5 {
			break
		}
		if strings.Contains(lower, strings.ToLower(kw)) {
			score++
		}
	}
	for _, kw := range p.HeaderKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			score += 2
		}
	}
	for _, keywords := range p.TransactionKeywords {
		for i, kw := range keywords {
			if i >= 3 {
				break
			}
			if strings.Contains(lower, strings.ToLower(kw)) {
				score++
			}
		}
	}
	return score
}

// Spanish and English cue words for language detection. Spanish carries the
// statement vocabulary of the document family; English covers statements
// issued bilingually.
var (
	spanishCues = []string{"estado de cuenta", "sucursal", "periodo", "saldo", "cargos", "abonos", "fecha"}
	englishCues = []string{"statement", "account", "balance", "deposit", "withdrawal", "date"}
)

// DetectLanguage guesses the document language from cue-word frequency.
// It returns an ISO 639-1 code, defaulting to "es" when nothing matches.
func DetectLanguage(text string) string {
	lower := strings.ToLower(text)

	spanish, english := 0, 0
	for _, cue := range spanishCues {
		spanish += strings.Count(lower, cue)
	}
	for _, cue := range englishCues {
		english += strings.Count(lower, cue)
	}
	if english > spanish {
		return "en"
	}
	return "es"
}
