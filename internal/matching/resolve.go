package matching

import (
	"strings"

	"github.com/posturelab/coach-backend/internal/domain"
)

// Result carries the outcome of resolving a batch of requested names
// against a catalog's canonical names.
type Result struct {
	Resolved   []string
	Records    []domain.ResolutionRecord
	Unresolved []string
}

// Resolve maps each requested name to a canonical catalog name, first by
// case-insensitive exact match, then by closest Levenshtein match within
// maxDistance. Output order follows the input; a name the model repeated
// stays repeated. Anything outside tolerance lands in Unresolved.
func Resolve(requested []string, canonical []string, maxDistance int) Result {
	byKey := make(map[string]string, len(canonical))
	for _, name := range canonical {
		key := normalize(name)
		if _, ok := byKey[key]; !ok {
			byKey[key] = name
		}
	}

	var res Result
	for _, req := range requested {
		trimmed := strings.TrimSpace(req)
		if trimmed == "" {
			continue
		}

		if match, ok := byKey[normalize(trimmed)]; ok {
			res.Resolved = append(res.Resolved, match)
			res.Records = append(res.Records, domain.ResolutionRecord{
				Requested: trimmed,
				Resolved:  match,
				Method:    domain.ResolveExact,
			})
			continue
		}

		if match, dist, ok := ClosestMatch(trimmed, canonical, maxDistance); ok {
			res.Resolved = append(res.Resolved, match)
			res.Records = append(res.Records, domain.ResolutionRecord{
				Requested: trimmed,
				Resolved:  match,
				Method:    domain.ResolveFuzzy,
				Distance:  dist,
			})
			continue
		}

		res.Unresolved = append(res.Unresolved, trimmed)
	}
	return res
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
