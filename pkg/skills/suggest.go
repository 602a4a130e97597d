package skills

import "strings"

// Suggest returns up to MaxSuggestions candidate completions for the token
// currently being typed. Candidates are matched by case-insensitive
// substring against the active token, in catalog order, skipping anything
// already present (case-insensitively) among the buffer's tokens.
//
// An empty active token or an unknown category always yields nil.
func (c *Catalog) Suggest(buffer string, cat Category) []string {
	active := strings.ToLower(ActiveToken(buffer))
	if active == "" {
		return nil
	}

	candidates := c.Candidates(cat)
	if len(candidates) == 0 {
		return nil
	}

	entered := make(map[string]struct{})
	for _, t := range Tokens(buffer) {
		entered[strings.ToLower(t)] = struct{}{}
	}

	var out []string
	for _, cand := range candidates {
		lower := strings.ToLower(cand)
		if !strings.Contains(lower, active) {
			continue
		}
		if _, dup := entered[lower]; dup {
			continue
		}
		out = append(out, cand)
		if len(out) == MaxSuggestions {
			break
		}
	}
	return out
}
