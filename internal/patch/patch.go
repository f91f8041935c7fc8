// Package patch applies fixed regular-expression substitutions to pbxproj text.
package patch

import "regexp"

// Patch is a compile-time-known substitution. Replace receives the submatches of each
// match (index 0 is the whole match) and returns the text that replaces it.
type Patch struct {
	Name    string
	Pattern *regexp.Regexp
	Replace func(groups []string) string
}

// Apply replaces every match of the pattern. The boolean reports whether the result
// differs from the input; a pattern that matches nothing is a no-op.
func (p Patch) Apply(content string) (string, bool) {
	matches := p.Pattern.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return content, false
	}

	var (
		out  []byte
		last int
	)
	for _, loc := range matches {
		groups := make([]string, len(loc)/2)
		for i := range groups {
			if loc[2*i] >= 0 {
				groups[i] = content[loc[2*i]:loc[2*i+1]]
			}
		}
		out = append(out, content[last:loc[0]]...)
		out = append(out, p.Replace(groups)...)
		last = loc[1]
	}
	out = append(out, content[last:]...)

	result := string(out)
	return result, result != content
}

// Chain applies each patch to the output of the previous one. Every patch is attempted
// regardless of whether the others matched.
func Chain(content string, patches ...Patch) (string, bool) {
	result := content
	for _, p := range patches {
		result, _ = p.Apply(result)
	}
	return result, result != content
}

// Around keeps the first and last capture groups and puts body between them.
func Around(body string) func(groups []string) string {
	return func(groups []string) string {
		return groups[1] + body + groups[len(groups)-1]
	}
}

// After keeps the first capture group and follows it with tail, dropping the rest of
// the match.
func After(tail string) func(groups []string) string {
	return func(groups []string) string {
		return groups[1] + tail
	}
}
