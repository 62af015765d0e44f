package classify

import "strings"

// NormalizeLocation reduces a free-text facility name to its canonical form:
// parenthesized qualifiers and known prefix/suffix tokens are stripped, the
// result is lower-cased with whitespace collapsed, and the alias table maps
// known multi-variant facilities onto one name. "Thunder Horse PDQ" and
// "Thunder Horse Production" both normalize to "thunder horse".
func (c *Classifier) NormalizeLocation(raw string) string {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	if lowered == "" {
		return ""
	}
	if canonical, ok := c.aliases[lowered]; ok {
		return canonical
	}

	stripped := c.stripTokens(dropParens(lowered))
	if canonical, ok := c.aliases[stripped]; ok {
		return canonical
	}
	return stripped
}

// LocationsMatch reports whether two free-text locations refer to the same
// facility: equal normalized forms, or one containing the other as a
// substring after normalization (the fallback for free-text fields that
// embed the facility name in a longer phrase).
func (c *Classifier) LocationsMatch(a, b string) bool {
	na, nb := c.NormalizeLocation(a), c.NormalizeLocation(b)
	if na == "" || nb == "" {
		return false
	}
	return na == nb || strings.Contains(na, nb) || strings.Contains(nb, na)
}

// stripTokens removes known qualifier tokens from both ends of the name,
// repeatedly, so "thunder horse pdq" and "prod thunder horse" both reduce to
// "thunder horse".
func (c *Classifier) stripTokens(s string) string {
	fields := strings.Fields(s)
	for len(fields) > 1 {
		if _, ok := c.stripSet[fields[len(fields)-1]]; ok {
			fields = fields[:len(fields)-1]
			continue
		}
		if _, ok := c.stripSet[fields[0]]; ok {
			fields = fields[1:]
			continue
		}
		break
	}
	return strings.Join(fields, " ")
}

// dropParens removes parenthesized segments: "atlantis (drilling)" -> "atlantis".
func dropParens(s string) string {
	var b strings.Builder
	depth := 0
	for _, r := range s {
		switch {
		case r == '(':
			depth++
		case r == ')':
			if depth > 0 {
				depth--
			}
		case depth == 0:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
