package domain

import "strings"

// Localized pairs the English and Arabic value of a bilingual field. The
// upstream API stores both variants side by side as *_en/*_ar keys; keeping
// them in one value makes "every field has both locales" structural instead
// of a naming convention.
type Localized struct {
	En string
	Ar string
}

func (l Localized) IsZero() bool {
	return l.En == "" && l.Ar == ""
}

// LocalizedLines is a bilingual string-array field (career responsibilities
// and requirements). The dashboard edits each side as one multi-line
// textarea and converts at the form boundary only.
type LocalizedLines struct {
	En []string
	Ar []string
}

// SplitLines converts textarea input to the stored line array. Lines are
// trimmed and blank lines dropped.
func SplitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// JoinLines renders a stored line array back into textarea text.
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
