package binding

import (
	"strings"
	"unicode"
)

// DefaultRenames maps wire names that collide with reserved identifiers to
// the attribute names models declare them under. It applies to every model
// that does not provide its own table.
var DefaultRenames = map[string]string{
	"id": "id_",
}

// Renamer is implemented by models whose wire names differ from their
// attribute names in more ways than DefaultRenames covers. Renames maps wire
// name to attribute name.
type Renamer interface {
	Renames() map[string]string
}

func renames(m Model) map[string]string {
	if r, ok := m.(Renamer); ok {
		return r.Renames()
	}
	return DefaultRenames
}

// AttributeName converts a wire key to the attribute name m declares it
// under. camelCase keys are converted to snake_case first.
func AttributeName(m Model, key string) string {
	key = SnakeCase(key)
	if attr, ok := renames(m)[key]; ok {
		return attr
	}
	return key
}

// WireName converts an attribute name back to the key it is sent under.
func WireName(m Model, attr string) string {
	for wire, a := range renames(m) {
		if a == attr {
			return wire
		}
	}
	return attr
}

// SnakeCase converts camelCase and PascalCase identifiers to snake_case.
// Runs of capitals are treated as one word ("sheetID" becomes "sheet_id",
// "HTMLBody" becomes "html_body"). snake_case input is returned unchanged.
func SnakeCase(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range runes {
		if !unicode.IsUpper(r) {
			b.WriteRune(r)
			continue
		}
		if i > 0 && runes[i-1] != '_' {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
