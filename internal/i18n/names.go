package i18n

import "github.com/ducnm/elementary/internal/periodic"

// CategoryName returns the localized display name of a category.
func (t *Translator) CategoryName(c periodic.Category) string {
	return t.T("category." + string(c))
}

// StateName returns the localized display name of a physical state.
func (t *Translator) StateName(s periodic.State) string {
	return t.T("state." + string(s))
}
