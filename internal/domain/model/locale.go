package model

// Direction is the page-level text direction marker.
type Direction string

const (
	DirRTL  Direction = "rtl"
	DirAuto Direction = "auto"
)

// LocalePreference builds the ordered fallback list handed to the intl service.
// The default language is always last; it is not repeated when it is also active.
func LocalePreference(active, def string) []string {
	if active == "" || active == def {
		return []string{def}
	}
	return []string{active, def}
}
