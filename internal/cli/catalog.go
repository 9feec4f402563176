package cli

import (
	"fmt"

	"archwiz/internal/profile"
	"archwiz/internal/question"
)

// loadCatalog returns the built-in question catalog, or one loaded from
// path when it is non-empty.
func loadCatalog(path string) (question.Catalog, error) {
	if path == "" {
		return question.Builtin(), nil
	}
	return question.LoadCatalog(path)
}

// checkProfileKeys rejects catalogs that ask questions the profile cannot
// store. This runs before the wizard starts so a bad catalog fails fast
// instead of after the last answer.
func checkProfileKeys(catalog question.Catalog) error {
	for _, q := range catalog.Questions {
		if !profile.IsKnownKey(q.Key) {
			return fmt.Errorf("catalog question %q does not map to a profile field", q.Key)
		}
	}
	return nil
}
