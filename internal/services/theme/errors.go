package theme

import "errors"

// ErrInvalidStoredTheme marks a persisted value other than light or dark.
// It only appears inside a LoadResult.
var ErrInvalidStoredTheme = errors.New("stored theme is not light or dark")
