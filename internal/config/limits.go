package config

const (
	// MaxFolderNameLength is the maximum length for folder names.
	// Limited to 255 to provide reasonable UX (names should be short
	// and descriptive).
	MaxFolderNameLength = 255

	// MaxDocumentTitleLength is the maximum length for note titles.
	// Same bound as folder names for consistency.
	MaxDocumentTitleLength = 255
)
