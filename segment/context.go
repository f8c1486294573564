package segment

// Context is a read-only snapshot of editor and workspace state, captured by
// the host integration once per redraw and passed to every provider. All
// fields are plain values; missing state is represented by the zero value,
// never by an error.
type Context struct {
	// FileType is the host's type name for the current buffer ("go",
	// "markdown", ...). Empty when unset.
	FileType string

	// Path is the current file's absolute path.
	Path string

	// RelPath is the current file's path relative to the working directory.
	// Equals Path when the file is not under the working directory.
	RelPath string

	// HomePath is the current file's path with the home directory replaced
	// by "~". Equals Path when the file is not under home.
	HomePath string

	// Base is the current file's base name.
	Base string

	// Readonly and Modified are the current buffer's flags.
	Readonly bool
	Modified bool

	// WorkDir is the absolute working-directory path.
	WorkDir string

	// Spell reports whether spellchecking is enabled in the current window,
	// and SpellLangs is the configured language list ("en_us,de", ...).
	Spell      bool
	SpellLangs string

	// Client is the identity of the first attached language client, or
	// empty when none is attached.
	Client string
}
