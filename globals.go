package smartsheet

const (
	// ClientVersion is the version of the smartsheet CLI. Bump it whenever the
	// wire shape of a model or the behavior of a command changes.
	ClientVersion = "2026-10-18"

	// DefaultConfigFile is the name of the settings file looked up in the
	// user's home directory and next to the binary.
	DefaultConfigFile = ".smartsheet.yml"
	// LocalConfigFile overrides DefaultConfigFile key by key when it exists in
	// the working directory.
	LocalConfigFile = ".smartsheet.local.yml"

	// JSONFormat and YAMLFormat are the output encodings the CLI can render a
	// model in.
	JSONFormat = "json"
	YAMLFormat = "yaml"
)

// OutputFormats lists every supported output encoding.
var OutputFormats = []string{JSONFormat, YAMLFormat}
