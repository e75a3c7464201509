package logging

const (
	// FieldComponent names the package emitting a log line.
	FieldComponent = "component"
	// FieldFile is the source file a message concerns.
	FieldFile = "file"
	// FieldAlbum is an album name.
	FieldAlbum = "album"
	// FieldTag is a metadata tag name.
	FieldTag = "tag"
	// FieldCheck identifies the sanity rule that produced a warning.
	FieldCheck = "check"
)
