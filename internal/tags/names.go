package tags

// Well-known tag names.
const (
	Album        = "album"
	Artist       = "artist"
	Contact      = "contact"
	Copyright    = "copyright"
	Date         = "date"
	Description  = "description"
	Genre        = "genre"
	ISRC         = "isrc"
	License      = "license"
	Location     = "location"
	Organization = "organization"
	Performer    = "performer"
	Title        = "title"
	TrackNumber  = "tracknumber"
	Version      = "version"
)
