package sanity

import "trackforge/internal/tags"

// Required tags must be present on every track.
var Required = []string{tags.Album, tags.Artist, tags.Title}

// Expected tags produce a warning when absent.
var Expected = []string{
	tags.Contact,
	tags.Copyright,
	tags.Date,
	tags.Description,
	tags.Genre,
	tags.License,
	tags.Location,
	tags.Organization,
	tags.TrackNumber,
}

// Single tags produce a warning when present more than once.
var Single = []string{tags.Album, tags.Artist, tags.Title, tags.TrackNumber}

// Known lists every tag name that does not trigger an unexpected-tag warning.
var Known = []string{
	tags.Album,
	tags.Artist,
	tags.Contact,
	tags.Copyright,
	tags.Date,
	tags.Description,
	tags.Genre,
	tags.ISRC,
	tags.License,
	tags.Location,
	tags.Organization,
	tags.Performer,
	tags.Title,
	tags.TrackNumber,
	tags.Version,
}
