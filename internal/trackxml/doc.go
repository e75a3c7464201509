// Package trackxml reads and writes the track-list document that carries
// filenames and tags between trackforge commands.
//
// A document looks like:
//
//	<?xml version="1.0"?>
//	<track_list>
//	  <global>
//	    <tag_list>
//	      <ALBUM>Record</ALBUM>
//	    </tag_list>
//	  </global>
//	  <track filename="01.flac">
//	    <tag_list>
//	      <TITLE>Intro</TITLE>
//	    </tag_list>
//	  </track>
//	</track_list>
//
// Global tags are appended to every track after the document is parsed.
package trackxml
