// Package id3 writes the per-track ID3 tags described in spec §4.10,
// using github.com/bogem/id3v2/v2 — a dependency with no precedent in
// the example pack, named rather than grounded (no pack repo performs
// ID3 writing; see DESIGN.md).
package id3

import (
	"fmt"
	"strconv"

	"github.com/bogem/id3v2/v2"

	"github.com/radio4000/r4fs/internal/catalog"
	"github.com/radio4000/r4fs/internal/datetime"
	"github.com/radio4000/r4fs/internal/rerr"
)

// MetadataWriter is the collaborator interface the download job's
// post-processing step depends on; a fake implementation backs tests
// that don't want to touch real audio files.
type MetadataWriter interface {
	Write(path string, track catalog.Track, index int) error
}

// TagWriter is the bogem/id3v2-backed MetadataWriter.
type TagWriter struct{}

func (TagWriter) Write(path string, track catalog.Track, index int) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return rerr.New(rerr.PostProcessFailed, "id3.Write", err)
	}
	defer tag.Close()

	tag.SetDefaultEncoding(id3v2.EncodingUTF8)

	artist, title := SplitArtistTitle(track.Title.OrElse(""))
	tag.SetTitle(title)
	tag.SetArtist(artist)

	if desc, ok := track.Description.Get(); ok && desc != "" {
		tag.AddCommentFrame(id3v2.CommentFrame{
			Encoding:    id3v2.EncodingUTF8,
			Language:    "eng",
			Description: "",
			Text:        desc,
		})
	}

	tag.AddTextFrame(tag.CommonID("Track number/Position in set"), id3v2.EncodingUTF8, strconv.Itoa(index+1))

	if created, ok := datetime.TryParse(track.CreatedAt); ok {
		tag.SetYear(fmt.Sprintf("%04d", created.Year()))
	}

	if discogs, ok := track.DiscogsURL.Get(); ok && discogs != "" {
		tag.AddUserDefinedTextFrame(id3v2.UserDefinedTextFrame{
			Encoding:    id3v2.EncodingUTF8,
			Description: "DISCOGS_URL",
			Value:       discogs,
		})
	}
	tag.AddUserDefinedTextFrame(id3v2.UserDefinedTextFrame{
		Encoding:    id3v2.EncodingUTF8,
		Description: "SOURCE_URL",
		Value:       track.URL,
	})

	if err := tag.Save(); err != nil {
		return rerr.New(rerr.PostProcessFailed, "id3.Write", err)
	}
	return nil
}
