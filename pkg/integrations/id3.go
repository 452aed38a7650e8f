package integrations

import (
	id3v2 "github.com/bogem/id3v2/v2"
)

// ID3Tagger reads and writes ID3v2 title tags on MP3 files.
type ID3Tagger struct{}

func NewID3Tagger() ID3Tagger {
	return ID3Tagger{}
}

func (ID3Tagger) Load(path string) (TagFile, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, err
	}
	return &id3File{tag: tag}, nil
}

type id3File struct {
	tag *id3v2.Tag
}

func (f *id3File) Title() string {
	return f.tag.Title()
}

func (f *id3File) SetTitle(title string) {
	f.tag.SetTitle(title)
}

func (f *id3File) Save() error {
	return f.tag.Save()
}

func (f *id3File) Close() error {
	return f.tag.Close()
}
