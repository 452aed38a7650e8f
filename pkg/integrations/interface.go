package integrations

// TagFile is an open metadata handle for one audio file.
type TagFile interface {
	Title() string
	SetTitle(title string)
	Save() error
	Close() error
}

// Tagger loads tag metadata from audio files.
type Tagger interface {
	Load(path string) (TagFile, error)
}
