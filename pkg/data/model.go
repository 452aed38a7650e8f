package data

import "time"

// Status is the outcome of one manifest entry in the download pipeline.
type Status string

const (
	StatusPending Status = "pending"
	StatusDone    Status = "done"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped" // destination file already existed
)

// Entry is a single chapter discovered on a source page.
type Entry struct {
	Filename string // derived basename, unique within one manifest
	Href     string // resource fetch location
	Title    string // display title used for tagging and playlists
	FilePath string // destination path, set once the output dir is known
	Status   Status
}

// Manifest is the ordered set of chapters extracted from one page.
// Entries are keyed by filename; inserting an existing filename
// replaces the entry in place, keeping its original position.
type Manifest struct {
	entries []*Entry
	index   map[string]int
}

func NewManifest() *Manifest {
	return &Manifest{index: map[string]int{}}
}

// Put inserts an entry, overwriting any previous entry with the same
// filename (last write wins, position of first insertion kept).
func (m *Manifest) Put(e *Entry) {
	if e.Status == "" {
		e.Status = StatusPending
	}
	if pos, ok := m.index[e.Filename]; ok {
		m.entries[pos] = e
		return
	}
	m.index[e.Filename] = len(m.entries)
	m.entries = append(m.entries, e)
}

// Get returns the entry for a filename, or nil.
func (m *Manifest) Get(filename string) *Entry {
	pos, ok := m.index[filename]
	if !ok {
		return nil
	}
	return m.entries[pos]
}

// Entries returns entries in insertion order.
func (m *Manifest) Entries() []*Entry {
	return m.entries
}

func (m *Manifest) Len() int {
	return len(m.entries)
}

// Book is one recorded download run for the history library.
type Book struct {
	ID        string
	URL       string
	Provider  string
	Status    string // "completed", "partial", "empty"
	CreatedAt time.Time
}

// SearchResult is one (link, title) hit from a provider's search page.
type SearchResult struct {
	Link     string
	Title    string
	Provider string
}
