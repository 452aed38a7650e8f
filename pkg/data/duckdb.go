package data

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	_ "github.com/marcboeker/go-duckdb/v2"
)

func InitDuckDB(path string) (*sql.DB, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func migrate(db *sql.DB) error {
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS books (
			id VARCHAR PRIMARY KEY,
			url VARCHAR NOT NULL,
			provider VARCHAR,
			status VARCHAR,
			created_at TIMESTAMP
		)`); err != nil {
		return err
	}
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS chapters (
			book_id VARCHAR NOT NULL,
			filename VARCHAR NOT NULL,
			title VARCHAR,
			href VARCHAR,
			status VARCHAR,
			file_path VARCHAR,
			PRIMARY KEY (book_id, filename)
		)`)
	return err
}

// Repository stores the download history in a DuckDB file.
type Repository struct {
	db *sql.DB
}

func NewRepository(path string) (*Repository, error) {
	db, err := InitDuckDB(path)
	if err != nil {
		return nil, err
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

// SaveBook upserts a book, assigning an ID and timestamp on first save.
func (r *Repository) SaveBook(book *Book) error {
	if book.ID == "" {
		book.ID = uuid.NewString()
	}
	if book.CreatedAt.IsZero() {
		book.CreatedAt = time.Now()
	}
	_, err := r.db.Exec(
		`INSERT OR REPLACE INTO books (id, url, provider, status, created_at) VALUES (?, ?, ?, ?, ?)`,
		book.ID, book.URL, book.Provider, book.Status, book.CreatedAt,
	)
	return err
}

func (r *Repository) GetBook(id string) (*Book, error) {
	row := r.db.QueryRow(`SELECT id, url, provider, status, created_at FROM books WHERE id = ?`, id)
	var b Book
	if err := row.Scan(&b.ID, &b.URL, &b.Provider, &b.Status, &b.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *Repository) ListBooks() ([]*Book, error) {
	rows, err := r.db.Query(`SELECT id, url, provider, status, created_at FROM books ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []*Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ID, &b.URL, &b.Provider, &b.Status, &b.CreatedAt); err != nil {
			return nil, err
		}
		books = append(books, &b)
	}
	return books, rows.Err()
}

// SaveChapter records the outcome of one manifest entry for a book.
func (r *Repository) SaveChapter(bookID string, e *Entry) error {
	_, err := r.db.Exec(
		`INSERT OR REPLACE INTO chapters (book_id, filename, title, href, status, file_path) VALUES (?, ?, ?, ?, ?, ?)`,
		bookID, e.Filename, e.Title, e.Href, string(e.Status), e.FilePath,
	)
	return err
}

func (r *Repository) GetChapters(bookID string) ([]*Entry, error) {
	rows, err := r.db.Query(
		`SELECT filename, title, href, status, file_path FROM chapters WHERE book_id = ? ORDER BY filename`,
		bookID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		var e Entry
		var status string
		if err := rows.Scan(&e.Filename, &e.Title, &e.Href, &status, &e.FilePath); err != nil {
			return nil, err
		}
		e.Status = Status(status)
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

// GetBookWithChapterCount returns a book plus its total and downloaded
// chapter counts for the history listing.
func (r *Repository) GetBookWithChapterCount(id string) (*Book, int, int, error) {
	book, err := r.GetBook(id)
	if err != nil || book == nil {
		return book, 0, 0, err
	}
	row := r.db.QueryRow(
		`SELECT count(*), count(*) FILTER (WHERE status = ?) FROM chapters WHERE book_id = ?`,
		string(StatusDone), id,
	)
	var total, downloaded int
	if err := row.Scan(&total, &downloaded); err != nil {
		return book, 0, 0, err
	}
	return book, total, downloaded, nil
}
