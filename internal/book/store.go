package book

import (
	"encoding/json"
	"errors"
	"fmt"
	iofs "io/fs"
	"path/filepath"
	"strings"

	"github.com/calvinalkan/bookshelf/internal/fs"
)

// DefaultFile is the backing file used when nothing else is configured.
const DefaultFile = "book_data.json"

const (
	filePerms = 0o644
	dirPerms  = 0o755
)

// Store owns the collection. It loads the backing file once in [Open] and
// rewrites the whole file after every mutation.
//
// Mutations are staged on a copy of the collection and committed to memory
// only after the write succeeds, so a failed write never leaves memory and
// disk out of step.
//
// A Store is not safe for concurrent use, and nothing guards the backing
// file against other processes writing it.
type Store struct {
	fs        fs.FS
	path      string
	books     []Book
	loadIssue error
}

// Open loads the collection at path. A missing, unreadable or malformed file
// yields an empty collection; the cause is available from [Store.LoadIssue].
func Open(fsys fs.FS, path string) *Store {
	s := &Store{fs: fsys, path: path}

	books, err := load(fsys, path)
	if err != nil {
		s.loadIssue = err
		books = nil
	}

	s.books = books

	return s
}

func load(fsys fs.FS, path string) ([]Book, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var books []Book

	if err := json.Unmarshal(data, &books); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return books, nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// LoadIssue returns why the backing file was ignored at load time, or nil
// if it was read cleanly or did not exist.
func (s *Store) LoadIssue() error {
	return s.loadIssue
}

// persist writes books as the new file content. Errors wrap [ErrWriteFailed].
func (s *Store) persist(books []Book) error {
	if books == nil {
		books = []Book{}
	}

	data, err := json.MarshalIndent(books, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding collection: %w", ErrWriteFailed, err)
	}

	data = append(data, '\n')

	if dir := filepath.Dir(s.path); dir != "." {
		if err := s.fs.MkdirAll(dir, dirPerms); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteFailed, err)
		}
	}

	if err := s.fs.WriteFileAtomic(s.path, data, filePerms); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	return nil
}

// commit persists next and makes it the live collection.
func (s *Store) commit(next []Book) error {
	if err := s.persist(next); err != nil {
		return err
	}

	s.books = next

	return nil
}

// staged returns a copy of the collection with room for one more record.
func (s *Store) staged() []Book {
	next := make([]Book, len(s.books), len(s.books)+1)
	copy(next, s.books)

	return next
}

// Add appends b and persists. Title, author and year are required.
// Duplicate titles are allowed.
func (s *Store) Add(b Book) error {
	if missing := b.missingFields(); len(missing) > 0 {
		return &MissingFieldError{Fields: missing}
	}

	return s.commit(append(s.staged(), b))
}

// Remove deletes the first book whose title matches case-insensitively and
// returns it. Returns [ErrNotFound] without writing if nothing matches.
func (s *Store) Remove(title string) (Book, error) {
	idx := s.indexOf(title)
	if idx < 0 {
		return Book{}, fmt.Errorf("%w: %s", ErrNotFound, title)
	}

	removed := s.books[idx]

	next := s.staged()
	next = append(next[:idx], next[idx+1:]...)

	if err := s.commit(next); err != nil {
		return Book{}, err
	}

	return removed, nil
}

// Search returns books whose title or author contains term,
// case-insensitively, in collection order. An empty term matches nothing.
//
// field is accepted but does not narrow the match: both title and author
// are always searched.
func (s *Store) Search(term string, _ Field) []Book {
	if term == "" {
		return []Book{}
	}

	needle := strings.ToLower(term)
	found := []Book{}

	for _, b := range s.books {
		if strings.Contains(strings.ToLower(b.Title), needle) ||
			strings.Contains(strings.ToLower(b.Author), needle) {
			found = append(found, b)
		}
	}

	return found
}

// Edit is an update staged by [Store.Update]. Nothing is written until it is
// passed to [Store.Save].
type Edit struct {
	index  int
	Before Book
	After  Book
}

// Update stages changes to the first book whose title matches
// case-insensitively. The collection is left untouched until [Store.Save].
func (s *Store) Update(title string, changes Changes) (Edit, error) {
	idx := s.indexOf(title)
	if idx < 0 {
		return Edit{}, fmt.Errorf("%w: %s", ErrNotFound, title)
	}

	before := s.books[idx]

	return Edit{index: idx, Before: before, After: changes.apply(before)}, nil
}

// Save applies a staged edit and persists. Returns [ErrStaleEdit] if the
// target book was changed or removed after the edit was staged.
func (s *Store) Save(e Edit) error {
	if e.index < 0 || e.index >= len(s.books) || s.books[e.index] != e.Before {
		return fmt.Errorf("%w: %s", ErrStaleEdit, e.Before.Title)
	}

	next := s.staged()
	next[e.index] = e.After

	return s.commit(next)
}

// ListAll returns a copy of the collection in insertion order.
func (s *Store) ListAll() []Book {
	out := make([]Book, len(s.books))
	copy(out, s.books)

	return out
}

// Len returns the number of books.
func (s *Store) Len() int {
	return len(s.books)
}

// Titles returns every title in collection order, duplicates included.
func (s *Store) Titles() []string {
	titles := make([]string, len(s.books))
	for i, b := range s.books {
		titles[i] = b.Title
	}

	return titles
}

// ReadingProgress counts books and the share marked read.
func (s *Store) ReadingProgress() Progress {
	p := Progress{Total: len(s.books)}

	for _, b := range s.books {
		if b.Read {
			p.Read++
		}
	}

	if p.Total > 0 {
		p.Percent = float64(p.Read) / float64(p.Total) * 100
	}

	return p
}

func (s *Store) indexOf(title string) int {
	for i, b := range s.books {
		if titleMatches(b, title) {
			return i
		}
	}

	return -1
}
