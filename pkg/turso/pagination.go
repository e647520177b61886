package turso

import (
	"context"
	"iter"
)

// Page is one page of a cursor-paginated listing.
type Page[T any] struct {
	Items []T

	// NextCursor carries the continuation token for the following page.
	// A nil (or empty) cursor is authoritative: the listing is exhausted,
	// regardless of what HasMore says.
	NextCursor *string

	// HasMore is advisory only.
	HasMore bool
}

// PageFunc fetches a single page of a listing. A nil cursor requests the
// first page; a non-nil cursor carries the token returned by the previous
// page.
type PageFunc[T any] func(ctx context.Context, cursor *string) (*Page[T], error)

// iteratorState tracks the cursor position explicitly so that "no cursor
// sent yet" and "no more pages" can never be confused.
type iteratorState uint8

const (
	stateInitial iteratorState = iota
	stateContinuing
	stateDone
)

// Iterator is a lazy, pull-driven stream over a cursor-paginated listing.
// No request is issued until the consumer asks for an element beyond what
// the current page buffered, and exactly one request is ever in flight.
//
// A page-fetch failure ends the stream without surfacing the error: items
// already handed to the consumer cannot be taken back, so the stream
// degrades to early termination instead of raising mid-iteration. Callers
// that need all-or-nothing semantics should page manually with the
// underlying List call.
//
// An Iterator is not safe for concurrent use and cannot be restarted;
// construct a new one to re-read the listing.
type Iterator[T any] struct {
	ctx    context.Context
	fetch  PageFunc[T]
	state  iteratorState
	cursor string
	buffer []T
	pos    int
}

// NewIterator creates an iterator over fetch. The context applies to every
// page request the iterator issues.
func NewIterator[T any](ctx context.Context, fetch PageFunc[T]) *Iterator[T] {
	return &Iterator[T]{
		ctx:   ctx,
		fetch: fetch,
		state: stateInitial,
	}
}

// Next returns the next item. The second return is false once the stream is
// exhausted or a page fetch failed.
func (it *Iterator[T]) Next() (T, bool) {
	var zero T

	for it.pos >= len(it.buffer) {
		if it.state == stateDone {
			return zero, false
		}

		if !it.fetchPage() {
			return zero, false
		}
	}

	item := it.buffer[it.pos]
	it.pos++

	return item, true
}

// HasNext reports whether another item is available. When the current page
// is drained this pulls the following page, so a call may block on the
// network just like Next.
func (it *Iterator[T]) HasNext() bool {
	for it.pos >= len(it.buffer) {
		if it.state == stateDone {
			return false
		}

		if !it.fetchPage() {
			return false
		}
	}

	return true
}

// fetchPage issues one listing request and threads the returned cursor.
// It reports false when the stream terminated (error or already done).
func (it *Iterator[T]) fetchPage() bool {
	var cursor *string

	if it.state == stateContinuing {
		token := it.cursor
		cursor = &token
	}

	page, err := it.fetch(it.ctx, cursor)
	if err != nil || page == nil {
		it.state = stateDone
		it.buffer = nil
		it.pos = 0

		return false
	}

	it.buffer = page.Items
	it.pos = 0

	if page.NextCursor != nil && *page.NextCursor != "" {
		it.state = stateContinuing
		it.cursor = *page.NextCursor
	} else {
		it.state = stateDone
	}

	return true
}

// All drains the remaining items into a slice.
func (it *Iterator[T]) All() []T {
	var items []T

	for {
		item, ok := it.Next()
		if !ok {
			return items
		}

		items = append(items, item)
	}
}

// ForEach calls fn for every remaining item. An error returned by fn stops
// iteration and is returned; page-fetch failures still terminate silently.
func (it *Iterator[T]) ForEach(fn func(item T) error) error {
	for {
		item, ok := it.Next()
		if !ok {
			return nil
		}

		if err := fn(item); err != nil {
			return err
		}
	}
}

// Items exposes the stream as a range-over-func sequence:
//
//	for log := range it.Items() {
//	    ...
//	}
func (it *Iterator[T]) Items() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			item, ok := it.Next()
			if !ok {
				return
			}

			if !yield(item) {
				return
			}
		}
	}
}
