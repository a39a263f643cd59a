// Package panel holds the one pagination mechanism shared by every list
// surface of the client. Each panel owns its own Pager, so one panel's
// failure or slow load never leaks into a sibling.
package panel

import "context"

// Page is the wire shape every paginated endpoint returns: a batch of items
// plus an opaque cursor. A nil cursor signals end-of-list.
type Page[T any] struct {
	Items      []T
	NextCursor *string
}

// FetchFunc loads one page. cursor is "" for the first page.
type FetchFunc[T any] func(ctx context.Context, cursor string) (Page[T], error)

// Pager tracks the items, cursor and status of one paginated list. It is
// not safe for concurrent use; a panel drives it from its own flow, which
// also serializes loads and closes the stale-response window.
type Pager[T any] struct {
	fetch FetchFunc[T]

	items        []T
	next         *string
	prependOlder bool
	loaded       bool
	busy         bool
}

// Option configures a Pager.
type Option[T any] func(*Pager[T])

// WithPrependOlder makes More insert fetched pages before the existing
// items. Chat history uses this: older pages load on top, newest stay last.
func WithPrependOlder[T any]() Option[T] {
	return func(p *Pager[T]) { p.prependOlder = true }
}

// New builds a Pager around fetch.
func New[T any](fetch FetchFunc[T], opts ...Option[T]) *Pager[T] {
	p := &Pager[T]{fetch: fetch}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Items returns the accumulated items.
func (p *Pager[T]) Items() []T { return p.items }

// Loaded reports whether at least one page was fetched successfully.
func (p *Pager[T]) Loaded() bool { return p.loaded }

// HasMore reports whether another page is available.
func (p *Pager[T]) HasMore() bool { return p.next != nil && *p.next != "" }

// Refresh resets the cursor and replaces all items with the first page.
// Filter changes always go through here, never through More.
func (p *Pager[T]) Refresh(ctx context.Context) error {
	if p.busy {
		return nil
	}
	p.busy = true
	defer func() { p.busy = false }()

	page, err := p.fetch(ctx, "")
	if err != nil {
		return err
	}
	p.items = page.Items
	p.next = page.NextCursor
	p.loaded = true
	return nil
}

// More appends (or prepends) the next page. It is a no-op at end-of-list,
// so repeated "load more" at the bottom never refires the first page.
func (p *Pager[T]) More(ctx context.Context) error {
	if p.busy || !p.HasMore() {
		return nil
	}
	p.busy = true
	defer func() { p.busy = false }()

	page, err := p.fetch(ctx, *p.next)
	if err != nil {
		return err
	}
	if p.prependOlder {
		p.items = append(page.Items, p.items...)
	} else {
		p.items = append(p.items, page.Items...)
	}
	p.next = page.NextCursor
	return nil
}

// Patch applies fn to every item for which match returns true. Panels use
// it to splice server-returned snapshots (engagement updates) into the list
// in place instead of refetching.
func (p *Pager[T]) Patch(match func(T) bool, fn func(*T)) {
	for i := range p.items {
		if match(p.items[i]) {
			fn(&p.items[i])
		}
	}
}

// Remove drops every item for which match returns true.
func (p *Pager[T]) Remove(match func(T) bool) {
	kept := p.items[:0]
	for _, item := range p.items {
		if !match(item) {
			kept = append(kept, item)
		}
	}
	p.items = kept
}
