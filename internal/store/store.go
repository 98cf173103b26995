// Package store holds the locally-owned, optimistically-updated view of the
// current user's notifications and keeps it in sync with the notification
// service of record.
//
// Every mutation is applied locally first, then sent to the remote. A failed
// remote update rolls back exactly the changes of the operation that failed;
// changes a later operation has applied on top are left alone, and inherit
// the failed operation's pre-call value as their own rollback target.
package store

import (
	"context"
	"log/slog"
	"maps"
	"sync"

	"github.com/nexus-dashboard/internal/domain"
	"golang.org/x/sync/errgroup"
)

// Remote is the notification service of record.
type Remote interface {
	ListNotifications(ctx context.Context) ([]domain.Notification, error)
	SetNotificationRead(ctx context.Context, id string, isRead bool) error
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used to report remote failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithOnChange registers a callback invoked with a copy of the collection
// after every local state change, including optimistic applies and rollbacks.
func WithOnChange(fn func([]domain.Notification)) Option {
	return func(s *Store) {
		s.onChange = fn
	}
}

// WithConcurrency bounds the number of in-flight remote updates issued by
// MarkAllRead. Zero or less means unbounded.
func WithConcurrency(n int) Option {
	return func(s *Store) {
		s.concurrency = n
	}
}

// Store is a single-writer container for the notification collection.
// It is safe for concurrent use; remote calls are made without holding the lock.
type Store struct {
	remote      Remote
	logger      *slog.Logger
	onChange    func([]domain.Notification)
	concurrency int

	mu            sync.Mutex
	notifications []domain.Notification
	pending       map[string][]pendingWrite
	seq           uint64
	loading       bool
	loadErr       error
	usingFallback bool
}

// New creates an empty store backed by remote.
func New(remote Remote, opts ...Option) *Store {
	s := &Store{
		remote:   remote,
		logger:   slog.Default(),
		pending:  make(map[string][]pendingWrite),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load fetches the collection from the remote.
//
// A successful non-empty fetch replaces local state. When the fetch fails or
// comes back empty, local state is kept if there is any; otherwise the
// fallback seed set is installed. The returned error is the fetch error, if
// any; the store is usable either way.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	fetched, err := s.remote.ListNotifications(ctx)

	s.mu.Lock()
	s.loading = false
	s.loadErr = err
	switch {
	case err == nil && len(fetched) > 0:
		s.replaceLocked(fetched)
		s.usingFallback = false
	case len(s.notifications) == 0:
		s.replaceLocked(FallbackNotifications())
		s.usingFallback = true
	}
	view, fallback := s.copyLocked(), s.usingFallback
	s.mu.Unlock()

	if err != nil {
		s.logger.Warn("load notifications failed", "err", err, "fallback", fallback)
	} else if len(fetched) == 0 {
		s.logger.Info("notification service returned no notifications", "fallback", fallback)
	}
	s.notify(view)
	return err
}

// ToggleRead flips the read flag of the notification with the given id,
// then tells the remote. If the remote rejects the update the flip is
// reverted. An unknown id is a no-op and returns an Idle Op.
func (s *Store) ToggleRead(ctx context.Context, id string) Op {
	op := Op{Kind: OpToggleRead}

	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return op
	}
	prev := s.notifications[i].IsRead
	next := !prev
	s.notifications[i].IsRead = next
	op.begin(map[string]bool{id: prev}, s.pushLocked(id, prev))
	view := s.copyLocked()
	s.mu.Unlock()
	s.notify(view)

	if err := s.remote.SetNotificationRead(ctx, id, next); err != nil {
		s.logger.Warn("toggle read failed, rolling back", "id", id, "isRead", next, "err", err)
		s.rollBack(&op, err)
		return op
	}
	s.commit(&op)
	return op
}

// MarkAllRead marks every unread notification as read, then sends one
// remote update per notification concurrently. If any update fails, every
// notification this call marked is restored to its pre-call value.
// With nothing unread it returns an Idle Op without contacting the remote.
func (s *Store) MarkAllRead(ctx context.Context) Op {
	op := Op{Kind: OpMarkAllRead}

	s.mu.Lock()
	snapshot := make(map[string]bool)
	var ids []string
	for i := range s.notifications {
		n := &s.notifications[i]
		if n.IsRead {
			continue
		}
		snapshot[n.ID] = false
		n.IsRead = true
		ids = append(ids, n.ID)
	}
	if len(ids) == 0 {
		s.mu.Unlock()
		return op
	}
	s.seq++
	for _, id := range ids {
		s.pending[id] = append(s.pending[id], pendingWrite{seq: s.seq, prev: false})
	}
	op.begin(snapshot, s.seq)
	view := s.copyLocked()
	s.mu.Unlock()
	s.notify(view)

	var g errgroup.Group
	if s.concurrency > 0 {
		g.SetLimit(s.concurrency)
	}
	for _, id := range ids {
		g.Go(func() error {
			return s.remote.SetNotificationRead(ctx, id, true)
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Warn("mark all read failed, rolling back", "count", len(ids), "err", err)
		s.rollBack(&op, err)
		return op
	}
	s.commit(&op)
	return op
}

// UnreadCount returns the number of unread notifications.
func (s *Store) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, item := range s.notifications {
		if !item.IsRead {
			n++
		}
	}
	return n
}

// Notifications returns a copy of the collection in source order.
func (s *Store) Notifications() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyLocked()
}

// Get returns a copy of the notification with the given id.
func (s *Store) Get(id string) (domain.Notification, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(id)
	if i < 0 {
		return domain.Notification{}, false
	}
	return cloneNotification(s.notifications[i]), true
}

// Loading reports whether a Load is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the error of the most recent Load, or nil.
func (s *Store) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadErr
}

// UsingFallback reports whether the collection is the built-in seed set.
func (s *Store) UsingFallback() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.usingFallback
}

// pendingWrite is one unsettled optimistic write to a notification. prev is
// the value a rollback of that write restores.
type pendingWrite struct {
	seq  uint64
	prev bool
}

// pushLocked records a new optimistic write to id over the value prev.
func (s *Store) pushLocked(id string, prev bool) uint64 {
	s.seq++
	s.pending[id] = append(s.pending[id], pendingWrite{seq: s.seq, prev: prev})
	return s.seq
}

// rollBack undoes op's writes. For each id, if op's write is the latest
// one its pre-call value is restored; otherwise the next write up the stack
// takes that value as its own rollback target, so a later failure of that
// write still returns the id to where it was before both.
func (s *Store) rollBack(op *Op, err error) {
	s.mu.Lock()
	for id := range op.Snapshot {
		stack := s.pending[id]
		k := findWrite(stack, op.seq)
		if k < 0 {
			continue
		}
		if k == len(stack)-1 {
			if i := s.indexLocked(id); i >= 0 {
				s.notifications[i].IsRead = stack[k].prev
			}
		} else {
			stack[k+1].prev = stack[k].prev
		}
		s.setPendingLocked(id, append(stack[:k:k], stack[k+1:]...))
	}
	view := s.copyLocked()
	s.mu.Unlock()

	op.rollBack(err)
	s.notify(view)
}

// commit settles op's writes. Older writes on the same ids are dropped: the
// remote has accepted a value at least as recent, so their rollback must not
// overwrite it.
func (s *Store) commit(op *Op) {
	s.mu.Lock()
	for id := range op.Snapshot {
		stack := s.pending[id]
		if k := findWrite(stack, op.seq); k >= 0 {
			s.setPendingLocked(id, stack[k+1:])
		}
	}
	s.mu.Unlock()
	op.commit()
}

func (s *Store) setPendingLocked(id string, stack []pendingWrite) {
	if len(stack) == 0 {
		delete(s.pending, id)
		return
	}
	s.pending[id] = stack
}

func findWrite(stack []pendingWrite, seq uint64) int {
	for k, w := range stack {
		if w.seq == seq {
			return k
		}
	}
	return -1
}

// replaceLocked installs items as the new collection. Duplicate ids keep the first occurrence.
func (s *Store) replaceLocked(items []domain.Notification) {
	seen := make(map[string]struct{}, len(items))
	out := make([]domain.Notification, 0, len(items))
	for _, n := range items {
		if _, dup := seen[n.ID]; dup {
			s.logger.Warn("dropping duplicate notification", "id", n.ID)
			continue
		}
		seen[n.ID] = struct{}{}
		out = append(out, cloneNotification(n))
	}
	s.notifications = out
}

func (s *Store) indexLocked(id string) int {
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) copyLocked() []domain.Notification {
	out := make([]domain.Notification, len(s.notifications))
	for i, n := range s.notifications {
		out[i] = cloneNotification(n)
	}
	return out
}

func (s *Store) notify(view []domain.Notification) {
	if s.onChange != nil {
		s.onChange(view)
	}
}

func cloneNotification(n domain.Notification) domain.Notification {
	n.Meta = maps.Clone(n.Meta)
	return n
}
