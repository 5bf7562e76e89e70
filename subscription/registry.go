// Package subscription implements the per-session set of (AID, IID)
// pairs currently receiving characteristic change notifications.
package subscription

import "sync"

// Pair identifies a single characteristic by its owning accessory id
// and instance id.
type Pair struct {
	AID uint64
	IID uint64
}

// Registry maps session identities to an insertion-ordered set of
// subscribed (AID, IID) pairs. All operations are safe for concurrent
// use.
type Registry struct {
	mu       sync.Mutex
	sessions map[string][]Pair
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string][]Pair)}
}

// Subscribe adds (aid,iid) to session's subscription set. A no-op if
// already present.
func (r *Registry) Subscribe(session string, aid, iid uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := Pair{AID: aid, IID: iid}
	for _, have := range r.sessions[session] {
		if have == p {
			return
		}
	}
	r.sessions[session] = append(r.sessions[session], p)
}

// Unsubscribe removes (aid,iid) from session's subscription set. A
// no-op if absent.
func (r *Registry) Unsubscribe(session string, aid, iid uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := Pair{AID: aid, IID: iid}
	pairs := r.sessions[session]
	for i, have := range pairs {
		if have == p {
			r.sessions[session] = append(pairs[:i], pairs[i+1:]...)
			return
		}
	}
}

// SubscribersOf returns every session currently subscribed to (aid,iid),
// in no particular order.
func (r *Registry) SubscribersOf(aid, iid uint64) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := Pair{AID: aid, IID: iid}
	var out []string
	for session, pairs := range r.sessions {
		for _, have := range pairs {
			if have == p {
				out = append(out, session)
				break
			}
		}
	}
	return out
}

// DropSession discards every subscription belonging to session, e.g.
// when its underlying connection closes.
func (r *Registry) DropSession(session string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, session)
}

// DropAccessory discards every subscription whose AID matches aid,
// across all sessions. Called by db.AccessoryList.Remove.
func (r *Registry) DropAccessory(aid uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for session, pairs := range r.sessions {
		kept := pairs[:0]
		for _, p := range pairs {
			if p.AID != aid {
				kept = append(kept, p)
			}
		}
		r.sessions[session] = kept
	}
}

// IsSubscribed reports whether session is subscribed to (aid,iid).
func (r *Registry) IsSubscribed(session string, aid, iid uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := Pair{AID: aid, IID: iid}
	for _, have := range r.sessions[session] {
		if have == p {
			return true
		}
	}
	return false
}
