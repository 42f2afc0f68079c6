package dashboard

import (
	"sort"
	"sync"

	"saasquatch/internal/domain"

	"github.com/google/uuid"
)

// Session is the per-user view-model: the loaded lead collection, the
// selection set, the filter configuration and the search generation counter.
// All mutation goes through Service methods under the session lock; nothing
// here is shared across users.
type Session struct {
	mu sync.Mutex

	id               string
	query            string
	leads            []domain.Lead
	selected         map[string]struct{}
	filters          Filters
	generation       uint64
	backendReachable bool
}

func newSession() *Session {
	return &Session{
		id:       uuid.NewString(),
		selected: make(map[string]struct{}),
	}
}

// selectedIDs returns the selection in a stable order.
func (s *Session) selectedIDs() []string {
	ids := make([]string, 0, len(s.selected))
	for id := range s.selected {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *Session) findLead(id string) *domain.Lead {
	for i := range s.leads {
		if s.leads[i].ID == id {
			return &s.leads[i]
		}
	}
	return nil
}

// SessionStore hands out one session per user.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[int64]*Session)}
}

func (st *SessionStore) Get(userID int64) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	sess, ok := st.sessions[userID]
	if !ok {
		sess = newSession()
		st.sessions[userID] = sess
	}
	return sess
}
