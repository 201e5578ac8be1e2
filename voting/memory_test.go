package voting

import (
	"context"
	"sync"
)

// memStores is an in-memory implementation of the three store interfaces
// used by the engine tests.
type memStores struct {
	mu        sync.Mutex
	users     map[string]*User
	awards    []Award
	ballots   []Ballot
	markCalls int
}

func newMemStores() *memStores {
	return &memStores{users: make(map[string]*User)}
}

func (m *memStores) addUser(id, username string) {
	m.users[id] = &User{ID: id, Username: username, Email: username + "@example.com"}
}

func (m *memStores) GetUser(_ context.Context, userID string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return nil, nil
	}
	copy := *u
	return &copy, nil
}

func (m *memStores) MarkCompleted(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok || u.CompletedVoting {
		return nil
	}
	u.CompletedVoting = true
	m.markCalls++
	return nil
}

func (m *memStores) ListAwards(_ context.Context) ([]Award, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Award(nil), m.awards...), nil
}

func (m *memStores) GetAward(_ context.Context, awardID string) (*Award, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.awards {
		if m.awards[i].ID == awardID {
			copy := m.awards[i]
			return &copy, nil
		}
	}
	return nil, nil
}

func (m *memStores) Exists(_ context.Context, userID, awardID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hasBallot(userID, awardID), nil
}

func (m *memStores) Insert(_ context.Context, ballot Ballot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.hasBallot(ballot.UserID, ballot.AwardID) {
		return ErrDuplicateCategoryVote
	}
	m.ballots = append(m.ballots, ballot)
	return nil
}

func (m *memStores) ListByAward(_ context.Context, awardID string) ([]Ballot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Ballot
	for _, b := range m.ballots {
		if b.AwardID == awardID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memStores) ListAwardIDsByUser(_ context.Context, userID string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, b := range m.ballots {
		if b.UserID == userID {
			out = append(out, b.AwardID)
		}
	}
	return out, nil
}

func (m *memStores) hasBallot(userID, awardID string) bool {
	for _, b := range m.ballots {
		if b.UserID == userID && b.AwardID == awardID {
			return true
		}
	}
	return false
}

// testAward builds an award whose nominee IDs double as names.
func testAward(id string, nomineeIDs ...string) Award {
	award := Award{ID: id, Title: "Award " + id, Category: "Categoría " + id}
	for _, n := range nomineeIDs {
		award.Nominees = append(award.Nominees, Nominee{ID: n, Name: "Nominee " + n})
	}
	return award
}
