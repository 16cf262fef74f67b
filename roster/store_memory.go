package roster

import (
	"sort"
	"sync"
)

// MemoryStore keeps the rosters in process memory; used in tests and when
// no Redis is configured.
type MemoryStore struct {
	chats map[int64]map[uint64]User

	lock sync.Mutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		chats: make(map[int64]map[uint64]User),
	}
}

func (s *MemoryStore) AddUser(chatID int64, user User) (bool, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	users, ok := s.chats[chatID]
	if !ok {
		users = make(map[uint64]User)
		s.chats[chatID] = users
	}
	if _, exists := users[user.ID]; exists {
		return false, nil
	}
	users[user.ID] = user
	return true, nil
}

func (s *MemoryStore) GetUsers(chatID int64) ([]User, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	users := make([]User, 0, len(s.chats[chatID]))
	for _, user := range s.chats[chatID] {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}
