package session

import "sync"

// MemoryStore é a variante volátil, usada em testes.
type MemoryStore struct {
	mu        sync.Mutex
	token     string
	address   string
	addressID string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *MemoryStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryStore) ClearToken() error {
	return s.SetToken("")
}

func (s *MemoryStore) Address() (string, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.address, s.addressID, nil
}

func (s *MemoryStore) SetAddress(label, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.address = label
	s.addressID = id
	return nil
}

func (s *MemoryStore) ClearAddress() error {
	return s.SetAddress("", "")
}
