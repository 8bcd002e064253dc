package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persiste a sessão num arquivo JSON local, sobrevivendo a
// reinícios do app. Escritor único por vez; a última escrita vence.
type FileStore struct {
	mu   sync.Mutex
	path string
}

type fileData struct {
	UserToken     string `json:"userToken,omitempty"`
	UserAddress   string `json:"userAddress,omitempty"`
	UserAddressID string `json:"userAddressId,omitempty"`
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return "", err
	}
	return data.UserToken, nil
}

func (s *FileStore) SetToken(token string) error {
	return s.update(func(d *fileData) { d.UserToken = token })
}

func (s *FileStore) ClearToken() error {
	return s.update(func(d *fileData) { d.UserToken = "" })
}

func (s *FileStore) Address() (string, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return "", "", err
	}
	return data.UserAddress, data.UserAddressID, nil
}

func (s *FileStore) SetAddress(label, id string) error {
	return s.update(func(d *fileData) {
		d.UserAddress = label
		d.UserAddressID = id
	})
}

func (s *FileStore) ClearAddress() error {
	return s.update(func(d *fileData) {
		d.UserAddress = ""
		d.UserAddressID = ""
	})
}

func (s *FileStore) update(fn func(*fileData)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return err
	}

	fn(data)
	return s.save(data)
}

func (s *FileStore) load() (*fileData, error) {
	var data fileData

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &data, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(raw, &data); err != nil {
		// Arquivo corrompido equivale a sessão vazia.
		return &fileData{}, nil
	}
	return &data, nil
}

func (s *FileStore) save(data *fileData) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}

	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
