package services

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrDownloadNotFound = errors.New("download not found")
	ErrDownloadExpired  = errors.New("download expired")
)

// Download is a generated file held in memory until it expires
type Download struct {
	ID          string
	Filename    string
	ContentType string
	Data        []byte
	ExpiresAt   time.Time
}

// DownloadStore keeps binary results addressable by id for a limited time
type DownloadStore struct {
	downloads map[string]*Download
	mu        sync.RWMutex
	ttl       time.Duration
	now       func() time.Time
}

func NewDownloadStore(ttl time.Duration) *DownloadStore {
	return &DownloadStore{
		downloads: make(map[string]*Download),
		ttl:       ttl,
		now:       time.Now,
	}
}

// Put stores data under a fresh id and schedules its removal
func (s *DownloadStore) Put(filename, contentType string, data []byte) (*Download, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}

	download := &Download{
		ID:          id.String(),
		Filename:    filename,
		ContentType: contentType,
		Data:        data,
		ExpiresAt:   s.now().Add(s.ttl),
	}

	s.mu.Lock()
	s.downloads[download.ID] = download
	s.mu.Unlock()

	// Start cleanup goroutine
	go func() {
		time.Sleep(s.ttl)
		s.remove(download.ID)
	}()

	return download, nil
}

func (s *DownloadStore) Get(id string) (*Download, error) {
	s.mu.RLock()
	download, exists := s.downloads[id]
	s.mu.RUnlock()

	if !exists {
		return nil, ErrDownloadNotFound
	}

	if s.now().After(download.ExpiresAt) {
		s.remove(id)
		return nil, ErrDownloadExpired
	}

	return download, nil
}

// Len returns the number of downloads currently held
func (s *DownloadStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.downloads)
}

func (s *DownloadStore) remove(id string) {
	s.mu.Lock()
	delete(s.downloads, id)
	s.mu.Unlock()
}
