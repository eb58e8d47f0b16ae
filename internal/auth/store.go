package auth

import (
	"sync"

	"github.com/fivetwenty-io/xminds-client/pkg/xminds"
)

// CredentialStore holds the live credential of a session.
type CredentialStore struct {
	mutex      sync.RWMutex
	credential *xminds.Credential
}

// NewCredentialStore creates an empty store.
func NewCredentialStore() *CredentialStore {
	return &CredentialStore{}
}

// Get returns a copy of the stored credential, or nil.
func (s *CredentialStore) Get() *xminds.Credential {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.credential == nil {
		return nil
	}

	credential := *s.credential

	return &credential
}

// Set replaces the stored credential.
func (s *CredentialStore) Set(credential xminds.Credential) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.credential = &credential
}
