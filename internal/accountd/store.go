// Package accountd is a development account service for the foodnet CLI.
// Accounts and keys live in memory and are lost on restart.
package accountd

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"foodnetwork/pkg/models"
	"foodnetwork/pkg/utils"
)

// TokenPrefix marks Food Network API keys
const TokenPrefix = "fn_"

const tokenBytes = 24

type account struct {
	email        string
	passwordHash []byte
	createdAt    time.Time
	keys         []*apiKey
}

type apiKey struct {
	id        string
	tokenHash [sha256.Size]byte
	createdAt time.Time
	deletedAt *time.Time
}

// Store keeps accounts keyed by lower-cased email
type Store struct {
	mu         sync.RWMutex
	accounts   map[string]*account
	bcryptCost int
	now        func() time.Time
}

// NewStore creates an empty store
func NewStore(bcryptCost int) *Store {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Store{
		accounts:   make(map[string]*account),
		bcryptCost: bcryptCost,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateAccount registers email with a bcrypt hash of password
func (s *Store) CreateAccount(email, password string) (models.User, error) {
	email = normalizeEmail(email)
	if !utils.IsValidEmail(email) {
		return models.User{}, fmt.Errorf("%w: invalid email", models.ErrInvalidInput)
	}
	if password == "" {
		return models.User{}, fmt.Errorf("%w: password is required", models.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[email]; exists {
		return models.User{}, models.ErrEmailTaken
	}
	acct := &account{
		email:        email,
		passwordHash: hash,
		createdAt:    s.now(),
	}
	s.accounts[email] = acct
	return acct.user(), nil
}

// Seed creates accounts from email:password entries
func (s *Store) Seed(entries []string) error {
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		email, password, ok := strings.Cut(entry, ":")
		if !ok {
			return fmt.Errorf("%w: seed entry must be email:password", models.ErrInvalidInput)
		}
		if _, err := s.CreateAccount(email, password); err != nil {
			return fmt.Errorf("seed %s: %w", email, err)
		}
	}
	return nil
}

// Authenticate checks the password and returns the account with its keys
func (s *Store) Authenticate(email, password string) (models.User, error) {
	email = normalizeEmail(email)

	s.mu.RLock()
	acct, ok := s.accounts[email]
	var hash []byte
	if ok {
		hash = acct.passwordHash
	}
	s.mu.RUnlock()

	if !ok {
		return models.User{}, models.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return models.User{}, models.ErrInvalidCredentials
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return acct.user(), nil
}

// CreateKey mints the account's first active key. The token is returned once.
func (s *Store) CreateKey(email string) (string, error) {
	email = normalizeEmail(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.accounts[email]
	if !ok {
		return "", models.ErrInvalidCredentials
	}
	for _, k := range acct.keys {
		if k.deletedAt == nil {
			return "", models.ErrActiveKeyExists
		}
	}
	return s.mintLocked(acct)
}

// RotateKey deletes keyID and mints its replacement in one step
func (s *Store) RotateKey(email, keyID string) (string, error) {
	email = normalizeEmail(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.accounts[email]
	if !ok {
		return "", models.ErrInvalidCredentials
	}

	var target *apiKey
	for _, k := range acct.keys {
		if k.id == keyID {
			target = k
			break
		}
	}
	if target == nil {
		return "", models.ErrKeyNotFound
	}
	if target.deletedAt != nil {
		return "", models.ErrKeyAlreadyDeleted
	}

	token, err := s.mintLocked(acct)
	if err != nil {
		return "", err
	}
	deletedAt := s.now()
	target.deletedAt = &deletedAt
	return token, nil
}

// Verify reports whether token belongs to an active key
func (s *Store) Verify(token string) bool {
	sum := sha256.Sum256([]byte(token))

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, acct := range s.accounts {
		for _, k := range acct.keys {
			if k.deletedAt == nil && k.tokenHash == sum {
				return true
			}
		}
	}
	return false
}

func (s *Store) mintLocked(acct *account) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}
	acct.keys = append(acct.keys, &apiKey{
		id:        uuid.New().String(),
		tokenHash: sha256.Sum256([]byte(token)),
		createdAt: s.now(),
	})
	return token, nil
}

func generateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return TokenPrefix + hex.EncodeToString(buf), nil
}

func (a *account) user() models.User {
	keys := make([]models.APIKey, 0, len(a.keys))
	for _, k := range a.keys {
		key := models.APIKey{ID: k.id, CreatedAt: k.createdAt}
		if k.deletedAt != nil {
			deletedAt := *k.deletedAt
			key.DeletedAt = &deletedAt
		}
		keys = append(keys, key)
	}
	return models.User{Email: a.email, CreatedAt: a.createdAt, APIKeys: keys}
}
