package accountd

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"foodnetwork/pkg/models"
)

func newTestStore() *Store {
	return NewStore(bcrypt.MinCost)
}

func TestStore_CreateAccount(t *testing.T) {
	s := newTestStore()

	user, err := s.CreateAccount(" A@B.com ", "x")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", user.Email)
	assert.False(t, user.CreatedAt.IsZero())
	assert.Empty(t, user.APIKeys)

	_, err = s.CreateAccount("a@b.com", "other")
	assert.ErrorIs(t, err, models.ErrEmailTaken)
}

func TestStore_CreateAccountRejectsInvalidInput(t *testing.T) {
	s := newTestStore()

	_, err := s.CreateAccount("not-an-email", "x")
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = s.CreateAccount("a@b.com", "")
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestStore_Authenticate(t *testing.T) {
	s := newTestStore()
	_, err := s.CreateAccount("a@b.com", "x")
	require.NoError(t, err)

	user, err := s.Authenticate("A@b.com", "x")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", user.Email)

	_, err = s.Authenticate("a@b.com", "wrong")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)

	_, err = s.Authenticate("nobody@b.com", "x")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestStore_CreateKeyOnlyOnce(t *testing.T) {
	s := newTestStore()
	_, err := s.CreateAccount("a@b.com", "x")
	require.NoError(t, err)

	token, err := s.CreateKey("a@b.com")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(token, TokenPrefix))
	assert.Len(t, token, len(TokenPrefix)+2*tokenBytes)
	assert.True(t, s.Verify(token))

	_, err = s.CreateKey("a@b.com")
	assert.ErrorIs(t, err, models.ErrActiveKeyExists)

	user, err := s.Authenticate("a@b.com", "x")
	require.NoError(t, err)
	require.Len(t, user.APIKeys, 1)
	assert.True(t, user.APIKeys[0].IsActive())
}

func TestStore_RotateKey(t *testing.T) {
	s := newTestStore()
	_, err := s.CreateAccount("a@b.com", "x")
	require.NoError(t, err)
	first, err := s.CreateKey("a@b.com")
	require.NoError(t, err)

	user, _ := s.Authenticate("a@b.com", "x")
	oldID := user.APIKeys[0].ID

	second, err := s.RotateKey("a@b.com", oldID)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
	assert.False(t, s.Verify(first))
	assert.True(t, s.Verify(second))

	user, _ = s.Authenticate("a@b.com", "x")
	require.Len(t, user.APIKeys, 2)
	assert.Equal(t, oldID, user.APIKeys[0].ID)
	assert.NotNil(t, user.APIKeys[0].DeletedAt)
	assert.True(t, user.APIKeys[1].IsActive())

	active, ok := models.ActiveKey(user.APIKeys)
	require.True(t, ok)
	assert.Equal(t, user.APIKeys[1].ID, active.ID)

	_, err = s.RotateKey("a@b.com", oldID)
	assert.ErrorIs(t, err, models.ErrKeyAlreadyDeleted)

	_, err = s.RotateKey("a@b.com", "missing")
	assert.ErrorIs(t, err, models.ErrKeyNotFound)
}

func TestStore_RotateKeyOtherAccount(t *testing.T) {
	s := newTestStore()
	_, _ = s.CreateAccount("a@b.com", "x")
	_, _ = s.CreateAccount("c@d.com", "y")
	_, err := s.CreateKey("a@b.com")
	require.NoError(t, err)

	user, _ := s.Authenticate("a@b.com", "x")
	_, err = s.RotateKey("c@d.com", user.APIKeys[0].ID)
	assert.ErrorIs(t, err, models.ErrKeyNotFound)
}

func TestStore_ConcurrentRotationKeepsOneActiveKey(t *testing.T) {
	s := newTestStore()
	_, _ = s.CreateAccount("a@b.com", "x")
	_, err := s.CreateKey("a@b.com")
	require.NoError(t, err)
	user, _ := s.Authenticate("a@b.com", "x")
	id := user.APIKeys[0].ID

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.RotateKey("a@b.com", id); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	user, _ = s.Authenticate("a@b.com", "x")
	active := 0
	for _, k := range user.APIKeys {
		if k.IsActive() {
			active++
		}
	}
	assert.Equal(t, 1, active)
}

func TestStore_Seed(t *testing.T) {
	s := newTestStore()
	require.NoError(t, s.Seed([]string{"a@b.com:x", " ", "c@d.com:p:w"}))

	_, err := s.Authenticate("a@b.com", "x")
	assert.NoError(t, err)
	_, err = s.Authenticate("c@d.com", "p:w")
	assert.NoError(t, err, "password may contain a colon")

	assert.ErrorIs(t, s.Seed([]string{"no-separator"}), models.ErrInvalidInput)
	assert.ErrorIs(t, s.Seed([]string{"a@b.com:again"}), models.ErrEmailTaken)
}
