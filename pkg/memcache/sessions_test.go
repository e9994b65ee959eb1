package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"utsav/internal/models/session_models"
)

func TestSessionStore_PutGetDelete(t *testing.T) {
	store := NewSessionStore(time.Hour)
	session := session_models.NewSession("user-1")

	store.Put(session)

	got, ok := store.Get(session.ID.String())
	require.True(t, ok)
	assert.Same(t, session, got, "the store hands back the live session object")

	store.Delete(session.ID.String())
	_, ok = store.Get(session.ID.String())
	assert.False(t, ok)
}

func TestSessionStore_Expiry(t *testing.T) {
	store := NewSessionStore(10 * time.Millisecond)
	session := session_models.NewSession("")
	store.Put(session)

	time.Sleep(30 * time.Millisecond)

	_, ok := store.Get(session.ID.String())
	assert.False(t, ok)
}
