package db

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streammax/models"
)

func newTestStore(t *testing.T, ttl time.Duration) *StateStore {
	t.Helper()
	require.NoError(t, InitDB(":memory:"))
	t.Cleanup(func() { _ = Close() })
	return NewStateStore(GetDB(), ttl)
}

func TestStateStore_LoadMissingIsInitial(t *testing.T) {
	s := newTestStore(t, time.Hour)

	st, err := s.Load("nobody")
	require.NoError(t, err)
	assert.Equal(t, models.ViewState{}, st)
}

func TestStateStore_UpdateAndLoad(t *testing.T) {
	s := newTestStore(t, time.Hour)

	_, err := s.Update("v1", func(st *models.ViewState) error {
		st.SelectedPlan = "Premium"
		st.Form.Email = "a@b.com"
		return nil
	})
	require.NoError(t, err)

	st, err := s.Load("v1")
	require.NoError(t, err)
	assert.Equal(t, "Premium", st.SelectedPlan)
	assert.Equal(t, "a@b.com", st.Form.Email)

	other, err := s.Load("v2")
	require.NoError(t, err)
	assert.Empty(t, other.SelectedPlan, "visitors must not share state")
}

func TestStateStore_FailedUpdateWritesNothing(t *testing.T) {
	s := newTestStore(t, time.Hour)

	_, err := s.Update("v1", func(st *models.ViewState) error {
		st.SelectedPlan = "Basic"
		return nil
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = s.Update("v1", func(st *models.ViewState) error {
		st.SelectedPlan = "Ultimate"
		return boom
	})
	assert.ErrorIs(t, err, boom)

	st, err := s.Load("v1")
	require.NoError(t, err)
	assert.Equal(t, "Basic", st.SelectedPlan)
}

func TestStateStore_Reset(t *testing.T) {
	s := newTestStore(t, time.Hour)

	_, err := s.Update("v1", func(st *models.ViewState) error {
		st.MobileMenuOpen = true
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, s.Reset("v1"))
	require.NoError(t, s.Reset("never-seen"))

	st, err := s.Load("v1")
	require.NoError(t, err)
	assert.False(t, st.MobileMenuOpen)
}

func TestStateStore_Expiry(t *testing.T) {
	s := newTestStore(t, 50*time.Millisecond)

	_, err := s.Update("v1", func(st *models.ViewState) error {
		st.SelectedPlan = "Basic"
		return nil
	})
	require.NoError(t, err)

	time.Sleep(120 * time.Millisecond)

	st, err := s.Load("v1")
	require.NoError(t, err)
	assert.Empty(t, st.SelectedPlan)
}
