package inquiry

import (
	"bytes"
	"context"
	"log"
	"path/filepath"
	"testing"
	"time"

	"github.com/piwi3910/StudioFolio/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) (*Store, *bytes.Buffer) {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "inquiries.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	var buf bytes.Buffer
	store.SetLogger(log.New(&buf, "", 0))
	return store, &buf
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("  ")
	assert.Error(t, err)
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inquiries.db")
	ctx := context.Background()

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Submit(ctx, model.NewInquiry("Jane", "jane@example.com", model.ScopeResidential, "")))
	require.NoError(t, store.Close())

	store, err = Open(path)
	require.NoError(t, err)
	defer store.Close()

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSubmit_PersistsAndLogs(t *testing.T) {
	store, logs := openTestStore(t)
	ctx := context.Background()

	q := model.NewInquiry("Jane Doe", "jane@example.com", model.ScopeInterior, "Living room staging")
	require.NoError(t, store.Submit(ctx, q))

	got, err := store.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, q.ID, got[0].ID)
	assert.Equal(t, "Jane Doe", got[0].Name)
	assert.Equal(t, model.ScopeInterior, got[0].Scope)
	assert.Equal(t, "Living room staging", got[0].Message)
	assert.WithinDuration(t, q.CreatedAt, got[0].CreatedAt, time.Millisecond)

	assert.Contains(t, logs.String(), q.ID)
	assert.Contains(t, logs.String(), "jane@example.com")
}

func TestSubmit_RejectsInvalid(t *testing.T) {
	store, logs := openTestStore(t)
	ctx := context.Background()

	err := store.Submit(ctx, model.NewInquiry("", "jane@example.com", "", ""))
	assert.ErrorIs(t, err, model.ErrNameRequired)

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, logs.String())
}

func TestSubmit_Duplicate(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	q := model.NewInquiry("Jane", "jane@example.com", "", "")
	require.NoError(t, store.Submit(ctx, q))
	assert.ErrorIs(t, store.Submit(ctx, q), ErrDuplicate)
}

func TestList_NewestFirstWithLimit(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	for i, name := range []string{"First", "Second", "Third"} {
		q := model.NewInquiry(name, "a@example.com", "", "")
		q.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, store.Submit(ctx, q))
	}

	got, err := store.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Third", got[0].Name)
	assert.Equal(t, "Second", got[1].Name)

	all, err := store.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestSubmit_CanceledContext(t *testing.T) {
	store, _ := openTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.Submit(ctx, model.NewInquiry("Jane", "jane@example.com", "", ""))
	assert.Error(t, err)
}

func TestNilStore(t *testing.T) {
	var s *Store
	assert.NoError(t, s.Close())
	assert.Error(t, s.Submit(context.Background(), model.Inquiry{}))
	_, err := s.List(context.Background(), 1)
	assert.Error(t, err)
}
