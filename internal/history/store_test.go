// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/originality/pkg/types"
)

func newTestStore(t *testing.T, maxRecords int) *Store {
	t.Helper()
	store, err := NewStore(types.HistoryConfig{Dir: t.TempDir(), MaxRecords: maxRecords})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleAnalysis(score int) types.AnalysisResult {
	return types.AnalysisResult{
		PlagiarismScore: score,
		HumanWriteScore: 100 - score,
		RepeatedPhrases: []types.RepeatedPhrase{{Phrase: "the protocol allows", Count: 2}},
		HumanPatterns:   []types.HumanPattern{},
	}
}

func TestNewStoreRequiresDirectory(t *testing.T) {
	_, err := NewStore(types.HistoryConfig{})
	assert.Error(t, err)
}

func TestSaveAndGet(t *testing.T) {
	store := newTestStore(t, 0)
	ctx := context.Background()

	saved, err := store.Save(ctx, "user-1", "some analyzed text", sampleAnalysis(65))
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "user-1", saved.UserID)
	assert.False(t, saved.CreatedAt.IsZero())

	got, err := store.Get(ctx, "user-1", saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, "some analyzed text", got.Text)
	assert.Equal(t, sampleAnalysis(65), got.Analysis)
}

func TestGetUnknownRecord(t *testing.T) {
	store := newTestStore(t, 0)

	_, err := store.Get(context.Background(), "user-1", "missing-id")
	assert.ErrorContains(t, err, "not found")
}

func TestGetScopedToUser(t *testing.T) {
	store := newTestStore(t, 0)
	ctx := context.Background()

	saved, err := store.Save(ctx, "user-1", "private text", sampleAnalysis(10))
	require.NoError(t, err)

	_, err = store.Get(ctx, "user-2", saved.ID)
	assert.ErrorContains(t, err, "not found")
}

func TestListNewestFirst(t *testing.T) {
	store := newTestStore(t, 0)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := store.Save(ctx, "user-1", fmt.Sprintf("text number %d", i), sampleAnalysis(i*10))
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}

	records, err := store.List(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "text number 2", records[0].Text)
	assert.Equal(t, "text number 0", records[2].Text)
	for i := 1; i < len(records); i++ {
		assert.False(t, records[i].CreatedAt.After(records[i-1].CreatedAt))
	}
}

func TestSaveSkipsDuplicateOfNewest(t *testing.T) {
	store := newTestStore(t, 0)
	ctx := context.Background()

	_, err := store.Save(ctx, "user-1", "identical text", sampleAnalysis(65))
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	_, err = store.Save(ctx, "user-1", "identical text", sampleAnalysis(65))
	require.NoError(t, err)

	records, err := store.List(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestSaveAllowsRepeatOfOlderText(t *testing.T) {
	store := newTestStore(t, 0)
	ctx := context.Background()

	for _, text := range []string{"first text", "second text", "first text"} {
		_, err := store.Save(ctx, "user-1", text, sampleAnalysis(20))
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}

	records, err := store.List(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestSavePrunesBeyondCap(t *testing.T) {
	store := newTestStore(t, 3)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := store.Save(ctx, "user-1", fmt.Sprintf("text number %d", i), sampleAnalysis(10))
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}

	records, err := store.List(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "text number 4", records[0].Text)
	assert.Equal(t, "text number 2", records[2].Text)
}

func TestDelete(t *testing.T) {
	store := newTestStore(t, 0)
	ctx := context.Background()

	saved, err := store.Save(ctx, "user-1", "short lived", sampleAnalysis(5))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, "user-1", saved.ID))

	_, err = store.Get(ctx, "user-1", saved.ID)
	assert.ErrorContains(t, err, "not found")
}

func TestDeleteUnknownRecord(t *testing.T) {
	store := newTestStore(t, 0)
	err := store.Delete(context.Background(), "user-1", "missing-id")
	assert.ErrorContains(t, err, "not found")
}

func TestClear(t *testing.T) {
	store := newTestStore(t, 0)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := store.Save(ctx, "user-1", fmt.Sprintf("text number %d", i), sampleAnalysis(10))
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}
	_, err := store.Save(ctx, "user-2", "other user text", sampleAnalysis(10))
	require.NoError(t, err)

	deleted, err := store.Clear(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	records, err := store.List(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, records)

	others, err := store.List(ctx, "user-2")
	require.NoError(t, err)
	assert.Len(t, others, 1)
}
