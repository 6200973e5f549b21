package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("persists across reopen", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nested", "plans.json")
		store, err := newFileStore(path)
		require.NoError(t, err)

		plan := newPlan("u1", TravelRequest{Destination: "南京"}, "", samplePlan)
		require.NoError(t, store.CreatePlan(ctx, plan))

		reopened, err := newFileStore(path)
		require.NoError(t, err)
		got, err := reopened.FindPlan(ctx, plan.ID)
		require.NoError(t, err)
		assert.Equal(t, plan.Itinerary, got.Itinerary)
		assert.Equal(t, plan.Route, got.Route)
		assert.True(t, plan.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("lists newest first and filters by user", func(t *testing.T) {
		t.Parallel()

		store, err := newFileStore(filepath.Join(t.TempDir(), "plans.json"))
		require.NoError(t, err)

		base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		for i, user := range []string{"a", "b", "a"} {
			p := newPlan(user, TravelRequest{}, "", samplePlan)
			p.CreatedAt = base.Add(time.Duration(i) * time.Hour)
			require.NoError(t, store.CreatePlan(ctx, p))
		}

		all, err := store.FindPlans(ctx, PlanFilter{})
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.True(t, all[0].CreatedAt.After(all[1].CreatedAt))
		assert.True(t, all[1].CreatedAt.After(all[2].CreatedAt))

		mine, err := store.FindPlans(ctx, PlanFilter{UserID: "a"})
		require.NoError(t, err)
		require.Len(t, mine, 2)
		for _, p := range mine {
			assert.Equal(t, "a", p.UserID)
		}
	})

	t.Run("returned plans are copies", func(t *testing.T) {
		t.Parallel()

		store, err := newFileStore(filepath.Join(t.TempDir(), "plans.json"))
		require.NoError(t, err)
		plan := newPlan("u", TravelRequest{}, "原标题", samplePlan)
		require.NoError(t, store.CreatePlan(ctx, plan))

		got, err := store.FindPlan(ctx, plan.ID)
		require.NoError(t, err)
		got.Title = "changed"

		again, err := store.FindPlan(ctx, plan.ID)
		require.NoError(t, err)
		assert.Equal(t, "原标题", again.Title)
	})

	t.Run("update request reschedules days", func(t *testing.T) {
		t.Parallel()

		store, err := newFileStore(filepath.Join(t.TempDir(), "plans.json"))
		require.NoError(t, err)
		plan := newPlan("u", TravelRequest{Destination: "南京"}, "", samplePlan)
		require.NoError(t, store.CreatePlan(ctx, plan))
		assert.Nil(t, plan.Schedule)

		req := plan.Request
		req.StartDate = "2025-10-01"
		got, err := store.UpdatePlan(ctx, plan.ID, PlanUpdate{Request: &req})
		require.NoError(t, err)
		require.Len(t, got.Schedule, 2)
		assert.Equal(t, "2025-10-02", got.Schedule[1].Date)
		assert.Equal(t, samplePlan, got.Content)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		store, err := newFileStore(filepath.Join(t.TempDir(), "plans.json"))
		require.NoError(t, err)

		_, err = store.FindPlan(ctx, "x")
		assert.ErrorIs(t, err, errPlanNotFound)
		_, err = store.UpdatePlan(ctx, "x", PlanUpdate{})
		assert.ErrorIs(t, err, errPlanNotFound)
		assert.ErrorIs(t, store.DeletePlan(ctx, "x"), errPlanNotFound)
	})

	t.Run("failed write leaves memory unchanged", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "plans.json")
		store, err := newFileStore(path)
		require.NoError(t, err)
		plan := newPlan("u", TravelRequest{Destination: "南京"}, "原标题", samplePlan)
		require.NoError(t, store.CreatePlan(ctx, plan))

		// 檔案位置換成目錄，之後的寫入都會失敗
		require.NoError(t, os.Remove(path))
		require.NoError(t, os.Mkdir(path, 0o755))

		title := "新标题"
		_, err = store.UpdatePlan(ctx, plan.ID, PlanUpdate{Title: &title})
		require.Error(t, err)
		got, err := store.FindPlan(ctx, plan.ID)
		require.NoError(t, err)
		assert.Equal(t, "原标题", got.Title)

		other := newPlan("u", TravelRequest{}, "", samplePlan)
		require.Error(t, store.CreatePlan(ctx, other))
		_, err = store.FindPlan(ctx, other.ID)
		assert.ErrorIs(t, err, errPlanNotFound)

		require.Error(t, store.DeletePlan(ctx, plan.ID))
		_, err = store.FindPlan(ctx, plan.ID)
		assert.NoError(t, err)
	})

	t.Run("corrupt file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "plans.json")
		require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))
		_, err := newFileStore(path)
		assert.Error(t, err)
	})
}
