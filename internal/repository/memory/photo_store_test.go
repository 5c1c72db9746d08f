package memory

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/erro"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/model"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/repository"
	"github.com/stretchr/testify/require"
)

func seedStore(t *testing.T, clamp bool, likes map[string]int64) *PhotoStore {
	st := NewPhotoStore(clamp)
	photos := make([]*model.Photo, 0, len(likes))
	for name := range likes {
		photos = append(photos, &model.Photo{FileName: name, OriginalName: "orig-" + name})
	}
	response := st.AddPhotos(context.Background(), photos)
	require.True(t, response.Success)
	for name, count := range likes {
		st.photos[name].photo.PhotoLikes = count
	}
	return st
}

func TestToggleLike_LikeThenUnlike(t *testing.T) {
	st := seedStore(t, false, map[string]int64{"abc.jpg": 3})
	ctx := context.Background()

	response := st.ToggleLike(ctx, "abc.jpg", "u1", true)
	require.True(t, response.Success)
	require.Equal(t, &model.LikeResult{PhotoLikes: 4, UserLikes: true}, response.Data.LikeResult)

	response = st.ToggleLike(ctx, "abc.jpg", "u1", false)
	require.True(t, response.Success)
	require.Equal(t, &model.LikeResult{PhotoLikes: 3, UserLikes: false}, response.Data.LikeResult)

	record := st.GetLikeRecord(ctx, "u1", "abc.jpg")
	require.True(t, record.Success)
	require.NotNil(t, record.Data.LikeRecord)
	require.False(t, record.Data.LikeRecord.UserLikes)
}

// Repeating the same toggle applies the delta again.
func TestToggleLike_RepeatedLikeDoubleCounts(t *testing.T) {
	st := seedStore(t, false, map[string]int64{"abc.jpg": 0})
	ctx := context.Background()
	st.ToggleLike(ctx, "abc.jpg", "u1", true)
	response := st.ToggleLike(ctx, "abc.jpg", "u1", true)
	require.True(t, response.Success)
	require.Equal(t, int64(2), response.Data.LikeResult.PhotoLikes)
	require.True(t, response.Data.LikeResult.UserLikes)
}

func TestToggleLike_UnlikeGoesNegative(t *testing.T) {
	st := seedStore(t, false, map[string]int64{"abc.jpg": 0})
	response := st.ToggleLike(context.Background(), "abc.jpg", "u1", false)
	require.True(t, response.Success)
	require.Equal(t, int64(-1), response.Data.LikeResult.PhotoLikes)
}

func TestToggleLike_ClampAtZero(t *testing.T) {
	st := seedStore(t, true, map[string]int64{"abc.jpg": 0})
	response := st.ToggleLike(context.Background(), "abc.jpg", "u1", false)
	require.True(t, response.Success)
	require.Equal(t, int64(0), response.Data.LikeResult.PhotoLikes)
}

func TestToggleLike_NotFound(t *testing.T) {
	st := NewPhotoStore(false)
	response := st.ToggleLike(context.Background(), "missing.jpg", "u1", true)
	require.False(t, response.Success)
	require.Equal(t, erro.NotFoundErrorType, response.Errors.Type)
	record := st.GetLikeRecord(context.Background(), "u1", "missing.jpg")
	require.True(t, record.Success)
	require.Nil(t, record.Data.LikeRecord)
}

func TestToggleLike_CanceledContext(t *testing.T) {
	st := seedStore(t, false, map[string]int64{"abc.jpg": 3})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	response := st.ToggleLike(ctx, "abc.jpg", "u1", true)
	require.False(t, response.Success)
	require.Equal(t, erro.ServerErrorType, response.Errors.Type)
	photo := st.GetPhoto(context.Background(), "abc.jpg")
	require.Equal(t, int64(3), photo.Data.Photo.PhotoLikes)
}

func TestToggleLike_ConcurrentFirstToggles(t *testing.T) {
	st := seedStore(t, false, map[string]int64{"abc.jpg": 0})
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			st.ToggleLike(context.Background(), "abc.jpg", "u1", true)
		}()
	}
	wg.Wait()
	count := 0
	for key := range st.records {
		if key.photoid == "abc.jpg" && key.userid == "u1" {
			count++
		}
	}
	require.Equal(t, 1, count)
	photo := st.GetPhoto(context.Background(), "abc.jpg")
	require.Equal(t, int64(50), photo.Data.Photo.PhotoLikes)
}

// sequenceClock hands out strictly increasing instants so every write has a
// distinct update date in the order it was applied.
func sequenceClock() func() time.Time {
	var mu sync.Mutex
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var tick int64
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		tick++
		return base.Add(time.Duration(tick) * time.Millisecond)
	}
}

type appliedToggle struct {
	heart    bool
	response *repository.RepositoryResponse
	record   model.LikeRecord
	likes    int64
}

func TestToggleLike_ConcurrentTogglesLastWriteWins(t *testing.T) {
	st := seedStore(t, false, map[string]int64{"abc.jpg": 0})
	st.SetClock(sequenceClock())
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		completed []appliedToggle
	)
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func(heart bool) {
			defer wg.Done()
			response := st.ToggleLike(context.Background(), "abc.jpg", "u1", heart)
			mu.Lock()
			completed = append(completed, appliedToggle{heart: heart, response: response})
			mu.Unlock()
		}(i%3 != 0)
	}
	wg.Wait()
	require.Len(t, completed, 40)
	for i := range completed {
		require.True(t, completed[i].response.Success)
		require.NotNil(t, completed[i].response.Data.LikeRecord)
		completed[i].record = *completed[i].response.Data.LikeRecord
		completed[i].likes = completed[i].response.Data.LikeResult.PhotoLikes
	}

	applied := append([]appliedToggle(nil), completed...)
	sort.Slice(applied, func(i, j int) bool { return applied[i].record.UpdateDate.Before(applied[j].record.UpdateDate) })
	var counter int64
	for i, op := range applied {
		if i > 0 {
			require.True(t, op.record.UpdateDate.After(applied[i-1].record.UpdateDate))
		}
		require.Equal(t, op.heart, op.record.UserLikes)
		if op.heart {
			counter++
		} else {
			counter--
		}
		require.Equal(t, counter, op.likes)
	}
	last := applied[len(applied)-1]

	record := st.GetLikeRecord(context.Background(), "u1", "abc.jpg")
	require.True(t, record.Success)
	require.Equal(t, last.heart, record.Data.LikeRecord.UserLikes)
	require.Equal(t, last.record.UpdateDate, record.Data.LikeRecord.UpdateDate)
	photo := st.GetPhoto(context.Background(), "abc.jpg")
	require.Equal(t, counter, photo.Data.Photo.PhotoLikes)
	require.Equal(t, int64(26-14), photo.Data.Photo.PhotoLikes)
}

func TestToggleLike_ConcurrentUsers(t *testing.T) {
	st := seedStore(t, false, map[string]int64{"abc.jpg": 0})
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			st.ToggleLike(context.Background(), "abc.jpg", fmt.Sprintf("user-%d", i), true)
		}(i)
	}
	wg.Wait()
	photo := st.GetPhoto(context.Background(), "abc.jpg")
	require.Equal(t, int64(100), photo.Data.Photo.PhotoLikes)
	require.Len(t, st.records, 100)
}

func TestGetPhotos_Pagination(t *testing.T) {
	likes := make(map[string]int64)
	for i := 1; i <= 12; i++ {
		likes[fmt.Sprintf("p%02d.jpg", i)] = int64(i)
	}
	st := seedStore(t, false, likes)
	response := st.GetPhotos(context.Background(), model.OrderPopular, 5, 5)
	require.True(t, response.Success)
	require.Equal(t, int64(12), response.Data.Page.Total)
	names := make([]string, 0, 5)
	for _, photo := range response.Data.Page.Photos {
		names = append(names, photo.FileName)
	}
	require.Equal(t, []string{"p07.jpg", "p06.jpg", "p05.jpg", "p04.jpg", "p03.jpg"}, names)

	response = st.GetPhotos(context.Background(), model.OrderPopular, 5, 20)
	require.True(t, response.Success)
	require.Empty(t, response.Data.Page.Photos)
	require.Equal(t, int64(12), response.Data.Page.Total)
}

func TestGetPhotos_OffsetOutOfRange(t *testing.T) {
	likes := make(map[string]int64)
	for i := 1; i <= 12; i++ {
		likes[fmt.Sprintf("p%02d.jpg", i)] = int64(i)
	}
	st := seedStore(t, false, likes)
	tests := []struct {
		name          string
		limit, offset int
	}{
		{name: "negative offset", limit: 3, offset: -9},
		{name: "huge offset", limit: 3, offset: math.MaxInt},
		{name: "huge limit", limit: math.MaxInt, offset: 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response := st.GetPhotos(context.Background(), model.OrderPopular, tt.limit, tt.offset)
			require.True(t, response.Success)
			require.Empty(t, response.Data.Page.Photos)
			require.Equal(t, int64(12), response.Data.Page.Total)
		})
	}
	response := st.GetPhotos(context.Background(), model.OrderPopular, math.MaxInt, 10)
	require.True(t, response.Success)
	require.Len(t, response.Data.Page.Photos, 2)
}

func TestGetPhotos_RecentTieBreak(t *testing.T) {
	st := NewPhotoStore(false)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	st.now = func() time.Time { return base }
	st.AddPhotos(context.Background(), []*model.Photo{{FileName: "b.jpg"}, {FileName: "a.jpg"}})
	st.now = func() time.Time { return base.Add(time.Hour) }
	st.AddPhotos(context.Background(), []*model.Photo{{FileName: "c.jpg"}})
	response := st.GetPhotos(context.Background(), model.OrderRecent, 10, 0)
	require.True(t, response.Success)
	names := make([]string, 0, 3)
	for _, photo := range response.Data.Page.Photos {
		names = append(names, photo.FileName)
	}
	require.Equal(t, []string{"c.jpg", "a.jpg", "b.jpg"}, names)
}

func TestGetPhotos_InvalidOrder(t *testing.T) {
	st := NewPhotoStore(false)
	response := st.GetPhotos(context.Background(), "random", 5, 0)
	require.False(t, response.Success)
	require.Equal(t, erro.ClientErrorType, response.Errors.Type)
}

func TestAddPhotos_KeepsExisting(t *testing.T) {
	st := seedStore(t, false, map[string]int64{"abc.jpg": 7})
	response := st.AddPhotos(context.Background(), []*model.Photo{{FileName: "abc.jpg"}, {FileName: "new.jpg"}})
	require.True(t, response.Success)
	require.Equal(t, int64(1), response.Data.Inserted)
	photo := st.GetPhoto(context.Background(), "abc.jpg")
	require.Equal(t, int64(7), photo.Data.Photo.PhotoLikes)
}
