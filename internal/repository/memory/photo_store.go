package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/erro"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/model"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/repository"
)

type recordKey struct {
	userid  string
	photoid string
}

type photoEntry struct {
	mu    sync.Mutex
	photo model.Photo
}

// PhotoStore keeps the ledger in process memory. Each photo has its own lock
// that covers both its counter and every like record pointing at it.
type PhotoStore struct {
	mu          sync.RWMutex
	photos      map[string]*photoEntry
	records     map[recordKey]*model.LikeRecord
	clampAtZero bool
	now         func() time.Time
}

func NewPhotoStore(clampAtZero bool) *PhotoStore {
	return &PhotoStore{
		photos:      make(map[string]*photoEntry),
		records:     make(map[recordKey]*model.LikeRecord),
		clampAtZero: clampAtZero,
		now:         time.Now,
	}
}

// SetClock replaces the time source used for upload and update dates.
func (st *PhotoStore) SetClock(now func() time.Time) {
	st.mu.Lock()
	st.now = now
	st.mu.Unlock()
}
func (st *PhotoStore) entry(photoid string) (*photoEntry, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	e, ok := st.photos[photoid]
	return e, ok
}

func (st *PhotoStore) ToggleLike(ctx context.Context, photoid string, userid string, heart bool) *repository.RepositoryResponse {
	const place = repository.ToggleLike
	if err := ctx.Err(); err != nil {
		return repository.BadResponse(erro.ServerError(erro.ContextCanceled), place)
	}
	e, ok := st.entry(photoid)
	if !ok {
		return repository.BadResponse(erro.NotFoundError(erro.PhotoNotFound), place)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	delta := int64(-1)
	if heart {
		delta = 1
	}
	e.photo.PhotoLikes += delta
	if st.clampAtZero && e.photo.PhotoLikes < 0 {
		e.photo.PhotoLikes = 0
	}
	key := recordKey{userid: userid, photoid: photoid}
	now := st.now()
	st.mu.Lock()
	record, ok := st.records[key]
	if !ok {
		record = &model.LikeRecord{UserID: userid, FileName: photoid}
		st.records[key] = record
	}
	record.UserLikes = heart
	record.UpdateDate = now
	written := *record
	st.mu.Unlock()
	return repository.SuccessResponse(repository.Data{
		LikeResult: &model.LikeResult{PhotoLikes: e.photo.PhotoLikes, UserLikes: heart},
		LikeRecord: &written,
	}, place, "Successful toggle like in memory")
}

func (st *PhotoStore) GetPhoto(ctx context.Context, photoid string) *repository.RepositoryResponse {
	const place = repository.GetPhoto
	e, ok := st.entry(photoid)
	if !ok {
		return repository.BadResponse(erro.NotFoundError(erro.PhotoNotFound), place)
	}
	e.mu.Lock()
	photo := e.photo
	e.mu.Unlock()
	return repository.SuccessResponse(repository.Data{Photo: &photo}, place, "Successful get photo from memory")
}

func (st *PhotoStore) GetLikeRecord(ctx context.Context, userid string, photoid string) *repository.RepositoryResponse {
	const place = repository.GetLikeRecord
	st.mu.RLock()
	record, ok := st.records[recordKey{userid: userid, photoid: photoid}]
	var copied model.LikeRecord
	if ok {
		copied = *record
	}
	st.mu.RUnlock()
	if !ok {
		return repository.SuccessResponse(repository.Data{}, place, "Like record was not found in memory")
	}
	return repository.SuccessResponse(repository.Data{LikeRecord: &copied}, place, "Successful get like record from memory")
}

func (st *PhotoStore) GetPhotos(ctx context.Context, order string, limit int, offset int) *repository.RepositoryResponse {
	const place = repository.GetPhotos
	var less func(a, b *model.Photo) bool
	switch order {
	case model.OrderPopular:
		less = func(a, b *model.Photo) bool {
			if a.PhotoLikes != b.PhotoLikes {
				return a.PhotoLikes > b.PhotoLikes
			}
			return a.FileName < b.FileName
		}
	case model.OrderRecent:
		less = func(a, b *model.Photo) bool {
			if !a.UpdateDate.Equal(b.UpdateDate) {
				return a.UpdateDate.After(b.UpdateDate)
			}
			return a.FileName < b.FileName
		}
	default:
		return repository.BadResponse(erro.ClientError(erro.InvalidOrder), place)
	}
	st.mu.RLock()
	entries := make([]*photoEntry, 0, len(st.photos))
	for _, e := range st.photos {
		entries = append(entries, e)
	}
	st.mu.RUnlock()
	all := make([]*model.Photo, 0, len(entries))
	for _, e := range entries {
		e.mu.Lock()
		photo := e.photo
		e.mu.Unlock()
		all = append(all, &photo)
	}
	sort.Slice(all, func(i, j int) bool { return less(all[i], all[j]) })
	total := int64(len(all))
	if offset < 0 || limit <= 0 || offset >= len(all) {
		return repository.SuccessResponse(repository.Data{Page: &model.PhotoPage{Photos: []*model.Photo{}, Total: total}}, place, "Successful get photos from memory")
	}
	end := len(all)
	if limit < end-offset {
		end = offset + limit
	}
	return repository.SuccessResponse(repository.Data{Page: &model.PhotoPage{Photos: all[offset:end], Total: total}}, place, "Successful get photos from memory")
}

func (st *PhotoStore) AddPhotos(ctx context.Context, photos []*model.Photo) *repository.RepositoryResponse {
	const place = repository.AddPhotos
	now := st.now()
	var inserted int64
	st.mu.Lock()
	defer st.mu.Unlock()
	for _, photo := range photos {
		if _, ok := st.photos[photo.FileName]; ok {
			continue
		}
		st.photos[photo.FileName] = &photoEntry{photo: model.Photo{
			FileName:     photo.FileName,
			OriginalName: photo.OriginalName,
			UploadDate:   now,
			UpdateDate:   now,
		}}
		inserted++
	}
	return repository.SuccessResponse(repository.Data{Inserted: inserted}, place, "Successful add photos to memory")
}
