package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/erro"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/metrics"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/model"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/repository"
)

type PhotoDatabase struct {
	databaseclient *DBObject
	clampAtZero    bool
	now            func() time.Time
}

func NewPhotoDatabase(db *DBObject, clampAtZero bool) *PhotoDatabase {
	return &PhotoDatabase{databaseclient: db, clampAtZero: clampAtZero, now: time.Now}
}
func DBMetrics(place string, start time.Time) {
	metrics.PhotoLikeDBQueriesTotal.WithLabelValues(place).Inc()
	duration := time.Since(start).Seconds()
	metrics.PhotoLikeDBQueryDuration.WithLabelValues(place).Observe(duration)
}

const (
	updateLikesQuery        = `UPDATE photos SET photo_likes = photo_likes + $1 WHERE file_name = $2`
	updateLikesClampedQuery = `UPDATE photos SET photo_likes = GREATEST(photo_likes + $1, 0) WHERE file_name = $2`
	selectPhotoLikesQuery   = `SELECT photo_likes FROM photos WHERE file_name = $1`
	selectLikeStateQuery    = `SELECT user_likes FROM likes_detail WHERE user_email = $1 AND file_name = $2 FOR UPDATE`
	insertLikeQuery         = `INSERT INTO likes_detail (user_email, file_name, user_likes, update_date) VALUES ($1, $2, $3, $4) ON CONFLICT (user_email, file_name) DO UPDATE SET user_likes = EXCLUDED.user_likes, update_date = EXCLUDED.update_date`
	updateLikeQuery         = `UPDATE likes_detail SET user_likes = $1, update_date = $2 WHERE user_email = $3 AND file_name = $4`
	selectPhotoQuery        = `SELECT file_name, photo_likes, original_name, upload_date, update_date FROM photos WHERE file_name = $1`
	selectLikeRecordQuery   = `SELECT user_email, file_name, user_likes, update_date FROM likes_detail WHERE user_email = $1 AND file_name = $2`
	selectPopularQuery      = `SELECT file_name, photo_likes, original_name, upload_date, update_date FROM photos ORDER BY photo_likes DESC, file_name ASC LIMIT $1 OFFSET $2`
	selectRecentQuery       = `SELECT file_name, photo_likes, original_name, upload_date, update_date FROM photos ORDER BY update_date DESC, file_name ASC LIMIT $1 OFFSET $2`
	countPhotosQuery        = `SELECT COUNT(*) FROM photos`
	insertPhotoQuery        = `INSERT INTO photos (file_name, photo_likes, original_name, upload_date, update_date) VALUES ($1, 0, $2, $3, $3) ON CONFLICT (file_name) DO NOTHING`
)

// ToggleLike applies the signed delta to photo_likes and writes the caller's
// like record in one transaction. The delta is applied whatever the previous
// record state was.
func (ph *PhotoDatabase) ToggleLike(ctx context.Context, photoid string, userid string, heart bool) *repository.RepositoryResponse {
	const place = repository.ToggleLike
	start := time.Now()
	defer DBMetrics(place, start)
	delta := -1
	if heart {
		delta = 1
	}
	tx, err := ph.databaseclient.connect.BeginTx(ctx, nil)
	if err != nil {
		metrics.PhotoLikeDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "BEGIN").Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorStartTransaction, err)), place)
	}
	committed := false
	defer func() {
		if !committed {
			tx.Rollback()
		}
	}()
	query := updateLikesQuery
	if ph.clampAtZero {
		query = updateLikesClampedQuery
	}
	result, err := tx.ExecContext(ctx, query, delta, photoid)
	if err != nil {
		metrics.PhotoLikeDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "UPDATE").Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqPhotos, err)), place)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		metrics.PhotoLikeDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "UPDATE").Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqPhotos, err)), place)
	}
	if rowsAffected == 0 {
		metrics.PhotoLikeDBErrorsTotal.WithLabelValues(erro.NotFoundErrorType, "UPDATE").Inc()
		return repository.BadResponse(erro.NotFoundError(erro.PhotoNotFound), place)
	}
	var photolikes int64
	err = tx.QueryRowContext(ctx, selectPhotoLikesQuery, photoid).Scan(&photolikes)
	if err != nil {
		metrics.PhotoLikeDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "SELECT").Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqPhotos, err)), place)
	}
	now := ph.now()
	var current bool
	err = tx.QueryRowContext(ctx, selectLikeStateQuery, userid, photoid).Scan(&current)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		_, err = tx.ExecContext(ctx, insertLikeQuery, userid, photoid, heart, now)
		if err != nil {
			metrics.PhotoLikeDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "INSERT").Inc()
			return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqLikes, err)), place)
		}
	case err != nil:
		metrics.PhotoLikeDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "SELECT").Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqLikes, err)), place)
	default:
		_, err = tx.ExecContext(ctx, updateLikeQuery, heart, now, userid, photoid)
		if err != nil {
			metrics.PhotoLikeDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "UPDATE").Inc()
			return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqLikes, err)), place)
		}
	}
	if err = tx.Commit(); err != nil {
		metrics.PhotoLikeDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "COMMIT").Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorCommitTransaction, err)), place)
	}
	committed = true
	return repository.SuccessResponse(repository.Data{LikeResult: &model.LikeResult{PhotoLikes: photolikes, UserLikes: heart}}, place, "Successful toggle like in database")
}
func (ph *PhotoDatabase) GetPhoto(ctx context.Context, photoid string) *repository.RepositoryResponse {
	const place = repository.GetPhoto
	start := time.Now()
	defer DBMetrics(place, start)
	var photo model.Photo
	err := ph.databaseclient.connect.QueryRowContext(ctx, selectPhotoQuery, photoid).Scan(&photo.FileName, &photo.PhotoLikes, &photo.OriginalName, &photo.UploadDate, &photo.UpdateDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			metrics.PhotoLikeDBErrorsTotal.WithLabelValues(erro.NotFoundErrorType, "SELECT").Inc()
			return repository.BadResponse(erro.NotFoundError(erro.PhotoNotFound), place)
		}
		metrics.PhotoLikeDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "SELECT").Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqPhotos, err)), place)
	}
	return repository.SuccessResponse(repository.Data{Photo: &photo}, place, "Successful get photo from database")
}

// GetLikeRecord reports a missing record as a successful response with a nil
// LikeRecord.
func (ph *PhotoDatabase) GetLikeRecord(ctx context.Context, userid string, photoid string) *repository.RepositoryResponse {
	const place = repository.GetLikeRecord
	start := time.Now()
	defer DBMetrics(place, start)
	var record model.LikeRecord
	err := ph.databaseclient.connect.QueryRowContext(ctx, selectLikeRecordQuery, userid, photoid).Scan(&record.UserID, &record.FileName, &record.UserLikes, &record.UpdateDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return repository.SuccessResponse(repository.Data{}, place, "Like record was not found in database")
		}
		metrics.PhotoLikeDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "SELECT").Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqLikes, err)), place)
	}
	return repository.SuccessResponse(repository.Data{LikeRecord: &record}, place, "Successful get like record from database")
}
func (ph *PhotoDatabase) GetPhotos(ctx context.Context, order string, limit int, offset int) *repository.RepositoryResponse {
	const place = repository.GetPhotos
	start := time.Now()
	defer DBMetrics(place, start)
	var query string
	switch order {
	case model.OrderPopular:
		query = selectPopularQuery
	case model.OrderRecent:
		query = selectRecentQuery
	default:
		return repository.BadResponse(erro.ClientError(erro.InvalidOrder), place)
	}
	rows, err := ph.databaseclient.connect.QueryContext(ctx, query, limit, offset)
	if err != nil {
		metrics.PhotoLikeDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "SELECT").Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqPhotos, err)), place)
	}
	defer rows.Close()
	photos := make([]*model.Photo, 0, limit)
	for rows.Next() {
		var photo model.Photo
		err := rows.Scan(&photo.FileName, &photo.PhotoLikes, &photo.OriginalName, &photo.UploadDate, &photo.UpdateDate)
		if err != nil {
			metrics.PhotoLikeDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "SCAN").Inc()
			return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorScan, err)), place)
		}
		photos = append(photos, &photo)
	}
	if err := rows.Err(); err != nil {
		metrics.PhotoLikeDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "SELECT").Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqPhotos, err)), place)
	}
	var total int64
	err = ph.databaseclient.connect.QueryRowContext(ctx, countPhotosQuery).Scan(&total)
	if err != nil {
		metrics.PhotoLikeDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "SELECT").Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqPhotos, err)), place)
	}
	return repository.SuccessResponse(repository.Data{Page: &model.PhotoPage{Photos: photos, Total: total}}, place, "Successful get photos from database")
}

// AddPhotos registers stored files with zero likes. Names already present are
// left untouched.
func (ph *PhotoDatabase) AddPhotos(ctx context.Context, photos []*model.Photo) *repository.RepositoryResponse {
	const place = repository.AddPhotos
	start := time.Now()
	defer DBMetrics(place, start)
	tx, err := ph.databaseclient.connect.BeginTx(ctx, nil)
	if err != nil {
		metrics.PhotoLikeDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "BEGIN").Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorStartTransaction, err)), place)
	}
	committed := false
	defer func() {
		if !committed {
			tx.Rollback()
		}
	}()
	now := ph.now()
	var inserted int64
	for _, photo := range photos {
		result, err := tx.ExecContext(ctx, insertPhotoQuery, photo.FileName, photo.OriginalName, now)
		if err != nil {
			metrics.PhotoLikeDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "INSERT").Inc()
			return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqPhotos, err)), place)
		}
		n, err := result.RowsAffected()
		if err != nil {
			metrics.PhotoLikeDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "INSERT").Inc()
			return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorAfterReqPhotos, err)), place)
		}
		inserted += n
	}
	if err = tx.Commit(); err != nil {
		metrics.PhotoLikeDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "COMMIT").Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorCommitTransaction, err)), place)
	}
	committed = true
	return repository.SuccessResponse(repository.Data{Inserted: inserted}, place, fmt.Sprintf("Successful add %d photos to database", inserted))
}
