package model

import "time"

const (
	OrderPopular = "popular"
	OrderRecent  = "recent"
)

type Photo struct {
	FileName     string    `json:"file_name"`
	PhotoLikes   int64     `json:"photo_likes"`
	OriginalName string    `json:"original_name"`
	UploadDate   time.Time `json:"upload_date"`
	UpdateDate   time.Time `json:"update_date"`
	URL          string    `json:"url,omitempty"`
	// UserLikes is nil for anonymous views.
	UserLikes *bool `json:"user_likes,omitempty"`
}

type LikeRecord struct {
	UserID     string    `json:"user_email"`
	FileName   string    `json:"file_name"`
	UserLikes  bool      `json:"user_likes"`
	UpdateDate time.Time `json:"update_date"`
}

type LikeResult struct {
	PhotoLikes int64 `json:"photo_likes"`
	UserLikes  bool  `json:"user_likes"`
}

type PhotoPage struct {
	Photos []*Photo `json:"photos"`
	Total  int64    `json:"total"`
}

// LikeRequest is the body of POST /photo/{id}/like. Heart is a pointer so a
// missing field is told apart from false.
type LikeRequest struct {
	Email string `json:"email,omitempty" validate:"omitempty,max=255"`
	Heart *bool  `json:"heart" validate:"required"`
}

type PhotoRequest struct {
	Email string `json:"email,omitempty" validate:"omitempty,max=255"`
}

// NewPhotos describes a batch of stored files announced by the upload service.
type NewPhotos struct {
	FileNames     []string `json:"file_names" validate:"required,min=1,dive,required,max=255,excludes=/"`
	OriginalNames []string `json:"original_names" validate:"required,min=1,dive,max=255"`
}

const (
	PhotoUploadedKey = "photo.uploaded"
	PhotoLikedKey    = "photo.liked"
	PhotoUnlikedKey  = "photo.unliked"
)

// LikeEvent is published after a toggle has been stored.
type LikeEvent struct {
	FileName   string `json:"file_name"`
	UserID     string `json:"user_id"`
	PhotoLikes int64  `json:"photo_likes"`
	UserLikes  bool   `json:"user_likes"`
	Traceid    string `json:"traceid"`
}
