package persistent

import (
	"github.com/360Pawan/360Tube/internal/entity"
	"github.com/360Pawan/360Tube/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:            m.ID,
		Username:      m.Username,
		Email:         m.Email,
		FullName:      m.FullName,
		Password:      m.Password,
		Avatar:        entity.MediaRef{URL: m.AvatarURL, Key: m.AvatarKey},
		CoverImage:    entity.MediaRef{URL: m.CoverURL, Key: m.CoverKey},
		RefreshToken:  m.RefreshToken,
		VerifyToken:   m.VerifyToken,
		EmailVerified: m.EmailVerified,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:            e.ID,
		Username:      e.Username,
		Email:         e.Email,
		FullName:      e.FullName,
		Password:      e.Password,
		AvatarURL:     e.Avatar.URL,
		AvatarKey:     e.Avatar.Key,
		CoverURL:      e.CoverImage.URL,
		CoverKey:      e.CoverImage.Key,
		RefreshToken:  e.RefreshToken,
		VerifyToken:   e.VerifyToken,
		EmailVerified: e.EmailVerified,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func toPublicUser(m *model.UserModel) entity.PublicUser {
	return entity.PublicUser{
		ID:       m.ID,
		Username: m.Username,
		FullName: m.FullName,
		Avatar:   entity.MediaRef{URL: m.AvatarURL, Key: m.AvatarKey},
	}
}

func ToVideoEntity(m *model.VideoModel) *entity.Video {
	if m == nil {
		return nil
	}

	return &entity.Video{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		Title:       m.Title,
		Description: m.Description,
		VideoFile:   entity.MediaRef{URL: m.VideoURL, Key: m.VideoKey},
		Thumbnail:   entity.MediaRef{URL: m.ThumbnailURL, Key: m.ThumbnailKey},
		Duration:    m.Duration,
		Views:       m.Views,
		IsPublished: m.IsPublished,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToVideoModel(e *entity.Video) *model.VideoModel {
	if e == nil {
		return nil
	}

	return &model.VideoModel{
		ID:           e.ID,
		OwnerID:      e.OwnerID,
		Title:        e.Title,
		Description:  e.Description,
		VideoURL:     e.VideoFile.URL,
		VideoKey:     e.VideoFile.Key,
		ThumbnailURL: e.Thumbnail.URL,
		ThumbnailKey: e.Thumbnail.Key,
		Duration:     e.Duration,
		Views:        e.Views,
		IsPublished:  e.IsPublished,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToCommentEntity(m *model.CommentModel) *entity.Comment {
	if m == nil {
		return nil
	}

	return &entity.Comment{
		ID:        m.ID,
		VideoID:   m.VideoID,
		OwnerID:   m.OwnerID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToTweetEntity(m *model.TweetModel) *entity.Tweet {
	if m == nil {
		return nil
	}

	return &entity.Tweet{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToPlaylistEntity(m *model.PlaylistModel) *entity.Playlist {
	if m == nil {
		return nil
	}

	videoIDs := make([]string, 0, len(m.Videos))
	for i := range m.Videos {
		videoIDs = append(videoIDs, m.Videos[i].VideoID)
	}

	return &entity.Playlist{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		Name:        m.Name,
		Description: m.Description,
		VideoIDs:    videoIDs,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToSubscriptionEntity(m *model.SubscriptionModel) *entity.Subscription {
	if m == nil {
		return nil
	}

	return &entity.Subscription{
		ID:           m.ID,
		SubscriberID: m.SubscriberID,
		ChannelID:    m.ChannelID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToLikeEntity(m *model.LikeModel) *entity.Like {
	if m == nil {
		return nil
	}

	return &entity.Like{
		ID:         m.ID,
		UserID:     m.UserID,
		TargetKind: entity.LikeTargetKind(m.TargetKind),
		TargetID:   m.TargetID,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
