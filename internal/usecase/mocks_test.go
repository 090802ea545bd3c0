package usecase

import (
	"github.com/360Pawan/360Tube/internal/entity"
	"github.com/360Pawan/360Tube/internal/repo/persistent"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of persistent.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *entity.User) error {
	return m.Called(user).Error(0)
}

func (m *MockUserRepository) GetByID(id string) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(username string) (*entity.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsernameOrEmail(identifier string) (*entity.User, error) {
	args := m.Called(identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	args := m.Called(username, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Update(user *entity.User) error {
	return m.Called(user).Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(userID, token string) error {
	return m.Called(userID, token).Error(0)
}

func (m *MockUserRepository) UpdateVerifyToken(userID, token string) error {
	return m.Called(userID, token).Error(0)
}

func (m *MockUserRepository) MarkEmailVerified(userID string) error {
	return m.Called(userID).Error(0)
}

func (m *MockUserRepository) UpdatePassword(userID, hashed string) error {
	return m.Called(userID, hashed).Error(0)
}

func (m *MockUserRepository) ChannelProfile(username, viewerID string) (*entity.ChannelProfile, error) {
	args := m.Called(username, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ChannelProfile), args.Error(1)
}

func (m *MockUserRepository) RecordWatch(userID, videoID string) error {
	return m.Called(userID, videoID).Error(0)
}

func (m *MockUserRepository) WatchHistory(userID string, opts persistent.ListOptions) ([]entity.WatchEntry, error) {
	args := m.Called(userID, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.WatchEntry), args.Error(1)
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)

// MockSubscriptionRepository is a mock implementation of persistent.SubscriptionRepository
type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) Get(subscriberID, channelID string) (*entity.Subscription, error) {
	args := m.Called(subscriberID, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) Create(subscriberID, channelID string) error {
	return m.Called(subscriberID, channelID).Error(0)
}

func (m *MockSubscriptionRepository) Delete(subscriberID, channelID string) error {
	return m.Called(subscriberID, channelID).Error(0)
}

func (m *MockSubscriptionRepository) CountSubscribers(channelID string) (int64, error) {
	args := m.Called(channelID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSubscriptionRepository) ListSubscribers(channelID string, opts persistent.ListOptions) ([]entity.PublicUser, error) {
	args := m.Called(channelID, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.PublicUser), args.Error(1)
}

func (m *MockSubscriptionRepository) ListSubscribedChannels(subscriberID string, opts persistent.ListOptions) ([]entity.PublicUser, error) {
	args := m.Called(subscriberID, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.PublicUser), args.Error(1)
}

var _ persistent.SubscriptionRepository = (*MockSubscriptionRepository)(nil)

// MockPlaylistRepository is a mock implementation of persistent.PlaylistRepository
type MockPlaylistRepository struct {
	mock.Mock
}

func (m *MockPlaylistRepository) Create(playlist *entity.Playlist) error {
	return m.Called(playlist).Error(0)
}

func (m *MockPlaylistRepository) GetByID(id string) (*entity.Playlist, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) GetWithVideos(id string) (*entity.PlaylistWithVideos, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PlaylistWithVideos), args.Error(1)
}

func (m *MockPlaylistRepository) ListByOwner(ownerID string) ([]entity.Playlist, error) {
	args := m.Called(ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) Update(playlist *entity.Playlist) error {
	return m.Called(playlist).Error(0)
}

func (m *MockPlaylistRepository) Delete(id string) error {
	return m.Called(id).Error(0)
}

func (m *MockPlaylistRepository) HasVideo(playlistID, videoID string) (bool, error) {
	args := m.Called(playlistID, videoID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPlaylistRepository) AddVideo(playlistID, videoID string) error {
	return m.Called(playlistID, videoID).Error(0)
}

func (m *MockPlaylistRepository) RemoveVideo(playlistID, videoID string) error {
	return m.Called(playlistID, videoID).Error(0)
}

var _ persistent.PlaylistRepository = (*MockPlaylistRepository)(nil)

// MockVideoRepository is a mock implementation of persistent.VideoRepository
type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) Create(video *entity.Video) error {
	return m.Called(video).Error(0)
}

func (m *MockVideoRepository) GetByID(id string) (*entity.Video, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoRepository) GetByIDWithOwner(id string) (*entity.VideoWithOwner, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.VideoWithOwner), args.Error(1)
}

func (m *MockVideoRepository) List(filter persistent.VideoFilter, opts persistent.ListOptions) ([]entity.VideoWithOwner, error) {
	args := m.Called(filter, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.VideoWithOwner), args.Error(1)
}

func (m *MockVideoRepository) Update(video *entity.Video) error {
	return m.Called(video).Error(0)
}

func (m *MockVideoRepository) Delete(id string) error {
	return m.Called(id).Error(0)
}

func (m *MockVideoRepository) IncrementViews(id string) error {
	return m.Called(id).Error(0)
}

func (m *MockVideoRepository) CountByOwner(ownerID string) (int64, error) {
	args := m.Called(ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVideoRepository) SumViewsByOwner(ownerID string) (int64, error) {
	args := m.Called(ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVideoRepository) CountLikesByOwner(ownerID string) (int64, error) {
	args := m.Called(ownerID)
	return args.Get(0).(int64), args.Error(1)
}

var _ persistent.VideoRepository = (*MockVideoRepository)(nil)

// MockLikeRepository is a mock implementation of persistent.LikeRepository
type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) IsLiked(userID string, kind entity.LikeTargetKind, targetID string) (bool, error) {
	args := m.Called(userID, kind, targetID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) Create(userID string, kind entity.LikeTargetKind, targetID string) error {
	return m.Called(userID, kind, targetID).Error(0)
}

func (m *MockLikeRepository) Delete(userID string, kind entity.LikeTargetKind, targetID string) error {
	return m.Called(userID, kind, targetID).Error(0)
}

func (m *MockLikeRepository) Count(kind entity.LikeTargetKind, targetID string) (int64, error) {
	args := m.Called(kind, targetID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLikeRepository) ListLikedVideos(userID string, opts persistent.ListOptions) ([]entity.VideoWithOwner, error) {
	args := m.Called(userID, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.VideoWithOwner), args.Error(1)
}

var _ persistent.LikeRepository = (*MockLikeRepository)(nil)

// MockCommentRepository is a mock implementation of persistent.CommentRepository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(comment *entity.Comment) error {
	return m.Called(comment).Error(0)
}

func (m *MockCommentRepository) GetByID(id string) (*entity.Comment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListByVideo(videoID string, opts persistent.ListOptions) ([]entity.CommentWithOwner, error) {
	args := m.Called(videoID, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.CommentWithOwner), args.Error(1)
}

func (m *MockCommentRepository) Update(comment *entity.Comment) error {
	return m.Called(comment).Error(0)
}

func (m *MockCommentRepository) Delete(id string) error {
	return m.Called(id).Error(0)
}

var _ persistent.CommentRepository = (*MockCommentRepository)(nil)

// MockTweetRepository is a mock implementation of persistent.TweetRepository
type MockTweetRepository struct {
	mock.Mock
}

func (m *MockTweetRepository) Create(tweet *entity.Tweet) error {
	return m.Called(tweet).Error(0)
}

func (m *MockTweetRepository) GetByID(id string) (*entity.Tweet, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Tweet), args.Error(1)
}

func (m *MockTweetRepository) ListByOwner(ownerID string, opts persistent.ListOptions) ([]entity.TweetWithOwner, error) {
	args := m.Called(ownerID, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.TweetWithOwner), args.Error(1)
}

func (m *MockTweetRepository) Update(tweet *entity.Tweet) error {
	return m.Called(tweet).Error(0)
}

func (m *MockTweetRepository) Delete(id string) error {
	return m.Called(id).Error(0)
}

var _ persistent.TweetRepository = (*MockTweetRepository)(nil)
