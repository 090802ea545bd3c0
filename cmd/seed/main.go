package main

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/360Pawan/360Tube/internal/model"
	"github.com/360Pawan/360Tube/pkg/config"
	"github.com/360Pawan/360Tube/pkg/database"
	"github.com/360Pawan/360Tube/pkg/logger"
	"github.com/360Pawan/360Tube/pkg/s3"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, s3Client, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, s3Client *s3.Client, log *logger.Logger) error {
	httpClient := &http.Client{
		Timeout: 30 * time.Second,
	}

	testUsers := []struct {
		email    string
		username string
		fullName string
		password string
	}{
		{"alice@test.com", "alice_tube", "Alice Johnson", "password123"},
		{"bob@test.com", "bob_tube", "Bob Smith", "password123"},
		{"charlie@test.com", "charlie_tube", "Charlie Davis", "password123"},
		{"diana@test.com", "diana_tube", "Diana Evans", "password123"},
		{"eve@test.com", "eve_tube", "Eve Foster", "password123"},
	}

	userIDs := make([]string, 0, len(testUsers))

	for _, userData := range testUsers {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(userData.password), bcrypt.DefaultCost)

		user := &model.UserModel{
			Email:         userData.email,
			Username:      userData.username,
			FullName:      userData.fullName,
			Password:      string(hashedPassword),
			EmailVerified: true,
		}

		var existingUser model.UserModel
		result := db.Where("email = ? OR username = ?", user.Email, user.Username).First(&existingUser)
		if result.Error == nil {
			log.Info("User %s already exists, skipping", user.Username)
			userIDs = append(userIDs, existingUser.ID)
			continue
		}

		if err := db.Create(user).Error; err != nil {
			log.Error("Failed to create user %s: %v", user.Username, err)
			continue
		}

		log.Info("Created user: %s (%s)", user.Username, user.Email)
		userIDs = append(userIDs, user.ID)

		videosCount := 2 + (len(userIDs) % 3)
		log.Info("Creating %d videos for user %s", videosCount, user.Username)
		for i := 0; i < videosCount; i++ {
			if err := createVideoWithThumbnail(db, s3Client, httpClient, user.ID, user.Username, i, log); err != nil {
				log.Error("Failed to create video %d for user %s: %v", i+1, user.Username, err)
				continue
			}
			time.Sleep(200 * time.Millisecond)
		}
	}

	for i := 0; i < len(userIDs); i++ {
		for j := i + 1; j < len(userIDs); j++ {
			subscriberID := userIDs[i]
			channelID := userIDs[j]

			var existingSub model.SubscriptionModel
			result := db.Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).First(&existingSub)
			if result.Error == nil {
				continue
			}

			subscription := &model.SubscriptionModel{
				SubscriberID: subscriberID,
				ChannelID:    channelID,
			}
			if err := db.Create(subscription).Error; err != nil {
				log.Error("Failed to create subscription: %v", err)
				continue
			}
		}
	}

	log.Info("Created test subscriptions")
	return nil
}

func createVideoWithThumbnail(db *gorm.DB, s3Client *s3.Client, httpClient *http.Client, userID, username string, index int, log *logger.Logger) error {
	thumbnailURL := fmt.Sprintf("https://picsum.photos/seed/%s-%d/640/360", username, index)

	log.Info("Fetching thumbnail from %s", thumbnailURL)
	resp, err := httpClient.Get(thumbnailURL)
	if err != nil {
		return fmt.Errorf("failed to fetch thumbnail: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("picsum API returned status %d", resp.StatusCode)
	}

	imageData, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read image data: %w", err)
	}
	if len(imageData) == 0 {
		return fmt.Errorf("received empty image data")
	}

	fileKey := fmt.Sprintf("thumbnails/%s/seed_%d.jpg", userID, index)
	uploadedURL, err := s3Client.UploadFile(fileKey, bytes.NewReader(imageData), "image/jpeg")
	if err != nil {
		return fmt.Errorf("failed to upload thumbnail to S3: %w", err)
	}

	video := &model.VideoModel{
		OwnerID:      userID,
		Title:        fmt.Sprintf("%s's video #%d", username, index+1),
		Description:  fmt.Sprintf("Seed video %d uploaded by %s", index+1, username),
		VideoURL:     fmt.Sprintf("https://example.com/videos/%s/seed_%d.mp4", userID, index),
		VideoKey:     fmt.Sprintf("videos/%s/seed_%d.mp4", userID, index),
		ThumbnailURL: uploadedURL,
		ThumbnailKey: fileKey,
		Duration:     60 + float64(index*30),
		IsPublished:  true,
	}

	if err := db.Create(video).Error; err != nil {
		return fmt.Errorf("failed to create video record: %w", err)
	}

	log.Info("Created video %q for %s", video.Title, username)
	return nil
}
