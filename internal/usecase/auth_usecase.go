package usecase

import (
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/360Pawan/360Tube/internal/entity"
	"github.com/360Pawan/360Tube/internal/repo/persistent"
	"github.com/360Pawan/360Tube/pkg/jwt"
	"github.com/360Pawan/360Tube/pkg/logger"
	"github.com/360Pawan/360Tube/pkg/queue"

	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct {
	Username string
	Email    string
	FullName string
	Password string
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type AuthUseCase interface {
	Register(input RegisterInput, avatar, coverImage *multipart.FileHeader) (*entity.User, error)
	Login(identifier, password string) (*entity.User, TokenPair, error)
	Logout(userID string) error
	RefreshSession(refreshToken string) (*entity.User, TokenPair, error)
	VerifyEmail(token string) error
	ChangePassword(userID, oldPassword, newPassword string) error
}

type authUseCase struct {
	userRepo    persistent.UserRepository
	jwtService  *jwt.Service
	media       *MediaService
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	jwtService *jwt.Service,
	media *MediaService,
	queueClient *queue.Client,
	log *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:    userRepo,
		jwtService:  jwtService,
		media:       media,
		queueClient: queueClient,
		logger:      log,
	}
}

func (uc *authUseCase) Register(input RegisterInput, avatar, coverImage *multipart.FileHeader) (*entity.User, error) {
	username := strings.ToLower(strings.TrimSpace(input.Username))
	email := strings.ToLower(strings.TrimSpace(input.Email))

	exists, err := uc.userRepo.ExistsByUsernameOrEmail(username, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing users: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: username or email already registered", ErrInvalidInput)
	}

	avatarRef, err := uc.media.Upload(avatar, "avatars", "image/jpeg")
	if err != nil {
		uc.logger.Error("Failed to upload avatar: %v", err)
		return nil, fmt.Errorf("failed to upload avatar: %w", err)
	}

	var coverRef entity.MediaRef
	if coverImage != nil {
		coverRef, err = uc.media.Upload(coverImage, "covers", "image/jpeg")
		if err != nil {
			uc.logger.Error("Failed to upload cover image: %v", err)
			return nil, fmt.Errorf("failed to upload cover image: %w", err)
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, fmt.Errorf("failed to process registration")
	}

	user := &entity.User{
		Username:   username,
		Email:      email,
		FullName:   input.FullName,
		Password:   string(hashedPassword),
		Avatar:     avatarRef,
		CoverImage: coverRef,
	}

	if err := uc.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	verifyToken, err := uc.jwtService.GenerateEmailToken(user.ID)
	if err != nil {
		uc.logger.Error("Failed to generate verification token: %v", err)
	} else {
		if err := uc.userRepo.UpdateVerifyToken(user.ID, verifyToken); err != nil {
			uc.logger.Error("Failed to persist verification token: %v", err)
		} else {
			uc.sendVerificationMail(user, verifyToken)
		}
	}

	user.Password = ""
	return user, nil
}

// sendVerificationMail is fire-and-forget; a publish failure is logged
// and never surfaced to the registering caller.
func (uc *authUseCase) sendVerificationMail(user *entity.User, token string) {
	if uc.queueClient == nil {
		return
	}
	go func() {
		task := queue.MailTask{
			To:       user.Email,
			Username: user.Username,
			Kind:     "verify_email",
			Token:    token,
		}
		if err := uc.queueClient.PublishMailTask(task); err != nil {
			uc.logger.Error("Failed to queue verification mail for %s: %v", user.Email, err)
		}
	}()
}

func (uc *authUseCase) Login(identifier, password string) (*entity.User, TokenPair, error) {
	user, err := uc.userRepo.GetByUsernameOrEmail(strings.ToLower(strings.TrimSpace(identifier)))
	if err != nil {
		return nil, TokenPair{}, asStorageError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, TokenPair{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	tokens, err := uc.issueTokens(user)
	if err != nil {
		return nil, TokenPair{}, err
	}

	user.Password = ""
	user.RefreshToken = ""
	return user, tokens, nil
}

func (uc *authUseCase) Logout(userID string) error {
	return uc.userRepo.UpdateRefreshToken(userID, "")
}

func (uc *authUseCase) RefreshSession(refreshToken string) (*entity.User, TokenPair, error) {
	if refreshToken == "" {
		return nil, TokenPair{}, fmt.Errorf("%w: refresh token required", ErrUnauthorized)
	}

	claims, err := uc.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, TokenPair{}, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	user, err := uc.userRepo.GetByID(claims.UserID)
	if err != nil {
		return nil, TokenPair{}, fmt.Errorf("%w: account no longer exists", ErrUnauthorized)
	}

	// A token that verified but does not match the stored one has been
	// rotated out; treat its reuse as unauthorized.
	if user.RefreshToken != refreshToken {
		return nil, TokenPair{}, fmt.Errorf("%w: refresh token has been rotated", ErrUnauthorized)
	}

	tokens, err := uc.issueTokens(user)
	if err != nil {
		return nil, TokenPair{}, err
	}

	user.Password = ""
	user.RefreshToken = ""
	return user, tokens, nil
}

// issueTokens mints an access+refresh pair and persists the refresh
// token, rotating out any previous one.
func (uc *authUseCase) issueTokens(user *entity.User) (TokenPair, error) {
	accessToken, err := uc.jwtService.GenerateAccessToken(user.ID, user.Email, user.Username, user.FullName)
	if err != nil {
		uc.logger.Error("Failed to generate access token: %v", err)
		return TokenPair{}, fmt.Errorf("failed to generate tokens")
	}

	refreshToken, err := uc.jwtService.GenerateRefreshToken(user.ID)
	if err != nil {
		uc.logger.Error("Failed to generate refresh token: %v", err)
		return TokenPair{}, fmt.Errorf("failed to generate tokens")
	}

	if err := uc.userRepo.UpdateRefreshToken(user.ID, refreshToken); err != nil {
		return TokenPair{}, fmt.Errorf("failed to persist refresh token: %w", err)
	}

	return TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (uc *authUseCase) VerifyEmail(token string) error {
	claims, err := uc.jwtService.ValidateEmailToken(token)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	user, err := uc.userRepo.GetByID(claims.UserID)
	if err != nil {
		return asStorageError(err)
	}

	if user.EmailVerified {
		return fmt.Errorf("%w: email already verified", ErrInvalidInput)
	}
	if user.VerifyToken != token {
		return fmt.Errorf("%w: verification token no longer valid", ErrUnauthorized)
	}

	return uc.userRepo.MarkEmailVerified(user.ID)
}

func (uc *authUseCase) ChangePassword(userID, oldPassword, newPassword string) error {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return asStorageError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return fmt.Errorf("%w: old password is incorrect", ErrUnauthorized)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return fmt.Errorf("failed to change password")
	}

	return uc.userRepo.UpdatePassword(userID, string(hashedPassword))
}
