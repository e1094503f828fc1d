package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/utez-accounts/internal/forms"
	"github.com/sbilibin2017/utez-accounts/internal/logger"
	"github.com/sbilibin2017/utez-accounts/internal/models"
	"github.com/segmentio/kafka-go"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("email or control number already registered")
	ErrUserDoesNotExist   = errors.New("user does not exist")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmailOrControlNumber(ctx context.Context, email *string, controlNumber *string) (*models.UserDB, error) // Returns nil when nothing matches
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)                                       // Returns nil when nothing matches
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) error
}

// UserCache keeps recently read profiles.
type UserCache interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) // Returns nil on a cache miss
	Set(ctx context.Context, user *models.UserDB) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// AuthService handles registration, login and profile lookups.
type AuthService struct {
	reader      UserReader
	writer      UserWriter
	cache       UserCache
	jwt         JWTGenerator
	kafkaWriter KafkaWriter
	afterCommit func(ctx context.Context, fn func(ctx context.Context))
}

// Opt configures an AuthService.
type Opt func(*AuthService)

// WithAfterCommit sets how side effects of Register are deferred until the user row is committed.
// By default they run right after Save.
func WithAfterCommit(afterCommit func(ctx context.Context, fn func(ctx context.Context))) Opt {
	return func(svc *AuthService) {
		svc.afterCommit = afterCommit
	}
}

// NewAuthService creates a new AuthService instance.
// cache and kafkaWriter may be nil.
func NewAuthService(reader UserReader, writer UserWriter, cache UserCache, jwt JWTGenerator, kafkaWriter KafkaWriter, opts ...Opt) *AuthService {
	svc := &AuthService{
		reader:      reader,
		writer:      writer,
		cache:       cache,
		jwt:         jwt,
		kafkaWriter: kafkaWriter,
		afterCommit: func(ctx context.Context, fn func(ctx context.Context)) { fn(ctx) },
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Register validates the sign-up form and stores a new user.
// A rejected form is returned as forms.ValidationErrors.
func (svc *AuthService) Register(ctx context.Context, in forms.RegistrationInput) error {
	valid, err := forms.ValidateRegistration(in)
	if err != nil {
		logger.Log.Infow("registration rejected", "err", err)
		return err
	}

	existing, err := svc.reader.GetByEmailOrControlNumber(ctx, &valid.Email, &valid.ControlNumber)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if existing != nil {
		logger.Log.Errorw("user already exists", "email", valid.Email, "control_number", valid.ControlNumber)
		return ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(valid.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	user := &models.UserDB{
		UserID:        uuid.New(),
		Email:         valid.Email,
		Name:          valid.Name,
		Surname:       valid.Surname,
		ControlNumber: valid.ControlNumber,
		Age:           valid.Age,
		Tel:           valid.Tel,
		PasswordHash:  string(hashedPassword),
	}
	if err := svc.writer.Save(ctx, user); err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	event := models.UserRegistered{
		EventID:       uuid.NewString(),
		Timestamp:     time.Now().Unix(),
		UserID:        user.UserID.String(),
		Email:         user.Email,
		ControlNumber: user.ControlNumber,
	}
	svc.afterCommit(ctx, func(ctx context.Context) {
		svc.publishRegistered(ctx, event)
	})

	return nil
}

// publishRegistered publishes a registration event to Kafka.
func (svc *AuthService) publishRegistered(ctx context.Context, event models.UserRegistered) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal registration event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish registration event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Registration event published", "event_id", event.EventID, "user_id", event.UserID)
	}
}

// Login authenticates a user and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, in forms.LoginInput) (string, error) {
	in, err := forms.ValidateLogin(in)
	if err != nil {
		return "", err
	}

	user, err := svc.reader.GetByEmailOrControlNumber(ctx, &in.Email, nil)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "email", in.Email)
		return "", ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", in.Email)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// Profile returns the stored user, reading through the cache when one is configured.
func (svc *AuthService) Profile(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	if svc.cache != nil {
		user, err := svc.cache.Get(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to read cached profile", "user_id", userID, "err", err)
		} else if user != nil {
			return user, nil
		}
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserDoesNotExist
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, user); err != nil {
			logger.Log.Errorw("failed to cache profile", "user_id", userID, "err", err)
		}
	}

	return user, nil
}
