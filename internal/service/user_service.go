package service

import (
	"context"
	"encoding/json"
	"time"

	"itda/internal/cache"
	"itda/internal/model"
	"itda/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UserService exposes profile operations for authenticated users.
type UserService interface {
	GetUser(ctx context.Context, id string) (*model.User, error)
	RequestBrokerVerification(ctx context.Context, id string, profile model.BrokerProfile) (*model.User, error)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) cacheKey(id string) string {
	return "user:" + id
}

func (s *userService) GetUser(ctx context.Context, id string) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}
	return user, nil
}

// RequestBrokerVerification promotes the user to broker with an unverified
// profile awaiting review.
func (s *userService) RequestBrokerVerification(ctx context.Context, id string, profile model.BrokerProfile) (*model.User, error) {
	user, err := s.repo.SetBrokerProfile(ctx, id, profile)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return user, nil
}
