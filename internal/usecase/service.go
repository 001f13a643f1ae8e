package usecase

import (
	"movielist/internal/data/repository"
	"movielist/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	User      UserService
	Movie     MovieService
	Analytics AnalyticsService
	Badge     BadgeService
	Social    SocialService
	Omdb      OmdbService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	badge := NewBadgeService(repo, log)

	return &Service{
		User:      NewUserService(repo, log),
		Movie:     NewMovieService(repo, badge, log),
		Analytics: NewAnalyticsService(repo, log),
		Badge:     badge,
		Social:    NewSocialService(repo, log),
		Omdb:      NewOmdbService(config.OMDb, log),
	}
}
