package favourites

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/domain"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/dto"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/remote"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/repository/favourite_repo"
)

type FavouriteNotFoundError struct {
	ID domain.FavouriteID
}

func (e *FavouriteNotFoundError) Error() string {
	return fmt.Sprintf("Favourite with id: %s not found!", e.ID)
}

type FavouriteService interface {
	FindAll(ctx context.Context) ([]*dto.FavouriteDTO, error)
	FindByID(ctx context.Context, id domain.FavouriteID) (*dto.FavouriteDTO, error)
	Save(ctx context.Context, d *dto.FavouriteDTO) (*dto.FavouriteDTO, error)
	Update(ctx context.Context, d *dto.FavouriteDTO) (*dto.FavouriteDTO, error)
	DeleteByID(ctx context.Context, id domain.FavouriteID) error
}

type favouriteService struct {
	favouriteRepo favourite_repo.FavouriteRepository
	users         remote.UserLookup
	products      remote.ProductLookup
	enrich        remote.Enricher
	listPolicy    remote.ListPolicy
	logger        *zap.Logger
}

// NewFavouriteService builds the aggregator. enrich decides how the two
// lookups of one favourite are dispatched (nil means sequential); listPolicy
// decides what FindAll does when one element's lookups fail.
func NewFavouriteService(
	favouriteRepo favourite_repo.FavouriteRepository,
	users remote.UserLookup,
	products remote.ProductLookup,
	enrich remote.Enricher,
	listPolicy remote.ListPolicy,
	logger *zap.Logger,
) FavouriteService {
	if enrich == nil {
		enrich = remote.Sequential
	}
	if listPolicy == "" {
		listPolicy = remote.ListPolicyAbort
	}
	return &favouriteService{
		favouriteRepo: favouriteRepo,
		users:         users,
		products:      products,
		enrich:        enrich,
		listPolicy:    listPolicy,
		logger:        logger,
	}
}

func (s *favouriteService) enrichDTO(ctx context.Context, record *domain.Favourite, d *dto.FavouriteDTO) error {
	return s.enrich(ctx,
		func(ctx context.Context) error {
			user, err := s.users.FetchUser(ctx, record.UserID)
			if err != nil {
				return err
			}
			d.User = user
			return nil
		},
		func(ctx context.Context) error {
			product, err := s.products.FetchProduct(ctx, record.ProductID)
			if err != nil {
				return err
			}
			d.Product = product
			return nil
		},
	)
}

func (s *favouriteService) FindAll(ctx context.Context) ([]*dto.FavouriteDTO, error) {
	favourites, err := s.favouriteRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to get all favourites from repository", zap.Error(err))
		return nil, err
	}
	result := make([]*dto.FavouriteDTO, 0, len(favourites))
	for _, favourite := range favourites {
		d := toDTO(favourite)
		if err := s.enrichDTO(ctx, favourite, d); err != nil {
			if s.listPolicy == remote.ListPolicySkip {
				s.logger.Warn("Skipping favourite: remote lookup failed",
					zap.String("favourite_id", favourite.ID().String()),
					zap.Error(err))
				continue
			}
			return nil, fmt.Errorf("failed to enrich favourite %s: %w", favourite.ID(), err)
		}
		result = append(result, d)
	}
	return result, nil
}

func (s *favouriteService) FindByID(ctx context.Context, id domain.FavouriteID) (*dto.FavouriteDTO, error) {
	favourite, err := s.favouriteRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.Debug("Favourite not found", zap.String("favourite_id", id.String()))
			return nil, &FavouriteNotFoundError{ID: id}
		}
		s.logger.Error("Failed to get favourite from repository", zap.String("favourite_id", id.String()), zap.Error(err))
		return nil, err
	}

	d := toDTO(favourite)
	if err := s.enrichDTO(ctx, favourite, d); err != nil {
		return nil, fmt.Errorf("failed to enrich favourite %s: %w", id, err)
	}
	return d, nil
}

func (s *favouriteService) Save(ctx context.Context, d *dto.FavouriteDTO) (*dto.FavouriteDTO, error) {
	persisted, err := s.favouriteRepo.Save(ctx, toRecord(d))
	if err != nil {
		s.logger.Error("Failed to save favourite", zap.Error(err))
		return nil, err
	}
	s.logger.Info("Favourite saved", zap.String("favourite_id", persisted.ID().String()))

	// echo the caller's substructures instead of re-fetching
	out := toDTO(persisted)
	out.User = d.User
	out.Product = d.Product
	return out, nil
}

func (s *favouriteService) Update(ctx context.Context, d *dto.FavouriteDTO) (*dto.FavouriteDTO, error) {
	return s.Save(ctx, d)
}

func (s *favouriteService) DeleteByID(ctx context.Context, id domain.FavouriteID) error {
	if err := s.favouriteRepo.DeleteByID(ctx, id); err != nil {
		s.logger.Error("Failed to delete favourite", zap.String("favourite_id", id.String()), zap.Error(err))
		return err
	}
	s.logger.Info("Favourite deleted", zap.String("favourite_id", id.String()))
	return nil
}
