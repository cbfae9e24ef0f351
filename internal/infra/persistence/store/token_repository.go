package store

import (
	"context"
	"time"

	"pushrelay/internal/domain/entity"
	domainerrors "pushrelay/internal/domain/errors"
	"pushrelay/internal/domain/repository"
	"pushrelay/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// tokenRepository implements the repository.TokenRepository interface.
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository is the constructor for tokenRepository.
func NewTokenRepository(db *gorm.DB) repository.TokenRepository {
	return &tokenRepository{
		db: db,
	}
}

// Upsert inserts the token or refreshes the existing row keyed by token.
func (repo *tokenRepository) Upsert(ctx context.Context, token *entity.DeviceToken) (*entity.DeviceToken, error) {
	now := repo.db.NowFunc()
	tokenM := fromTokenDomain(token)
	tokenM.IsActive = true
	tokenM.CreatedAt = now
	tokenM.UpdatedAt = now

	assignments := clause.AssignmentColumns([]string{"owner_id", "platform", "user_agent", "is_active"})
	assignments = append(assignments, clause.Assignment{
		Column: clause.Column{Name: "updated_at"},
		// updated_at never moves backwards, even across clock adjustments
		Value: gorm.Expr("CASE WHEN excluded.updated_at > device_tokens.updated_at THEN excluded.updated_at ELSE device_tokens.updated_at END"),
	})

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token"}},
			DoUpdates: assignments,
		}).
		Create(tokenM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return nil, domainerrors.ErrInvalidPlatform
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert device token")
	}

	return repo.FindByToken(ctx, token.Token)
}

// FindByToken retrieves a token regardless of its active flag.
func (repo *tokenRepository) FindByToken(ctx context.Context, token string) (*entity.DeviceToken, error) {
	var tokenM model.DeviceTokenModel

	if err := repo.db.WithContext(ctx).
		Where("token = ?", token).
		First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find device token")
	}

	return toTokenDomain(&tokenM), nil
}

// FindActive retrieves all active tokens, most recently updated first.
func (repo *tokenRepository) FindActive(ctx context.Context) ([]*entity.DeviceToken, error) {
	var tokenModels []*model.DeviceTokenModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("updated_at DESC, id DESC").
		Find(&tokenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active device tokens")
	}

	return toTokenDomains(tokenModels), nil
}

// FindActiveByOwner retrieves the active tokens of one owner, most recently updated first.
func (repo *tokenRepository) FindActiveByOwner(ctx context.Context, ownerID string) ([]*entity.DeviceToken, error) {
	var tokenModels []*model.DeviceTokenModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ? AND is_active = ?", ownerID, true).
		Order("updated_at DESC, id DESC").
		Find(&tokenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find device tokens by owner")
	}

	return toTokenDomains(tokenModels), nil
}

// Deactivate clears the active flag of an active token.
func (repo *tokenRepository) Deactivate(ctx context.Context, token string) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceTokenModel{}).
		Where("token = ? AND is_active = ?", token, true).
		Updates(map[string]any{
			"is_active":  false,
			"updated_at": repo.db.NowFunc(),
		})

	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to deactivate device token")
	}

	return result.RowsAffected > 0, nil
}

// DeactivateMany clears the active flag for every listed token.
func (repo *tokenRepository) DeactivateMany(ctx context.Context, tokens []string) (int64, error) {
	if len(tokens) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.DeviceTokenModel{}).
		Where("token IN ? AND is_active = ?", tokens, true).
		Updates(map[string]any{
			"is_active":  false,
			"updated_at": repo.db.NowFunc(),
		})

	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to deactivate device tokens")
	}

	return result.RowsAffected, nil
}

type platformCount struct {
	Platform string
	Count    int64
}

// Stats aggregates the active token population.
func (repo *tokenRepository) Stats(ctx context.Context, since time.Time) (*entity.DeviceStats, error) {
	db := repo.db.WithContext(ctx)
	stats := &entity.DeviceStats{
		PerPlatformCounts: make(map[entity.Platform]int64),
	}

	if err := db.Model(&model.DeviceTokenModel{}).
		Where("is_active = ?", true).
		Count(&stats.TotalActive).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count active device tokens")
	}

	var counts []platformCount
	if err := db.Model(&model.DeviceTokenModel{}).
		Select("platform, COUNT(*) AS count").
		Where("is_active = ?", true).
		Group("platform").
		Scan(&counts).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count device tokens by platform")
	}
	for _, c := range counts {
		stats.PerPlatformCounts[entity.Platform(c.Platform)] = c.Count
	}

	if err := db.Model(&model.DeviceTokenModel{}).
		Where("is_active = ? AND created_at >= ?", true, since.UTC()).
		Count(&stats.RecentRegistrations).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count recent device tokens")
	}

	return stats, nil
}

// --- Mapper Functions ---

// toTokenDomain converts a GORM DeviceTokenModel to a domain DeviceToken entity.
func toTokenDomain(data *model.DeviceTokenModel) *entity.DeviceToken {
	if data == nil {
		return nil
	}

	return &entity.DeviceToken{
		Token:     data.Token,
		OwnerID:   data.OwnerID,
		Platform:  entity.Platform(data.Platform),
		UserAgent: data.UserAgent,
		Active:    data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toTokenDomains(models []*model.DeviceTokenModel) []*entity.DeviceToken {
	tokens := make([]*entity.DeviceToken, 0, len(models))
	for _, m := range models {
		tokens = append(tokens, toTokenDomain(m))
	}

	return tokens
}

// fromTokenDomain converts a domain DeviceToken entity to a GORM DeviceTokenModel.
func fromTokenDomain(data *entity.DeviceToken) *model.DeviceTokenModel {
	if data == nil {
		return nil
	}

	return &model.DeviceTokenModel{
		Token:     data.Token,
		OwnerID:   data.OwnerID,
		Platform:  string(data.Platform),
		UserAgent: data.UserAgent,
		IsActive:  data.Active,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
