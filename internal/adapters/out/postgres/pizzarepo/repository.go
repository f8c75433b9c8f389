package pizzarepo

import (
	"context"
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/pizza"
	"pizzeria/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPizzaRepository implements ports.PizzaRepository using GORM.
// Requires the connection to be opened with TranslateError so unique
// violations surface as gorm.ErrDuplicatedKey.
type GormPizzaRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPizzaRepository creates a new GORM catalog repository.
func NewGormPizzaRepository(db *gorm.DB, tracker aggregateTracker) *GormPizzaRepository {
	return &GormPizzaRepository{
		db:      db,
		tracker: tracker,
	}
}

// withIngredients preloads the ingredient rows in their stored order.
func (r *GormPizzaRepository) withIngredients(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}

// Add saves a new catalog entry. A name collision returns
// pizza.ErrDuplicateName.
func (r *GormPizzaRepository) Add(ctx context.Context, aggregate *pizza.Pizza) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return pizza.ErrDuplicateName
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing catalog entry. Ingredient rows are replaced
// wholesale. A rename collision returns pizza.ErrDuplicateName.
func (r *GormPizzaRepository) Update(ctx context.Context, aggregate *pizza.Pizza) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	row := dto
	row.Ingredients = nil
	result := r.db.WithContext(ctx).
		Model(&PizzaDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id").
		Updates(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return pizza.ErrDuplicateName
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("pizza", aggregate.ID().String())
	}

	if err := r.db.WithContext(ctx).
		Where("pizza_id = ?", dto.ID).
		Delete(&PizzaIngredientDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Ingredients) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Ingredients).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a catalog entry by ID.
func (r *GormPizzaRepository) Get(ctx context.Context, id kernel.UUID) (*pizza.Pizza, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PizzaDTO
	if err := r.withIngredients(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pizza", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByIDs retrieves the catalog entries matching the given ids in one
// batched query. Unknown ids are simply absent from the result.
func (r *GormPizzaRepository) GetAllByIDs(
	ctx context.Context, ids []kernel.UUID) ([]*pizza.Pizza, error) {
	if len(ids) == 0 {
		return []*pizza.Pizza{}, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	var dtos []PizzaDTO
	if err := r.withIngredients(ctx).Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAll retrieves the whole catalog sorted by name.
func (r *GormPizzaRepository) GetAll(ctx context.Context) ([]*pizza.Pizza, error) {
	var dtos []PizzaDTO
	if err := r.withIngredients(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// Delete removes a catalog entry and its ingredient rows. Orders keep
// their line-item snapshots.
func (r *GormPizzaRepository) Delete(ctx context.Context, aggregate *pizza.Pizza) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	id := aggregate.ID().Bytes()
	if err := r.db.WithContext(ctx).
		Where("pizza_id = ?", id).
		Delete(&PizzaIngredientDTO{}).Error; err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&PizzaDTO{}, "id = ?", id).Error
}

func toDomainSlice(dtos []PizzaDTO) ([]*pizza.Pizza, error) {
	pizzas := make([]*pizza.Pizza, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		pizzas = append(pizzas, p)
	}

	return pizzas, nil
}
