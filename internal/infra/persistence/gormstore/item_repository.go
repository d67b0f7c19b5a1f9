package gormstore

import (
	"context"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// likeEscaper makes LIKE wildcards in a search term match literally.
//
//nolint:gochecknoglobals
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// itemRepository implements the repository.ItemRepository interface.
type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository is the constructor for itemRepository.
func NewItemRepository(db *gorm.DB) repository.ItemRepository {
	return &itemRepository{
		db: db,
	}
}

// CreateItem persists a new catalog item.
func (repo *itemRepository) CreateItem(ctx context.Context, item *entity.Item) error {
	itemM := fromItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateItem
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid item")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// FindItemBySlug retrieves an item by its unique slug.
func (repo *itemRepository) FindItemBySlug(ctx context.Context, slug string) (*entity.Item, error) {
	var itemM model.ItemModel

	if err := repo.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find item by slug")
	}

	return toItemDomain(&itemM), nil
}

// FindItemByID retrieves an item by ID.
func (repo *itemRepository) FindItemByID(ctx context.Context, id uint) (*entity.Item, error) {
	var itemM model.ItemModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find item by ID")
	}

	return toItemDomain(&itemM), nil
}

// FindItemsByIDs retrieves the items that exist among ids.
func (repo *itemRepository) FindItemsByIDs(ctx context.Context, ids []uint) ([]*entity.Item, error) {
	if len(ids) == 0 {
		return []*entity.Item{}, nil
	}

	var itemModels []*model.ItemModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find items by IDs")
	}

	return toItemDomains(itemModels), nil
}

// ListItems returns one page of items, newest first, and the total match count.
func (repo *itemRepository) ListItems(ctx context.Context, filter repository.ItemFilter) ([]*entity.Item, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ItemModel{})

	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(q)) + "%"
		conds := repo.db.Where(`LOWER(title) LIKE ? ESCAPE '\'`, pattern).Or(`LOWER(category) LIKE ? ESCAPE '\'`, pattern)
		if categories := categoriesMatching(q); len(categories) > 0 {
			conds = conds.Or("category IN ?", categories)
		}
		query = query.Where(conds)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", string(filter.Category))
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count items")
	}

	var itemModels []*model.ItemModel
	page := query.Order("id DESC")
	if filter.Limit > 0 {
		page = page.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		page = page.Offset(filter.Offset)
	}
	if err := page.Find(&itemModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list items")
	}

	return toItemDomains(itemModels), total, nil
}

// categoriesMatching returns the category codes whose display name contains q.
func categoriesMatching(q string) []string {
	q = strings.ToLower(q)

	var codes []string
	for _, c := range []entity.Category{entity.CategoryShirt, entity.CategorySportWear, entity.CategoryOutwear} {
		if strings.Contains(strings.ToLower(c.DisplayName()), q) {
			codes = append(codes, string(c))
		}
	}

	return codes
}

// --- Mapper Functions ---

func toItemDomain(data *model.ItemModel) *entity.Item {
	if data == nil {
		return nil
	}

	return &entity.Item{
		ID:            data.ID,
		Title:         data.Title,
		Price:         data.Price,
		DiscountPrice: data.DiscountPrice,
		Category:      entity.Category(data.Category),
		Label:         entity.Label(data.Label),
		Slug:          data.Slug,
		Description:   data.Description,
		Image:         data.Image,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toItemDomains(models []*model.ItemModel) []*entity.Item {
	items := make([]*entity.Item, 0, len(models))
	for _, itemM := range models {
		items = append(items, toItemDomain(itemM))
	}

	return items
}

func fromItemDomain(data *entity.Item) *model.ItemModel {
	if data == nil {
		return nil
	}

	return &model.ItemModel{
		ID:            data.ID,
		Title:         data.Title,
		Price:         data.Price,
		DiscountPrice: data.DiscountPrice,
		Category:      string(data.Category),
		Label:         string(data.Label),
		Slug:          data.Slug,
		Description:   data.Description,
		Image:         data.Image,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
