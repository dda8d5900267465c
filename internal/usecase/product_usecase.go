package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"checkout-service/internal/domain/entities"
	"checkout-service/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound     = errors.New("product not found")
	ErrInvalidProductID    = errors.New("invalid product id")
	ErrInvalidProductName  = errors.New("invalid product name")
	ErrInvalidProductPrice = errors.New("invalid product price")
	ErrInvalidProductSlug  = errors.New("invalid product slug")
	ErrProductSlugTaken    = errors.New("product slug already in use")
	ErrInvalidManualStatus = errors.New("invalid manual card status")
)

// IProductUseCase exposes the admin product operations plus the storefront
// reads (by id and by slug).

type IProductUseCase interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	GetBySlug(ctx context.Context, slug string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
	Update(ctx context.Context, p entities.Product) (entities.Product, error)
	Delete(ctx context.Context, id string) error
}

type ProductUseCase struct {
	repo interfaces.IProductRepository
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(repo interfaces.IProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

var slugCleanRegex = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowers the name and collapses every non-alphanumeric run into a
// single dash.
func Slugify(name string) string {
	s := slugCleanRegex.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
	return strings.Trim(s, "-")
}

func (u *ProductUseCase) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	if err := validateProduct(&p); err != nil {
		return entities.Product{}, err
	}

	// Slug uniqueness: lookup before create.
	if existing, err := u.repo.GetBySlug(ctx, p.Slug); err != nil {
		return entities.Product{}, err
	} else if existing.ID != "" {
		return entities.Product{}, ErrProductSlugTaken
	}

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now
	return u.repo.Create(ctx, p)
}

func (u *ProductUseCase) GetByID(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *ProductUseCase) GetBySlug(ctx context.Context, slug string) (entities.Product, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return entities.Product{}, ErrInvalidProductSlug
	}
	p, err := u.repo.GetBySlug(ctx, slug)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *ProductUseCase) List(ctx context.Context) ([]entities.Product, error) {
	return u.repo.List(ctx)
}

func (u *ProductUseCase) Update(ctx context.Context, p entities.Product) (entities.Product, error) {
	p.ID = strings.TrimSpace(p.ID)
	if p.ID == "" {
		return entities.Product{}, ErrInvalidProductID
	}
	if err := validateProduct(&p); err != nil {
		return entities.Product{}, err
	}

	current, err := u.repo.GetByID(ctx, p.ID)
	if err != nil {
		return entities.Product{}, err
	}
	if current.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}

	if p.Slug != current.Slug {
		if existing, err := u.repo.GetBySlug(ctx, p.Slug); err != nil {
			return entities.Product{}, err
		} else if existing.ID != "" && existing.ID != p.ID {
			return entities.Product{}, ErrProductSlugTaken
		}
	}

	p.CreatedAt = current.CreatedAt
	p.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, p)
}

func (u *ProductUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidProductID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.ID == "" {
		return ErrProductNotFound
	}
	return u.repo.Delete(ctx, id)
}

func validateProduct(p *entities.Product) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return ErrInvalidProductName
	}
	if p.Price <= 0 {
		return ErrInvalidProductPrice
	}
	if strings.TrimSpace(p.Slug) == "" {
		p.Slug = Slugify(p.Name)
	} else {
		p.Slug = Slugify(p.Slug)
	}
	if p.Slug == "" {
		return ErrInvalidProductSlug
	}
	if p.UseCustomProcessing {
		switch p.ManualCardStatus {
		case entities.ManualCardStatusApproved, entities.ManualCardStatusDenied, entities.ManualCardStatusAnalysis:
		case "":
			p.ManualCardStatus = entities.ManualCardStatusAnalysis
		default:
			return ErrInvalidManualStatus
		}
	}
	return nil
}
