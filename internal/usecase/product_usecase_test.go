package usecase

import (
	"context"
	"errors"
	"testing"

	"checkout-service/internal/domain/entities"
	mock_interfaces "checkout-service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSlugify(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Curso de Go", "curso-de-go"},
		{"  Produto   Digital!  ", "produto-digital"},
		{"UPPER", "upper"},
		{"---", ""},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Fatalf("Slugify(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestProductUseCase_Create(t *testing.T) {
	t.Run("empty name rejected", func(t *testing.T) {
		uc := NewProductUseCase(nil)
		_, err := uc.Create(context.Background(), entities.Product{Price: 10})
		if !errors.Is(err, ErrInvalidProductName) {
			t.Fatalf("expected ErrInvalidProductName, got %v", err)
		}
	})

	t.Run("non positive price rejected", func(t *testing.T) {
		uc := NewProductUseCase(nil)
		_, err := uc.Create(context.Background(), entities.Product{Name: "Curso"})
		if !errors.Is(err, ErrInvalidProductPrice) {
			t.Fatalf("expected ErrInvalidProductPrice, got %v", err)
		}
	})

	t.Run("slug collision rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo)

		repo.EXPECT().GetBySlug(gomock.Any(), "curso").Return(entities.Product{ID: "other"}, nil)

		_, err := uc.Create(context.Background(), entities.Product{Name: "Curso", Price: 10})
		if !errors.Is(err, ErrProductSlugTaken) {
			t.Fatalf("expected ErrProductSlugTaken, got %v", err)
		}
	})

	t.Run("success assigns id and slug", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo)

		repo.EXPECT().GetBySlug(gomock.Any(), "curso-de-go").Return(entities.Product{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Product) (entities.Product, error) { return p, nil },
		)

		created, err := uc.Create(context.Background(), entities.Product{Name: "Curso de Go", Price: 99.9})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" || created.Slug != "curso-de-go" || created.CreatedAt.IsZero() {
			t.Fatalf("unexpected product: %+v", created)
		}
	})

	t.Run("custom processing defaults manual status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo)

		repo.EXPECT().GetBySlug(gomock.Any(), gomock.Any()).Return(entities.Product{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Product) (entities.Product, error) { return p, nil },
		)

		created, err := uc.Create(context.Background(), entities.Product{Name: "Curso", Price: 10, UseCustomProcessing: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ManualCardStatus != entities.ManualCardStatusAnalysis {
			t.Fatalf("expected ANALYSIS default, got %s", created.ManualCardStatus)
		}
	})

	t.Run("bogus manual status rejected", func(t *testing.T) {
		uc := NewProductUseCase(nil)
		_, err := uc.Create(context.Background(), entities.Product{
			Name: "Curso", Price: 10,
			UseCustomProcessing: true, ManualCardStatus: "MAYBE",
		})
		if !errors.Is(err, ErrInvalidManualStatus) {
			t.Fatalf("expected ErrInvalidManualStatus, got %v", err)
		}
	})
}

func TestProductUseCase_Reads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIProductRepository(ctrl)
	uc := NewProductUseCase(repo)

	t.Run("get by id not found", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Product{}, nil)
		if _, err := uc.GetByID(context.Background(), "missing"); !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("get by slug", func(t *testing.T) {
		repo.EXPECT().GetBySlug(gomock.Any(), "curso").Return(entities.Product{ID: "prod-1", Slug: "curso"}, nil)
		p, err := uc.GetBySlug(context.Background(), "curso")
		if err != nil || p.ID != "prod-1" {
			t.Fatalf("unexpected result: %+v %v", p, err)
		}
	})

	t.Run("empty slug", func(t *testing.T) {
		if _, err := uc.GetBySlug(context.Background(), "  "); !errors.Is(err, ErrInvalidProductSlug) {
			t.Fatalf("expected ErrInvalidProductSlug, got %v", err)
		}
	})
}

func TestProductUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "prod-1").Return(entities.Product{}, nil)

		_, err := uc.Update(context.Background(), entities.Product{ID: "prod-1", Name: "Curso", Price: 10})
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("slug change collision rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "prod-1").Return(entities.Product{ID: "prod-1", Slug: "old"}, nil)
		repo.EXPECT().GetBySlug(gomock.Any(), "new").Return(entities.Product{ID: "prod-2"}, nil)

		_, err := uc.Update(context.Background(), entities.Product{ID: "prod-1", Name: "Curso", Price: 10, Slug: "new"})
		if !errors.Is(err, ErrProductSlugTaken) {
			t.Fatalf("expected ErrProductSlugTaken, got %v", err)
		}
	})

	t.Run("success keeps created_at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo)

		current := entities.Product{ID: "prod-1", Slug: "curso"}
		repo.EXPECT().GetByID(gomock.Any(), "prod-1").Return(current, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Product) (entities.Product, error) { return p, nil },
		)

		updated, err := uc.Update(context.Background(), entities.Product{ID: "prod-1", Name: "Curso", Price: 20, Slug: "curso"})
		if err != nil || updated.Price != 20 {
			t.Fatalf("unexpected result: %+v %v", updated, err)
		}
	})
}

func TestProductUseCase_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIProductRepository(ctrl)
	uc := NewProductUseCase(repo)

	repo.EXPECT().GetByID(gomock.Any(), "prod-1").Return(entities.Product{ID: "prod-1"}, nil)
	repo.EXPECT().Delete(gomock.Any(), "prod-1").Return(nil)

	if err := uc.Delete(context.Background(), "prod-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
