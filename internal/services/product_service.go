package services

import (
	"context"
	"fmt"
	"log"

	"boutique/internal/models"
	"boutique/internal/repositories"
)

// ProductService handles business logic related to the catalog.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.GetAll(ctx)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateProduct updates an existing product. There is no public route for
// this; it exists for admin-style catalog maintenance.
func (s *ProductService) UpdateProduct(ctx context.Context, product *models.Product) error {
	return s.repo.Update(ctx, product)
}

// SeedCatalog inserts the default catalog when the store is empty. It is
// a no-op on any non-empty catalog, so restarting the server never
// duplicates products.
func (s *ProductService) SeedCatalog(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to check catalog: %w", err)
	}
	if count > 0 {
		return nil
	}

	for i := range defaultCatalog {
		if err := s.repo.Create(ctx, &defaultCatalog[i]); err != nil {
			return fmt.Errorf("failed to seed product %q: %w", defaultCatalog[i].Name, err)
		}
	}
	log.Printf("Seeded catalog with %d products", len(defaultCatalog))
	return nil
}

// defaultCatalog is the seed inventory for a fresh store.
var defaultCatalog = []models.Product{
	{
		ID:          "1",
		Name:        "Classic Monogram Handbag",
		Price:       125000,
		Description: "Timeless elegance meets modern luxury",
		Image:       "https://images.unsplash.com/photo-1548036328-c9fa89d128fa?w=800",
		Category:    "Handbags",
	},
	{
		ID:          "2",
		Name:        "Leather Traveler Wallet",
		Price:       45000,
		Description: "Premium leather craftsmanship",
		Image:       "https://images.unsplash.com/photo-1627123424574-724758594e93?w=800",
		Category:    "Accessories",
	},
	{
		ID:          "3",
		Name:        "Signature Sunglasses",
		Price:       35000,
		Description: "Sophisticated style for every occasion",
		Image:       "https://images.unsplash.com/photo-1572635196237-14b3f281503f?w=800",
		Category:    "Accessories",
	},
	{
		ID:          "4",
		Name:        "Luxury Watch Collection",
		Price:       285000,
		Description: "Precision timepiece with elegant design",
		Image:       "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=800",
		Category:    "Watches",
	},
	{
		ID:          "5",
		Name:        "Designer Scarf",
		Price:       28000,
		Description: "Silk elegance in every fold",
		Image:       "https://images.unsplash.com/photo-1562176603-48b2cf0d96b3?auto=format&fit=crop&q=80&w=1926",
		Category:    "Accessories",
	},
	{
		ID:          "6",
		Name:        "Premium Leather Belt",
		Price:       32000,
		Description: "Classic design with modern comfort",
		Image:       "https://images.unsplash.com/photo-1624378515192-85e29842a2a1?w=800&h=1000&fit=crop",
		Category:    "Accessories",
	},
	{
		ID:          "7",
		Name:        "Evening Clutch",
		Price:       68000,
		Description: "The perfect companion for special occasions",
		Image:       "https://images.unsplash.com/photo-1590874103328-eac38a683ce7?w=800",
		Category:    "Handbags",
	},
	{
		ID:          "8",
		Name:        "Signature Perfume",
		Price:       15000,
		Description: "An unforgettable fragrance experience",
		Image:       "https://images.unsplash.com/photo-1541643600914-78b084683601?w=800",
		Category:    "Fragrance",
	},
}
