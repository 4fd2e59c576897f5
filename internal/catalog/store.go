package catalog

import (
	"sort"
	"sync"

	"github.com/fjod/go_marketplace/internal/domain"
)

// unknownBucket groups products whose category ID does not resolve.
const unknownBucket = "unknown"

// Store holds the product and category catalogue in memory. It is loaded
// once at startup; admin mutations change process-local state only and are
// never written back to the data files.
type Store struct {
	mu         sync.RWMutex
	products   map[int]domain.Product
	categories map[int]domain.Category
}

// NewStore creates a store over the given product and category maps.
func NewStore(products map[int]domain.Product, categories map[int]domain.Category) *Store {
	if products == nil {
		products = make(map[int]domain.Product)
	}
	if categories == nil {
		categories = make(map[int]domain.Category)
	}
	return &Store{products: products, categories: categories}
}

// Lookup resolves a product by ID. A miss returns the placeholder unknown
// product (price zero) and false.
func (s *Store) Lookup(productID int) (domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[productID]
	if !ok {
		return domain.UnknownProduct(), false
	}
	return p, true
}

// Catalogue returns every product grouped by category display name. Products
// with an unresolvable category ID land in the "unknown" bucket, which is
// always present even when empty. Buckets are sorted by product ID.
func (s *Store) Catalogue() map[string][]domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	grouped := make(map[string][]domain.Product, len(s.categories)+1)
	grouped[unknownBucket] = []domain.Product{}
	for _, c := range s.categories {
		grouped[c.Name] = []domain.Product{}
	}

	for _, p := range s.products {
		name := unknownBucket
		if c, ok := s.categories[p.Category]; ok {
			name = c.Name
		}
		grouped[name] = append(grouped[name], p)
	}

	for name := range grouped {
		bucket := grouped[name]
		sort.Slice(bucket, func(i, j int) bool { return bucket[i].ID < bucket[j].ID })
	}
	return grouped
}

// AddProduct inserts a new product. Adding an ID that already exists fails.
func (s *Store) AddProduct(p domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.products[p.ID]; exists {
		return ErrProductExists
	}
	s.products[p.ID] = p
	return nil
}

// UpdateProduct replaces an existing product. The ID must stay the same.
func (s *Store) UpdateProduct(p domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.products[p.ID]; !exists {
		return ErrProductNotFound
	}
	s.products[p.ID] = p
	return nil
}

// DeleteProduct removes a product by ID.
func (s *Store) DeleteProduct(productID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.products[productID]; !exists {
		return ErrProductNotFound
	}
	delete(s.products, productID)
	return nil
}

// AddCategory inserts a new category. Adding an ID that already exists fails.
func (s *Store) AddCategory(c domain.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.categories[c.ID]; exists {
		return ErrCategoryExists
	}
	s.categories[c.ID] = c
	return nil
}

// DeleteCategory removes a category by ID. Products referencing it fall into
// the "unknown" catalogue bucket afterwards.
func (s *Store) DeleteCategory(categoryID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.categories[categoryID]; !exists {
		return ErrCategoryNotFound
	}
	delete(s.categories, categoryID)
	return nil
}
