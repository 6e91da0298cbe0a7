package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/pvhao2002/smart-health-sub000/internal/api"
	"github.com/pvhao2002/smart-health-sub000/internal/model"
)

// listAllConcurrency bounds the page fan-out in ListAll.
const listAllConcurrency = 4

type CatalogService struct {
	API *api.Client
}

func NewCatalogService(c *api.Client) *CatalogService {
	return &CatalogService{API: c}
}

// List fetches one page of medicines. keyword and categoryID are optional
// (empty / zero skips the filter).
func (s *CatalogService) List(ctx context.Context, page, size int, keyword string, categoryID int64) (*model.MedicinePage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	if keyword != "" {
		q.Set("keyword", keyword)
	}
	if categoryID != 0 {
		q.Set("categoryId", strconv.FormatInt(categoryID, 10))
	}

	var out model.MedicinePage
	if err := s.API.Get(ctx, "/products?"+q.Encode(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAll walks every page. Page 0 is fetched first for the page count,
// the rest fan out concurrently and land in order.
func (s *CatalogService) ListAll(ctx context.Context, size int) ([]model.Medicine, error) {
	first, err := s.List(ctx, 0, size, "", 0)
	if err != nil {
		return nil, err
	}
	if first.TotalPages <= 1 {
		return first.Content, nil
	}

	pages := make([][]model.Medicine, first.TotalPages)
	pages[0] = first.Content

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(listAllConcurrency)

	var mu sync.Mutex
	for p := 1; p < first.TotalPages; p++ {
		p := p
		g.Go(func() error {
			page, err := s.List(gctx, p, size, "", 0)
			if err != nil {
				return fmt.Errorf("page %d: %w", p, err)
			}
			mu.Lock()
			pages[p] = page.Content
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []model.Medicine
	for _, page := range pages {
		all = append(all, page...)
	}
	return all, nil
}

func (s *CatalogService) Get(ctx context.Context, id int64) (*model.Medicine, error) {
	var out model.Medicine
	if err := s.API.Get(ctx, fmt.Sprintf("/products/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CatalogService) Newest(ctx context.Context) ([]model.Medicine, error) {
	return s.listShelf(ctx, "/products/newest")
}

func (s *CatalogService) Trending(ctx context.Context) ([]model.Medicine, error) {
	return s.listShelf(ctx, "/products/trending")
}

func (s *CatalogService) FlashSale(ctx context.Context) ([]model.Medicine, error) {
	return s.listShelf(ctx, "/products/flash-sale")
}

func (s *CatalogService) listShelf(ctx context.Context, path string) ([]model.Medicine, error) {
	var out []model.Medicine
	if err := s.API.Get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *CatalogService) Categories(ctx context.Context) ([]model.Category, error) {
	var out []model.Category
	if err := s.API.Get(ctx, "/products/categories", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// EnsureInStock runs the stock check callers do before putting an item in
// the cart; the cart itself never re-validates stock.
func (s *CatalogService) EnsureInStock(ctx context.Context, id int64, qty int) (*model.Medicine, error) {
	if qty < 1 {
		return nil, fmt.Errorf("quantity must be at least 1")
	}
	med, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if med.Stock < qty {
		return nil, fmt.Errorf("insufficient stock for %s: %d left", med.Name, med.Stock)
	}
	return med, nil
}
