package product

import (
	"Smart-Expiry-Tracker/domain"
	"Smart-Expiry-Tracker/entities"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testUserID = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"

var serviceToday = time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

type fakeRepository struct {
	products []*entities.Product
	saved    []*entities.Product
	updated  []*entities.Product
	deleted  []string
}

func (f *fakeRepository) SaveProduct(ctx context.Context, p *entities.Product) error {
	f.saved = append(f.saved, p)
	return nil
}

func (f *fakeRepository) GetProductByBarcode(ctx context.Context, userID, barcode string) (*entities.Product, error) {
	for _, p := range f.products {
		if p.Barcode == barcode {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepository) UpdateProduct(ctx context.Context, p *entities.Product) error {
	f.updated = append(f.updated, p)
	return nil
}

func (f *fakeRepository) DeleteProduct(ctx context.Context, userID, barcode string) error {
	f.deleted = append(f.deleted, barcode)
	return nil
}

func (f *fakeRepository) GetProducts(ctx context.Context, userID string) ([]*entities.Product, error) {
	return f.products, nil
}

func (f *fakeRepository) MarkAsNotified(ctx context.Context, userID, barcode string) error {
	return nil
}

func (f *fakeRepository) CreateLabelScan(ctx context.Context, s *entities.LabelScan) error {
	return nil
}
func (f *fakeRepository) UpdateLabelScan(ctx context.Context, s *entities.LabelScan) error {
	return nil
}
func (f *fakeRepository) GetLabelScanByID(ctx context.Context, id string) (*entities.LabelScan, error) {
	return nil, gorm.ErrRecordNotFound
}

func newTestService(repo *fakeRepository) *productService {
	return &productService{
		productRepository: repo,
		now:               func() time.Time { return serviceToday },
	}
}

func TestAddProduct(t *testing.T) {
	t.Run("Should persist a manual product with its expiry date", func(t *testing.T) {
		repo := &fakeRepository{}
		s := newTestService(repo)

		res, err := s.AddProduct(context.Background(), domain.AddProductRequest{
			Barcode:     "4006381333931",
			ProductName: "Oat Milk",
			ExpiryDate:  "2025-06-15",
		}, testUserID)

		require.NoError(t, err)
		assert.Equal(t, domain.ExpiryTypeManual, res.Type)
		assert.Equal(t, 14, res.DaysLeft)

		require.Len(t, repo.saved, 1)
		assert.Equal(t, string(domain.ExpiryTypeManual), repo.saved[0].Type)
	})

	t.Run("Should reject a manual product without an expiry date", func(t *testing.T) {
		s := newTestService(&fakeRepository{})

		_, err := s.AddProduct(context.Background(), domain.AddProductRequest{
			Barcode: "4006381333931",
		}, testUserID)

		assert.ErrorIs(t, err, domain.ErrMissingExpiryDate)
	})

	t.Run("Should reject an empty barcode", func(t *testing.T) {
		s := newTestService(&fakeRepository{})

		_, err := s.AddProduct(context.Background(), domain.AddProductRequest{
			ExpiryDate: "2025-06-15",
		}, testUserID)

		assert.ErrorIs(t, err, domain.ErrMissingBarcode)
	})

	t.Run("Should reject an unparseable expiry date", func(t *testing.T) {
		s := newTestService(&fakeRepository{})

		_, err := s.AddProduct(context.Background(), domain.AddProductRequest{
			Barcode:    "4006381333931",
			ExpiryDate: "15/06/2025",
		}, testUserID)

		assert.ErrorIs(t, err, domain.ErrInvalidExpiryDate)
	})
}

func TestUpdateProduct(t *testing.T) {
	t.Run("Should reset the notified flag when the date changes", func(t *testing.T) {
		repo := &fakeRepository{products: []*entities.Product{
			{Barcode: "111", ProductName: "Milk", ExpiryDate: serviceToday, Notified: true},
		}}
		s := newTestService(repo)

		err := s.UpdateProduct(context.Background(), "111", domain.UpdateProductRequest{
			ExpiryDate: "2025-09-01",
		}, testUserID)

		require.NoError(t, err)
		require.Len(t, repo.updated, 1)
		assert.False(t, repo.updated[0].Notified)
	})

	t.Run("Should keep the notified flag on a name-only edit", func(t *testing.T) {
		repo := &fakeRepository{products: []*entities.Product{
			{Barcode: "111", ProductName: "Milk", ExpiryDate: serviceToday, Notified: true},
		}}
		s := newTestService(repo)

		err := s.UpdateProduct(context.Background(), "111", domain.UpdateProductRequest{
			ProductName: "Whole Milk",
		}, testUserID)

		require.NoError(t, err)
		assert.True(t, repo.updated[0].Notified)
		assert.Equal(t, "Whole Milk", repo.updated[0].ProductName)
	})

	t.Run("Should report a missing product", func(t *testing.T) {
		s := newTestService(&fakeRepository{})

		err := s.UpdateProduct(context.Background(), "missing", domain.UpdateProductRequest{}, testUserID)

		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}

func TestExportCSV(t *testing.T) {
	repo := &fakeRepository{products: []*entities.Product{
		{Barcode: "222", ProductName: `Jam "extra", small`, ExpiryDate: serviceToday.AddDate(0, 0, 3)},
		{Barcode: "111", ProductName: "Milk", ExpiryDate: serviceToday.AddDate(0, 0, -1)},
	}}
	s := newTestService(repo)

	data, err := s.ExportCSV(context.Background(), testUserID, domain.ViewOptions{SortBy: domain.SortByExpiry})

	require.NoError(t, err)
	csv := string(data)

	lines := []string{
		"Product Name,Barcode,Expiry Date,Days Left",
		`Milk,111,2025-05-31,-1`,
		`"Jam ""extra"", small",222,2025-06-04,3`,
	}
	assert.Equal(t, lines[0]+"\n"+lines[1]+"\n"+lines[2]+"\n", csv)
}
