package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/casbin/casbin/v3"
	"github.com/casbin/casbin/v3/model"
	libJWT "github.com/golang-jwt/jwt/v5"
	"github.com/shandysiswandi/gocommerce/internal/catalog/entity"
	"github.com/shandysiswandi/gocommerce/internal/pkg/clock"
	"github.com/shandysiswandi/gocommerce/internal/pkg/goerror"
	"github.com/shandysiswandi/gocommerce/internal/pkg/instrument"
	"github.com/shandysiswandi/gocommerce/internal/pkg/jwt"
	"github.com/shandysiswandi/gocommerce/internal/pkg/storage"
	"github.com/shandysiswandi/gocommerce/internal/pkg/validator"
)

type fakeUID struct {
	next int64
}

func (f *fakeUID) Generate() int64 {
	f.next++
	return 3000 + f.next
}

type fakeOID struct {
	next int
}

func (f *fakeOID) Generate() string {
	f.next++
	return fmt.Sprintf("objid%04d", f.next)
}

type fakeDB struct {
	categories []entity.Category
	products   map[int64]entity.Product
	images     map[int64]string
	createErr  error
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		products: map[int64]entity.Product{},
		images:   map[int64]string{},
	}
}

func (f *fakeDB) GetCategoryList(context.Context) ([]entity.Category, error) {
	return f.categories, nil
}

func (f *fakeDB) CreateCategory(_ context.Context, category entity.Category) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.categories = append(f.categories, category)
	return nil
}

func (f *fakeDB) GetProductList(_ context.Context, filter entity.ProductFilter) ([]entity.Product, int64, error) {
	var out []entity.Product
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

func (f *fakeDB) GetProductByID(_ context.Context, id int64) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return &p, nil
}

func (f *fakeDB) CreateProduct(_ context.Context, product entity.NewProduct) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.products[product.ID] = entity.Product{
		ID:          product.ID,
		CategoryID:  product.CategoryID,
		Name:        product.Name,
		Description: product.Description,
		PriceCents:  product.PriceCents,
		Stock:       product.Stock,
		Attributes:  product.Attributes,
	}
	return nil
}

func (f *fakeDB) UpdateProductImage(_ context.Context, id int64, imageURL string) error {
	f.images[id] = imageURL
	return nil
}

type fakeStorage struct {
	puts      []storage.ObjectInfo
	signerErr error
}

func (f *fakeStorage) Close() error { return nil }

func (f *fakeStorage) PutObject(_ context.Context, bucket, key string, r io.Reader, opts storage.PutOptions) (storage.ObjectInfo, error) {
	info := storage.ObjectInfo{Bucket: bucket, Key: key, ContentType: opts.ContentType}
	f.puts = append(f.puts, info)
	return info, nil
}

func (f *fakeStorage) GetObject(context.Context, string, string, storage.GetOptions) (io.ReadCloser, storage.ObjectInfo, error) {
	return nil, storage.ObjectInfo{}, goerror.ErrNotFound
}

func (f *fakeStorage) StatObject(context.Context, string, string) (storage.ObjectInfo, error) {
	return storage.ObjectInfo{}, goerror.ErrNotFound
}

func (f *fakeStorage) DeleteObject(context.Context, string, string) error { return nil }

func (f *fakeStorage) ListObjects(context.Context, string, string, storage.ListOptions) ([]storage.ObjectInfo, error) {
	return nil, nil
}

func (f *fakeStorage) PresignGet(_ context.Context, bucket, key string, _ time.Duration) (string, error) {
	if f.signerErr != nil {
		return "", f.signerErr
	}
	return fmt.Sprintf("https://signed.example.com/%s/%s", bucket, key), nil
}

func (f *fakeStorage) PresignPut(context.Context, string, string, storage.PutOptions, time.Duration) (string, error) {
	return "", storage.ErrMissingSigner
}

type fakeConfig struct{}

func (fakeConfig) Close() error                   { return nil }
func (fakeConfig) GetSecond(string) time.Duration { return time.Second }
func (fakeConfig) GetMinute(string) time.Duration { return time.Minute }
func (fakeConfig) GetHour(string) time.Duration   { return time.Hour }
func (fakeConfig) GetDay(string) time.Duration    { return 24 * time.Hour }
func (fakeConfig) GetInt(string) int              { return 0 }
func (fakeConfig) GetInt32(string) int32          { return 0 }
func (fakeConfig) GetInt64(string) int64          { return 0 }
func (fakeConfig) GetUint(string) uint            { return 0 }
func (fakeConfig) GetUint16(string) uint16        { return 0 }
func (fakeConfig) GetUint32(string) uint32        { return 0 }
func (fakeConfig) GetUint64(string) uint64        { return 0 }
func (fakeConfig) GetFloat32(string) float32      { return 0 }
func (fakeConfig) GetFloat64(string) float64      { return 0 }
func (fakeConfig) GetBool(string) bool            { return false }
func (fakeConfig) GetBinary(string) []byte        { return nil }
func (fakeConfig) GetArray(string) []string       { return nil }
func (fakeConfig) GetMap(string) map[string]string {
	return map[string]string{}
}

func (fakeConfig) GetString(key string) string {
	switch key {
	case "modules.catalog.image_bucket":
		return "product-images"
	case "modules.catalog.image_base_url":
		return "https://cdn.example.com"
	default:
		return ""
	}
}

const testRBACModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && (p.obj == "*" || r.obj == p.obj) && (p.act == "*" || r.act == p.act)
`

func newTestEnforcer(t *testing.T) *casbin.Enforcer {
	t.Helper()

	m, err := model.NewModelFromString(testRBACModel)
	if err != nil {
		t.Fatalf("failed to build casbin model: %v", err)
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		t.Fatalf("failed to build enforcer: %v", err)
	}

	if _, err := e.AddPolicy("StoreUser", "catalog:categories", "write"); err != nil {
		t.Fatalf("failed to add policy: %v", err)
	}
	if _, err := e.AddPolicy("StoreUser", "catalog:products", "write"); err != nil {
		t.Fatalf("failed to add policy: %v", err)
	}
	if _, err := e.AddRoleForUser("7", "StoreUser"); err != nil {
		t.Fatalf("failed to add grouping: %v", err)
	}
	if _, err := e.AddRoleForUser("8", "Customer"); err != nil {
		t.Fatalf("failed to add grouping: %v", err)
	}

	return e
}

type fixture struct {
	uc      *Usecase
	db      *fakeDB
	storage *fakeStorage
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	v, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("failed to build validator: %v", err)
	}

	f := &fixture{
		db:      newFakeDB(),
		storage: &fakeStorage{},
	}

	f.uc = New(Dependency{
		RepoDB:     f.db,
		Storage:    f.storage,
		Validator:  v,
		Config:     fakeConfig{},
		UID:        &fakeUID{},
		OID:        &fakeOID{},
		Clock:      clock.New(),
		Instrument: instrument.NewNoop(),
		Enforcer:   newTestEnforcer(t),
	})

	return f
}

func authCtx(subject string, id int64) context.Context {
	return jwt.SetAuth(context.Background(), jwt.Claims{
		RegisteredClaims: libJWT.RegisteredClaims{Subject: subject},
		UserID:           id,
	})
}

func wantCode(t *testing.T, err error, code goerror.Code) {
	t.Helper()

	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *goerror.Error, got %v", err)
	}
	if gerr.Code() != code {
		t.Fatalf("expected code %s, got %s (%s)", code, gerr.Code(), gerr.Msg())
	}
}

func TestCategory(t *testing.T) {
	t.Run("CreateRequiresAuthentication", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.CategoryCreate(context.Background(), CategoryCreateInput{Name: "Audio"})

		wantCode(t, err, goerror.CodeUnauthorized)
	})

	t.Run("CreateRequiresStoreRole", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.CategoryCreate(authCtx("8", 8), CategoryCreateInput{Name: "Audio"})

		wantCode(t, err, goerror.CodeForbidden)
	})

	t.Run("CreateTrimsAndLists", func(t *testing.T) {
		f := newFixture(t)

		out, err := f.uc.CategoryCreate(authCtx("7", 7), CategoryCreateInput{Name: "  Audio  "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.CategoryID == 0 {
			t.Fatalf("expected an assigned category id")
		}

		list, err := f.uc.CategoryList(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list.Categories) != 1 || list.Categories[0].Name != "Audio" {
			t.Fatalf("expected trimmed category, got %+v", list.Categories)
		}
	})

	t.Run("DuplicateIsConflict", func(t *testing.T) {
		f := newFixture(t)
		f.db.createErr = goerror.ErrConflict

		_, err := f.uc.CategoryCreate(authCtx("7", 7), CategoryCreateInput{Name: "Audio"})

		wantCode(t, err, goerror.CodeConflict)
	})
}

func TestProduct(t *testing.T) {
	t.Run("CreateStoresAttributes", func(t *testing.T) {
		// Arrange
		f := newFixture(t)

		// Act
		out, err := f.uc.ProductCreate(authCtx("7", 7), ProductCreateInput{
			CategoryID: 1,
			Name:       "Mechanical Keyboard",
			PriceCents: 12900,
			Stock:      10,
			Attributes: map[string]any{"layout": "tkl", "switches": "brown"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Assert
		detail, err := f.uc.ProductDetail(context.Background(), ProductDetailInput{ProductID: out.ProductID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if detail.Product.Attributes["layout"] != "tkl" {
			t.Fatalf("expected attributes to round trip, got %+v", detail.Product.Attributes)
		}
	})

	t.Run("CreateDefaultsNilAttributes", func(t *testing.T) {
		f := newFixture(t)

		out, err := f.uc.ProductCreate(authCtx("7", 7), ProductCreateInput{
			CategoryID: 1,
			Name:       "USB Hub",
			PriceCents: 3900,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if f.db.products[out.ProductID].Attributes == nil {
			t.Fatalf("attributes should default to an empty map, not nil")
		}
	})

	t.Run("DetailUnknownProduct", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.ProductDetail(context.Background(), ProductDetailInput{ProductID: 404})

		wantCode(t, err, goerror.CodeNotFound)
	})

	t.Run("ListDefaultsPageAndSize", func(t *testing.T) {
		f := newFixture(t)
		f.db.products[1] = entity.Product{ID: 1, Name: "USB Hub"}

		out, err := f.uc.ProductList(context.Background(), ProductListInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Total != 1 {
			t.Fatalf("expected 1 product, got %d", out.Total)
		}
	})
}

func TestProductUploadImage(t *testing.T) {
	t.Run("HappyPath", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		f.db.products[5] = entity.Product{ID: 5, Name: "USB Hub"}

		// Act
		out, err := f.uc.ProductUploadImage(authCtx("7", 7), ProductUploadImageInput{
			ProductID:   5,
			ContentType: "image/png",
			File:        strings.NewReader("png-bytes"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Assert each upload lands under a product-scoped, unique key.
		if len(f.storage.puts) != 1 {
			t.Fatalf("expected one upload, got %d", len(f.storage.puts))
		}
		put := f.storage.puts[0]
		if put.Bucket != "product-images" || !strings.HasPrefix(put.Key, "products/5/") {
			t.Fatalf("unexpected object location %s/%s", put.Bucket, put.Key)
		}
		if !strings.HasPrefix(out.ImageURL, "https://signed.example.com/") {
			t.Fatalf("expected signed url, got %q", out.ImageURL)
		}
		if f.db.images[5] != out.ImageURL {
			t.Fatalf("image url should be recorded on the product")
		}
	})

	t.Run("ReuploadGetsFreshKey", func(t *testing.T) {
		f := newFixture(t)
		f.db.products[5] = entity.Product{ID: 5, Name: "USB Hub"}

		for range 2 {
			_, err := f.uc.ProductUploadImage(authCtx("7", 7), ProductUploadImageInput{
				ProductID: 5,
				File:      strings.NewReader("png-bytes"),
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		if f.storage.puts[0].Key == f.storage.puts[1].Key {
			t.Fatalf("re-upload must not reuse the previous key %q", f.storage.puts[0].Key)
		}
	})

	t.Run("MissingSignerFallsBackToBaseURL", func(t *testing.T) {
		f := newFixture(t)
		f.db.products[5] = entity.Product{ID: 5, Name: "USB Hub"}
		f.storage.signerErr = storage.ErrMissingSigner

		out, err := f.uc.ProductUploadImage(authCtx("7", 7), ProductUploadImageInput{
			ProductID: 5,
			File:      strings.NewReader("png-bytes"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.HasPrefix(out.ImageURL, "https://cdn.example.com/product-images/products/5/") {
			t.Fatalf("expected base url fallback, got %q", out.ImageURL)
		}
	})

	t.Run("MissingFile", func(t *testing.T) {
		f := newFixture(t)
		f.db.products[5] = entity.Product{ID: 5, Name: "USB Hub"}

		_, err := f.uc.ProductUploadImage(authCtx("7", 7), ProductUploadImageInput{ProductID: 5})

		wantCode(t, err, goerror.CodeInvalidFormat)
	})

	t.Run("UnknownProduct", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.ProductUploadImage(authCtx("7", 7), ProductUploadImageInput{
			ProductID: 404,
			File:      strings.NewReader("png-bytes"),
		})

		wantCode(t, err, goerror.CodeNotFound)
	})
}
