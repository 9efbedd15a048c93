package adminapi

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/AkilCDE/urban-trends-apparel/config"
	"github.com/AkilCDE/urban-trends-apparel/internal/domain"
	"github.com/AkilCDE/urban-trends-apparel/internal/session"
	"github.com/AkilCDE/urban-trends-apparel/internal/shop"
	"github.com/AkilCDE/urban-trends-apparel/internal/webserver"
)

type stubProducts struct{}

func (s *stubProducts) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	return nil, gorm.ErrRecordNotFound
}
func (s *stubProducts) List(ctx context.Context, filter shop.ProductFilter) ([]domain.Product, error) {
	return nil, nil
}
func (s *stubProducts) Create(ctx context.Context, p *domain.Product) error { return nil }
func (s *stubProducts) AdjustStock(ctx context.Context, id int64, delta int) (int, error) {
	return 0, nil
}
func (s *stubProducts) LowStock(ctx context.Context, threshold, limit int) ([]domain.Product, error) {
	return nil, nil
}
func (s *stubProducts) Count(ctx context.Context) (int64, error) { return 0, nil }

type stubOrders struct{}

func (s *stubOrders) ListByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	return nil, nil
}
func (s *stubOrders) Recent(ctx context.Context, limit int) ([]shop.OrderWithEmail, error) {
	return nil, nil
}
func (s *stubOrders) TotalRevenue(ctx context.Context) (float64, error) { return 0, nil }
func (s *stubOrders) Count(ctx context.Context) (int64, error)          { return 0, nil }
func (s *stubOrders) Amounts(ctx context.Context) ([]float64, error)    { return nil, nil }
func (s *stubOrders) PopularProducts(ctx context.Context, limit int) ([]shop.PopularProduct, error) {
	return nil, nil
}
func (s *stubOrders) FrequentCustomers(ctx context.Context, limit int) ([]shop.FrequentCustomer, error) {
	return nil, nil
}
func (s *stubOrders) MonthlyVolume(ctx context.Context, months int) ([]shop.MonthVolume, error) {
	return nil, nil
}
func (s *stubOrders) Export(ctx context.Context, from, to time.Time) ([]shop.OrderExportRow, error) {
	return nil, nil
}

type stubUsers struct{}

func (s *stubUsers) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (s *stubUsers) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (s *stubUsers) Create(ctx context.Context, u *domain.User) error  { return nil }
func (s *stubUsers) Update(ctx context.Context, u *domain.User) error  { return nil }
func (s *stubUsers) CountCustomers(ctx context.Context) (int64, error) { return 0, nil }

type stubRunner struct{}

func (s *stubRunner) RunSchedulerNow(id int64) error { return nil }

type stubSettings struct{}

func (s *stubSettings) GetString(category, name string) string   { return "" }
func (s *stubSettings) GetInt(category, name string) int         { return 0 }
func (s *stubSettings) Save(values map[string]interface{}) error { return nil }

// dry-run handle so the audit log write builds SQL without a live
// connection
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  "host=localhost user=test dbname=test",
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}

func setupAdmin(t *testing.T) (*config.AppConfig, *session.Store) {
	t.Helper()
	cfg := config.LoadConfig("")
	cfg.System.Workdir = t.TempDir()

	store, err := session.NewStore(filepath.Join(t.TempDir(), "sessions.db"), time.Hour)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	webserver.Init(cfg, store)
	Init(Deps{
		Config:   cfg,
		DB:       newDryRunDB(t),
		Admin:    shop.NewAdminService(&stubProducts{}, &stubOrders{}, &stubUsers{}, nil, nil),
		Auth:     shop.NewAuthService(&stubUsers{}),
		Runner:   &stubRunner{},
		Settings: &stubSettings{},
	})
	return cfg, store
}

func sessionCookie(t *testing.T, cfg *config.AppConfig, store *session.Store, user *domain.User) *http.Cookie {
	t.Helper()
	sess, err := store.Create(user)
	require.NoError(t, err)
	return &http.Cookie{Name: cfg.Session.CookieName, Value: sess.Token}
}

func TestDashboardRequiresSession(t *testing.T) {
	setupAdmin(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	rec := httptest.NewRecorder()
	webserver.Echo().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":1`)
	assert.Contains(t, rec.Body.String(), "UNAUTHENTICATED")
}

func TestDashboardRejectsNonAdmin(t *testing.T) {
	cfg, store := setupAdmin(t)
	cookie := sessionCookie(t, cfg, store, &domain.User{ID: 1, Email: "jane@example.com"})

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	webserver.Echo().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "FORBIDDEN")
}

func TestDashboardWithAdminSession(t *testing.T) {
	cfg, store := setupAdmin(t)
	cookie := sessionCookie(t, cfg, store, &domain.User{ID: 9, Email: "admin@urbantrends.local", IsAdmin: true})

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	webserver.Echo().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":0`)
	assert.Contains(t, rec.Body.String(), "total_revenue")
}

func productForm(t *testing.T, imageName string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	require.NoError(t, w.WriteField("name", "Canvas Tote"))
	require.NoError(t, w.WriteField("description", "Cotton tote bag"))
	require.NoError(t, w.WriteField("price", "24.50"))
	require.NoError(t, w.WriteField("stock", "10"))
	require.NoError(t, w.WriteField("category", "accessories"))
	if imageName != "" {
		fw, err := w.CreateFormFile("image", imageName)
		require.NoError(t, err)
		_, err = fw.Write([]byte("not-a-real-image"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func TestCreateProductRejectsBadImageExtension(t *testing.T) {
	cfg, store := setupAdmin(t)
	cookie := sessionCookie(t, cfg, store, &domain.User{ID: 9, Email: "admin@urbantrends.local", IsAdmin: true})

	body, contentType := productForm(t, "payload.exe")
	req := httptest.NewRequest(http.MethodPost, "/admin/products", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	webserver.Echo().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_REQUEST")
	assert.Contains(t, rec.Body.String(), "jpg")

	// nothing was written under the public assets path
	_, err := os.Stat(filepath.Join(cfg.GetPublicDir(), "images", "products"))
	assert.True(t, os.IsNotExist(err))
}

func TestCreateProductStoresUploadUnderServerName(t *testing.T) {
	cfg, store := setupAdmin(t)
	cookie := sessionCookie(t, cfg, store, &domain.User{ID: 9, Email: "admin@urbantrends.local", IsAdmin: true})

	body, contentType := productForm(t, "../../../shot of product.PNG")
	req := httptest.NewRequest(http.MethodPost, "/admin/products", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	webserver.Echo().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Product created")

	entries, err := os.ReadDir(filepath.Join(cfg.GetPublicDir(), "images", "products"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	// server-generated name: the client's path and basename are gone
	name := entries[0].Name()
	assert.True(t, strings.HasSuffix(name, ".png"), "got %q", name)
	assert.NotContains(t, name, "shot")
	assert.NotContains(t, name, "..")
}
