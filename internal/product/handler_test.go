package product

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func setupApp(repo Repository) *fiber.App {
	app := fiber.New()
	h := NewHandler(NewService(repo))
	h.RegisterPublicRoutes(app)
	h.RegisterProtectedRoutes(app)
	return app
}

func TestProductEndpoints(t *testing.T) {
	app := setupApp(NewInMemoryRepository(nil))

	body := `{"title":"Street Lows","description":"Everyday casual comfort.","price":8999,"inventory":100,"categoryId":"cat-sneakers","sizes":["UK 7","UK 8"],"colors":["White","Grey"]}`
	req := httptest.NewRequest("POST", "/api/v1/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), `"slug":"street-lows"`) {
		t.Fatalf("expected derived slug in response, got %s", string(b))
	}

	res, _ = app.Test(httptest.NewRequest("GET", "/api/v1/products", nil), -1)
	b, _ = io.ReadAll(res.Body)
	if !strings.Contains(string(b), "Street Lows") {
		t.Fatalf("expected product in listing, got %s", string(b))
	}

	res, _ = app.Test(httptest.NewRequest("GET", "/api/v1/products/slug/street-lows", nil), -1)
	if res.StatusCode != 200 {
		t.Fatalf("expected 200 for slug lookup, got %d", res.StatusCode)
	}

	res, _ = app.Test(httptest.NewRequest("GET", "/api/v1/products/slug/nope", nil), -1)
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown slug, got %d", res.StatusCode)
	}
}

func TestProductValidationOverHTTP(t *testing.T) {
	app := setupApp(NewInMemoryRepository(nil))

	req := httptest.NewRequest("POST", "/api/v1/products", strings.NewReader(`{"title":"","price":0}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req, -1)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
}

func TestProductFilterQuery(t *testing.T) {
	app := setupApp(NewInMemoryRepository([]Product{
		{ID: "p1", Title: "Air Stride Max", CategoryID: "cat-sneakers"},
		{ID: "p2", Title: "Classic Penny Loafer", CategoryID: "cat-formal"},
	}))

	res, _ := app.Test(httptest.NewRequest("GET", "/api/v1/products?categoryId=cat-formal", nil), -1)
	b, _ := io.ReadAll(res.Body)
	if strings.Contains(string(b), "Air Stride Max") || !strings.Contains(string(b), "Classic Penny Loafer") {
		t.Fatalf("filter returned wrong products: %s", string(b))
	}

	res, _ = app.Test(httptest.NewRequest("GET", "/api/v1/products?ids=p1", nil), -1)
	b, _ = io.ReadAll(res.Body)
	if !strings.Contains(string(b), "Air Stride Max") || strings.Contains(string(b), "Classic Penny Loafer") {
		t.Fatalf("ids lookup returned wrong products: %s", string(b))
	}
}

func TestDeleteProductEndpoint(t *testing.T) {
	app := setupApp(NewInMemoryRepository([]Product{{ID: "p1", Title: "Street Lows", CategoryID: "c1"}}))

	res, _ := app.Test(httptest.NewRequest("DELETE", "/api/v1/products/p1", nil), -1)
	if res.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	res, _ = app.Test(httptest.NewRequest("DELETE", "/api/v1/products/p1", nil), -1)
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for repeat delete, got %d", res.StatusCode)
	}
}
