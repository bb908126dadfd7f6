package cart

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func sessionCookie(v string) *http.Cookie {
	return &http.Cookie{Name: SessionCookie, Value: v}
}

func makeApp() *fiber.App {
	app := fiber.New()
	NewHandler(NewService(NewInMemoryRepository())).RegisterPublicRoutes(app)
	return app
}

func TestCartRoutes_AddAndMerge(t *testing.T) {
	app := makeApp()

	// first add sets the session cookie
	req := httptest.NewRequest("POST", "/api/v1/cart/items",
		strings.NewReader(`{"productId":"p1","title":"Air Stride Max","unitPrice":10000,"quantity":1,"size":"UK 9","color":"Black"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for add, got %d", res.StatusCode)
	}

	var session string
	for _, c := range res.Cookies() {
		if c.Name == SessionCookie {
			session = c.Value
		}
	}
	if session == "" {
		t.Fatal("expected cart session cookie to be set on first write")
	}

	// same variant again must merge, not duplicate
	req2 := httptest.NewRequest("POST", "/api/v1/cart/items",
		strings.NewReader(`{"productId":"p1","title":"Air Stride Max","unitPrice":10000,"quantity":2,"size":"UK 9","color":"Black"}`))
	req2.Header.Set("Content-Type", "application/json")
	req2.AddCookie(sessionCookie(session))
	res2, err := app.Test(req2, -1)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := io.ReadAll(res2.Body)
	if !strings.Contains(string(b), `"quantity":3`) {
		t.Fatalf("expected quantity 3 after merging, got %s", string(b))
	}
	if !strings.Contains(string(b), `"cartTotal":30000`) {
		t.Fatalf("expected cartTotal 30000, got %s", string(b))
	}
	if !strings.Contains(string(b), `"cartCount":3`) {
		t.Fatalf("expected cartCount 3, got %s", string(b))
	}
	if strings.Count(string(b), `"productId":"p1"`) != 1 {
		t.Fatalf("expected exactly one entry for the variant, got %s", string(b))
	}
}

func TestCartRoutes_InvalidAddRejected(t *testing.T) {
	app := makeApp()

	req := httptest.NewRequest("POST", "/api/v1/cart/items",
		strings.NewReader(`{"productId":"p1","unitPrice":10000,"quantity":0}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req, -1)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for zero quantity, got %d", res.StatusCode)
	}
}

func TestCartRoutes_UpdateRemoveClear(t *testing.T) {
	app := makeApp()

	req := httptest.NewRequest("POST", "/api/v1/cart/items",
		strings.NewReader(`{"productId":"p1","unitPrice":10000,"quantity":2,"size":"UK 9"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req, -1)
	var session string
	for _, c := range res.Cookies() {
		if c.Name == SessionCookie {
			session = c.Value
		}
	}

	// quantity 0 is rejected and leaves the entry alone
	req2 := httptest.NewRequest("PATCH", "/api/v1/cart/items",
		strings.NewReader(`{"productId":"p1","quantity":0,"size":"UK 9"}`))
	req2.Header.Set("Content-Type", "application/json")
	req2.AddCookie(sessionCookie(session))
	res2, _ := app.Test(req2, -1)
	if res2.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for quantity 0, got %d", res2.StatusCode)
	}

	// a valid update replaces the quantity
	req3 := httptest.NewRequest("PATCH", "/api/v1/cart/items",
		strings.NewReader(`{"productId":"p1","quantity":5,"size":"UK 9"}`))
	req3.Header.Set("Content-Type", "application/json")
	req3.AddCookie(sessionCookie(session))
	res3, _ := app.Test(req3, -1)
	b3, _ := io.ReadAll(res3.Body)
	if !strings.Contains(string(b3), `"quantity":5`) {
		t.Fatalf("expected quantity 5 after update, got %s", string(b3))
	}

	// removing an absent variant is a quiet no-op
	req4 := httptest.NewRequest("DELETE", "/api/v1/cart/items",
		strings.NewReader(`{"productId":"p1","size":"UK 10"}`))
	req4.Header.Set("Content-Type", "application/json")
	req4.AddCookie(sessionCookie(session))
	res4, _ := app.Test(req4, -1)
	if res4.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for absent remove, got %d", res4.StatusCode)
	}
	b4, _ := io.ReadAll(res4.Body)
	if !strings.Contains(string(b4), `"productId":"p1"`) {
		t.Fatalf("expected entry to survive absent remove, got %s", string(b4))
	}

	// clear, then GET must come back empty
	req5 := httptest.NewRequest("DELETE", "/api/v1/cart", nil)
	req5.AddCookie(sessionCookie(session))
	res5, _ := app.Test(req5, -1)
	if res5.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected 204 for clear, got %d", res5.StatusCode)
	}

	req6 := httptest.NewRequest("GET", "/api/v1/cart", nil)
	req6.AddCookie(sessionCookie(session))
	res6, _ := app.Test(req6, -1)
	b6, _ := io.ReadAll(res6.Body)
	if strings.Contains(string(b6), "p1") {
		t.Fatalf("expected empty cart after clear, got %s", string(b6))
	}
}

func TestCartRoutes_GetWithoutSession(t *testing.T) {
	app := makeApp()

	req := httptest.NewRequest("GET", "/api/v1/cart", nil)
	res, _ := app.Test(req, -1)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for sessionless GET, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), `"items":[]`) {
		t.Fatalf("expected empty items, got %s", string(b))
	}
	for _, c := range res.Cookies() {
		if c.Name == SessionCookie {
			t.Fatal("a read must not mint a session cookie")
		}
	}
}
