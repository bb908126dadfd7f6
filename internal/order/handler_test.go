package order

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func setupApp(repo Repository) *fiber.App {
	a := fiber.New()
	h := NewHandler(NewService(repo, nil))
	h.RegisterPublicRoutes(a)
	h.RegisterProtectedRoutes(a)
	return a
}

func TestCreateOrder_Success(t *testing.T) {
	a := setupApp(NewInMemoryRepository())

	body := map[string]any{
		"customerName":    "Ali Khan",
		"customerEmail":   "alikhan@gmail.com",
		"phone":           "0301XXXXXXX",
		"shippingAddress": "House 22, Block B, Lahore",
		"items": []map[string]any{
			{"productId": "p1", "title": "Air Stride Max", "unitPrice": 12999, "quantity": 2},
		},
		"totalAmount":   25998,
		"paymentMethod": "cod",
	}
	b, _ := json.Marshal(body)

	req := httptest.NewRequest("POST", "/api/v1/orders", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	res, err := a.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}

	var ord Order
	json.NewDecoder(res.Body).Decode(&ord)
	if ord.ID == "" {
		t.Fatal("expected a durable order id in the response")
	}
	if ord.Status != StatusPending {
		t.Fatalf("expected status pending, got %q", ord.Status)
	}
}

func TestCreateOrder_EmptyItemsRejected(t *testing.T) {
	repo := NewInMemoryRepository()
	a := setupApp(repo)

	req := httptest.NewRequest("POST", "/api/v1/orders",
		strings.NewReader(`{"customerName":"Ali","customerEmail":"a@b.com","items":[],"totalAmount":100}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := a.Test(req, -1)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for empty items, got %d", res.StatusCode)
	}
	if count, _ := repo.Count(); count != 0 {
		t.Fatal("no order may be created from an empty submission")
	}
}

func TestUpdateStatusEndpoint(t *testing.T) {
	repo := NewInMemoryRepository()
	a := setupApp(repo)
	svc := NewService(repo, nil)
	created, _ := svc.Create(Submission{
		CustomerName:  "Ali Khan",
		CustomerEmail: "alikhan@gmail.com",
		Items:         validSubmission().Items,
		TotalAmount:   25998,
	})

	req := httptest.NewRequest("PUT", "/api/v1/admin/orders",
		strings.NewReader(`{"orderId":"`+created.ID+`","status":"shipped"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := a.Test(req, -1)
	if res.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), `"status":"shipped"`) {
		t.Fatalf("expected updated order in response, got %s", string(b))
	}

	// unknown order
	req2 := httptest.NewRequest("PUT", "/api/v1/admin/orders",
		strings.NewReader(`{"orderId":"nope","status":"paid"}`))
	req2.Header.Set("Content-Type", "application/json")
	res2, _ := a.Test(req2, -1)
	if res2.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res2.StatusCode)
	}
}

func TestListOrders_Metadata(t *testing.T) {
	repo := NewInMemoryRepository()
	a := setupApp(repo)
	svc := NewService(repo, nil)
	for i := 0; i < 3; i++ {
		svc.Create(validSubmission())
	}

	req := httptest.NewRequest("GET", "/api/v1/admin/orders?page=1&limit=2", nil)
	res, _ := a.Test(req, -1)
	if res.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), `"total":3`) {
		t.Fatalf("expected total 3 in metadata, got %s", string(b))
	}
	if !strings.Contains(string(b), `"hasNextPage":true`) {
		t.Fatalf("expected a next page, got %s", string(b))
	}
}
