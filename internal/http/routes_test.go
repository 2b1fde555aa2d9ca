package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"finledger/internal/config"
	"finledger/internal/store"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	cfg := &config.Config{Currency: "USD", APIRateLimit: 1000, APIRateWindow: 60}
	RegisterRoutes(r, store.Guard(store.NewMemory()), cfg, "test")
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateAndSummary(t *testing.T) {
	r := newTestRouter(t)

	if w := do(t, r, "POST", "/api/v1/transactions", `{"description":"Salary","amount":1000,"type":"income"}`); w.Code != http.StatusCreated {
		t.Fatalf("create salary: status %d body %s", w.Code, w.Body)
	}
	if w := do(t, r, "POST", "/api/v1/transactions", `{"description":"Rent","amount":400,"type":"expense"}`); w.Code != http.StatusCreated {
		t.Fatalf("create rent: status %d body %s", w.Code, w.Body)
	}

	w := do(t, r, "GET", "/api/v1/summary", "")
	if w.Code != http.StatusOK {
		t.Fatalf("summary: status %d", w.Code)
	}

	var resp struct {
		Income           float64 `json:"income"`
		Expense          float64 `json:"expense"`
		Balance          float64 `json:"balance"`
		TransactionCount int     `json:"transactionCount"`
		Currency         string  `json:"currency"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("summary body: %v", err)
	}
	if resp.Income != 1000 || resp.Expense != 400 || resp.Balance != 600 {
		t.Errorf("summary = %+v; want income 1000, expense 400, balance 600", resp)
	}
	if resp.TransactionCount != 2 || resp.Currency != "USD" {
		t.Errorf("summary = %+v; want 2 transactions in USD", resp)
	}
}

func TestCreateValidation(t *testing.T) {
	r := newTestRouter(t)

	cases := []string{
		`{"description":"x","amount":-5,"type":"income"}`,
		`{"description":"   ","amount":10,"type":"income"}`,
		`{"description":"x","amount":10,"type":"transfer"}`,
	}
	for _, body := range cases {
		if w := do(t, r, "POST", "/api/v1/transactions", body); w.Code != http.StatusBadRequest {
			t.Errorf("body %s: status %d; want 400", body, w.Code)
		}
	}

	// nothing should have been persisted
	w := do(t, r, "GET", "/api/v1/transactions", "")
	var resp struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Count != 0 {
		t.Fatalf("ledger has %d transactions after failed creates", resp.Count)
	}
}

func TestListSearchAndRecent(t *testing.T) {
	r := newTestRouter(t)

	for _, body := range []string{
		`{"description":"Salary","amount":1000,"type":"income"}`,
		`{"description":"Rent","amount":400,"type":"expense"}`,
		`{"description":"Groceries","amount":80,"type":"expense"}`,
	} {
		if w := do(t, r, "POST", "/api/v1/transactions", body); w.Code != http.StatusCreated {
			t.Fatalf("create: %s", w.Body)
		}
	}

	var resp struct {
		Count        int `json:"count"`
		Transactions []struct {
			Description string `json:"description"`
		} `json:"transactions"`
	}

	w := do(t, r, "GET", "/api/v1/transactions?q=rent", "")
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Count != 1 || resp.Transactions[0].Description != "Rent" {
		t.Errorf("search rent: %+v", resp)
	}

	w = do(t, r, "GET", "/api/v1/transactions/recent?limit=2", "")
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Count != 2 || resp.Transactions[0].Description != "Rent" || resp.Transactions[1].Description != "Groceries" {
		t.Errorf("recent 2: %+v", resp)
	}
}

func TestUpdateAndDelete(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, "POST", "/api/v1/transactions", `{"description":"Salary","amount":1000,"type":"income"}`)
	var created struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}

	id := strconv.FormatInt(created.ID, 10)

	if w := do(t, r, "PATCH", "/api/v1/transactions/"+id, `{"amount":-5}`); w.Code != http.StatusBadRequest {
		t.Errorf("negative amount update: status %d; want 400", w.Code)
	}
	if w := do(t, r, "PATCH", "/api/v1/transactions/"+id, `{"amount":1200}`); w.Code != http.StatusOK {
		t.Errorf("update: status %d body %s", w.Code, w.Body)
	}
	if w := do(t, r, "PATCH", "/api/v1/transactions/999", `{"amount":1}`); w.Code != http.StatusNotFound {
		t.Errorf("update unknown id: status %d; want 404", w.Code)
	}

	if w := do(t, r, "DELETE", "/api/v1/transactions/999", ""); w.Code != http.StatusNotFound {
		t.Errorf("delete unknown id: status %d; want 404", w.Code)
	}
	if w := do(t, r, "DELETE", "/api/v1/transactions/"+id, ""); w.Code != http.StatusOK {
		t.Errorf("delete: status %d body %s", w.Code, w.Body)
	}

	w = do(t, r, "GET", "/api/v1/transactions", "")
	var resp struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Count != 0 {
		t.Fatalf("ledger not empty after delete: %d", resp.Count)
	}
}

func TestExportCSV(t *testing.T) {
	r := newTestRouter(t)

	do(t, r, "POST", "/api/v1/transactions", `{"description":"Salary, June","amount":1000,"type":"income"}`)

	w := do(t, r, "GET", "/api/v1/export", "")
	if w.Code != http.StatusOK {
		t.Fatalf("export: status %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("content type = %q", ct)
	}
	body := w.Body.String()
	if !strings.HasPrefix(body, "Date,Description,Amount,Type\n") {
		t.Errorf("missing CSV header: %q", body)
	}
	if !strings.Contains(body, `"Salary, June",1000.00,income`) {
		t.Errorf("missing CSV row: %q", body)
	}
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)

	if w := do(t, r, "GET", "/healthz", ""); w.Code != http.StatusOK {
		t.Errorf("healthz: status %d", w.Code)
	}
	w := do(t, r, "GET", "/readyz", "")
	if w.Code != http.StatusOK {
		t.Errorf("readyz: status %d body %s", w.Code, w.Body)
	}
	if !strings.Contains(w.Body.String(), `"store":"healthy"`) {
		t.Errorf("readyz body: %s", w.Body)
	}
}
