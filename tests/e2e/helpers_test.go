package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"
)

type TestClient struct {
	BaseURL string
	HTTP    *http.Client

	//ゲスト用。レスポンスのX-Session-Idを保持して次のリクエストで送り返す
	Session string
}

// BASE_URLが無ければこのスイートは実行しない。
func NewTestClient(t *testing.T) *TestClient {
	t.Helper()

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		t.Skip("BASE_URL not set")
	}

	return &TestClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

type UserDTO struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type AuthResult struct {
	User  UserDTO `json:"user"`
	Token string  `json:"token"`
}

type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Product struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Category string `json:"category"`
	Stock    int64  `json:"stock"`
}

type CartLine struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
	Subtotal  int64  `json:"subtotal"`
}

type Cart struct {
	Items      []CartLine `json:"items"`
	TotalItems int64      `json:"total_items"`
	TotalPrice int64      `json:"total_price"`
}

type AddCartRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

type Shipping struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type CreateOrderRequest struct {
	Shipping      Shipping `json:"shipping"`
	PaymentMethod string   `json:"payment_method"`
}

type OrderItem struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"product_name"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
	Subtotal  int64  `json:"subtotal"`
}

type Order struct {
	ID          int64       `json:"id"`
	OrderNumber string      `json:"order_number"`
	Status      string      `json:"status"`
	TotalAmount int64       `json:"total_amount"`
	Items       []OrderItem `json:"items"`
}

func (c *TestClient) doJSON(
	ctx context.Context,
	t *testing.T,
	method string,
	path string,
	bearer string,
	bodyBytes []byte,
) (*http.Response, []byte) {
	t.Helper()

	var reqBody io.Reader
	if bodyBytes != nil {
		reqBody = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		t.Fatalf("http.NewRequest failed: %v", err)
	}

	if bodyBytes != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	if c.Session != "" {
		req.Header.Set("X-Session-Id", c.Session)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		t.Fatalf("HTTP.Do failed: %v", err)
	}

	//ゲストにはサーバーがセッションを返す。次のリクエストで使い回す
	if sid := resp.Header.Get("X-Session-Id"); sid != "" {
		c.Session = sid
	}

	defer func() { _ = resp.Body.Close() }()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}

	return resp, data
}

func requireStatus(t *testing.T, resp *http.Response, want int, body []byte) {
	t.Helper()
	if resp.StatusCode != want {
		t.Fatalf("status=%d want=%d body=%s", resp.StatusCode, want, string(body))
	}
}

// {success:true, data:...} の dataを取り出す。
func mustDecodeData(t *testing.T, body []byte, out interface{}) {
	t.Helper()

	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("json.Unmarshal(Envelope) failed: %v body=%s", err, string(body))
	}
	if !env.Success {
		t.Fatalf("success=false body=%s", string(body))
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		t.Fatalf("json.Unmarshal(data) failed: %v body=%s", err, string(body))
	}
}

func mustDecodeErrorEnvelope(t *testing.T, body []byte) Envelope {
	t.Helper()

	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("json.Unmarshal(Envelope) failed: %v body=%s", err, string(body))
	}
	if env.Success {
		t.Fatalf("success should be false: body=%s", string(body))
	}
	return env
}

func toStr(v int64) string {
	return strconv.FormatInt(v, 10)
}

func uniqueEmail(prefix string) string {
	return prefix + "-" + time.Now().Format("20060102-150405.000000000") + "@example.com"
}

// 新規ユーザーを登録してtokenを返す。
func registerUser(t *testing.T, c *TestClient, ctx context.Context, email string) AuthResult {
	t.Helper()

	reg := RegisterRequest{
		Email:     email,
		Password:  "password123",
		FirstName: "E2E",
		LastName:  "Tester",
	}
	b, err := json.Marshal(reg)
	if err != nil {
		t.Fatalf("json.Marshal(RegisterRequest) failed: %v", err)
	}

	resp, body := c.doJSON(ctx, t, http.MethodPost, "/auth/register", "", b)
	requireStatus(t, resp, http.StatusCreated, body)

	var out AuthResult
	mustDecodeData(t, body, &out)
	if strings.TrimSpace(out.Token) == "" {
		t.Fatalf("token is empty: body=%s", string(body))
	}
	return out
}

// シード済みカタログから先頭の商品を拾う。
func firstProduct(t *testing.T, c *TestClient, ctx context.Context) Product {
	t.Helper()

	resp, body := c.doJSON(ctx, t, http.MethodGet, "/products", "", nil)
	requireStatus(t, resp, http.StatusOK, body)

	var products []Product
	mustDecodeData(t, body, &products)
	if len(products) == 0 {
		t.Fatalf("catalog is empty, run the seed first: body=%s", string(body))
	}
	return products[0]
}

func validShipping() Shipping {
	return Shipping{
		FirstName:  "Hanako",
		LastName:   "Yamada",
		Email:      "hanako@example.com",
		Address:    "1-2-3 Chuo",
		City:       "Osaka",
		PostalCode: "541-0000",
		Country:    "JP",
	}
}
