package orderController

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/cardapio-digital/restaurante-api/cart"
	"github.com/cardapio-digital/restaurante-api/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared&mode=memory"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.OptionGroup{},
		&models.Option{},
		&models.PaymentMethod{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderItemSelection{},
		&models.StoreConfig{},
		&models.OpeningHour{},
	))

	// Each test gets a fresh schema state.
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func seedCatalog(t *testing.T, db *gorm.DB) (models.Product, models.PaymentMethod) {
	t.Helper()

	category := models.Category{Name: "Lanches", Active: true}
	require.NoError(t, db.Create(&category).Error)

	product := models.Product{
		Name:       "Burger",
		BasePrice:  decimal.RequireFromString("20.00"),
		Active:     true,
		CategoryID: category.ID,
		Groups: []models.OptionGroup{
			{
				Name:       "Extras",
				MinChoices: 0,
				MaxChoices: 2,
				Options: []models.Option{
					{Name: "Bacon", ExtraPrice: decimal.RequireFromString("3.50"), Active: true},
					{Name: "Cheese", ExtraPrice: decimal.RequireFromString("2.00"), Active: true},
				},
			},
		},
	}
	require.NoError(t, db.Create(&product).Error)

	method := models.PaymentMethod{Name: "Dinheiro", Active: true}
	require.NoError(t, db.Create(&method).Error)

	cfg, err := models.LoadStoreConfig(db)
	require.NoError(t, err)
	cfg.Fiscal.DeliveryFee = decimal.RequireFromString("5.00")
	require.NoError(t, db.Save(cfg).Error)

	return product, method
}

func checkoutRouter(db *gorm.DB, store *cart.Store, hub *Hub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/pedido", PlaceOrder(db, store, hub))
	return r
}

func postCheckout(t *testing.T, r *gin.Engine, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/pedido", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMissingFields(t *testing.T) {
	tests := []struct {
		name string
		req  CheckoutRequest
		want []string
	}{
		{
			name: "everything missing for delivery",
			req:  CheckoutRequest{},
			want: []string{
				"nomeCliente", "telefoneCliente", "formaPagamentoId", "itens",
				"endereco.rua", "endereco.numero", "endereco.bairro", "endereco.cidade",
			},
		},
		{
			name: "pickup skips address",
			req:  CheckoutRequest{Pickup: true},
			want: []string{"nomeCliente", "telefoneCliente", "formaPagamentoId", "itens"},
		},
		{
			name: "complete pickup order",
			req: CheckoutRequest{
				CustomerName:    "Ana",
				CustomerPhone:   "11999990000",
				PaymentMethodID: 1,
				Pickup:          true,
				Items:           []ItemInput{{ProductID: 1, Quantity: 1}},
			},
			want: nil,
		},
		{
			name: "delivery with partial address",
			req: CheckoutRequest{
				CustomerName:    "Ana",
				CustomerPhone:   "11999990000",
				PaymentMethodID: 1,
				Address:         models.Address{Street: "Rua A", City: "Palmas"},
				Items:           []ItemInput{{ProductID: 1, Quantity: 1}},
			},
			want: []string{"endereco.numero", "endereco.bairro"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, missingFields(tt.req))
		})
	}
}

func TestPlaceOrderEmptyCartRejectedBeforeDB(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	r := checkoutRouter(db, cart.NewStore(), nil)

	w := postCheckout(t, r, CheckoutRequest{
		CustomerName:    "Ana",
		CustomerPhone:   "11999990000",
		PaymentMethodID: 1,
		Pickup:          true,
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "itens")

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count, "no order row may be written for an invalid submission")
}

func TestPlaceOrderDeliveryRequiresAddress(t *testing.T) {
	db := setupTestDB(t)
	product, method := seedCatalog(t, db)
	r := checkoutRouter(db, cart.NewStore(), nil)

	w := postCheckout(t, r, CheckoutRequest{
		CustomerName:    "Ana",
		CustomerPhone:   "11999990000",
		PaymentMethodID: method.ID,
		Items:           []ItemInput{{ProductID: product.ID, Quantity: 1}},
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Campos []string `json:"campos"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.ElementsMatch(t, []string{
		"endereco.rua", "endereco.numero", "endereco.bairro", "endereco.cidade",
	}, resp.Campos)
}

func TestPlaceOrderSuccessClearsCartAndPrices(t *testing.T) {
	db := setupTestDB(t)
	product, method := seedCatalog(t, db)
	store := cart.NewStore()
	r := checkoutRouter(db, store, NewHub())

	// A shopper builds a session cart before checking out.
	_, err := store.Add("session-1", product, nil, 2)
	require.NoError(t, err)

	bacon := product.Groups[0].Options[0]
	cheese := product.Groups[0].Options[1]

	w := postCheckout(t, r, CheckoutRequest{
		CustomerName:    "Ana",
		CustomerPhone:   "11999990000",
		PaymentMethodID: method.ID,
		Pickup:          true,
		Items: []ItemInput{
			{
				ProductID: product.ID,
				Quantity:  2,
				Selections: []SelectionInput{
					{OptionID: bacon.ID, Quantity: 1},
					{OptionID: cheese.ID, Quantity: 1},
				},
			},
		},
	}, map[string]string{"X-Session-ID": "session-1"})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.NotZero(t, order.ID)
	assert.NotEmpty(t, order.OrderRef)
	// Burger 20.00 + Bacon 3.50 + Cheese 2.00, quantity 2, pickup: no fee.
	assert.Equal(t, "51.00", order.Total.StringFixed(2))
	assert.Equal(t, "0.00", order.DeliveryFee.StringFixed(2))
	require.Len(t, order.Items, 1)
	assert.Equal(t, "25.50", order.Items[0].UnitPrice.StringFixed(2))
	assert.Len(t, order.Items[0].Selections, 2)

	assert.Empty(t, store.Items("session-1"), "confirmed order must clear the session cart")
}

func TestPlaceOrderRejectsNegativeDeliveryFee(t *testing.T) {
	db := setupTestDB(t)
	product, method := seedCatalog(t, db)
	r := checkoutRouter(db, cart.NewStore(), nil)

	fee := decimal.RequireFromString("-15.00")
	w := postCheckout(t, r, CheckoutRequest{
		CustomerName:    "Ana",
		CustomerPhone:   "11999990000",
		PaymentMethodID: method.ID,
		DeliveryFee:     &fee,
		Address: models.Address{
			Street: "Rua A", Number: "10", District: "Centro", City: "Palmas",
		},
		Items: []ItemInput{{ProductID: product.ID, Quantity: 1}},
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "taxaEntrega")

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count, "a negative fee must never reach the order table")
}

func TestPlaceOrderRejectsNonPositiveSelectionQuantity(t *testing.T) {
	db := setupTestDB(t)
	product, method := seedCatalog(t, db)
	r := checkoutRouter(db, cart.NewStore(), nil)

	bacon := product.Groups[0].Options[0]

	w := postCheckout(t, r, CheckoutRequest{
		CustomerName:    "Ana",
		CustomerPhone:   "11999990000",
		PaymentMethodID: method.ID,
		Pickup:          true,
		Items: []ItemInput{
			{
				ProductID:  product.ID,
				Quantity:   1,
				Selections: []SelectionInput{{OptionID: bacon.ID, Quantity: 0}},
			},
		},
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPlaceOrderDeliveryFeeFromStoreConfig(t *testing.T) {
	db := setupTestDB(t)
	product, method := seedCatalog(t, db)
	r := checkoutRouter(db, cart.NewStore(), nil)

	w := postCheckout(t, r, CheckoutRequest{
		CustomerName:    "Ana",
		CustomerPhone:   "11999990000",
		PaymentMethodID: method.ID,
		Address: models.Address{
			Street: "Rua A", Number: "10", District: "Centro", City: "Palmas",
		},
		Items: []ItemInput{{ProductID: product.ID, Quantity: 1}},
	}, nil)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, "5.00", order.DeliveryFee.StringFixed(2))
	assert.Equal(t, "25.00", order.Total.StringFixed(2))
	assert.False(t, order.Pickup)
}

func TestPlaceOrderFailureLeavesCartIntact(t *testing.T) {
	db := setupTestDB(t)
	product, method := seedCatalog(t, db)
	store := cart.NewStore()
	r := checkoutRouter(db, store, nil)

	_, err := store.Add("session-1", product, nil, 1)
	require.NoError(t, err)

	// Stale reference: the product was removed between browsing and checkout.
	w := postCheckout(t, r, CheckoutRequest{
		CustomerName:    "Ana",
		CustomerPhone:   "11999990000",
		PaymentMethodID: method.ID,
		Pickup:          true,
		Items:           []ItemInput{{ProductID: product.ID + 999, Quantity: 1}},
	}, map[string]string{"X-Session-ID": "session-1"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Len(t, store.Items("session-1"), 1, "failed submission must not touch the cart")
}

func TestPlaceOrderValidatesOptionCardinality(t *testing.T) {
	db := setupTestDB(t)
	product, method := seedCatalog(t, db)
	r := checkoutRouter(db, cart.NewStore(), nil)

	bacon := product.Groups[0].Options[0]

	// Extras allows at most 2 selections; ask for 3 units of bacon.
	w := postCheckout(t, r, CheckoutRequest{
		CustomerName:    "Ana",
		CustomerPhone:   "11999990000",
		PaymentMethodID: method.ID,
		Pickup:          true,
		Items: []ItemInput{
			{
				ProductID:  product.ID,
				Quantity:   1,
				Selections: []SelectionInput{{OptionID: bacon.ID, Quantity: 3}},
			},
		},
	}, nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "above_maximum")
}

func TestPlaceOrderRejectsInactivePaymentMethod(t *testing.T) {
	db := setupTestDB(t)
	product, method := seedCatalog(t, db)
	require.NoError(t, db.Model(&method).Update("active", false).Error)
	r := checkoutRouter(db, cart.NewStore(), nil)

	w := postCheckout(t, r, CheckoutRequest{
		CustomerName:    "Ana",
		CustomerPhone:   "11999990000",
		PaymentMethodID: method.ID,
		Pickup:          true,
		Items:           []ItemInput{{ProductID: product.ID, Quantity: 1}},
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
