package orderController

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/cardapio-digital/restaurante-api/cart"
	"github.com/cardapio-digital/restaurante-api/models"
)

// -------- Request Structs --------

type SelectionInput struct {
	OptionID uint `json:"subProdutoId"`
	Quantity int  `json:"quantidade"`
}

type ItemInput struct {
	ProductID  uint             `json:"produtoId"`
	Quantity   int              `json:"quantidade"`
	Selections []SelectionInput `json:"subProdutos"`
	Note       string           `json:"observacaoItem"`
}

type CheckoutRequest struct {
	CustomerName    string           `json:"nomeCliente"`
	CustomerPhone   string           `json:"telefoneCliente"`
	PaymentMethodID uint             `json:"formaPagamentoId"`
	Pickup          bool             `json:"retirada"`
	DeliveryFee     *decimal.Decimal `json:"taxaEntrega"`
	Address         models.Address   `json:"endereco"`
	Note            string           `json:"observacao"`
	Items           []ItemInput      `json:"itens"`
}

// -------- Helpers --------

// missingFields names every absent required field at once, so the client can
// surface all of them without a round trip per field. Delivery orders also
// require the core address fields.
func missingFields(req CheckoutRequest) []string {
	var missing []string
	if req.CustomerName == "" {
		missing = append(missing, "nomeCliente")
	}
	if req.CustomerPhone == "" {
		missing = append(missing, "telefoneCliente")
	}
	if req.PaymentMethodID == 0 {
		missing = append(missing, "formaPagamentoId")
	}
	if len(req.Items) == 0 {
		missing = append(missing, "itens")
	}
	if !req.Pickup {
		if req.Address.Street == "" {
			missing = append(missing, "endereco.rua")
		}
		if req.Address.Number == "" {
			missing = append(missing, "endereco.numero")
		}
		if req.Address.District == "" {
			missing = append(missing, "endereco.bairro")
		}
		if req.Address.City == "" {
			missing = append(missing, "endereco.cidade")
		}
	}
	return missing
}

// Generate unique order reference
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// optionIndex maps the product's active options by id.
func optionIndex(product models.Product) map[uint]models.Option {
	byID := make(map[uint]models.Option)
	for _, g := range product.Groups {
		for _, o := range g.Options {
			if o.Active {
				byID[o.ID] = o
			}
		}
	}
	return byID
}

// expandSelections flattens the selection inputs into option snapshots, one
// entry per selected unit, against the product's live option tree. Selection
// quantities are validated positive before this runs.
func expandSelections(product models.Product, selections []SelectionInput) ([]models.Option, error) {
	byID := optionIndex(product)

	var expanded []models.Option
	for _, sel := range selections {
		o, ok := byID[sel.OptionID]
		if !ok {
			return nil, gorm.ErrRecordNotFound
		}
		for i := 0; i < sel.Quantity; i++ {
			expanded = append(expanded, o)
		}
	}
	return expanded, nil
}

// -------- Handler --------

// POST /pedido
// Validates the submission, reprices every line against the live catalog
// inside one transaction, and clears the caller's session cart on success.
// Failure leaves the cart untouched so the shopper can retry.
func PlaceOrder(db *gorm.DB, store *cart.Store, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// Fail fast before touching the database.
		if missing := missingFields(req); len(missing) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "Missing required fields",
				"campos": missing,
			})
			return
		}
		if req.DeliveryFee != nil && req.DeliveryFee.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "taxaEntrega cannot be negative"})
			return
		}
		for _, item := range req.Items {
			if item.Quantity < 1 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Item quantity must be positive"})
				return
			}
			for _, sel := range item.Selections {
				if sel.Quantity < 1 {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Selection quantity must be positive"})
					return
				}
			}
		}

		var method models.PaymentMethod
		if err := db.Where("active = ?", true).First(&method, req.PaymentMethodID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Payment method does not exist or is inactive"})
			return
		}

		cfg, err := models.LoadStoreConfig(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load store configuration"})
			return
		}

		deliveryFee := decimal.Zero
		if !req.Pickup {
			if req.DeliveryFee != nil {
				deliveryFee = req.DeliveryFee.Round(2)
			} else {
				deliveryFee = cfg.Fiscal.DeliveryFee
			}
		}

		var order models.Order
		err = db.Transaction(func(tx *gorm.DB) error {
			total := decimal.Zero
			var orderItems []models.OrderItem

			for _, item := range req.Items {
				var product models.Product
				if err := tx.
					Preload("Groups").
					Preload("Groups.Options").
					Where("active = ?", true).
					First(&product, item.ProductID).Error; err != nil {
					return err
				}

				expanded, err := expandSelections(product, item.Selections)
				if err != nil {
					return err
				}
				if err := cart.ValidateProduct(product, expanded); err != nil {
					return err
				}

				unitPrice := cart.UnitPrice(product, expanded)
				total = total.Add(unitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))

				byID := optionIndex(product)
				var selections []models.OrderItemSelection
				for _, sel := range item.Selections {
					opt := byID[sel.OptionID]
					selections = append(selections, models.OrderItemSelection{
						OptionID:   opt.ID,
						OptionName: opt.Name,
						ExtraPrice: opt.ExtraPrice,
						Quantity:   sel.Quantity,
					})
				}

				orderItems = append(orderItems, models.OrderItem{
					ProductID:   product.ID,
					ProductName: product.Name,
					UnitPrice:   unitPrice,
					Quantity:    item.Quantity,
					Note:        item.Note,
					Selections:  selections,
				})
			}

			order = models.Order{
				OrderRef:        generateOrderRef(),
				CustomerName:    req.CustomerName,
				CustomerPhone:   req.CustomerPhone,
				Pickup:          req.Pickup,
				Address:         req.Address,
				PaymentMethodID: method.ID,
				DeliveryFee:     deliveryFee,
				Total:           total.Add(deliveryFee).Round(2),
				Note:            req.Note,
				Status:          models.OrderStatusPending,
				Items:           orderItems,
			}
			return tx.Create(&order).Error
		})
		if err != nil {
			var serr *cart.SelectionError
			switch {
			case errors.As(err, &serr):
				c.JSON(http.StatusUnprocessableEntity, gin.H{
					"error":     "Invalid option selection",
					"violacoes": serr.Violations,
				})
			case errors.Is(err, gorm.ErrRecordNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Product or option does not exist"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			}
			return
		}

		// The sale is confirmed, so the session cart empties; this is the
		// only place a cart is cleared outside an explicit DELETE.
		if sid := c.GetHeader("X-Session-ID"); sid != "" {
			store.Clear(sid)
		}

		order.PaymentMethod = method
		if hub != nil {
			hub.Broadcast(order)
		}

		c.JSON(http.StatusCreated, order)
	}
}
