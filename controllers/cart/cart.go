package cartController

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cardapio-digital/restaurante-api/cart"
	"github.com/cardapio-digital/restaurante-api/models"
)

type AddItemInput struct {
	ProductID uint   `json:"produtoId" binding:"required"`
	OptionIDs []uint `json:"opcoes"`
	Quantity  int    `json:"quantidade" binding:"required,min=1"`
}

type UpdateItemInput struct {
	OptionIDs []uint `json:"opcoes"`
	Quantity  int    `json:"quantidade" binding:"required,min=1"`
}

// sessionID extracts the storefront session key. Carts are local to one
// session and never shared.
func sessionID(c *gin.Context) (string, bool) {
	sid := c.GetHeader("X-Session-ID")
	if sid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-Session-ID header is required"})
		return "", false
	}
	return sid, true
}

func cartResponse(store *cart.Store, sid string) gin.H {
	return gin.H{
		"itens":      store.Items(sid),
		"valorTotal": store.Total(sid),
	}
}

// resolveSelection loads the product with its option tree and maps the
// selected option ids onto it. Unknown or inactive references fail.
func resolveSelection(db *gorm.DB, productID uint, optionIDs []uint) (models.Product, []models.Option, error) {
	var product models.Product
	err := db.
		Preload("Groups", func(db *gorm.DB) *gorm.DB {
			return db.Order("option_groups.position asc, option_groups.id asc")
		}).
		Preload("Groups.Options").
		Where("active = ?", true).
		First(&product, productID).Error
	if err != nil {
		return models.Product{}, nil, err
	}

	byID := make(map[uint]models.Option)
	for _, g := range product.Groups {
		for _, o := range g.Options {
			if o.Active {
				byID[o.ID] = o
			}
		}
	}

	var selected []models.Option
	for _, id := range optionIDs {
		o, ok := byID[id]
		if !ok {
			return models.Product{}, nil, gorm.ErrRecordNotFound
		}
		selected = append(selected, o)
	}
	return product, selected, nil
}

// GET /carrinho
func GetCart(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, cartResponse(store, sid))
	}
}

// POST /carrinho/itens
func AddItem(db *gorm.DB, store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, selected, err := resolveSelection(db, input.ProductID, input.OptionIDs)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product or option does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		if err := cart.ValidateProduct(product, selected); err != nil {
			var serr *cart.SelectionError
			if errors.As(err, &serr) {
				c.JSON(http.StatusUnprocessableEntity, gin.H{
					"error":     "Invalid option selection",
					"violacoes": serr.Violations,
				})
				return
			}
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}

		li, err := store.Add(sid, product, selected, input.Quantity)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"item": li, "carrinho": cartResponse(store, sid)})
	}
}

// PUT /carrinho/itens/:cartItemId
func UpdateItem(db *gorm.DB, store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}
		cartItemID := c.Param("cartItemId")

		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		line, err := store.Line(sid, cartItemID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		// Re-resolve against the live catalog so stale options are caught.
		product, selected, err := resolveSelection(db, line.Product.ID, input.OptionIDs)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product or option does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		if err := cart.ValidateProduct(product, selected); err != nil {
			var serr *cart.SelectionError
			if errors.As(err, &serr) {
				c.JSON(http.StatusUnprocessableEntity, gin.H{
					"error":     "Invalid option selection",
					"violacoes": serr.Violations,
				})
				return
			}
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}

		li, err := store.UpdateConfiguration(sid, cartItemID, selected, input.Quantity)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"item": li, "carrinho": cartResponse(store, sid)})
	}
}

// POST /carrinho/itens/:cartItemId/incrementar
func IncrementItem(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}
		li, err := store.Increment(sid, c.Param("cartItemId"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"item": li, "carrinho": cartResponse(store, sid)})
	}
}

// POST /carrinho/itens/:cartItemId/decrementar
func DecrementItem(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}
		li, err := store.Decrement(sid, c.Param("cartItemId"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		// Quantity 0 means the decrement removed the line.
		c.JSON(http.StatusOK, gin.H{"item": li, "carrinho": cartResponse(store, sid)})
	}
}

// DELETE /carrinho/itens/:cartItemId
func DeleteItem(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}
		if err := store.Remove(sid, c.Param("cartItemId")); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted", "carrinho": cartResponse(store, sid)})
	}
}

// DELETE /carrinho
func ClearCart(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}
		store.Clear(sid)
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
