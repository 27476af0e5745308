package productController

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/cardapio-digital/restaurante-api/models"
)

type OptionInput struct {
	Name       string          `json:"nome" binding:"required"`
	ExtraPrice decimal.Decimal `json:"valorAdicional"`
	Active     *bool           `json:"ativo"`
}

type OptionGroupInput struct {
	Name       string        `json:"nome" binding:"required"`
	MinChoices int           `json:"minEscolhas"`
	MaxChoices int           `json:"maxEscolhas"`
	Position   int           `json:"ordem"`
	Options    []OptionInput `json:"opcoes"`
}

type ProductInput struct {
	Name        string             `json:"nome" binding:"required"`
	Description string             `json:"descricao"`
	BasePrice   decimal.Decimal    `json:"valorProduto"`
	CategoryID  uint               `json:"categoriaId" binding:"required"`
	Position    int                `json:"ordem"`
	Active      *bool              `json:"ativo"`
	Groups      []OptionGroupInput `json:"subProdutos"`
}

func (in ProductInput) validateGroups() error {
	for _, g := range in.Groups {
		if g.MinChoices < 0 {
			return errors.New("minEscolhas cannot be negative")
		}
		if g.MaxChoices < g.MinChoices {
			return errors.New("maxEscolhas cannot be below minEscolhas")
		}
		if g.MaxChoices > len(g.Options) {
			return errors.New("maxEscolhas cannot exceed the number of options")
		}
	}
	return nil
}

func (in ProductInput) toModel() models.Product {
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	p := models.Product{
		Name:        in.Name,
		Description: in.Description,
		BasePrice:   in.BasePrice.Round(2),
		CategoryID:  in.CategoryID,
		Position:    in.Position,
		Active:      active,
	}
	for _, g := range in.Groups {
		group := models.OptionGroup{
			Name:       g.Name,
			MinChoices: g.MinChoices,
			MaxChoices: g.MaxChoices,
			Position:   g.Position,
		}
		for _, o := range g.Options {
			optActive := true
			if o.Active != nil {
				optActive = *o.Active
			}
			group.Options = append(group.Options, models.Option{
				Name:       o.Name,
				ExtraPrice: o.ExtraPrice.Round(2),
				Active:     optActive,
			})
		}
		p.Groups = append(p.Groups, group)
	}
	return p
}

// POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.BasePrice.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "valorProduto cannot be negative"})
			return
		}
		if err := input.validateGroups(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var category models.Category
		if err := db.First(&category, input.CategoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
			return
		}

		product := input.toModel()
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}

// PUT /admin/products/:id
// Replaces the product fields and its whole option tree atomically; partial
// group edits are not supported, the admin UI always sends the full tree.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.Preload("Groups").First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.BasePrice.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "valorProduto cannot be negative"})
			return
		}
		if err := input.validateGroups(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var category models.Category
		if err := db.First(&category, input.CategoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			var groupIDs []uint
			for _, g := range product.Groups {
				groupIDs = append(groupIDs, g.ID)
			}
			if len(groupIDs) > 0 {
				if err := tx.Where("group_id IN ?", groupIDs).Delete(&models.Option{}).Error; err != nil {
					return err
				}
			}
			if err := tx.Where("product_id = ?", product.ID).Delete(&models.OptionGroup{}).Error; err != nil {
				return err
			}

			replacement := input.toModel()
			product.Name = replacement.Name
			product.Description = replacement.Description
			product.BasePrice = replacement.BasePrice
			product.CategoryID = replacement.CategoryID
			product.Position = replacement.Position
			product.Active = replacement.Active
			product.Groups = replacement.Groups

			return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(&product).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

// GET /admin/products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")
		categoryID := c.Query("categoria_id")
		sortBy := c.DefaultQuery("sort_by", "position")
		sortOrder := strings.ToLower(c.DefaultQuery("order", "asc"))
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "asc"
		}
		switch sortBy {
		case "position", "name", "base_price", "created_at":
		default:
			sortBy = "position"
		}

		query := db.Model(&models.Product{}).
			Preload("Groups", func(db *gorm.DB) *gorm.DB {
				return db.Order("option_groups.position asc, option_groups.id asc")
			}).
			Preload("Groups.Options")

		if search != "" {
			likePattern := "%" + search + "%"
			query = query.Where("name ILIKE ? OR description ILIKE ?", likePattern, likePattern)
		}
		if categoryID != "" {
			cid, err := strconv.ParseUint(categoryID, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid categoria_id"})
				return
			}
			query = query.Where("category_id = ?", uint(cid))
		}

		var products []models.Product
		if err := query.Order(sortBy + " " + sortOrder).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /admin/products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.
			Preload("Groups", func(db *gorm.DB) *gorm.DB {
				return db.Order("option_groups.position asc, option_groups.id asc")
			}).
			Preload("Groups.Options").
			First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// DELETE /admin/products/:id
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		// Soft delete; order lines keep their frozen product snapshots.
		if err := db.Delete(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
