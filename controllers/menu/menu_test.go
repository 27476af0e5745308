package menuController

import (
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
	))
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func getMenu(t *testing.T, db *gorm.DB) []models.Category {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/menu", GetMenu(db))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/menu", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var categories []models.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &categories))
	return categories
}

func TestGetMenuFiltersInactiveEntries(t *testing.T) {
	db := setupTestDB(t)

	visible := models.Category{Name: "Lanches", Active: true}
	hidden := models.Category{Name: "Fora de linha", Active: false}
	require.NoError(t, db.Create(&visible).Error)
	require.NoError(t, db.Create(&hidden).Error)

	require.NoError(t, db.Create(&models.Product{
		Name:       "Burger",
		BasePrice:  decimal.RequireFromString("20.00"),
		Active:     true,
		CategoryID: visible.ID,
		Groups: []models.OptionGroup{
			{
				Name:       "Extras",
				MaxChoices: 2,
				Options: []models.Option{
					{Name: "Bacon", ExtraPrice: decimal.RequireFromString("3.50"), Active: true},
					{Name: "Old Cheese", Active: false},
				},
			},
		},
	}).Error)
	require.NoError(t, db.Create(&models.Product{
		Name:       "Retired Burger",
		Active:     false,
		CategoryID: visible.ID,
	}).Error)

	categories := getMenu(t, db)

	require.Len(t, categories, 1)
	assert.Equal(t, "Lanches", categories[0].Name)
	require.Len(t, categories[0].Products, 1)

	product := categories[0].Products[0]
	assert.Equal(t, "Burger", product.Name)
	require.Len(t, product.Groups, 1)
	require.Len(t, product.Groups[0].Options, 1, "inactive options stay out of the menu")
	assert.Equal(t, "Bacon", product.Groups[0].Options[0].Name)
}

func TestGetMenuOrdersByPosition(t *testing.T) {
	db := setupTestDB(t)

	second := models.Category{Name: "Bebidas", Active: true, Position: 2}
	first := models.Category{Name: "Lanches", Active: true, Position: 1}
	require.NoError(t, db.Create(&second).Error)
	require.NoError(t, db.Create(&first).Error)

	require.NoError(t, db.Create(&models.Product{Name: "Fritas", Active: true, Position: 2, CategoryID: first.ID}).Error)
	require.NoError(t, db.Create(&models.Product{Name: "Burger", Active: true, Position: 1, CategoryID: first.ID}).Error)

	categories := getMenu(t, db)

	require.Len(t, categories, 2)
	assert.Equal(t, "Lanches", categories[0].Name)
	assert.Equal(t, "Bebidas", categories[1].Name)
	require.Len(t, categories[0].Products, 2)
	assert.Equal(t, "Burger", categories[0].Products[0].Name)
	assert.Equal(t, "Fritas", categories[0].Products[1].Name)
}
