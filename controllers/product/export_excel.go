package productController

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/cardapio-digital/restaurante-api/models"
)

// GET /admin/products/export-excel
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.
			Preload("Groups").
			Preload("Groups.Options").
			Order("category_id asc, position asc").
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		var categories []models.Category
		if err := db.Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		categoryNames := make(map[uint]string, len(categories))
		for _, cat := range categories {
			categoryNames[cat.ID] = cat.Name
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"ID", "Name", "Description", "BasePrice", "Category",
			"Active", "OptionGroups", "CreatedAt", "UpdatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, p := range products {
			row := sheet.AddRow()

			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.BasePrice.StringFixed(2))
			row.AddCell().SetValue(categoryNames[p.CategoryID])
			row.AddCell().SetValue(p.Active)
			row.AddCell().SetValue(groupSummary(p.Groups))
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(p.UpdatedAt.Format("2006-01-02 15:04:05"))
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}

// groupSummary renders option groups as "Extras (0-2): Bacon +3.50, Cheese +2.00 | ..."
func groupSummary(groups []models.OptionGroup) string {
	out := ""
	for i, g := range groups {
		if i > 0 {
			out += " | "
		}
		out += fmt.Sprintf("%s (%d-%d):", g.Name, g.MinChoices, g.MaxChoices)
		for j, o := range g.Options {
			if j > 0 {
				out += ","
			}
			out += fmt.Sprintf(" %s +%s", o.Name, o.ExtraPrice.StringFixed(2))
		}
	}
	return out
}
