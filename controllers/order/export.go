package orderControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/modaline/shopclient-api/catalog"
)

// ExportOrdersToExcel downloads the full upstream order history as a
// spreadsheet.
// GET /admin/orders/export
func ExportOrdersToExcel(cat *catalog.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := cat.Orders(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{"ID", "Ref", "UserID", "Date", "Status", "Total", "Address", "Lines"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, o := range orders {
			row := sheet.AddRow()

			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.Ref)
			row.AddCell().SetValue(o.UserID)
			row.AddCell().SetValue(o.Date)
			row.AddCell().SetValue(o.Status)
			row.AddCell().SetValue(o.Total)
			row.AddCell().SetValue(o.Address)

			var lines []string
			for _, l := range o.Products {
				lines = append(lines, strconv.Itoa(int(l.ProductID))+" "+l.Size+"/"+l.Color+" x"+strconv.Itoa(l.Quantity))
			}
			row.AddCell().SetValue(strings.Join(lines, "; "))
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
