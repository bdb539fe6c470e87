package controllers

import (
	"fmt"

	"github.com/MdAsraful56/FoodHut-Server/models"
	"github.com/MdAsraful56/FoodHut-Server/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// GetAdminStats godoc
//
//	@Summary		Dashboard stats
//	@Description	Estimated user/menu/payment counts plus total revenue
//	@Tags			Reports
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	models.AdminStats
//	@Failure		500	{object}	map[string]interface{}
//	@Router			/admin-stats [get]
func GetAdminStats(c *fiber.Ctx) error {
	stats, err := repository.GetAdminStats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "failed to compute stats",
			"error":   err.Error(),
		})
	}
	return c.JSON(stats)
}

// GetOrderStats godoc
//
//	@Summary		Order stats per category
//	@Tags			Reports
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		models.OrderStat
//	@Failure		500	{object}	map[string]interface{}
//	@Router			/order-stats [get]
func GetOrderStats(c *fiber.Ctx) error {
	stats, err := repository.GetOrderStats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "failed to compute order stats",
			"error":   err.Error(),
		})
	}
	if stats == nil {
		stats = []models.OrderStat{}
	}
	return c.JSON(stats)
}

// ExportOrderStats godoc
//
//	@Summary		Export order stats as Excel
//	@Tags			Reports
//	@Security		BearerAuth
//	@Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Success		200	{file}		file
//	@Failure		500	{object}	map[string]interface{}
//	@Router			/order-stats/export [get]
func ExportOrderStats(c *fiber.Ctx) error {
	stats, err := repository.GetOrderStats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "failed to compute order stats",
			"error":   err.Error(),
		})
	}

	f, err := buildOrderStatsWorkbook(stats)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "failed to build workbook",
			"error":   err.Error(),
		})
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "failed to write workbook",
			"error":   err.Error(),
		})
	}

	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", "attachment; filename=order_stats.xlsx")
	return c.Send(buf.Bytes())
}

const orderStatsSheet = "Order Stats"

func buildOrderStatsWorkbook(stats []models.OrderStat) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", orderStatsSheet); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}

	headers := []string{"Category", "Quantity", "Revenue"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(orderStatsSheet, cell, h)
	}
	f.SetCellStyle(orderStatsSheet, "A1", "C1", headerStyle)

	var totalQty int64
	var totalRevenue float64
	for i, s := range stats {
		row := i + 2
		f.SetCellValue(orderStatsSheet, fmt.Sprintf("A%d", row), s.Category)
		f.SetCellValue(orderStatsSheet, fmt.Sprintf("B%d", row), s.Quantity)
		f.SetCellValue(orderStatsSheet, fmt.Sprintf("C%d", row), s.Revenue)
		totalQty += s.Quantity
		totalRevenue += s.Revenue
	}

	summaryRow := len(stats) + 2
	f.SetCellValue(orderStatsSheet, fmt.Sprintf("A%d", summaryRow), "TOTAL")
	f.SetCellValue(orderStatsSheet, fmt.Sprintf("B%d", summaryRow), totalQty)
	f.SetCellValue(orderStatsSheet, fmt.Sprintf("C%d", summaryRow), totalRevenue)

	return f, nil
}
