package controllers

import (
	"testing"

	"github.com/MdAsraful56/FoodHut-Server/models"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func TestBuildOrderStatsWorkbook(t *testing.T) {
	stats := []models.OrderStat{
		{Category: "Burger", Quantity: 1, Revenue: 9.5},
		{Category: "Pizza", Quantity: 2, Revenue: 25},
	}

	f, err := buildOrderStatsWorkbook(stats)
	assert.NoError(t, err)

	buf, err := f.WriteToBuffer()
	assert.NoError(t, err)

	// Read the workbook back and check the cells survived the round trip.
	read, err := excelize.OpenReader(buf)
	assert.NoError(t, err)
	defer read.Close()

	get := func(cell string) string {
		v, err := read.GetCellValue(orderStatsSheet, cell)
		assert.NoError(t, err)
		return v
	}

	assert.Equal(t, "Category", get("A1"))
	assert.Equal(t, "Burger", get("A2"))
	assert.Equal(t, "1", get("B2"))
	assert.Equal(t, "9.5", get("C2"))
	assert.Equal(t, "Pizza", get("A3"))
	assert.Equal(t, "2", get("B3"))
	assert.Equal(t, "25", get("C3"))
	assert.Equal(t, "TOTAL", get("A4"))
	assert.Equal(t, "3", get("B4"))
	assert.Equal(t, "34.5", get("C4"))
}

func TestBuildOrderStatsWorkbookEmpty(t *testing.T) {
	f, err := buildOrderStatsWorkbook(nil)
	assert.NoError(t, err)

	v, err := f.GetCellValue(orderStatsSheet, "A2")
	assert.NoError(t, err)
	assert.Equal(t, "TOTAL", v)
}
