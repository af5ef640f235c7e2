package templates

import (
	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/types"
)

// defaultLabels are the labels a new owner starts with.
var defaultLabels = map[types.Category][]string{
	types.Income: {
		"เงินเดือน",
		"เงินปันผล, โบนัส",
		"รายได้เสริม",
	},
	types.Expense: {
		"ค่าผ่อนบ้าน",
		"ค่าผ่อนรถ",
		"ค่าผ่อนสหกรณ์",
		"ค่าบัตรเครดิตสินเชื่อเงินสด",
		"ค่าผ่อนสินค้า",
		"ค่าไฟฟ้า",
		"ค่าอินเตอร์เน็ตบ้าน",
		"ค่าโทรศัพท์มือถือ",
		"จ่ายลูกไปโรงเรียน",
		"ค่าน้ำมัน",
	},
	types.Savings: {
		"เงินฝาก",
		"เงินลงทุนหุ้นระยะยาว",
		"เงินลงทุนหุ้น DCA",
	},
}

// Defaults returns the default items of a category with empty
// amounts and notes.
func Defaults(category types.Category) []models.Item {
	labels := defaultLabels[category]

	items := make([]models.Item, 0, len(labels))
	for _, label := range labels {
		items = append(items, models.Item{Label: label})
	}

	return items
}
