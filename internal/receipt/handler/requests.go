package handler

import "tally/internal/receipt"

// ProcessReceiptRequest mirrors the receipt JSON document as submitted.
// Prices and totals arrive as strings; validation happens in the domain
// layer, not here.
type ProcessReceiptRequest struct {
	Retailer     string        `json:"retailer"`
	PurchaseDate string        `json:"purchaseDate"`
	PurchaseTime string        `json:"purchaseTime"`
	Items        []ItemPayload `json:"items"`
	Total        string        `json:"total"`
}

// ItemPayload is one item line in the submitted document.
type ItemPayload struct {
	ShortDescription string `json:"shortDescription"`
	Price            string `json:"price"`
}

// ToReceipt converts the transport payload into the domain model.
func (r ProcessReceiptRequest) ToReceipt() receipt.Receipt {
	items := make([]receipt.Item, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, receipt.Item{
			ShortDescription: item.ShortDescription,
			Price:            item.Price,
		})
	}
	return receipt.Receipt{
		Retailer:     r.Retailer,
		PurchaseDate: r.PurchaseDate,
		PurchaseTime: r.PurchaseTime,
		Items:        items,
		Total:        r.Total,
	}
}
