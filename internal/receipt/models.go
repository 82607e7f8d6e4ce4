// Package receipt holds the receipt document model and the pure functions
// over it: submission validation and reward-points scoring.
package receipt

// Item is one line entry within a receipt. Position in the owning receipt's
// item list is its only identity.
type Item struct {
	ShortDescription string `json:"shortDescription"`
	Price            string `json:"price"`
}

// Receipt is the input document describing a purchase. Price and total stay
// textual decimals end to end; arithmetic happens on exact decimals, never
// floats. A receipt is immutable once validated and stored.
type Receipt struct {
	Retailer     string `json:"retailer"`
	PurchaseDate string `json:"purchaseDate"`
	PurchaseTime string `json:"purchaseTime"`
	Items        []Item `json:"items"`
	Total        string `json:"total"`
}
