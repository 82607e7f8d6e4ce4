package receipt

import (
	"regexp"
	"time"

	"github.com/shopspring/decimal"
)

// Validation messages are part of the external contract; clients match on
// them verbatim.
const (
	MsgInvalidRetailer        = "Invalid Retailer name"
	MsgInvalidPurchaseTime    = "Invalid Purchase time"
	MsgInvalidPurchaseDate    = "Invalid Purchased Date"
	MsgEmptyItems             = "List of items are empty"
	MsgInvalidItemDescription = "Invalid Item Description"
	MsgInvalidItemPrice       = "Invalid Item Price"
	MsgInvalidTotal           = "Invalid Total"
)

// timePattern accepts 24-hour HH:MM, single-digit hours included.
var timePattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

const dateLayout = "2006-01-02"

// Validate checks a receipt against the submission rules and returns the
// failures in fixed rule order: retailer, purchase time, purchase date,
// items, total. Rules never short-circuit each other; an empty result means
// the receipt is admissible for storage.
//
// The item rule appends at most one description message and at most one
// price message per call, each for the first offending item in order.
func Validate(r Receipt) []string {
	var errs []string

	if r.Retailer == "" {
		errs = append(errs, MsgInvalidRetailer)
	}

	if !timePattern.MatchString(r.PurchaseTime) {
		errs = append(errs, MsgInvalidPurchaseTime)
	}

	if !validDate(r.PurchaseDate) {
		errs = append(errs, MsgInvalidPurchaseDate)
	}

	if len(r.Items) == 0 {
		errs = append(errs, MsgEmptyItems)
	} else {
		for _, item := range r.Items {
			if item.ShortDescription == "" {
				errs = append(errs, MsgInvalidItemDescription)
				break
			}
		}
		for _, item := range r.Items {
			if !validAmount(item.Price) {
				errs = append(errs, MsgInvalidItemPrice)
				break
			}
		}
	}

	if !validAmount(r.Total) {
		errs = append(errs, MsgInvalidTotal)
	}

	return errs
}

func validDate(s string) bool {
	if s == "" {
		return false
	}
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// validAmount requires a parseable, non-negative decimal so malformed
// numerics are rejected at submission instead of surfacing as scoring
// failures later.
func validAmount(s string) bool {
	if s == "" {
		return false
	}
	d, err := decimal.NewFromString(s)
	return err == nil && !d.IsNegative()
}
