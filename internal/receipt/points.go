package receipt

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

var (
	quarter = decimal.RequireFromString("0.25")
	fifth   = decimal.RequireFromString("0.2")
)

// Points computes the reward score for an already-validated receipt:
//
//  1. +1 per letter-or-digit rune in the retailer name.
//  2. +50 if the total is a round amount with no cents.
//  3. +25 if the total is a multiple of 0.25.
//  4. +5 for every two items on the receipt.
//  5. Per item with a trimmed description length divisible by 3,
//     +ceil(price * 0.2).
//  6. +6 if the day of the purchase date is odd.
//  7. +10 if the purchase hour is in [14, 16).
//
// All terms are additive, so the result is deterministic for a given
// receipt. Callers guarantee validity; a field that fails to parse here
// means bad data slipped past validation, which is reported as an error
// rather than silently scored as zero.
func Points(r Receipt) (int64, error) {
	var points int64

	for _, c := range r.Retailer {
		if unicode.IsLetter(c) || unicode.IsDigit(c) {
			points++
		}
	}

	total, err := decimal.NewFromString(r.Total)
	if err != nil {
		return 0, fmt.Errorf("parse total %q: %w", r.Total, err)
	}
	if total.IsInteger() {
		points += 50
	}
	if total.Mod(quarter).IsZero() {
		points += 25
	}

	points += int64(len(r.Items)/2) * 5

	for _, item := range r.Items {
		if utf8.RuneCountInString(strings.TrimSpace(item.ShortDescription))%3 != 0 {
			continue
		}
		price, err := decimal.NewFromString(item.Price)
		if err != nil {
			return 0, fmt.Errorf("parse item price %q: %w", item.Price, err)
		}
		points += price.Mul(fifth).Ceil().IntPart()
	}

	date, err := time.Parse(dateLayout, r.PurchaseDate)
	if err != nil {
		return 0, fmt.Errorf("parse purchase date %q: %w", r.PurchaseDate, err)
	}
	if date.Day()%2 != 0 {
		points += 6
	}

	hour, err := strconv.Atoi(strings.SplitN(r.PurchaseTime, ":", 2)[0])
	if err != nil {
		return 0, fmt.Errorf("parse purchase time %q: %w", r.PurchaseTime, err)
	}
	if hour >= 14 && hour < 16 {
		points += 10
	}

	return points, nil
}
