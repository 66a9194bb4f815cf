package availability

import (
	"time"

	"github.com/shopspring/decimal"
)

type Price struct {
	Nights   int
	PerNight decimal.Decimal
	Total    decimal.Decimal
}

func Nights(checkIn, checkOut time.Time) (int, error) {
	nights := DaysBetween(checkIn, checkOut)
	if nights <= 0 {
		return 0, ErrInvalidDateRange
	}

	return nights, nil
}

func Quote(perNight decimal.Decimal, checkIn, checkOut time.Time) (Price, error) {
	nights, err := Nights(checkIn, checkOut)
	if err != nil {
		return Price{}, err
	}

	return Price{
		Nights:   nights,
		PerNight: perNight,
		Total:    perNight.Mul(decimal.NewFromInt(int64(nights))),
	}, nil
}
