package boardservice

import "errors"

var ErrInvalidSelectionSize = errors.New("price is defined only for 5 to 8 numbers")

var priceTable = map[int]float64{
	5: 20,
	6: 40,
	7: 80,
	8: 160,
}

// Price returns the cost of a board with n selected numbers.
func Price(n int) (float64, error) {
	price, ok := priceTable[n]
	if !ok {
		return 0, ErrInvalidSelectionSize
	}
	return price, nil
}
