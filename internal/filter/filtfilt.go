package filter

import (
	"gonum.org/v1/gonum/floats"
)

// ForwardBackward applies (b, a) as a zero-phase, anti-causal filter:
// the signal is filtered forward, reversed, filtered again and reversed
// back. The second pass cancels the phase delay introduced by the first,
// at the cost of requiring the full signal in advance. Both passes start
// from zero state; no edge extension is performed.
func ForwardBackward(b, a, x []float64) ([]float64, error) {
	y, err := TransferFunc(b, a, x)
	if err != nil {
		return nil, err
	}

	floats.Reverse(y)
	y, err = TransferFunc(b, a, y)
	if err != nil {
		return nil, err
	}
	floats.Reverse(y)
	return y, nil
}

// ForwardBackwardC is ForwardBackward for complex coefficient sets.
func ForwardBackwardC(b, a []complex128, x []float64) ([]complex128, error) {
	bn, an, err := normalizeTFC(b, a)
	if err != nil {
		return nil, err
	}

	y, err := TransferFuncC(b, a, x)
	if err != nil {
		return nil, err
	}

	reverseC(y)
	y = transferFuncCSeq(bn, an, y)
	reverseC(y)
	return y, nil
}

func reverseC(s []complex128) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
