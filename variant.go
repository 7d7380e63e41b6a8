package main

import "fmt"

// Variant selects how much of the game is built: each one adds to the
// previous.
type Variant string

const (
	VariantBlank  Variant = "blank"
	VariantSingle Variant = "single"
	VariantDual   Variant = "dual"
	VariantFull   Variant = "full"
)

var variants = []Variant{VariantBlank, VariantSingle, VariantDual, VariantFull}

func ParseVariant(s string) (Variant, error) {
	if s == "" {
		return VariantFull, nil
	}
	for _, v := range variants {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown variant %q (want one of %v)", s, variants)
}

func (v Variant) paddles() int {
	switch v {
	case VariantSingle:
		return 1
	case VariantDual, VariantFull:
		return 2
	default:
		return 0
	}
}

func (v Variant) hasBall() bool {
	return v == VariantFull
}
