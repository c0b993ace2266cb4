package utils

func StrPtr(s string) *string {
	return &s
}

func FloatPtr(f float64) *float64 {
	return &f
}

func UintPtr(n uint) *uint {
	return &n
}
