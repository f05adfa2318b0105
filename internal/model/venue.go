package model

// Venue is a candidate location with a relative weight, as listed in the
// venues CSV file.
type Venue struct {
	Name   string  `csv:"name"`
	Weight float64 `csv:"weight"`
}
