package models

// RawDataset holds the three source tables as loaded.
type RawDataset struct {
	Customers []RawRecord
	Books     []RawRecord
	Orders    []RawRecord
}

// Dataset holds the normalized tables. It is not mutated after normalization.
type Dataset struct {
	Customers []Customer `json:"customers"`
	Books     []Book     `json:"books"`
	Orders    []Order    `json:"orders"`
}
