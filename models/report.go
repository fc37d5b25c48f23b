package models

// OrderReport is the envelope returned for order date-range reports.
type OrderReport struct {
	Status  int     `json:"status"`
	OK      bool    `json:"ok"`
	Message string  `json:"message"`
	Data    []Order `json:"data"`
}

// AccountReport is the envelope returned for account date-range reports.
// Quantity always equals len(Data).
type AccountReport struct {
	Status   int    `json:"status"`
	OK       bool   `json:"ok"`
	Message  string `json:"message"`
	Quantity int    `json:"quantity"`
	Data     []User `json:"data"`
}
