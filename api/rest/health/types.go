package health

// body of GET /health; field order is part of the contract
type Response struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// body of GET /
type RootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}
