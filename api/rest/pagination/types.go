package pagination

// holds pagination parameters from request
type Params struct {
	Limit  int
	Offset int
}

// holds pagination metadata for response
type Meta struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"has_more"`
}

// raw query parameters as bound by gin
type Query struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}
