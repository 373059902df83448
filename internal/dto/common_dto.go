package dto

// PaginatedResponse is one page of a list
type PaginatedResponse struct {
	Data    interface{} `json:"data"`
	Total   int64       `json:"total"`
	Page    int         `json:"page"`
	PerPage int         `json:"per_page"`
}

// MessageResponse is a plain informational body
type MessageResponse struct {
	Message string `json:"message"`
}
