package controllers

type itemRequest struct {
	Profit int `json:"profit" validate:"gte=0"`
	W1     int `json:"w1" validate:"oneof=0 1"`
	W2     int `json:"w2" validate:"oneof=0 1"`
}

type frontierRequest struct {
	Items     []itemRequest `json:"items" validate:"dive"`
	Classify  string        `json:"classify" validate:"omitempty,oneof=strict literal"`
	Cut       string        `json:"cut" validate:"omitempty,oneof=none zone strict"`
	MaxPoints int           `json:"max_points" validate:"gte=0"`
}

type pointResponse struct {
	Row       int    `json:"row"`
	Col       int    `json:"col"`
	Profit    int    `json:"profit"`
	Selection string `json:"selection"`
}

type frontierResponse struct {
	NumRight    int             `json:"num_right"`
	NumUp       int             `json:"num_up"`
	NumDiagonal int             `json:"num_diagonal"`
	Emitted     int             `json:"emitted"`
	Truncated   bool            `json:"truncated"`
	Points      []pointResponse `json:"points"`
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
