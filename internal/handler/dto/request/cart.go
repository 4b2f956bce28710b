package request

type SetCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1,max=1000"`
}
