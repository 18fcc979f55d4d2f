package request

type PaymentMethodRequest struct {
	Name        string `json:"name" binding:"required"`
	AccountName string `json:"accountName"`
	Number      string `json:"number"`
	QRURL       string `json:"qrUrl"`
	Active      bool   `json:"active"`
}
