package dto

type CheckoutResponse struct {
	PaymentID   string `json:"payment_id"`
	OrderID     string `json:"order_id"`
	AmountIDR   int    `json:"amount_idr"`
	SnapToken   string `json:"snap_token"`
	RedirectURL string `json:"redirect_url"`
}
