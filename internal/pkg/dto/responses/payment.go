package responses

type PaymentIntent struct {
	ClientSecret string `json:"clientSecret"`
}
