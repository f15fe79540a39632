package convert

// ConvertRequest is the body of POST /api/convert.
type ConvertRequest struct {
	AmountCents int64  `json:"amount_cents" validate:"gte=0,lte=999999999999999"`
	From        string `json:"from" validate:"required,len=3"`
	To          string `json:"to" validate:"required,len=3"`
	Date        string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// ConvertResponse is the outcome of a conversion.
type ConvertResponse struct {
	Rate          float64 `json:"rate"`
	Result        float64 `json:"result"`
	DisplayRate   string  `json:"display_rate"`
	DisplayResult string  `json:"display_result"`
	Date          string  `json:"date"`
	Source        string  `json:"source"`
}

// AmountMaskRequest is the body of POST /api/mask/amount.
type AmountMaskRequest struct {
	Text  string `json:"text" validate:"max=256"`
	Paste bool   `json:"paste"`
}

// AmountMaskResponse is the canonical amount and its display text.
type AmountMaskResponse struct {
	Cents   int64  `json:"cents"`
	Display string `json:"display"`
}

// DateMaskRequest is the body of POST /api/mask/date.
type DateMaskRequest struct {
	Text string `json:"text" validate:"max=256"`
}

// DateMaskResponse reports the normalized date, if any.
type DateMaskResponse struct {
	Date    string `json:"date"`
	Changed bool   `json:"changed"`
}
