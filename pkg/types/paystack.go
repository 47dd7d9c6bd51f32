package types

// Paystack event names this service dispatches on. The gateway emits
// an open-ended set; anything else is classified as unrecognized.
const (
	EventChargeSuccess   = "charge.success"
	EventChargeFailed    = "charge.failed"
	EventTransferSuccess = "transfer.success"
	EventTransferFailed  = "transfer.failed"
)

type EventKind int

const (
	KindUnrecognized EventKind = iota
	KindChargeSuccess
	KindChargeFailed
	KindTransferSuccess
	KindTransferFailed
)

type WebhookEvent struct {
	Event string      `json:"event"`
	Data  WebhookData `json:"data"`
}

// Kind classifies the event name into the closed set the dispatcher
// branches on. Unknown names map to KindUnrecognized instead of
// failing, so new gateway event types are tolerated.
func (e *WebhookEvent) Kind() EventKind {
	switch e.Event {
	case EventChargeSuccess:
		return KindChargeSuccess
	case EventChargeFailed:
		return KindChargeFailed
	case EventTransferSuccess:
		return KindTransferSuccess
	case EventTransferFailed:
		return KindTransferFailed
	default:
		return KindUnrecognized
	}
}

type WebhookData struct {
	ID        int64            `json:"id"`
	Reference string           `json:"reference"`
	Amount    int64            `json:"amount"`
	Currency  string           `json:"currency"`
	Status    string           `json:"status"`
	Customer  PaystackCustomer `json:"customer"`
	Metadata  EventMetadata    `json:"metadata"`
	PaidAt    string           `json:"paid_at"`
	Channel   string           `json:"channel"`
}

// AmountMajor converts the kobo amount to naira for human-facing
// logging. Payment amounts stay in kobo everywhere else.
func (d *WebhookData) AmountMajor() int64 {
	return d.Amount / 100
}

type PaystackCustomer struct {
	Email        string `json:"email"`
	CustomerCode string `json:"customer_code"`
}

type EventMetadata struct {
	PackageName  string        `json:"package_name,omitempty"`
	CustomFields []CustomField `json:"custom_fields,omitempty"`
}
