package types

// CheckoutRequest is the payload the site posts to start a payment.
// Amount is in kobo (100 kobo = ₦1); no conversion happens server-side.
type CheckoutRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Amount      int64  `json:"amount" validate:"required,gt=0"`
	PackageName string `json:"packageName" validate:"required"`
	CallbackURL string `json:"callbackUrl,omitempty"`
}

// CheckoutResponse relays the gateway's hosted-checkout session to the
// client. All three fields come back from Paystack untransformed;
// Reference is the join key for the matching webhook event later.
type CheckoutResponse struct {
	Success          bool   `json:"success"`
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type InitializeTransactionRequest struct {
	Email       string              `json:"email"`
	Amount      int64               `json:"amount"`
	Currency    string              `json:"currency"`
	CallbackURL string              `json:"callback_url"`
	Metadata    TransactionMetadata `json:"metadata"`
}

// TransactionMetadata carries the package name both as a plain field
// and as a custom field so Paystack shows it on the hosted page.
type TransactionMetadata struct {
	PackageName  string        `json:"package_name"`
	CustomFields []CustomField `json:"custom_fields"`
}

type CustomField struct {
	DisplayName  string `json:"display_name"`
	VariableName string `json:"variable_name"`
	Value        string `json:"value"`
}

type InitializeTransactionResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	} `json:"data"`
}
