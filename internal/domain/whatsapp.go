package domain

// WhatsApp connection states as shown in the panel. LOADING is the
// initial client-side state; the BFF only ever reports the others.
const (
	WhatsAppLoading      = "LOADING"
	WhatsAppNotCreated   = "NOT_CREATED"
	WhatsAppQRPending    = "QR_PENDING"
	WhatsAppConnected    = "CONNECTED"
	WhatsAppDisconnected = "DISCONNECTED"
	WhatsAppError        = "ERROR"
)

// WhatsAppStatus is the panel snapshot for one tenant. QR is a base64
// PNG, present only while pairing is pending.
type WhatsAppStatus struct {
	Status       string `json:"status"`
	QR           string `json:"qr,omitempty"`
	InstanceName string `json:"instance_name,omitempty"`
}

// WhatsAppSession is a messaging session record from the core API.
type WhatsAppSession struct {
	ID           int64  `json:"id"`
	InstanceName string `json:"instance_name"`
	Phone        string `json:"phone,omitempty"`
	State        string `json:"state"`
	CreatedAt    string `json:"created_at,omitempty"`
}
