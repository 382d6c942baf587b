package request

// SendRequest is the JSON body for sending one SMS.
type SendRequest struct {
	// To is the recipient number. Local Ghanaian numbers are normalized.
	To      string `json:"to"`
	Message string `json:"message"`
	// SenderID overrides the configured default sender when set.
	SenderID string `json:"sender_id,omitempty"`
}

// BulkRequest is the JSON body for sending the same SMS to many recipients.
type BulkRequest struct {
	Recipients []string `json:"recipients"`
	Message    string   `json:"message"`
	SenderID   string   `json:"sender_id,omitempty"`
}
