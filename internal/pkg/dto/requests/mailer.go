package requests

// MailJob is the payload queued for the mail consumer.
type MailJob struct {
	Type           string            `json:"type"`
	To             string            `json:"to"`
	Subject        string            `json:"subject"`
	Body           string            `json:"body"`
	ObjectKey      string            `json:"object_key,omitempty"`
	AttachmentName string            `json:"attachment_name,omitempty"`
	Metadata       map[string]string `json:"metadata,omitempty"`
}
