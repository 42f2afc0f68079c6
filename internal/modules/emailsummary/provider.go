package emailsummary

import "context"

// Message is one outbound email. From may be empty, in which case the
// provider fills its default sender.
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// Provider is a transactional email backend. Send returns the
// provider-assigned message id.
type Provider interface {
	Send(ctx context.Context, msg Message) (string, error)
}
