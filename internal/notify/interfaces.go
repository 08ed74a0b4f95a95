package notify

type Mailer interface {
	Send(msg *Message) error
}
