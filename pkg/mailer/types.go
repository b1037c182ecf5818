package mailer

// Config holds SMTP connection settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Message is a plain-text email.
type Message struct {
	To      string
	Subject string
	Body    string
}
