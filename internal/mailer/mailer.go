package mailer

import (
	"errors"
	"fmt"
	"strings"

	gomail "gopkg.in/gomail.v2"
)

var (
	// ErrUnresolvedAddress means the sender identity or recipient address was
	// not resolvable at call time; no connection is attempted.
	ErrUnresolvedAddress = errors.New("mailer: sender or recipient unresolved")
	// ErrTransportUnavailable means the SMTP server could not be reached or
	// the session could not be established.
	ErrTransportUnavailable = errors.New("mailer: transport unavailable")
	// ErrRejected means the transport refused the message itself.
	ErrRejected = errors.New("mailer: message rejected")
)

// Dispatcher sends a formatted notification to the site owner. Delivery is a
// single synchronous attempt; retries, if any, belong to the transport.
type Dispatcher interface {
	Notify(to, subject, htmlBody string) error
}

// SMTP is the production dispatcher. It mirrors the mail setup the site has
// always used: host/port with implicit TLS on 465 and plain auth.
type SMTP struct {
	host     string
	port     int
	username string
	password string
	sender   string
}

func NewSMTP(host string, port int, username, password, sender string) *SMTP {
	return &SMTP{host: host, port: port, username: username, password: password, sender: sender}
}

func (s *SMTP) Notify(to, subject, htmlBody string) error {
	if strings.TrimSpace(s.sender) == "" || strings.TrimSpace(to) == "" || strings.TrimSpace(s.host) == "" {
		return ErrUnresolvedAddress
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.sender)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	d.SSL = s.port == 465

	sc, err := d.Dial()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransportUnavailable, err)
	}
	defer sc.Close()

	if err := gomail.Send(sc, m); err != nil {
		return fmt.Errorf("%w: %v", ErrRejected, err)
	}
	return nil
}
