package email

import (
	"fmt"
	"sync"
	"time"

	"gopkg.in/mail.v2"
)

// Client sends notification emails over SMTP through a pooled connection.
// Open establishes the session, Send reuses it, and Close releases it at
// shutdown. SMTP servers drop idle sessions, so a send failure on a reused
// connection triggers one redial before the error surfaces.
type Client struct {
	from string
	dial func() (mail.SendCloser, error)

	mu sync.Mutex
	sc mail.SendCloser
}

// NewClient creates an SMTP client. timeout bounds the connect/greeting
// phase of every dial; zero falls back to 10 seconds.
func NewClient(smtpHost string, smtpPort int, username, password, from string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	dialer := mail.NewDialer(smtpHost, smtpPort, username, password)
	dialer.Timeout = timeout

	return &Client{
		from: from,
		dial: dialer.Dial,
	}
}

// Open dials the SMTP server and keeps the connection for subsequent sends.
// It is meant to be called once at startup so a misconfigured transport
// fails fast instead of on the first delivery.
func (c *Client) Open() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sc != nil {
		return nil
	}

	sc, err := c.dial()
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}

	c.sc = sc
	return nil
}

// Close terminates the pooled connection. Safe to call without a prior Open.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sc == nil {
		return nil
	}

	err := c.sc.Close()
	c.sc = nil
	return err
}

// Send delivers one message over the pooled connection, dialing lazily if
// none is open. html is the message body; a non-empty text is attached as
// the plain-text part with html as the alternative. Failures are returned,
// never swallowed.
func (c *Client) Send(to, subject, html, text string) error {
	m := mail.NewMessage()

	m.SetHeader("From", c.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)

	if text != "" {
		m.SetBody("text/plain", text)
		if html != "" {
			m.AddAlternative("text/html", html)
		}
	} else {
		m.SetBody("text/html", html)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	reused := c.sc != nil
	if !reused {
		sc, err := c.dial()
		if err != nil {
			return fmt.Errorf("smtp dial: %w", err)
		}
		c.sc = sc
	}

	err := mail.Send(c.sc, m)
	if err != nil && reused {
		// The pooled session may have been dropped server-side while idle.
		_ = c.sc.Close()
		c.sc = nil

		sc, derr := c.dial()
		if derr != nil {
			return fmt.Errorf("send email to %s: %w", to, err)
		}
		c.sc = sc

		err = mail.Send(c.sc, m)
	}
	if err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}

	return nil
}
