package email

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/mail.v2"
)

type fakeSession struct {
	sent    int
	sendErr error
	closed  bool
}

func (f *fakeSession) Send(from string, to []string, msg io.WriterTo) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent++
	return nil
}

func (f *fakeSession) Close() error {
	f.closed = true
	return nil
}

func poolingClient(sessions ...*fakeSession) (*Client, *int) {
	dials := 0
	c := &Client{
		from: "noreply@timetrackly.example",
		dial: func() (mail.SendCloser, error) {
			s := sessions[dials]
			dials++
			return s, nil
		},
	}
	return c, &dials
}

func TestClient_SendReusesOpenedConnection(t *testing.T) {
	session := &fakeSession{}
	c, dials := poolingClient(session)

	require.NoError(t, c.Open())
	require.NoError(t, c.Send("a@example.com", "subject", "<p>body</p>", ""))
	require.NoError(t, c.Send("b@example.com", "subject", "<p>body</p>", ""))

	assert.Equal(t, 1, *dials)
	assert.Equal(t, 2, session.sent)
}

func TestClient_SendRedialsDroppedConnection(t *testing.T) {
	dropped := &fakeSession{sendErr: errors.New("connection reset")}
	fresh := &fakeSession{}
	c, dials := poolingClient(dropped, fresh)

	require.NoError(t, c.Open())
	require.NoError(t, c.Send("a@example.com", "subject", "<p>body</p>", ""))

	assert.Equal(t, 2, *dials)
	assert.True(t, dropped.closed)
	assert.Equal(t, 1, fresh.sent)
}

func TestClient_SendDialsLazilyWithoutOpen(t *testing.T) {
	session := &fakeSession{}
	c, dials := poolingClient(session)

	require.NoError(t, c.Send("a@example.com", "subject", "<p>body</p>", ""))

	assert.Equal(t, 1, *dials)
	assert.Equal(t, 1, session.sent)
}

func TestClient_CloseReleasesConnection(t *testing.T) {
	session := &fakeSession{}
	c, _ := poolingClient(session)

	require.NoError(t, c.Open())
	require.NoError(t, c.Close())
	assert.True(t, session.closed)

	// Close is idempotent and safe without an open session.
	require.NoError(t, c.Close())
}

func TestClient_DialErrorSurfaces(t *testing.T) {
	c := &Client{
		from: "noreply@timetrackly.example",
		dial: func() (mail.SendCloser, error) {
			return nil, errors.New("connection refused")
		},
	}

	assert.Error(t, c.Open())
	assert.Error(t, c.Send("a@example.com", "subject", "<p>body</p>", ""))
}
