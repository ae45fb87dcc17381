package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"othello/communication"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

// newServer starts a websocket server that hands every received envelope
// to received and answers with reply.
func newServer(t *testing.T, received chan<- communication.Envelope, reply communication.Envelope) string {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for {
			var env communication.Envelope
			if err := conn.ReadJSON(&env); err != nil {
				return
			}
			received <- env
			if err := conn.WriteJSON(reply); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestWSCommunicator(t *testing.T) {
	received := make(chan communication.Envelope, 1)
	url := newServer(t, received, communication.Envelope{Event: communication.OkSigninEvent})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c, err := Dial(ctx, url)
	require.NoError(t, err)
	defer c.Close()

	signin := communication.Signin{UserName: "tester", TournamentID: 12, UserRole: "player"}
	require.NoError(t, c.Send(ctx, communication.SigninEvent, signin))

	sent := <-received
	require.Equal(t, communication.SigninEvent, sent.Event)
	var got communication.Signin
	require.NoError(t, sent.Decode(&got))
	require.Equal(t, signin, got)

	env, err := c.Receive(ctx)
	require.NoError(t, err)
	require.Equal(t, communication.OkSigninEvent, env.Event)
}

func TestWSCommunicatorCancel(t *testing.T) {
	received := make(chan communication.Envelope, 1)
	url := newServer(t, received, communication.Envelope{Event: communication.OkSigninEvent})

	ctx, cancel := context.WithCancel(context.Background())
	c, err := Dial(ctx, url)
	require.NoError(t, err)

	cancel()
	_, err = c.Receive(ctx)
	require.ErrorIs(t, err, context.Canceled, "Receive should stop once the context is cancelled")
	require.ErrorIs(t, c.Send(ctx, communication.SigninEvent, communication.Signin{}), context.Canceled)
	require.NoError(t, c.Close(), "Close after cancel should not touch the closed connection")
}

func TestWSCommunicatorCloseTwice(t *testing.T) {
	received := make(chan communication.Envelope, 1)
	url := newServer(t, received, communication.Envelope{Event: communication.OkSigninEvent})

	c, err := Dial(context.Background(), url)
	require.NoError(t, err)
	require.NoError(t, c.Close())
	require.NoError(t, c.Close(), "Second Close should be a no-op")
}

func TestDialError(t *testing.T) {
	_, err := Dial(context.Background(), "ws://127.0.0.1:1/ws")
	require.Error(t, err)
}
