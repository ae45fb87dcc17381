package client

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"othello/communication"

	"github.com/gorilla/websocket"
)

// WSCommunicator carries JSON envelopes over a websocket connection.
type WSCommunicator struct {
	conn  *websocket.Conn
	mu    sync.Mutex // serializes writes
	close func() bool
}

var _ communication.Communicator = (*WSCommunicator)(nil)

// Dial connects to the game server. Cancelling ctx closes the connection.
func Dial(ctx context.Context, url string) (*WSCommunicator, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}
	return newWSCommunicator(ctx, conn), nil
}

func newWSCommunicator(ctx context.Context, conn *websocket.Conn) *WSCommunicator {
	return &WSCommunicator{
		conn:  conn,
		close: context.AfterFunc(ctx, func() { conn.Close() }),
	}
}

func (c *WSCommunicator) Send(ctx context.Context, event string, data any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", event, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.WriteJSON(communication.Envelope{Event: event, Data: raw}); err != nil {
		return fmt.Errorf("send %s event: %w", event, err)
	}
	return nil
}

// Receive blocks until the next envelope arrives or the connection closes.
func (c *WSCommunicator) Receive(ctx context.Context) (communication.Envelope, error) {
	var env communication.Envelope
	if err := c.conn.ReadJSON(&env); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return env, ctxErr
		}
		return env, fmt.Errorf("receive event: %w", err)
	}
	return env, nil
}

// Close sends a close frame and closes the connection. It is a no-op once
// the context has been cancelled or Close has already run.
func (c *WSCommunicator) Close() error {
	if !c.close() {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return c.conn.Close()
}
