package game

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"sync/atomic"

	"codeberg.org/tslocum/bgammon"
	"github.com/coder/websocket"
)

var dialOptions = &websocket.DialOptions{
	CompressionMode: websocket.CompressionContextTakeover,
}

// Client is a connection to a bgammon server.
type Client struct {
	Address  string
	Username string
	Password string
	Events   chan interface{}
	Out      chan []byte

	conn      *websocket.Conn
	connected atomic.Bool
	debug     int
}

func NewClient(address string, username string, password string, debug int) *Client {
	const bufferSize = 10
	return &Client{
		Address:  address,
		Username: username,
		Password: password,
		Events:   make(chan interface{}, bufferSize),
		Out:      make(chan []byte, bufferSize),
		debug:    debug,
	}
}

// loginCommand logs in as a guest unless both a username and a password
// are set. The lj variant makes the server reply with JSON events.
func (c *Client) loginCommand() []byte {
	loginInfo := c.Username
	if c.Username != "" && c.Password != "" {
		loginInfo = fmt.Sprintf("%s %s", c.Username, c.Password)
	}
	return []byte(fmt.Sprintf("lj %s", loginInfo))
}

// Connect dials the server, logs in and handles messages until ctx is done
// or the connection fails. Events are closed when Connect returns.
func (c *Client) Connect(ctx context.Context) error {
	defer close(c.Events)

	conn, _, err := websocket.Dial(ctx, c.Address, dialOptions)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", c.Address, err)
	}
	defer conn.CloseNow()
	conn.SetReadLimit(-1)
	c.conn = conn
	c.connected.Store(true)
	defer c.connected.Store(false)

	c.Out <- c.loginCommand()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go c.handleWrite(ctx)
	return c.handleRead(ctx)
}

func (c *Client) handleWrite(ctx context.Context) {
	for {
		var buf []byte
		select {
		case <-ctx.Done():
			return
		case buf = <-c.Out:
		}

		for _, line := range bytes.Split(buf, []byte("\n")) {
			if len(line) == 0 {
				continue
			}
			if err := c.conn.Write(ctx, websocket.MessageText, line); err != nil {
				log.Printf("warning: failed to write message: %s", err)
				return
			}
			if c.debug > 0 {
				log.Printf("-> %s", line)
			}
		}
	}
}

func (c *Client) handleRead(ctx context.Context) error {
	for {
		_, msg, err := c.conn.Read(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("failed to read message: %w", err)
		}
		if c.debug > 1 {
			log.Printf("<- %s", msg)
		}

		ev, err := bgammon.DecodeEvent(msg)
		if err != nil {
			log.Printf("warning: failed to decode event: %s: %s", err, msg)
			continue
		}
		select {
		case c.Events <- ev:
		case <-ctx.Done():
			return nil
		}
	}
}

// Send queues a command for the server.
func (c *Client) Send(command string) {
	c.Out <- []byte(command)
}

func (c *Client) Connected() bool {
	return c.connected.Load()
}
