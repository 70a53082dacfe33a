//go:build js && wasm

package main

import (
	"io"
	"sync"
	"syscall/js"
)

// wsMessages exposes a JS WebSocket as a channel of whole messages. The
// server's stream is message-framed, so no byte-level buffering is needed.
type wsMessages struct {
	ws js.Value

	mu     sync.Mutex // js onclose can preempt other calls
	closed bool
	err    error

	msgCh  chan []byte
	openCh chan struct{} // closed once connected
}

func newWSMessages(ws js.Value) *wsMessages {
	c := &wsMessages{
		ws:     ws,
		msgCh:  make(chan []byte, 8),
		openCh: make(chan struct{}),
	}

	ws.Set("binaryType", "arraybuffer")

	ws.Set("onopen", js.FuncOf(func(js.Value, []js.Value) any {
		close(c.openCh)
		return nil
	}))

	ws.Set("onerror", js.FuncOf(func(js.Value, []js.Value) any {
		c.mu.Lock()
		c.err = io.ErrUnexpectedEOF
		c.mu.Unlock()
		select {
		case <-c.openCh:
		default:
			close(c.openCh)
		}
		return nil
	}))

	ws.Set("onmessage", js.FuncOf(func(this js.Value, args []js.Value) any {
		jsDataToBytes(args[0].Get("data"), func(b []byte) {
			c.msgCh <- b
		})
		return nil
	}))

	ws.Set("onclose", js.FuncOf(func(js.Value, []js.Value) any {
		logScreen("ws onclose received")
		c.mu.Lock()
		c.closed = true
		close(c.msgCh)
		c.mu.Unlock()
		return nil
	}))

	return c
}

// next blocks until the next complete message arrives.
func (c *wsMessages) next() ([]byte, error) {
	<-c.openCh

	c.mu.Lock()
	err := c.err
	c.mu.Unlock()
	if err != nil {
		return nil, err
	}

	msg, ok := <-c.msgCh
	if !ok {
		return nil, io.EOF
	}
	return msg, nil
}

// jsDataToBytes copies a JS websocket payload into a Go byte slice. Text
// messages arrive as strings, binary ones as ArrayBuffer (we set binaryType)
// or typed arrays; Blob delivery is async.
func jsDataToBytes(data js.Value, deliver func([]byte)) {
	if data.Type() == js.TypeString {
		deliver([]byte(data.String()))
		return
	}

	if data.InstanceOf(js.Global().Get("Uint8Array")) ||
		data.InstanceOf(js.Global().Get("Uint8ClampedArray")) {

		b := make([]byte, data.Get("byteLength").Int())
		js.CopyBytesToGo(b, data)
		deliver(b)
		return
	}

	if data.InstanceOf(js.Global().Get("ArrayBuffer")) {
		u8 := js.Global().Get("Uint8Array").New(data)
		b := make([]byte, u8.Get("byteLength").Int())
		js.CopyBytesToGo(b, u8)
		deliver(b)
		return
	}

	if data.InstanceOf(js.Global().Get("Blob")) {
		promise := data.Call("arrayBuffer")
		then := js.FuncOf(func(this js.Value, args []js.Value) any {
			u8 := js.Global().Get("Uint8Array").New(args[0])
			b := make([]byte, u8.Get("byteLength").Int())
			js.CopyBytesToGo(b, u8)
			deliver(b)
			return nil
		})
		promise.Call("then", then)
		return
	}

	panic("unsupported JS binary type")
}
