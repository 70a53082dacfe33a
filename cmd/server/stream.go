package main

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/coder/websocket"
)

// frameStream replays the cached frame cycle to every websocket client.
type frameStream struct {
	size     int
	frames   [][]byte // PNG-encoded, one per rotation step
	interval time.Duration
}

// streamHeader is the text message sent once after the websocket handshake,
// before the binary frames.
type streamHeader struct {
	Size       int `json:"size"`
	Frames     int `json:"frames"`
	IntervalMS int `json:"intervalMs"`
}

// handler upgrades the connection and streams frames until the client goes
// away. Clients never send anything after the handshake.
func (fs *frameStream) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"}, // TODO: tighten in prod
		})
		if err != nil {
			log.Println(err)
			return
		}
		defer c.Close(websocket.StatusNormalClosure, "")

		// CloseRead cancels the context when the peer disconnects.
		ctx := c.CloseRead(r.Context())
		log.Printf("client connected: %s", r.RemoteAddr)

		header, err := json.Marshal(streamHeader{
			Size:       fs.size,
			Frames:     len(fs.frames),
			IntervalMS: int(fs.interval / time.Millisecond),
		})
		if err != nil {
			log.Printf("marshal header: %v", err)
			return
		}
		if err := c.Write(ctx, websocket.MessageText, header); err != nil {
			log.Printf("write header: %v", err)
			return
		}

		ticker := time.NewTicker(fs.interval)
		defer ticker.Stop()

		for frame := 0; ; frame = (frame + 1) % len(fs.frames) {
			if err := c.Write(ctx, websocket.MessageBinary, fs.frames[frame]); err != nil {
				log.Printf("client %s gone: %v", r.RemoteAddr, err)
				return
			}
			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}
}
