// Command webclient is the wasm viewer served by cmd/server. It opens a
// websocket back to the server, reads the stream header, then blits each
// PNG-encoded rotation frame to the canvas as it arrives.
//
// Build with GOOS=js GOARCH=wasm and place main.wasm next to index.html.

//go:build js && wasm

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log"
	"syscall/js"
)

type streamHeader struct {
	Size       int `json:"size"`
	Frames     int `json:"frames"`
	IntervalMS int `json:"intervalMs"`
}

func main() {
	logScreen("webclient running")

	// Derive the websocket address from the page location.
	loc := js.Global().Get("window").Get("location")
	host := loc.Get("host").String()
	proto := "ws"
	if loc.Get("protocol").String() == "https:" {
		proto = "wss"
	}
	wsURL := proto + "://" + host + "/ws"

	logScreen("connecting to " + wsURL)
	msgs := newWSMessages(js.Global().Get("WebSocket").New(wsURL))

	if err := frameLoop(msgs); err != nil {
		logScreen(fmt.Sprintf("frame loop: %v", err))
		log.Fatalf("frame loop: %v", err)
	}
}

// frameLoop consumes the message stream: one JSON header, then binary frames
// forever. The server paces the stream, so the client just draws what it gets.
func frameLoop(msgs *wsMessages) error {
	headerRaw, err := msgs.next()
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}
	var header streamHeader
	if err := json.Unmarshal(headerRaw, &header); err != nil {
		return fmt.Errorf("decode header: %w", err)
	}

	initCanvas(header.Size, header.Size, "#101020")
	hudSetTotalFrames(header.Frames)
	logScreen(fmt.Sprintf("streaming %d frames of %dx%d every %dms",
		header.Frames, header.Size, header.Size, header.IntervalMS))

	for frame := 0; ; frame = (frame + 1) % header.Frames {
		data, err := msgs.next()
		if err != nil {
			return fmt.Errorf("read frame: %w", err)
		}
		img, err := decodeFrame(data)
		if err != nil {
			return fmt.Errorf("frame %d: %w", frame, err)
		}
		drawFrameToCanvas(img)
		hudSetFrame(frame + 1)
	}
}

// decodeFrame turns PNG bytes into RGBA pixels for the canvas.
func decodeFrame(data []byte) (*image.RGBA, error) {
	src, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}
	if rgba, ok := src.(*image.RGBA); ok {
		return rgba, nil
	}
	rgba := image.NewRGBA(src.Bounds())
	draw.Draw(rgba, rgba.Bounds(), src, src.Bounds().Min, draw.Src)
	return rgba, nil
}

// logScreen appends a message to the log element in the DOM.
func logScreen(msg string) {
	doc := js.Global().Get("document")
	logElem := doc.Call("getElementById", "log")
	logElem.Set("textContent", logElem.Get("textContent").String()+msg+"\n")
}

func hudSetFrame(frame int) {
	js.Global().Get("document").Call("getElementById", "frame").Set("textContent", frame)
}

func hudSetTotalFrames(total int) {
	js.Global().Get("document").Call("getElementById", "framesTotal").Set("textContent", total)
}
