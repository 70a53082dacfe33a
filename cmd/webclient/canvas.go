//go:build js && wasm

package main

import (
	"image"
	"syscall/js"
)

// initCanvas sizes the canvas element and fills it with the given CSS color.
func initCanvas(width, height int, color string) {
	doc := js.Global().Get("document")
	canvas := doc.Call("getElementById", "surface")

	canvas.Set("width", width)
	canvas.Set("height", height)

	ctx := canvas.Call("getContext", "2d")
	ctx.Set("fillStyle", color)
	ctx.Call("fillRect", 0, 0, width, height)
}

// drawFrameToCanvas blits a full RGBA frame onto the canvas via ImageData.
func drawFrameToCanvas(frame *image.RGBA) {
	document := js.Global().Get("document")
	canvas := document.Call("getElementById", "surface")
	ctx := canvas.Call("getContext", "2d")

	// Copy the Go pixel buffer into a JS Uint8ClampedArray.
	jsData := js.Global().Get("Uint8ClampedArray").New(len(frame.Pix))
	js.CopyBytesToJS(jsData, frame.Pix)

	width := frame.Rect.Dx()
	height := frame.Rect.Dy()
	imageData := js.Global().Get("ImageData").New(jsData, width, height)
	ctx.Call("putImageData", imageData, 0, 0)
}
