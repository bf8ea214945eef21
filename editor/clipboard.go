package editor

// Clipboard provides editor-level clipboard integration.
//
// Errors must not crash the editor; write failures are dropped. Reading is
// asynchronous on some platforms and therefore happens outside the editor,
// through the input layer's paste queue.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}
