package component

// CaptureRequest asks the capture system to export the next rendered frame.
type CaptureRequest struct {
	Name        string
	ToFile      bool
	ToClipboard bool
}

var CaptureRequestComponent = NewComponent[CaptureRequest]()
