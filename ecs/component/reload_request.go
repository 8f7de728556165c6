package component

// ReloadRequest is a marker component asking the reload system to re-read the
// config file. It is attached to a short-lived entity and removed once
// handled.
type ReloadRequest struct {
	Reason string
}

var ReloadRequestComponent = NewComponent[ReloadRequest]()
