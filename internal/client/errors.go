package client

import "errors"

// ErrIncompleteApp means the app was built without services or a UI.
var ErrIncompleteApp = errors.New("client app needs services and a ui")
