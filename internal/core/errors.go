package core

import "errors"

// ErrNoImageLoaded is returned by every editor operation that needs an image
// before one has been loaded. The editor state is unchanged.
var ErrNoImageLoaded = errors.New("no image loaded")
