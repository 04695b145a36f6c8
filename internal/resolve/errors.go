package resolve

import "errors"

// Sentinel errors for the resolution pipeline.
var (
	// ErrNoPlayerConfig is returned when no inline script on the player page
	// holds an object with a playerURL key. The task produces no output.
	ErrNoPlayerConfig = errors.New("no embedded player config")

	// ErrNoDescriptorURL is returned when the player config lacks releaseUrls.htmldesktop.
	ErrNoDescriptorURL = errors.New("player config has no stream descriptor url")

	// ErrInvalidDescriptor is returned when the stream descriptor has no usable video element.
	ErrInvalidDescriptor = errors.New("invalid stream descriptor")

	// ErrNoVariants is returned when the manifest lists no variant playlists.
	ErrNoVariants = errors.New("manifest has no variant playlists")
)
