package resolve

import (
	"bytes"
	"fmt"
	"net/url"

	"github.com/grafov/m3u8"
)

// BestVariant returns the URI of the highest-bandwidth variant in an HLS master
// playlist. I-frame playlists are ignored. Ties keep the first variant listed.
// Relative URIs are resolved against manifestURL.
func BestVariant(manifest []byte, manifestURL string) (string, error) {
	playlist, listType, err := m3u8.DecodeFrom(bytes.NewReader(manifest), false)
	if err != nil {
		return "", fmt.Errorf("decode manifest: %w", err)
	}
	if listType != m3u8.MASTER {
		return "", fmt.Errorf("%w: expected master playlist", ErrNoVariants)
	}
	master := playlist.(*m3u8.MasterPlaylist)

	var best *m3u8.Variant
	for _, v := range master.Variants {
		if v == nil || v.URI == "" || v.Iframe {
			continue
		}
		if best == nil || v.Bandwidth > best.Bandwidth {
			best = v
		}
	}
	if best == nil {
		return "", ErrNoVariants
	}
	return resolveReference(manifestURL, best.URI), nil
}

func resolveReference(base, ref string) string {
	b, err := url.Parse(base)
	if err != nil || !b.IsAbs() {
		return ref
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return b.ResolveReference(r).String()
}
