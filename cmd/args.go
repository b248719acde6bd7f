package cmd

import (
	"fmt"

	"github.com/jfmyers9/spindle/pkg/webapi"
)

// resolveID accepts a bare ID, an open.spotify.com URL or a spotify: URI
// and returns the ID. Links of a different kind are rejected.
func resolveID(arg string, kind webapi.LinkKind) (string, error) {
	link, err := webapi.ParseLink(arg)
	if err != nil {
		// Assume it's an ID
		return arg, nil
	}
	if link.Kind != kind {
		return "", fmt.Errorf("expected a %s link, got a %s link", kind, link.Kind)
	}
	return link.ID, nil
}
