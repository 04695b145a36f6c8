package resolve

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// PlayerConfig is the JSON object embedded in the player page.
type PlayerConfig struct {
	PlayerURL   string `json:"playerURL"`
	ReleaseURLs struct {
		HTMLDesktop string `json:"htmldesktop"`
	} `json:"releaseUrls"`
}

// DescriptorURL returns the scheme-normalized stream descriptor URL.
func (c *PlayerConfig) DescriptorURL() (string, error) {
	if c.ReleaseURLs.HTMLDesktop == "" {
		return "", ErrNoDescriptorURL
	}
	return NormalizeURL(c.ReleaseURLs.HTMLDesktop), nil
}

// HeadScripts returns the text of every inline script directly under <head>, in document order.
func HeadScripts(page []byte) ([]string, error) {
	doc, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parse player page: %w", err)
	}

	head := findElement(doc, atom.Head)
	if head == nil {
		return nil, nil
	}

	var scripts []string
	for n := head.FirstChild; n != nil; n = n.NextSibling {
		if n.Type != html.ElementNode || n.DataAtom != atom.Script {
			continue
		}
		var sb strings.Builder
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				sb.WriteString(c.Data)
			}
		}
		if sb.Len() > 0 {
			scripts = append(scripts, sb.String())
		}
	}
	return scripts, nil
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

// FindPlayerConfig returns the first JSON object holding a playerURL key
// across all head scripts of the page.
func FindPlayerConfig(page []byte) (*PlayerConfig, error) {
	scripts, err := HeadScripts(page)
	if err != nil {
		return nil, err
	}
	for _, script := range scripts {
		var found *PlayerConfig
		var decodeErr error
		scanObjects(script, func(obj map[string]json.RawMessage) bool {
			if _, ok := obj["playerURL"]; !ok {
				return false
			}
			found = &PlayerConfig{}
			decodeErr = remarshal(obj, found)
			return true
		})
		if decodeErr != nil {
			return nil, fmt.Errorf("decode player config: %w", decodeErr)
		}
		if found != nil {
			return found, nil
		}
	}
	return nil, ErrNoPlayerConfig
}

// scanObjects calls fn for each top-level JSON object embedded in text until fn
// returns true. Text between objects (JavaScript, markup) is skipped.
func scanObjects(text string, fn func(map[string]json.RawMessage) bool) {
	for i := 0; i < len(text); {
		j := strings.IndexByte(text[i:], '{')
		if j < 0 {
			return
		}
		start := i + j

		dec := json.NewDecoder(strings.NewReader(text[start:]))
		var obj map[string]json.RawMessage
		if err := dec.Decode(&obj); err != nil {
			i = start + 1
			continue
		}
		if fn(obj) {
			return
		}
		i = start + int(dec.InputOffset())
	}
}

func remarshal(obj map[string]json.RawMessage, v any) error {
	data, err := json.Marshal(obj)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
