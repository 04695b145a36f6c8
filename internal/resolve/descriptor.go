package resolve

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

// SMILNamespace is the namespace of stream descriptor documents.
const SMILNamespace = "http://www.w3.org/2005/SMIL21/Language"

// subtitleType is the textstream type carrying SRT subtitles.
const subtitleType = "text/srt"

// Descriptor is what the pipeline needs from a stream descriptor.
type Descriptor struct {
	Title       string // canonical output filename stem
	VideoSrc    string // adaptive manifest URL
	SubtitleSrc string // empty when the title has no subtitles
}

type smilDocument struct {
	XMLName xml.Name `xml:"http://www.w3.org/2005/SMIL21/Language smil"`
	Body    struct {
		Seqs []smilSeq `xml:"http://www.w3.org/2005/SMIL21/Language seq"`
	} `xml:"http://www.w3.org/2005/SMIL21/Language body"`
}

type smilSeq struct {
	Pars   []smilPar   `xml:"http://www.w3.org/2005/SMIL21/Language par"`
	Videos []smilMedia `xml:"http://www.w3.org/2005/SMIL21/Language video"`
}

type smilPar struct {
	Videos      []smilMedia `xml:"http://www.w3.org/2005/SMIL21/Language video"`
	TextStreams []smilMedia `xml:"http://www.w3.org/2005/SMIL21/Language textstream"`
}

type smilMedia struct {
	Src   string `xml:"src,attr"`
	Title string `xml:"title,attr"`
	Type  string `xml:"type,attr"`
}

// ParseDescriptor extracts the video and optional subtitle references.
// A video under body/seq/par takes precedence over one directly under body/seq.
func ParseDescriptor(data []byte) (*Descriptor, error) {
	var doc smilDocument
	if err := xml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDescriptor, err)
	}

	var video *smilMedia
	var subtitle *smilMedia
	for i := range doc.Body.Seqs {
		for j := range doc.Body.Seqs[i].Pars {
			par := &doc.Body.Seqs[i].Pars[j]
			if video == nil && len(par.Videos) > 0 {
				video = &par.Videos[0]
			}
			if subtitle == nil {
				for k := range par.TextStreams {
					if par.TextStreams[k].Type == subtitleType {
						subtitle = &par.TextStreams[k]
						break
					}
				}
			}
		}
	}
	if video == nil {
		for i := range doc.Body.Seqs {
			if len(doc.Body.Seqs[i].Videos) > 0 {
				video = &doc.Body.Seqs[i].Videos[0]
				break
			}
		}
	}

	if video == nil {
		return nil, fmt.Errorf("%w: no video element", ErrInvalidDescriptor)
	}
	if video.Src == "" {
		return nil, fmt.Errorf("%w: video element has no src", ErrInvalidDescriptor)
	}

	d := &Descriptor{Title: video.Title, VideoSrc: video.Src}
	if subtitle != nil {
		d.SubtitleSrc = subtitle.Src
	}
	return d, nil
}
