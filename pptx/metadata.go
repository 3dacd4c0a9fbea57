package pptx

import (
	"encoding/xml"
	"time"

	"github.com/deckfold/deckfold/model"
)

// Metadata reports the presentation-level structure parsed at open time.
func (r *Reader) Metadata() (*model.PresentationMetadata, error) {
	meta := &model.PresentationMetadata{
		SlideCount:       len(r.slides),
		SlideSize:        r.size,
		SlideMasterIDs:   append([]string(nil), r.masters...),
		HasNotesMaster:   r.notesM,
		HasHandoutMaster: r.handoutM,
	}
	for _, s := range r.slides {
		meta.SlideIDs = append(meta.SlideIDs, model.SlideRef{ID: s.id, RelationshipID: s.rid})
	}
	return meta, nil
}

// The property parts have flat, fixed schemas, so plain struct
// unmarshalling fits better than path queries here.
type corePropertiesXML struct {
	XMLName        xml.Name `xml:"coreProperties"`
	Title          string   `xml:"title"`
	Subject        string   `xml:"subject"`
	Creator        string   `xml:"creator"`
	Keywords       string   `xml:"keywords"`
	Description    string   `xml:"description"`
	LastModifiedBy string   `xml:"lastModifiedBy"`
	Revision       string   `xml:"revision"`
	Created        string   `xml:"created"`
	Modified       string   `xml:"modified"`
}

type appPropertiesXML struct {
	XMLName     xml.Name `xml:"Properties"`
	Application string   `xml:"Application"`
	Company     string   `xml:"Company"`
}

// Properties reads docProps/core.xml and docProps/app.xml. Both parts
// are optional; absent parts leave their fields empty.
func (r *Reader) Properties() (*model.DocumentProperties, error) {
	props := &model.DocumentProperties{}

	if data, err := r.pkg.ReadPart("docProps/core.xml"); err == nil {
		var core corePropertiesXML
		if err := xml.Unmarshal(data, &core); err != nil {
			r.addDiag(0, "core properties", err)
		} else {
			props.Title = core.Title
			props.Subject = core.Subject
			props.Creator = core.Creator
			props.Keywords = core.Keywords
			props.Description = core.Description
			props.LastModifiedBy = core.LastModifiedBy
			props.Revision = core.Revision
			props.Created = parseW3CTime(core.Created)
			props.Modified = parseW3CTime(core.Modified)
		}
	}

	if data, err := r.pkg.ReadPart("docProps/app.xml"); err == nil {
		var app appPropertiesXML
		if err := xml.Unmarshal(data, &app); err != nil {
			r.addDiag(0, "app properties", err)
		} else {
			props.Application = app.Application
			props.Company = app.Company
		}
	}

	return props, nil
}

func parseW3CTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
