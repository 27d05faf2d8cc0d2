package config

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/ARTM2000/grove"
)

type xmlBeans struct {
	XMLName xml.Name  `xml:"beans"`
	Beans   []xmlBean `xml:"bean"`
}

type xmlBean struct {
	ID         string        `xml:"id,attr"`
	Class      string        `xml:"class,attr"`
	Properties []xmlProperty `xml:"property"`
}

type xmlProperty struct {
	Name  string  `xml:"name,attr"`
	Value *string `xml:"value,attr"`
	Ref   *string `xml:"ref,attr"`
}

// LoadXML reads a <beans> document. A property without a value or ref
// attribute keeps the field nil.
func LoadXML(r io.Reader) ([]grove.BeanDescriptor, error) {
	var doc xmlBeans
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding XML beans: %w", err)
	}

	descriptors := make([]grove.BeanDescriptor, 0, len(doc.Beans))
	for _, b := range doc.Beans {
		d := grove.BeanDescriptor{ID: b.ID, Class: b.Class}
		for _, p := range b.Properties {
			d.Properties = append(d.Properties, grove.PropertyDirective{Name: p.Name, Value: p.Value, Ref: p.Ref})
		}
		descriptors = append(descriptors, d)
	}
	return descriptors, nil
}
