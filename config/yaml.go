package config

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v2"

	"github.com/ARTM2000/grove"
)

type yamlRoot struct {
	Beans []yamlBean `yaml:"beans"`
}

type yamlBean struct {
	ID         string         `yaml:"id"`
	Class      string         `yaml:"class"`
	Properties []yamlProperty `yaml:"properties"`
}

type yamlProperty struct {
	Name  string  `yaml:"name"`
	Value *string `yaml:"value"`
	Ref   *string `yaml:"ref"`
}

// LoadYAML reads a document of the form
//
//	beans:
//	  - id: rex
//	    class: petshop.Dog
//	    properties:
//	      - {name: name, value: Rex}
//
// Unknown keys are errors. An empty document yields an empty set.
func LoadYAML(r io.Reader) ([]grove.BeanDescriptor, error) {
	dec := yaml.NewDecoder(r)
	dec.SetStrict(true)

	var root yamlRoot
	if err := dec.Decode(&root); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding YAML beans: %w", err)
	}

	descriptors := make([]grove.BeanDescriptor, 0, len(root.Beans))
	for _, b := range root.Beans {
		d := grove.BeanDescriptor{ID: b.ID, Class: b.Class}
		for _, p := range b.Properties {
			d.Properties = append(d.Properties, grove.PropertyDirective{Name: p.Name, Value: p.Value, Ref: p.Ref})
		}
		descriptors = append(descriptors, d)
	}
	return descriptors, nil
}
