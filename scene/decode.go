package scene

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type stageFile struct {
	UpAxis           string     `yaml:"upAxis"`
	MetersPerUnit    float64    `yaml:"metersPerUnit"`
	KilogramsPerUnit float64    `yaml:"kilogramsPerUnit"`
	Prims            []primFile `yaml:"prims"`
}

type primFile struct {
	Path          string                 `yaml:"path"`
	Type          string                 `yaml:"type"`
	Active        *bool                  `yaml:"active"`
	Instanceable  bool                   `yaml:"instanceable"`
	APISchemas    []string               `yaml:"apiSchemas"`
	Attributes    map[string]interface{} `yaml:"attributes"`
	Relationships map[string][]string    `yaml:"relationships"`
}

// LoadStage reads a stage description from a YAML file.
func LoadStage(filename string) (*Stage, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "opening stage file")
	}
	defer f.Close()
	s, err := ReadStage(f)
	return s, errors.Wrapf(err, "loading stage %s", filename)
}

// ReadStage decodes a YAML stage description.
func ReadStage(r io.Reader) (*Stage, error) {
	var file stageFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, errors.Wrap(err, "decoding stage yaml")
	}

	stage := NewStage()
	switch file.UpAxis {
	case "":
	case string(UpAxisX), string(UpAxisY), string(UpAxisZ):
		stage.SetUpAxis(UpAxis(file.UpAxis))
	default:
		return nil, errors.Errorf("unknown upAxis %q", file.UpAxis)
	}
	if file.MetersPerUnit != 0 {
		stage.SetMetersPerUnit(file.MetersPerUnit)
	}
	if file.KilogramsPerUnit != 0 {
		stage.SetKilogramsPerUnit(file.KilogramsPerUnit)
	}

	for _, pf := range file.Prims {
		path, err := NewPath(pf.Path)
		if err != nil {
			return nil, errors.Wrap(err, "invalid prim path")
		}
		prim, err := stage.DefinePrim(path, pf.Type)
		if err != nil {
			return nil, err
		}
		if pf.Active != nil {
			prim.SetActive(*pf.Active)
		}
		prim.SetInstanceable(pf.Instanceable)
		for _, api := range pf.APISchemas {
			prim.ApplyAPI(api)
		}
		for name, value := range pf.Attributes {
			prim.SetAttr(name, value)
		}
		for name, targets := range pf.Relationships {
			paths := make([]Path, 0, len(targets))
			for _, t := range targets {
				tp, err := NewPath(t)
				if err != nil {
					return nil, errors.Wrapf(err, "relationship %s on %s", name, path)
				}
				paths = append(paths, tp)
			}
			prim.SetRel(name, paths)
		}
	}
	return stage, nil
}
