package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// StorageSource lists pipeline definitions stored as json or yaml files under a storage location
type StorageSource struct {
	fs       afs.Service
	location string
	logger   *zap.Logger
}

// StorageOption represents storage source option
type StorageOption func(s *StorageSource)

// WithLogger sets source logger
func WithLogger(logger *zap.Logger) StorageOption {
	return func(s *StorageSource) {
		s.logger = logger
	}
}

// WithFileSystem sets storage service
func WithFileSystem(fs afs.Service) StorageOption {
	return func(s *StorageSource) {
		s.fs = fs
	}
}

// NewStorageSource creates a source reading definitions from location (file or folder URL)
func NewStorageSource(location string, options ...StorageOption) *StorageSource {
	ret := &StorageSource{location: location}
	for _, option := range options {
		option(ret)
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	if ret.logger == nil {
		ret.logger = zap.NewNop()
	}
	return ret
}

// ListPipelines loads all pipeline definitions, files are read in URL order
func (s *StorageSource) ListPipelines(ctx context.Context) ([]*Resource, error) {
	URLs, err := s.definitionURLs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list %v: %w: %v", s.location, ErrServiceUnavailable, err)
	}
	var result []*Resource
	for _, URL := range URLs {
		data, err := s.fs.DownloadWithURL(ctx, URL)
		if err != nil {
			return nil, fmt.Errorf("failed to download %v: %w: %v", URL, ErrServiceUnavailable, err)
		}
		resources, err := Decode(URL, data)
		if err != nil {
			return nil, err
		}
		s.logger.Debug("loaded pipeline definitions", zap.String("url", URL), zap.Int("pipelines", len(resources)))
		result = append(result, resources...)
	}
	return result, nil
}

func (s *StorageSource) definitionURLs(ctx context.Context) ([]string, error) {
	object, err := s.fs.Object(ctx, s.location)
	if err != nil {
		return nil, err
	}
	if !object.IsDir() {
		return []string{s.location}, nil
	}
	var URLs []string
	var visitor storage.OnVisit = func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
		if info.IsDir() {
			return true, nil
		}
		if !IsDefinition(info.Name()) {
			s.logger.Debug("skipped non definition file", zap.String("name", info.Name()))
			return true, nil
		}
		URLs = append(URLs, url.Join(baseURL, parent, info.Name()))
		return true, nil
	}
	if err = s.fs.Walk(ctx, s.location, visitor); err != nil {
		return nil, err
	}
	sort.Strings(URLs)
	return URLs, nil
}

// IsDefinition returns true for supported definition file extensions
func IsDefinition(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

// Decode decodes one pipeline or a list of pipelines, format is derived from the location extension
func Decode(location string, data []byte) ([]*Resource, error) {
	var result []*Resource
	var err error
	if strings.ToLower(path.Ext(location)) == ".json" {
		result, err = decodeJSON(data)
	} else {
		result, err = decodeYAML(data)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %v: %w", location, err)
	}
	return compact(result), nil
}

// compact drops null list entries
func compact(resources []*Resource) []*Resource {
	var result = resources[:0]
	for _, resource := range resources {
		if resource != nil {
			result = append(result, resource)
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

func decodeJSON(data []byte) ([]*Resource, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}
	if data[0] == '[' {
		var resources []*Resource
		err := json.Unmarshal(data, &resources)
		return resources, err
	}
	resource := &Resource{}
	if err := json.Unmarshal(data, resource); err != nil {
		return nil, err
	}
	return []*Resource{resource}, nil
}

func decodeYAML(data []byte) ([]*Resource, error) {
	document := &yaml.Node{}
	if err := yaml.Unmarshal(data, document); err != nil {
		return nil, err
	}
	if len(document.Content) == 0 {
		return nil, nil
	}
	root := document.Content[0]
	if root.Kind == yaml.SequenceNode {
		var resources []*Resource
		err := root.Decode(&resources)
		return resources, err
	}
	resource := &Resource{}
	if err := root.Decode(resource); err != nil {
		return nil, err
	}
	return []*Resource{resource}, nil
}
