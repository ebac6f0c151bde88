package artifact

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/viant/pipelinager/graph"
	"gopkg.in/yaml.v3"
)

// Format represents artifact encoding
type Format string

const (
	// FormatJSON encodes lineage as indented json
	FormatJSON Format = "json"
	// FormatYAML encodes lineage as yaml
	FormatYAML Format = "yaml"
)

// Encode encodes lineage graph, empty graph is encoded as an empty list
func Encode(format Format, g graph.Graph) ([]byte, error) {
	if g == nil {
		g = graph.Graph{}
	}
	switch format {
	case FormatJSON, "":
		data, err := json.MarshalIndent(g, "", "    ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatYAML:
		buffer := &bytes.Buffer{}
		encoder := yaml.NewEncoder(buffer)
		encoder.SetIndent(2)
		if err := encoder.Encode(g); err != nil {
			return nil, err
		}
		if err := encoder.Close(); err != nil {
			return nil, err
		}
		return buffer.Bytes(), nil
	}
	return nil, fmt.Errorf("unsupported format: %v", format)
}

// Decode decodes lineage graph
func Decode(format Format, data []byte) (graph.Graph, error) {
	var result graph.Graph
	var err error
	switch format {
	case FormatJSON, "":
		err = json.Unmarshal(data, &result)
	case FormatYAML:
		err = yaml.Unmarshal(data, &result)
	default:
		return nil, fmt.Errorf("unsupported format: %v", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode lineage: %w", err)
	}
	return graph.Merge(result), nil
}
