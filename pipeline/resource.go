package pipeline

// ExecutePipelineType represents activity type invoking another pipeline
const ExecutePipelineType = "ExecutePipeline"

type (
	// Resource represents a pipeline definition as exported by the orchestration service
	Resource struct {
		Name       string     `json:"name" yaml:"name"`
		Properties Properties `json:"properties" yaml:"properties"`
	}

	// Properties represents pipeline properties
	Properties struct {
		Description string      `json:"description,omitempty" yaml:"description,omitempty"`
		Activities  []*Activity `json:"activities,omitempty" yaml:"activities,omitempty"`
	}

	// Activity represents a pipeline step
	Activity struct {
		Name           string          `json:"name" yaml:"name"`
		Type           string          `json:"type" yaml:"type"`
		DependsOn      []*Dependency   `json:"dependsOn,omitempty" yaml:"dependsOn,omitempty"`
		TypeProperties *TypeProperties `json:"typeProperties,omitempty" yaml:"typeProperties,omitempty"`
	}

	// Dependency represents activity dependency on a sibling activity
	Dependency struct {
		Activity             string   `json:"activity" yaml:"activity"`
		DependencyConditions []string `json:"dependencyConditions,omitempty" yaml:"dependencyConditions,omitempty"`
	}

	// TypeProperties represents type specific activity settings
	TypeProperties struct {
		Pipeline *Reference `json:"pipeline,omitempty" yaml:"pipeline,omitempty"`
	}

	// Reference represents a named reference to another resource
	Reference struct {
		ReferenceName string `json:"referenceName" yaml:"referenceName"`
		Type          string `json:"type,omitempty" yaml:"type,omitempty"`
	}
)

// Activities returns pipeline activities
func (r *Resource) Activities() []*Activity {
	return r.Properties.Activities
}

// IsExecutePipeline returns true if activity invokes another pipeline
func (a *Activity) IsExecutePipeline() bool {
	return a.Type == ExecutePipelineType
}

// Dependencies returns names of activities this activity depends on
func (a *Activity) Dependencies() []string {
	var result = make([]string, 0, len(a.DependsOn))
	for _, dependency := range a.DependsOn {
		if dependency == nil {
			continue
		}
		result = append(result, dependency.Activity)
	}
	return result
}

// PipelineReference returns invoked pipeline name or empty string
func (a *Activity) PipelineReference() string {
	if a.TypeProperties == nil || a.TypeProperties.Pipeline == nil {
		return ""
	}
	return a.TypeProperties.Pipeline.ReferenceName
}
