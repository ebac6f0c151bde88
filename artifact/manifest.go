package artifact

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/viant/pipelinager/graph"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// FormatVersion represents current artifact format version
const FormatVersion = "v1.0.0"

var (
	// ErrIncompatibleFormat is returned when manifest format version is not supported
	ErrIncompatibleFormat = errors.New("incompatible artifact format")
	// ErrChecksumMismatch is returned when artifact content does not match manifest checksum
	ErrChecksumMismatch = errors.New("artifact checksum mismatch")
)

// Manifest describes uploaded lineage artifact
type Manifest struct {
	FormatVersion string    `yaml:"formatVersion"`
	RunID         string    `yaml:"runId"`
	GeneratedAt   time.Time `yaml:"generatedAt"`
	Format        Format    `yaml:"format"`
	Pipelines     int       `yaml:"pipelines"`
	Nodes         int       `yaml:"nodes"`
	Checksum      string    `yaml:"checksum"`
	Fingerprint   string    `yaml:"fingerprint"`
}

// NewManifest creates a manifest for encoded artifact data
func NewManifest(format Format, pipelines int, g graph.Graph, data []byte) (*Manifest, error) {
	checksum, err := Checksum(data)
	if err != nil {
		return nil, err
	}
	fingerprint, err := Fingerprint(g)
	if err != nil {
		return nil, err
	}
	return &Manifest{
		FormatVersion: FormatVersion,
		RunID:         uuid.New().String(),
		GeneratedAt:   time.Now().UTC(),
		Format:        format,
		Pipelines:     pipelines,
		Nodes:         len(g),
		Checksum:      checksum,
		Fingerprint:   fingerprint,
	}, nil
}

// Checksum returns hex encoded highwayhash of data
func Checksum(data []byte) (string, error) {
	hash, err := graph.Hash(data)
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(hash, 16), nil
}

// Fingerprint returns hex encoded order independent hash of lineage graph content
func Fingerprint(g graph.Graph) (string, error) {
	hash, err := graph.Fingerprint(g)
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(hash, 16), nil
}

// VerifyGraph checks decoded lineage against manifest node count and fingerprint
func (m *Manifest) VerifyGraph(g graph.Graph) error {
	if len(g) != m.Nodes {
		return fmt.Errorf("%w: expected %v nodes, but had %v", ErrChecksumMismatch, m.Nodes, len(g))
	}
	fingerprint, err := Fingerprint(g)
	if err != nil {
		return err
	}
	if fingerprint != m.Fingerprint {
		return fmt.Errorf("%w: expected fingerprint %v, but had %v", ErrChecksumMismatch, m.Fingerprint, fingerprint)
	}
	return nil
}

// Validate checks manifest format compatibility
func (m *Manifest) Validate() error {
	if !semver.IsValid(m.FormatVersion) {
		return fmt.Errorf("%w: invalid version %q", ErrIncompatibleFormat, m.FormatVersion)
	}
	if semver.Major(m.FormatVersion) != semver.Major(FormatVersion) {
		return fmt.Errorf("%w: %v, supported: %v", ErrIncompatibleFormat, m.FormatVersion, semver.Major(FormatVersion))
	}
	return nil
}

// Verify checks artifact data against manifest checksum
func (m *Manifest) Verify(data []byte) error {
	checksum, err := Checksum(data)
	if err != nil {
		return err
	}
	if checksum != m.Checksum {
		return fmt.Errorf("%w: expected %v, but had %v", ErrChecksumMismatch, m.Checksum, checksum)
	}
	return nil
}

// Encode encodes manifest as yaml
func (m *Manifest) Encode() ([]byte, error) {
	return yaml.Marshal(m)
}

// DecodeManifest decodes and validates manifest
func DecodeManifest(data []byte) (*Manifest, error) {
	ret := &Manifest{}
	if err := yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}
	if err := ret.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}

// ManifestName returns manifest file name for artifact file name
func ManifestName(fileName string) string {
	return fileName + ".manifest.yaml"
}
