package artifact

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/afs/url"
	"github.com/viant/pipelinager/graph"
	"go.uber.org/zap"
)

// Publisher encodes and uploads lineage artifacts
type Publisher struct {
	Uploader Uploader
	Location string
	FileName string
	Format   Format
	Manifest bool
	Logger   *zap.Logger
}

// Publish uploads the lineage graph and optional manifest, returns artifact URL.
// The manifest is uploaded last and marks the artifact complete, Verify rejects an artifact without one.
func (p *Publisher) Publish(ctx context.Context, g graph.Graph, pipelines int) (string, *Manifest, error) {
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	data, err := Encode(p.Format, g)
	if err != nil {
		return "", nil, err
	}
	destination := url.Join(p.Location, p.FileName)
	if err = p.Uploader.Upload(ctx, data, destination); err != nil {
		return "", nil, err
	}
	logger.Info("uploaded lineage", zap.String("url", destination), zap.Int("bytes", len(data)))
	if !p.Manifest {
		return destination, nil, nil
	}
	manifest, err := NewManifest(p.Format, pipelines, g, data)
	if err != nil {
		return "", nil, err
	}
	encoded, err := manifest.Encode()
	if err != nil {
		return "", nil, err
	}
	manifestURL := url.Join(p.Location, ManifestName(p.FileName))
	if err = p.Uploader.Upload(ctx, encoded, manifestURL); err != nil {
		logger.Warn("artifact uploaded without manifest", zap.String("url", destination), zap.Error(err))
		return "", nil, err
	}
	logger.Info("uploaded manifest", zap.String("url", manifestURL), zap.String("runId", manifest.RunID))
	return destination, manifest, nil
}

// Verify downloads an artifact with its manifest, validates checksum and decodes lineage graph
func Verify(ctx context.Context, fs afs.Service, location, fileName string) (graph.Graph, *Manifest, error) {
	if fs == nil {
		fs = afs.New()
	}
	manifestURL := url.Join(location, ManifestName(fileName))
	data, err := fs.DownloadWithURL(ctx, manifestURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to download manifest %v: %w", manifestURL, err)
	}
	manifest, err := DecodeManifest(data)
	if err != nil {
		return nil, nil, err
	}
	artifactURL := url.Join(location, fileName)
	if data, err = fs.DownloadWithURL(ctx, artifactURL); err != nil {
		return nil, nil, fmt.Errorf("failed to download artifact %v: %w", artifactURL, err)
	}
	if err = manifest.Verify(data); err != nil {
		return nil, nil, err
	}
	g, err := Decode(manifest.Format, data)
	if err != nil {
		return nil, nil, err
	}
	if err = manifest.VerifyGraph(g); err != nil {
		return nil, nil, err
	}
	return g, manifest, nil
}
