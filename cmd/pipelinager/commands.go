package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viant/afs"
	"github.com/viant/pipelinager/artifact"
	"github.com/viant/pipelinager/config"
	"github.com/viant/pipelinager/graph"
	"github.com/viant/pipelinager/lineage"
	"github.com/viant/pipelinager/pipeline"
	"go.uber.org/zap"
)

var (
	configURL  string
	sourceURL  string
	outputURL  string
	fileName   string
	format     string
	nodeNaming string
	strict     bool

	rootCmd = &cobra.Command{
		Use:           "pipelinager",
		Short:         "Builds cross pipeline lineage graph from pipeline definitions",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	buildCmd = &cobra.Command{
		Use:   "build",
		Short: "Build lineage graph and upload it with its manifest",
		RunE:  runBuild,
	}

	verifyCmd = &cobra.Command{
		Use:   "verify",
		Short: "Download uploaded lineage, check its manifest and print summary",
		RunE:  runVerify,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configURL, "config", "c", "", "config URL (yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputURL, "output", "o", "", "artifact location URL")
	rootCmd.PersistentFlags().StringVarP(&fileName, "file", "f", "", "artifact file name")

	buildCmd.Flags().StringVarP(&sourceURL, "source", "s", "", "pipeline definitions URL")
	buildCmd.Flags().StringVar(&format, "format", "", "artifact format: json|yaml")
	buildCmd.Flags().StringVar(&nodeNaming, "naming", "", "call node naming: activity|target")
	buildCmd.Flags().BoolVar(&strict, "strict", false, "fail when pipelines can not be listed")

	rootCmd.AddCommand(buildCmd, verifyCmd)
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.Context(), configURL)
	if err != nil {
		return nil, err
	}
	if sourceURL != "" {
		cfg.Source.URL = sourceURL
	}
	if outputURL != "" {
		cfg.Output.URL = outputURL
	}
	if fileName != "" {
		cfg.Output.FileName = fileName
	}
	if format != "" {
		cfg.Output.Format = format
	}
	if nodeNaming != "" {
		cfg.Lineage.NodeNaming = nodeNaming
	}
	if cmd.Flags().Changed("strict") {
		cfg.Source.Strict = strict
	}
	return cfg, nil
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	logger, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	naming, err := lineage.ParseNodeNaming(cfg.Lineage.NodeNaming)
	if err != nil {
		return err
	}
	fs := afs.New()
	service := &lineage.Service{
		Source: pipeline.NewStorageSource(cfg.Source.URL, pipeline.WithFileSystem(fs), pipeline.WithLogger(logger)),
		Builder: lineage.New(
			lineage.WithLogger(logger),
			lineage.WithNodeNaming(naming),
			lineage.WithConcurrency(cfg.Lineage.Concurrency)),
		Publisher: &artifact.Publisher{
			Uploader: artifact.NewStorageUploader(fs),
			Location: cfg.Output.URL,
			FileName: cfg.Output.FileName,
			Format:   artifact.Format(cfg.Output.Format),
			Manifest: cfg.Output.Manifest,
			Logger:   logger,
		},
		Strict: cfg.Source.Strict,
		Logger: logger,
	}
	result, err := service.Run(cmd.Context())
	if err != nil {
		logger.Error("lineage build failed", zap.Error(err))
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "pipelines: %v, nodes: %v, url: %v\n", result.Pipelines, len(result.Graph), result.URL)
	return nil
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Output.URL == "" {
		return fmt.Errorf("output location was empty")
	}
	g, manifest, err := artifact.Verify(cmd.Context(), afs.New(), cfg.Output.URL, cfg.Output.FileName)
	if err != nil {
		return err
	}
	roots := len(graph.RootNodes(g))
	fmt.Fprintf(cmd.OutOrStdout(), "run: %v, generated: %v, version: %v, pipelines: %v, nodes: %v, roots: %v\n",
		manifest.RunID, manifest.GeneratedAt.Format("2006-01-02T15:04:05Z"), manifest.FormatVersion, manifest.Pipelines, len(g), roots)
	return nil
}
