package scaffold

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mcpforge/mcpforge/internal/filesystem"
	"github.com/mcpforge/mcpforge/internal/git"
	"github.com/mcpforge/mcpforge/internal/github"
	"github.com/mcpforge/mcpforge/internal/instructions"
	"github.com/mcpforge/mcpforge/internal/models"
	"github.com/mcpforge/mcpforge/internal/template"
)

// Engine runs the materialization pipeline end to end:
//
//	classify -> fetch -> materialize -> (rewrite metadata, resolve
//	instructions) -> apply customizations
//
// One project per run, strictly sequential, no shared mutable state
// between runs. Fatal errors abort the invocation; recoverable problems
// are written to Warnings and the pipeline keeps going. Once the copy has
// completed, later failures never remove already-materialized files.
type Engine struct {
	fs           filesystem.FileSystem
	fetcher      *template.Fetcher
	materializer *Materializer
	rewriter     *MetadataRewriter
	applier      *CustomizationApplier

	// Warnings receives recoverable-problem notices. Defaults to stderr.
	Warnings io.Writer
}

// CreateOptions are the inputs to a single pipeline run, assembled by the
// CLI layer.
type CreateOptions struct {
	TemplateRef string
	DestDir     string
	Identity    models.ProjectIdentity
	Choices     models.CustomizationChoices
}

// NewEngine wires an Engine from its collaborators. ghClient may be nil.
func NewEngine(fs filesystem.FileSystem, gitClient git.GitClient, ghClient github.GitHubClient) *Engine {
	return &Engine{
		fs:           fs,
		fetcher:      template.NewFetcher(fs, gitClient, ghClient),
		materializer: NewMaterializer(fs),
		rewriter:     NewMetadataRewriter(fs),
		applier:      NewCustomizationApplier(fs),
		Warnings:     os.Stderr,
	}
}

// Fetcher exposes the engine's fetcher so tests can redirect its staging
// directory.
func (e *Engine) Fetcher() *template.Fetcher {
	return e.fetcher
}

// CreateProject materializes one project and returns the result
// descriptor for the reporting layer.
func (e *Engine) CreateProject(ctx context.Context, opts CreateOptions) (*models.MaterializationResult, error) {
	ref := template.Classify(opts.TemplateRef)

	snapshot, err := e.fetcher.Fetch(ctx, ref)
	if err != nil {
		return nil, err
	}
	defer func() {
		if releaseErr := snapshot.Release(); releaseErr != nil {
			fmt.Fprintf(e.Warnings, "Warning: failed to clean up template snapshot: %v\n", releaseErr)
		}
	}()

	if err := e.materializer.Materialize(snapshot, opts.DestDir); err != nil {
		return nil, fmt.Errorf("failed to materialize template: %w", err)
	}

	configInstructions, resolveErr := instructions.Resolve(snapshot.FS)
	if resolveErr != nil {
		fmt.Fprintf(e.Warnings, "Warning: %v, falling back to default instructions\n", resolveErr)
	}

	transport := instructions.DetermineTransportType(configInstructions, ref.Name())

	if configInstructions == nil {
		configInstructions = instructions.Defaults(transport)
	}
	configInstructions = instructions.Substitute(configInstructions, opts.Identity.Name, opts.DestDir)

	if err := e.rewriter.Rewrite(opts.DestDir, opts.Identity); err != nil {
		return nil, fmt.Errorf("failed to rewrite project metadata: %w", err)
	}

	if err := e.applier.Apply(opts.DestDir, opts.Choices); err != nil {
		return nil, fmt.Errorf("failed to apply customizations: %w", err)
	}

	return &models.MaterializationResult{
		TemplateName:       ref.Name(),
		TransportType:      transport,
		ConfigInstructions: configInstructions,
	}, nil
}
