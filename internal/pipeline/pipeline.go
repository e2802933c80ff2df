package pipeline

import "log"

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
	logger     *log.Logger
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// WithLogger makes Run report each stage to logger.
func (p *Pipeline) WithLogger(logger *log.Logger) *Pipeline {
	p.logger = logger
	return p
}

// Run executes the pipeline.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		before := len(ctx.Errors)
		ctx = processor.Process(ctx)
		// Stages guard on ctx.Failed() themselves, so Run never short-circuits.
		if p.logger != nil {
			p.logger.Printf("stage %T: %d new error(s)", processor, len(ctx.Errors)-before)
		}
	}
	return ctx
}
