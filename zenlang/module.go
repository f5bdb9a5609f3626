package zenlang

import (
	"context"
	"time"

	"github.com/reusee/dscope"
	"github.com/reusee/zen/logs"
	"github.com/reusee/zen/modes"
	"github.com/reusee/zen/zenconfigs"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs zenconfigs.Module
}

func (Module) Options(
	maxDepth zenconfigs.MaxDepth,
	rec zenconfigs.Recover,
	logicalOperators zenconfigs.LogicalOperators,
) Options {
	options := DefaultOptions()
	if maxDepth > 0 {
		options.MaxDepth = int(maxDepth)
	}
	options.Recover = bool(rec)
	options.LogicalOperators = bool(logicalOperators)
	return options
}

// ParseSource parses one compilation unit with the configured Options.
type ParseSource func(ctx context.Context, source *Source) (*Group, error)

func (Module) ParseSource(
	logger logs.Logger,
	newSpan logs.NewSpan,
	options Options,
	mode modes.Mode,
) ParseSource {
	return func(ctx context.Context, source *Source) (root *Group, err error) {
		ctx, _ = newSpan(ctx, "")
		start := time.Now()
		logger.DebugContext(ctx, "parse",
			"source", source.Name,
			"bytes", len(source.Content),
		)

		defer func() {
			if err != nil {
				err = logs.WrapSpan(ctx, err)
				logger.DebugContext(ctx, "parse failed",
					"source", source.Name,
					"error", err,
				)
				return
			}
			logger.DebugContext(ctx, "parsed",
				"source", source.Name,
				"exprs", len(root.Exprs),
				"duration", time.Since(start),
			)
		}()

		root, err = NewParser(source, options).Parse()
		if root != nil && mode == modes.ModeDevelopment {
			if verr := Validate(root); verr != nil {
				return nil, verr
			}
		}
		return root, err
	}
}
