package app

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/gocomplete/internal/complete"
	"github.com/gocomplete/internal/config"
	"github.com/gocomplete/internal/dynamo"
	"github.com/gocomplete/internal/logging"
	"github.com/gocomplete/internal/models"
	"github.com/gocomplete/internal/source"
)

// NewSource builds the candidate source named by the lookup config
func NewSource(ctx context.Context, cfg *config.Config, logger *log.Logger) (complete.Source, error) {
	if logger == nil {
		logger = logging.Discard()
	}

	switch cfg.Lookup.Source {
	case models.SourceStatic, "":
		return source.NewStatic(cfg.CandidateList()), nil

	case models.SourceHTTP:
		logger.Info("using http source", "endpoint", cfg.HTTP.Endpoint)
		return source.NewHTTP(cfg.HTTP.Endpoint, cfg.HTTP.Timeout.Duration), nil

	case models.SourceDynamo:
		d := cfg.DynamoDB
		client, err := dynamo.NewClient(ctx, dynamo.ConnectionConfig{
			Endpoint:  d.Endpoint,
			Region:    d.Region,
			AccessKey: d.AccessKey,
			SecretKey: d.SecretKey,
			UseLocal:  d.UseLocal,
		})
		if err != nil {
			return nil, err
		}

		src := source.NewDynamo(client, d.Table, d.Attribute)
		if err := src.Check(ctx); err != nil {
			// lookups still run and come back empty
			logger.Warn("dynamodb table check failed", "err", err)
		}
		logger.Info("using dynamodb source", "table", d.Table, "attribute", d.Attribute, "region", client.Region())
		return src, nil
	}

	return nil, fmt.Errorf("%w: %q", config.ErrInvalidSource, cfg.Lookup.Source)
}
