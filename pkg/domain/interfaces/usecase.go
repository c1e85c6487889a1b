package interfaces

import (
	"context"

	"github.com/m-mizutani/herald/pkg/domain/model"
)

// PublishUseCase reconciles the remote release state against a spec
type PublishUseCase interface {
	// Run converges tag, release and assets, in that order
	Run(ctx context.Context, spec *model.ReleaseSpec) (*model.PublishResult, error)
}
