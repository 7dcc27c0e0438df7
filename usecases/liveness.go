package usecases

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/pimcore/admin-ui-classic-bundle-sub003/repositories"
	"github.com/pimcore/admin-ui-classic-bundle-sub003/usecases/executor_factory"
)

type livenessRepository interface {
	Liveness(ctx context.Context, exec repositories.Executor) error
}

type LivenessUsecase struct {
	executorFactory    executor_factory.ExecutorFactory
	livenessRepository livenessRepository
}

func (u *LivenessUsecase) Liveness(ctx context.Context) error {
	return errors.Wrap(u.livenessRepository.Liveness(ctx, u.executorFactory.NewExecutor()),
		"database is not reachable")
}
