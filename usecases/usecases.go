package usecases

import (
	"github.com/pimcore/admin-ui-classic-bundle-sub003/repositories"
	"github.com/pimcore/admin-ui-classic-bundle-sub003/usecases/executor_factory"
)

type Usecases struct {
	Repositories     repositories.Repositories
	defaultLocale    string
	gridConfigParser *GridConfigParser
}

type Option func(*options)

func WithDefaultLocale(locale string) Option {
	return func(o *options) {
		o.defaultLocale = locale
	}
}

func WithGridConfigCacheSize(size int) Option {
	return func(o *options) {
		o.gridConfigCacheSize = size
	}
}

type options struct {
	defaultLocale       string
	gridConfigCacheSize int
}

func NewUsecases(repositories repositories.Repositories, opts ...Option) (Usecases, error) {
	options := options{
		gridConfigCacheSize: DEFAULT_GRID_CONFIG_CACHE_SIZE,
	}
	for _, o := range opts {
		o(&options)
	}

	parser, err := NewGridConfigParser(options.gridConfigCacheSize)
	if err != nil {
		return Usecases{}, err
	}

	return Usecases{
		Repositories:     repositories,
		defaultLocale:    options.defaultLocale,
		gridConfigParser: parser,
	}, nil
}

func (usecases *Usecases) NewExecutorFactory() executor_factory.ExecutorFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

func (usecases *Usecases) NewGridConfigParser() *GridConfigParser {
	return usecases.gridConfigParser
}

func (usecases *Usecases) NewWorkflowStatusUsecase() WorkflowStatusUsecase {
	return NewWorkflowStatusUsecase(
		usecases.NewExecutorFactory(),
		usecases.Repositories.WorkflowRepository,
	)
}

func (usecases *Usecases) NewGridUsecase() GridUsecase {
	return NewGridUsecase(
		usecases.NewExecutorFactory(),
		usecases.Repositories.ElementListingRepository,
		usecases.NewWorkflowStatusUsecase(),
		usecases.defaultLocale,
	)
}

func (usecases *Usecases) NewLivenessUsecase() LivenessUsecase {
	return LivenessUsecase{
		executorFactory:    usecases.NewExecutorFactory(),
		livenessRepository: usecases.Repositories.LivenessRepository,
	}
}
