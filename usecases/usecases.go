package usecases

import (
	"github.com/veriflow/kyc-backend/infra"
	"github.com/veriflow/kyc-backend/repositories"
	"github.com/veriflow/kyc-backend/usecases/executor_factory"
	"github.com/veriflow/kyc-backend/usecases/worker_jobs"
)

type Usecases struct {
	Repositories     repositories.Repositories
	ExtractionConfig infra.ExtractionConfig
}

type Option func(*Usecases)

func WithExtractionConfig(config infra.ExtractionConfig) Option {
	return func(u *Usecases) {
		u.ExtractionConfig = config
	}
}

func NewUsecases(repos repositories.Repositories, opts ...Option) Usecases {
	u := Usecases{
		Repositories: repos,
	}
	for _, opt := range opts {
		opt(&u)
	}
	return u
}

func (u Usecases) NewExecutorFactory() executor_factory.DbExecutorFactory {
	return executor_factory.NewDbExecutorFactory(u.Repositories.ExecutorGetter)
}

func (u Usecases) NewCaseUseCase() *CaseUseCase {
	executorFactory := u.NewExecutorFactory()
	return NewCaseUseCase(
		executorFactory,
		executorFactory,
		u.Repositories.KycDbRepository,
		u.Repositories.TaskQueueRepository,
	)
}

func (u Usecases) NewKycRequestUseCase() *KycRequestUseCase {
	return NewKycRequestUseCase(
		u.NewExecutorFactory(),
		u.Repositories.KycDbRepository,
	)
}

func (u Usecases) NewDocumentExtractionWorker() *worker_jobs.DocumentExtractionWorker {
	return worker_jobs.NewDocumentExtractionWorker(
		u.ExtractionConfig,
		u.Repositories.ExtractionAgentRepository,
		u.NewCaseUseCase(),
	)
}
