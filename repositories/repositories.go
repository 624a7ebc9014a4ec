package repositories

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
)

type Repositories struct {
	ExecutorGetter            ExecutorGetter
	KycDbRepository           *KycDbRepository
	TaskQueueRepository       TaskQueueRepository
	ExtractionAgentRepository *ExtractionAgentRepository
}

type Option func(*options)

type options struct {
	riverClient       *river.Client[pgx.Tx]
	extractionCommand string
	extractionArgs    []string
}

func WithRiverClient(client *river.Client[pgx.Tx]) Option {
	return func(o *options) {
		o.riverClient = client
	}
}

func WithExtractionAgent(command string, args []string) Option {
	return func(o *options) {
		o.extractionCommand = command
		o.extractionArgs = args
	}
}

func NewRepositories(pool *pgxpool.Pool, opts ...Option) Repositories {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	repositories := Repositories{
		ExecutorGetter:  NewExecutorGetter(pool),
		KycDbRepository: &KycDbRepository{},
		ExtractionAgentRepository: NewExtractionAgentRepository(
			o.extractionCommand, o.extractionArgs),
	}
	if o.riverClient != nil {
		repositories.TaskQueueRepository = NewTaskQueueRepository(o.riverClient)
	}
	return repositories
}
