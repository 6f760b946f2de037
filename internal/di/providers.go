package di

import (
	"hubdash/internal/providers"
	"hubdash/internal/structures"
)

// provideLogger hands the log files' Close to the injector cleanup chain.
func provideLogger(conf *structures.Config) (providers.Logger, func(), error) {
	logger, err := providers.NewLogProvider(conf)
	if err != nil {
		return nil, nil, err
	}
	return logger, logger.Close, nil
}
