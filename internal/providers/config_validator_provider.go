package providers

import (
	"errors"
	"fmt"

	"github.com/gookit/validate"
	"hubdash/internal/structures"
)

type CnfValidatorInterface interface {
	Validate() error
}

type CnfValidator struct {
	conf *structures.Config
}

func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	if !v.Validate() {
		return v.Errors
	}

	c := cv.conf
	if c.Monitor.Enabled {
		if c.Monitor.Interval <= 0 {
			return errors.New("monitor.interval must be positive when the monitor is enabled")
		}
		if c.Monitor.StaleAfter <= 0 {
			return errors.New("monitor.staleAfter must be positive when the monitor is enabled")
		}
	}
	if c.Notifier.Enabled && c.Notifier.URL == "" {
		return errors.New("notifier.url is required when the notifier is enabled")
	}
	if c.Cache.Enabled && c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must not be negative, got %s", c.Cache.TTL)
	}
	return nil
}

func NewCnfValidator(conf *structures.Config) CnfValidatorInterface {
	return &CnfValidator{conf: conf}
}
