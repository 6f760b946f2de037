package interfaces

import "hubdash/internal/models"

type SchedulerInterface interface {
	Init()
	Stop()
	Sweep() []models.Event
}
