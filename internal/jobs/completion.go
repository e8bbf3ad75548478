// Package jobs holds periodic maintenance tasks scheduled from main.
package jobs

import (
	"log"
	"time"

	"mentormatch/internal/models"
	"mentormatch/internal/repositories"
)

// CompletionSweep marks confirmed schedules whose end time has passed as
// completed. It acts as the system-side lifecycle actor, so it goes through
// the repository directly rather than the participant-gated update path.
type CompletionSweep struct {
	schedules repositories.ScheduleRepository
}

func NewCompletionSweep(schedules repositories.ScheduleRepository) *CompletionSweep {
	return &CompletionSweep{schedules: schedules}
}

func (j *CompletionSweep) Run() {
	log.Println("Running job: CompletionSweep...")

	ended, err := j.schedules.ListConfirmedEndedBefore(time.Now())
	if err != nil {
		log.Printf("Error listing ended schedules: %v", err)
		return
	}
	if len(ended) == 0 {
		return
	}

	var completed int
	for _, row := range ended {
		if _, err := j.schedules.UpdateStatus(row.ID, models.ScheduleStatusCompleted); err != nil {
			log.Printf("Error completing schedule %d: %v", row.ID, err)
			continue
		}
		completed++
	}

	log.Printf("Marked %d schedule(s) as completed.", completed)
}
