package response

import (
	"time"

	"storefront/internal/usecase/jobs"
)

type SweepReportResponse struct {
	StartedAt       time.Time `json:"startedAt"`
	ElapsedMs       int64     `json:"elapsedMs"`
	SessionsCleaned int       `json:"sessionsCleaned"`
	Scanned         int       `json:"scanned"`
	References      int       `json:"references"`
	Confirmed       int       `json:"confirmed"`
	Released        int       `json:"released"`
	Deferred        int       `json:"deferred"`
	Failed          int       `json:"failed"`
	OrdersCreated   int       `json:"ordersCreated"`
	UnitsReleased   int       `json:"unitsReleased"`
	Stuck           int       `json:"stuck"`
}

func FromSweepReport(r *jobs.SweepReport) *SweepReportResponse {
	return &SweepReportResponse{
		StartedAt:       r.StartedAt,
		ElapsedMs:       r.Elapsed.Milliseconds(),
		SessionsCleaned: r.SessionsCleaned,
		Scanned:         r.Scanned,
		References:      r.References,
		Confirmed:       r.Confirmed,
		Released:        r.Released,
		Deferred:        r.Deferred,
		Failed:          r.Failed,
		OrdersCreated:   r.OrdersCreated,
		UnitsReleased:   r.UnitsReleased,
		Stuck:           r.Stuck,
	}
}
