package request

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"marblecraft/internal/domain/entities"
	"marblecraft/internal/usecase"

	"github.com/samber/lo"
)

var ErrInvalidTimeSlotDate = errors.New("invalid time slot date")

// TimeSlotRequest.Date is a calendar date (YYYY-MM-DD); empty means unscheduled.
type TimeSlotRequest struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Premium   bool   `json:"premium"`
}

// QuoteRequest is accepted both as a JSON body and as the calculator's URL
// parameters (service, design, area, extras, premium).
type QuoteRequest struct {
	ServiceID string           `json:"service_id" form:"service" binding:"required"`
	DesignID  string           `json:"design_id" form:"design" binding:"required"`
	Area      *float64         `json:"area" form:"area" binding:"required"`
	Extras    []string         `json:"extras" form:"extras"`
	Premium   bool             `json:"premium" form:"premium"`
	TimeSlot  *TimeSlotRequest `json:"time_slot" form:"-"`
}

// ExtraIDs accepts repeated values as well as comma separated lists.
func (r QuoteRequest) ExtraIDs() []string {
	ids := lo.FlatMap(r.Extras, func(v string, _ int) []string {
		return strings.Split(v, ",")
	})
	ids = lo.Map(ids, func(v string, _ int) string { return strings.TrimSpace(v) })
	return lo.Uniq(lo.Compact(ids))
}

func (r QuoteRequest) ToCommand() (usecase.QuoteCommand, error) {
	cmd := usecase.QuoteCommand{
		ServiceID: strings.TrimSpace(r.ServiceID),
		DesignID:  strings.TrimSpace(r.DesignID),
		Premium:   r.Premium,
		ExtraIDs:  r.ExtraIDs(),
	}
	if r.Area != nil {
		cmd.Area = *r.Area
	}
	if r.TimeSlot != nil {
		slot, err := r.TimeSlot.toEntity()
		if err != nil {
			return usecase.QuoteCommand{}, err
		}
		cmd.TimeSlot = &slot
	}
	return cmd, nil
}

func (t TimeSlotRequest) toEntity() (entities.TimeSlot, error) {
	var date time.Time
	if v := strings.TrimSpace(t.Date); v != "" {
		parsed, err := time.Parse(time.DateOnly, v)
		if err != nil {
			return entities.TimeSlot{}, fmt.Errorf("%w: %q", ErrInvalidTimeSlotDate, v)
		}
		date = parsed
	}
	return entities.TimeSlot{
		ID:        t.ID,
		Date:      date,
		StartTime: t.StartTime,
		EndTime:   t.EndTime,
		Available: true,
		Premium:   t.Premium,
	}, nil
}
