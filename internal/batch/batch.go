package batch

import (
	"fmt"
	"io"
	"os"
	"time"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/TudorHulban/timeslots"
)

// Payload is the data carried by every slot created from a batch file.
type Payload struct {
	ID   string
	Data string
}

func (p Payload) String() string {
	if len(p.Data) == 0 {
		return p.ID
	}

	return fmt.Sprintf("%s (%s)", p.Data, p.ID)
}

type (
	Registry   = timeslots.CalendarRegistry[string, string, int64, Payload]
	Assignment = timeslots.Assignment[string, string, int64, Payload]
)

type CalendarSpec struct {
	Key       string   `yaml:"key" valid:"required"`
	Resources []string `yaml:"resources"`
}

// Record is one requested assignment, times in RFC 3339.
type Record struct {
	Calendar string `yaml:"calendar" valid:"required"`
	Resource string `yaml:"resource" valid:"required"`
	Start    string `yaml:"start" valid:"required"`
	End      string `yaml:"end" valid:"required"`
	Data     string `yaml:"data"`
	ID       string `yaml:"id"`
	RRule    string `yaml:"rrule"`
}

type File struct {
	Calendars   []CalendarSpec `yaml:"calendars"`
	Assignments []Record       `yaml:"assignments"`
}

func Parse(reader io.Reader) (*File, error) {
	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)

	var result File

	if errDecode := decoder.Decode(&result); errDecode != nil {
		if errDecode == io.EOF {
			return &result, nil
		}

		return nil,
			fmt.Errorf("decode batch file: %w", errDecode)
	}

	if errValidation := result.IsValid(); errValidation != nil {
		return nil,
			errValidation
	}

	return &result,
		nil
}

func ReadFile(path string) (*File, error) {
	f, errOpen := os.Open(path)
	if errOpen != nil {
		return nil,
			errOpen
	}
	defer f.Close()

	return Parse(f)
}

func (f *File) IsValid() error {
	for ix := range f.Calendars {
		if _, errValidation := govalidator.ValidateStruct(&f.Calendars[ix]); errValidation != nil {
			return goerrors.ErrValidation{
				Caller: fmt.Sprintf("IsValid - calendar %d", ix),
				Issue:  errValidation,
			}
		}
	}

	for ix := range f.Assignments {
		if _, errValidation := govalidator.ValidateStruct(&f.Assignments[ix]); errValidation != nil {
			return goerrors.ErrValidation{
				Caller: fmt.Sprintf("IsValid - assignment %d", ix),
				Issue:  errValidation,
			}
		}
	}

	return nil
}

// NewRegistry registers the declared calendars and their resources.
func (f *File) NewRegistry(logger *zerolog.Logger) (*Registry, error) {
	result := timeslots.NewCalendarRegistry[string, string, int64, Payload](
		&timeslots.ParamsNewCalendarRegistry{
			Logger: logger,
		},
	)

	for _, calendar := range f.Calendars {
		if errAdd := result.AddCalendar(
			calendar.Key,
			timeslots.NewResourceMap[string, int64, Payload](calendar.Resources...),
		); errAdd != nil {
			return nil,
				errAdd
		}
	}

	return result,
		nil
}

// Expand converts records into assignments, in file order.
// Recurring records expand to their occurrences inside horizon from the
// record start.
func (f *File) Expand(horizon time.Duration) ([]Assignment, error) {
	var result []Assignment

	for ix, record := range f.Assignments {
		expanded, errExpand := record.expand(horizon)
		if errExpand != nil {
			return nil,
				fmt.Errorf("assignment %d: %w", ix, errExpand)
		}

		result = append(result, expanded...)
	}

	return result,
		nil
}

func (r Record) expand(horizon time.Duration) ([]Assignment, error) {
	start, errStart := time.Parse(time.RFC3339, r.Start)
	if errStart != nil {
		return nil,
			goerrors.ErrInvalidInput{
				Caller:     "expand",
				InputName:  "start",
				InputValue: r.Start,
				Issue:      errStart,
			}
	}

	end, errEnd := time.Parse(time.RFC3339, r.End)
	if errEnd != nil {
		return nil,
			goerrors.ErrInvalidInput{
				Caller:     "expand",
				InputName:  "end",
				InputValue: r.End,
				Issue:      errEnd,
			}
	}

	if len(r.RRule) == 0 {
		return []Assignment{
				r.assignment(start, end, r.payloadID(0, false)),
			},
			nil
	}

	rule, errRule := rrule.StrToRRule(r.RRule)
	if errRule != nil {
		return nil,
			goerrors.ErrInvalidInput{
				Caller:     "expand",
				InputName:  "rrule",
				InputValue: r.RRule,
				Issue:      errRule,
			}
	}

	rule.DTStart(start)

	duration := end.Sub(start)

	var occurrences []time.Time

	if rule.OrigOptions.Count > 0 || !rule.OrigOptions.Until.IsZero() {
		occurrences = rule.All()
	} else {
		// unbounded rules stop at the horizon.
		occurrences = rule.Between(start, start.Add(horizon), true)
	}

	result := make([]Assignment, len(occurrences))

	for ix, occurrence := range occurrences {
		result[ix] = r.assignment(
			occurrence,
			occurrence.Add(duration),
			r.payloadID(ix, true),
		)
	}

	return result,
		nil
}

func (r Record) payloadID(occurrence int, recurring bool) string {
	id := r.ID
	if len(id) == 0 {
		return uuid.NewString()
	}

	if recurring {
		return fmt.Sprintf("%s#%d", id, occurrence+1)
	}

	return id
}

func (r Record) assignment(start, end time.Time, id string) Assignment {
	return Assignment{
		CalendarKey: r.Calendar,
		ResourceID:  r.Resource,
		TimeStart:   timeslots.ToInstant(start),
		TimeEnd:     timeslots.ToInstant(end),
		Payload: Payload{
			ID:   id,
			Data: r.Data,
		},
	}
}
