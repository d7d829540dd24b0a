package availability

//go:generate go run go.uber.org/mock/mockgen -source=./engine.go -destination=./mocks/engine_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sort"
	"time"

	"reservahub/config"
	"reservahub/infras/otel"
	apptModel "reservahub/internal/domains/appointment/model"
	businessModel "reservahub/internal/domains/business/model"
	clientModel "reservahub/internal/domains/client/model"
	employeeModel "reservahub/internal/domains/employee/model"
	"reservahub/shared/constant"
	"reservahub/shared/timeslot"
	"reservahub/shared/timezone"
)

// SettingsSource supplies the booking policy of a business. Reading through
// GetOrInitialize means a business that never saved settings still gets the
// documented defaults.
type SettingsSource interface {
	GetOrInitialize(ctx context.Context, businessID string) (businessModel.Settings, error)
}

// EmployeeSource lists a business's employees ordered by name.
type EmployeeSource interface {
	ListByBusiness(ctx context.Context, businessID string) ([]employeeModel.Employee, error)
}

// AppointmentSource lists the non-cancelled appointments of a business on one
// day.
type AppointmentSource interface {
	ListActiveOn(ctx context.Context, businessID, date string) ([]apptModel.Appointment, error)
}

// Window is a half-open minute interval within a day.
type Window struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type DailyAvailability struct {
	Limit     int  `json:"limit"`
	Booked    int  `json:"booked"`
	Remaining int  `json:"remaining"`
	IsFull    bool `json:"is_full"`
}

type ClientDailyAvailability struct {
	Limit     int  `json:"limit"`
	Used      int  `json:"used"`
	Remaining int  `json:"remaining"`
	Allowed   bool `json:"allowed"`
}

type BookingDateStatus struct {
	Allowed      bool   `json:"allowed"`
	IsTooSoon    bool   `json:"is_too_soon"`
	IsTooFar     bool   `json:"is_too_far"`
	MinHours     int    `json:"min_hours"`
	MaxDays      int    `json:"max_days"`
	EarliestDate string `json:"earliest_date"`
	LatestDate   string `json:"latest_date"`
}

// ClientIdentity carries whatever the caller knows about the client. An
// appointment matches when any one supplied criterion matches: id, email or
// phone; name is only consulted when neither email nor phone was supplied.
type ClientIdentity struct {
	ID    string
	Email string
	Phone string
	Name  string
}

type ClientQuery struct {
	Date       string
	Identity   ClientIdentity
	IgnoreID   string
	BusinessID string
}

type SlotQuery struct {
	Date            string
	EmployeeID      string
	DurationMinutes int
	IgnoreID        string
	BusinessID      string
	UseTeamCapacity bool
}

type Engine interface {
	ScheduleWindow(ctx context.Context, date, employeeID, businessID string) (*Window, error)
	LunchWindow(ctx context.Context, businessID string) (*Window, error)
	DailyAvailability(ctx context.Context, date, ignoreID, businessID string) (DailyAvailability, error)
	ClientDailyAvailability(ctx context.Context, query ClientQuery) (ClientDailyAvailability, error)
	BookingDateStatus(ctx context.Context, date, businessID string) (BookingDateStatus, error)
	IsWithinBookingWindow(ctx context.Context, date, clock, businessID string) (bool, error)
	AvailableSlots(ctx context.Context, query SlotQuery) ([]string, error)
	AssignableEmployeesForSlot(ctx context.Context, date, clock string, durationMinutes int, businessID, ignoreID, preferredEmployeeID string) ([]employeeModel.Employee, error)
	ResolveBookingEmployee(ctx context.Context, date, clock string, durationMinutes int, businessID, preferredEmployeeID, ignoreID string) (*employeeModel.Employee, error)
}

type engineImpl struct {
	settings     SettingsSource
	employees    EmployeeSource
	appointments AppointmentSource
	cfg          *config.Config
	otel         otel.Otel
	now          func() time.Time
}

func New(settings SettingsSource, employees EmployeeSource, appointments AppointmentSource, cfg *config.Config, otel otel.Otel) Engine {
	return NewWithClock(settings, employees, appointments, cfg, otel, timezone.Now)
}

// NewWithClock pins the engine's notion of "now". Tests use this to freeze the
// booking window.
func NewWithClock(settings SettingsSource, employees EmployeeSource, appointments AppointmentSource, cfg *config.Config, otel otel.Otel, now func() time.Time) Engine {
	return &engineImpl{
		settings:     settings,
		employees:    employees,
		appointments: appointments,
		cfg:          cfg,
		otel:         otel,
		now:          now,
	}
}

// ScheduleWindow resolves the bookable window for one date: the business's
// weekly schedule entry, intersected with the employee's stored availability
// when an employee is named. Nil means the day is not bookable.
func (e *engineImpl) ScheduleWindow(ctx context.Context, date, employeeID, businessID string) (res *Window, err error) {
	ctx, scope := e.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.ScheduleWindow")
	defer scope.End()
	defer scope.TraceIfError(err)

	settings, err := e.settings.GetOrInitialize(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	var employee *employeeModel.Employee

	// An employee with no stored availability leaves the business window
	// untouched.
	if employeeID != constant.Empty {
		employees, err := e.employees.ListByBusiness(ctx, businessID)
		if err != nil {
			return nil, fmt.Errorf("failed to list employees: %w", err)
		}

		employee = findEmployee(employees, employeeID)
	}

	return scheduleWindowFor(settings, employee, timeslot.DayIndex(date)), nil
}

// LunchWindow is the fixed lunch block, nil when lunch is disabled or has no
// configured start.
func (e *engineImpl) LunchWindow(ctx context.Context, businessID string) (res *Window, err error) {
	ctx, scope := e.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.LunchWindow")
	defer scope.End()
	defer scope.TraceIfError(err)

	settings, err := e.settings.GetOrInitialize(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	return e.lunchWindowFor(settings), nil
}

func (e *engineImpl) DailyAvailability(ctx context.Context, date, ignoreID, businessID string) (res DailyAvailability, err error) {
	ctx, scope := e.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.DailyAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	settings, err := e.settings.GetOrInitialize(ctx, businessID)
	if err != nil {
		return res, fmt.Errorf("failed to load settings: %w", err)
	}

	appointments, err := e.appointments.ListActiveOn(ctx, businessID, date)
	if err != nil {
		return res, fmt.Errorf("failed to list appointments: %w", err)
	}

	return dailyAvailabilityFor(settings, appointments, ignoreID), nil
}

func (e *engineImpl) ClientDailyAvailability(ctx context.Context, query ClientQuery) (res ClientDailyAvailability, err error) {
	ctx, scope := e.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.ClientDailyAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	settings, err := e.settings.GetOrInitialize(ctx, query.BusinessID)
	if err != nil {
		return res, fmt.Errorf("failed to load settings: %w", err)
	}

	appointments, err := e.appointments.ListActiveOn(ctx, query.BusinessID, query.Date)
	if err != nil {
		return res, fmt.Errorf("failed to list appointments: %w", err)
	}

	limit := settings.ClientDailyLimit
	if limit <= 0 {
		limit = businessModel.DefaultClientDailyLimit
	}

	used := 0

	for i := range appointments {
		appointment := &appointments[i]
		if appointment.ID == query.IgnoreID {
			continue
		}

		if matchesIdentity(appointment, query.Identity) {
			used++
		}
	}

	return ClientDailyAvailability{
		Limit:     limit,
		Used:      used,
		Remaining: max(0, limit-used),
		Allowed:   used < limit,
	}, nil
}

// BookingDateStatus classifies a whole day against the booking lead/advance
// window. A day is too soon only when all of it is before the earliest
// bookable instant, and too far only when all of it is after the latest.
func (e *engineImpl) BookingDateStatus(ctx context.Context, date, businessID string) (res BookingDateStatus, err error) {
	ctx, scope := e.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.BookingDateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	settings, err := e.settings.GetOrInitialize(ctx, businessID)
	if err != nil {
		return res, fmt.Errorf("failed to load settings: %w", err)
	}

	earliest, latest, minHours, maxDays := e.bookingWindow(settings)

	res = BookingDateStatus{
		MinHours:     minHours,
		MaxDays:      maxDays,
		EarliestDate: timeslot.ToLocalDateISO(earliest),
		LatestDate:   timeslot.ToLocalDateISO(latest),
	}

	noon := timeslot.ParseDateOnly(date)
	if noon.IsZero() {
		return res, nil
	}

	dayStart := noon.Add(-12 * time.Hour)
	dayEnd := timeslot.EndOfDay(noon)

	res.IsTooSoon = dayEnd.Before(earliest)
	res.IsTooFar = dayStart.After(latest)
	res.Allowed = !res.IsTooSoon && !res.IsTooFar

	return res, nil
}

// IsWithinBookingWindow checks the exact date+time instant against the booking
// lead/advance window.
func (e *engineImpl) IsWithinBookingWindow(ctx context.Context, date, clock, businessID string) (res bool, err error) {
	ctx, scope := e.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.IsWithinBookingWindow")
	defer scope.End()
	defer scope.TraceIfError(err)

	settings, err := e.settings.GetOrInitialize(ctx, businessID)
	if err != nil {
		return false, fmt.Errorf("failed to load settings: %w", err)
	}

	earliest, latest, _, _ := e.bookingWindow(settings)

	return withinWindow(date, clock, earliest, latest), nil
}

// AvailableSlots walks candidate start times across the resolved schedule
// window in fixed steps and keeps the ones that are bookable. The result is
// recomputed fresh on every call; callers must re-query after any mutation.
func (e *engineImpl) AvailableSlots(ctx context.Context, query SlotQuery) (res []string, err error) {
	ctx, scope := e.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.AvailableSlots")
	defer scope.End()
	defer scope.TraceIfError(err)

	// A single-employee query without an employee has nothing to walk.
	if !query.UseTeamCapacity && query.EmployeeID == constant.Empty {
		return []string{}, nil
	}

	settings, err := e.settings.GetOrInitialize(ctx, query.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	appointments, err := e.appointments.ListActiveOn(ctx, query.BusinessID, query.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	daily := dailyAvailabilityFor(settings, appointments, query.IgnoreID)
	if daily.IsFull {
		return []string{}, nil
	}

	employees, err := e.employees.ListByBusiness(ctx, query.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	var window *Window

	day := timeslot.DayIndex(query.Date)

	if query.UseTeamCapacity {
		window = scheduleWindowFor(settings, nil, day)
	} else {
		window = scheduleWindowFor(settings, findEmployee(employees, query.EmployeeID), day)
	}

	if window == nil {
		return []string{}, nil
	}

	lunch := e.lunchWindowFor(settings)
	earliest, latest, _, _ := e.bookingWindow(settings)

	step := e.cfg.Booking.SlotStepMinutes

	slots := []string{}

	for start := window.Start; start+query.DurationMinutes <= window.End; start += step {
		end := start + query.DurationMinutes
		clock := timeslot.MinutesToTime(start)

		if !withinWindow(query.Date, clock, earliest, latest) {
			continue
		}

		if lunch != nil && timeslot.RangesOverlap(start, end, lunch.Start, lunch.End) {
			continue
		}

		if query.UseTeamCapacity {
			assignable := assignableFor(settings, employees, appointments, day, start, query.DurationMinutes, query.IgnoreID, constant.Empty)
			if len(assignable) == 0 {
				continue
			}
		} else if hasConflict(appointments, query.EmployeeID, start, end, query.IgnoreID) {
			continue
		}

		slots = append(slots, clock)
	}

	return slots, nil
}

// AssignableEmployeesForSlot lists the employees whose window contains the
// slot and who have no conflicting appointment, preferred employee first, the
// rest alphabetically.
func (e *engineImpl) AssignableEmployeesForSlot(ctx context.Context, date, clock string, durationMinutes int, businessID, ignoreID, preferredEmployeeID string) (res []employeeModel.Employee, err error) {
	ctx, scope := e.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.AssignableEmployeesForSlot")
	defer scope.End()
	defer scope.TraceIfError(err)

	settings, err := e.settings.GetOrInitialize(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	employees, err := e.employees.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	appointments, err := e.appointments.ListActiveOn(ctx, businessID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	start := timeslot.ToMinutes(clock)

	return assignableFor(settings, employees, appointments, timeslot.DayIndex(date), start, durationMinutes, ignoreID, preferredEmployeeID), nil
}

// ResolveBookingEmployee picks the employee a booking lands on: the preferred
// one when still assignable, otherwise the alphabetically first free
// alternate. Nil means nobody can serve the slot.
func (e *engineImpl) ResolveBookingEmployee(ctx context.Context, date, clock string, durationMinutes int, businessID, preferredEmployeeID, ignoreID string) (*employeeModel.Employee, error) {
	assignable, err := e.AssignableEmployeesForSlot(ctx, date, clock, durationMinutes, businessID, ignoreID, preferredEmployeeID)
	if err != nil {
		return nil, err
	}

	if len(assignable) == 0 {
		return nil, nil
	}

	return &assignable[0], nil
}

func (e *engineImpl) lunchWindowFor(settings businessModel.Settings) *Window {
	if !settings.LunchEnabled || settings.LunchStart == constant.Empty {
		return nil
	}

	start := timeslot.ToMinutes(settings.LunchStart)

	return &Window{Start: start, End: start + e.cfg.Booking.LunchDurationMin}
}

func (e *engineImpl) bookingWindow(settings businessModel.Settings) (earliest, latest time.Time, minHours, maxDays int) {
	minHours = settings.BookingMinHours
	if minHours < 0 {
		minHours = businessModel.DefaultBookingMinHours
	}

	maxDays = settings.BookingMaxDays
	if maxDays <= 0 {
		maxDays = businessModel.DefaultBookingMaxDays
	}

	now := e.now()
	earliest = now.Add(time.Duration(minHours) * time.Hour)
	latest = timeslot.EndOfDay(now.AddDate(0, 0, maxDays))

	return earliest, latest, minHours, maxDays
}

func withinWindow(date, clock string, earliest, latest time.Time) bool {
	dt, ok := timeslot.ParseDateTimeLocal(date, clock)
	if !ok {
		return false
	}

	return !dt.Before(earliest) && !dt.After(latest)
}

func dailyAvailabilityFor(settings businessModel.Settings, appointments []apptModel.Appointment, ignoreID string) DailyAvailability {
	limit := settings.DailyCapacity
	if limit <= 0 {
		limit = businessModel.DefaultDailyCapacity
	}

	booked := 0

	for i := range appointments {
		if appointments[i].ID == ignoreID {
			continue
		}

		booked++
	}

	return DailyAvailability{
		Limit:     limit,
		Booked:    booked,
		Remaining: max(0, limit-booked),
		IsFull:    booked >= limit,
	}
}

func scheduleWindowFor(settings businessModel.Settings, employee *employeeModel.Employee, day int) *Window {
	if day < 0 || day >= len(settings.Schedule) {
		return nil
	}

	schedule := settings.Schedule[day]
	if !schedule.Open {
		return nil
	}

	start := timeslot.ToMinutes(schedule.Start)
	end := timeslot.ToMinutes(schedule.End)

	// A day the employee's stored availability does not cover falls back to
	// the bare business window.
	if employee != nil && day < len(employee.Availability) {
		availability := employee.Availability[day]
		if !availability.Available {
			return nil
		}

		start = max(start, timeslot.ToMinutes(availability.Start))
		end = min(end, timeslot.ToMinutes(availability.End))
	}

	if start >= end {
		return nil
	}

	return &Window{Start: start, End: end}
}

func assignableFor(settings businessModel.Settings, employees []employeeModel.Employee, appointments []apptModel.Appointment, day, start, durationMinutes int, ignoreID, preferredEmployeeID string) []employeeModel.Employee {
	end := start + durationMinutes

	assignable := []employeeModel.Employee{}

	for i := range employees {
		employee := employees[i]

		window := scheduleWindowFor(settings, &employee, day)
		if window == nil || start < window.Start || end > window.End {
			continue
		}

		if hasConflict(appointments, employee.ID, start, end, ignoreID) {
			continue
		}

		assignable = append(assignable, employee)
	}

	sort.SliceStable(assignable, func(i, j int) bool {
		if assignable[i].ID == preferredEmployeeID {
			return assignable[j].ID != preferredEmployeeID
		}

		if assignable[j].ID == preferredEmployeeID {
			return false
		}

		return assignable[i].Name < assignable[j].Name
	})

	return assignable
}

func hasConflict(appointments []apptModel.Appointment, employeeID string, start, end int, ignoreID string) bool {
	for i := range appointments {
		appointment := &appointments[i]
		if appointment.ID == ignoreID {
			continue
		}

		if appointment.EmployeeID != employeeID {
			continue
		}

		if appointment.Overlaps(start, end) {
			return true
		}
	}

	return false
}

func findEmployee(employees []employeeModel.Employee, id string) *employeeModel.Employee {
	if id == constant.Empty {
		return nil
	}

	for i := range employees {
		if employees[i].ID == id {
			return &employees[i]
		}
	}

	return nil
}

// matchesIdentity reports whether an appointment belongs to the identified
// client. Any one supplied criterion matching counts; both sides of a
// criterion must be non-empty. Name only participates when the query carried
// neither email nor phone.
func matchesIdentity(appointment *apptModel.Appointment, identity ClientIdentity) bool {
	if identity.ID != constant.Empty && appointment.ClientID != constant.Empty &&
		appointment.ClientID == identity.ID {
		return true
	}

	if identity.Email != constant.Empty {
		email := clientModel.NormalizeEmail(appointment.ClientEmail)
		if email != constant.Empty && email == clientModel.NormalizeEmail(identity.Email) {
			return true
		}
	}

	if identity.Phone != constant.Empty {
		phone := clientModel.NormalizePhone(appointment.ClientPhone)
		if phone != constant.Empty && phone == clientModel.NormalizePhone(identity.Phone) {
			return true
		}
	}

	if identity.Email == constant.Empty && identity.Phone == constant.Empty && identity.Name != constant.Empty {
		name := clientModel.NormalizeName(appointment.ClientName)
		if name != constant.Empty && name == clientModel.NormalizeName(identity.Name) {
			return true
		}
	}

	return false
}
