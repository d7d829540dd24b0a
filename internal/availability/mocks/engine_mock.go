// Code generated by MockGen. DO NOT EDIT.
// Source: ./engine.go
//
// Generated by this command:
//
//	mockgen -source=./engine.go -destination=./mocks/engine_mock.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"
	availability "reservahub/internal/availability"
	model "reservahub/internal/domains/appointment/model"
	model0 "reservahub/internal/domains/business/model"
	model1 "reservahub/internal/domains/employee/model"

	gomock "go.uber.org/mock/gomock"
)

// MockSettingsSource is a mock of SettingsSource interface.
type MockSettingsSource struct {
	ctrl     *gomock.Controller
	recorder *MockSettingsSourceMockRecorder
	isgomock struct{}
}

// MockSettingsSourceMockRecorder is the mock recorder for MockSettingsSource.
type MockSettingsSourceMockRecorder struct {
	mock *MockSettingsSource
}

// NewMockSettingsSource creates a new mock instance.
func NewMockSettingsSource(ctrl *gomock.Controller) *MockSettingsSource {
	mock := &MockSettingsSource{ctrl: ctrl}
	mock.recorder = &MockSettingsSourceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSettingsSource) EXPECT() *MockSettingsSourceMockRecorder {
	return m.recorder
}

// GetOrInitialize mocks base method.
func (m *MockSettingsSource) GetOrInitialize(ctx context.Context, businessID string) (model0.Settings, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetOrInitialize", ctx, businessID)
	ret0, _ := ret[0].(model0.Settings)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetOrInitialize indicates an expected call of GetOrInitialize.
func (mr *MockSettingsSourceMockRecorder) GetOrInitialize(ctx, businessID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetOrInitialize", reflect.TypeOf((*MockSettingsSource)(nil).GetOrInitialize), ctx, businessID)
}

// MockEmployeeSource is a mock of EmployeeSource interface.
type MockEmployeeSource struct {
	ctrl     *gomock.Controller
	recorder *MockEmployeeSourceMockRecorder
	isgomock struct{}
}

// MockEmployeeSourceMockRecorder is the mock recorder for MockEmployeeSource.
type MockEmployeeSourceMockRecorder struct {
	mock *MockEmployeeSource
}

// NewMockEmployeeSource creates a new mock instance.
func NewMockEmployeeSource(ctrl *gomock.Controller) *MockEmployeeSource {
	mock := &MockEmployeeSource{ctrl: ctrl}
	mock.recorder = &MockEmployeeSourceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockEmployeeSource) EXPECT() *MockEmployeeSourceMockRecorder {
	return m.recorder
}

// ListByBusiness mocks base method.
func (m *MockEmployeeSource) ListByBusiness(ctx context.Context, businessID string) ([]model1.Employee, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByBusiness", ctx, businessID)
	ret0, _ := ret[0].([]model1.Employee)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListByBusiness indicates an expected call of ListByBusiness.
func (mr *MockEmployeeSourceMockRecorder) ListByBusiness(ctx, businessID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByBusiness", reflect.TypeOf((*MockEmployeeSource)(nil).ListByBusiness), ctx, businessID)
}

// MockAppointmentSource is a mock of AppointmentSource interface.
type MockAppointmentSource struct {
	ctrl     *gomock.Controller
	recorder *MockAppointmentSourceMockRecorder
	isgomock struct{}
}

// MockAppointmentSourceMockRecorder is the mock recorder for MockAppointmentSource.
type MockAppointmentSourceMockRecorder struct {
	mock *MockAppointmentSource
}

// NewMockAppointmentSource creates a new mock instance.
func NewMockAppointmentSource(ctrl *gomock.Controller) *MockAppointmentSource {
	mock := &MockAppointmentSource{ctrl: ctrl}
	mock.recorder = &MockAppointmentSourceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAppointmentSource) EXPECT() *MockAppointmentSourceMockRecorder {
	return m.recorder
}

// ListActiveOn mocks base method.
func (m *MockAppointmentSource) ListActiveOn(ctx context.Context, businessID, date string) ([]model.Appointment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListActiveOn", ctx, businessID, date)
	ret0, _ := ret[0].([]model.Appointment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListActiveOn indicates an expected call of ListActiveOn.
func (mr *MockAppointmentSourceMockRecorder) ListActiveOn(ctx, businessID, date any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListActiveOn", reflect.TypeOf((*MockAppointmentSource)(nil).ListActiveOn), ctx, businessID, date)
}

// MockEngine is a mock of Engine interface.
type MockEngine struct {
	ctrl     *gomock.Controller
	recorder *MockEngineMockRecorder
	isgomock struct{}
}

// MockEngineMockRecorder is the mock recorder for MockEngine.
type MockEngineMockRecorder struct {
	mock *MockEngine
}

// NewMockEngine creates a new mock instance.
func NewMockEngine(ctrl *gomock.Controller) *MockEngine {
	mock := &MockEngine{ctrl: ctrl}
	mock.recorder = &MockEngineMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockEngine) EXPECT() *MockEngineMockRecorder {
	return m.recorder
}

// AssignableEmployeesForSlot mocks base method.
func (m *MockEngine) AssignableEmployeesForSlot(ctx context.Context, date, clock string, durationMinutes int, businessID, ignoreID, preferredEmployeeID string) ([]model1.Employee, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AssignableEmployeesForSlot", ctx, date, clock, durationMinutes, businessID, ignoreID, preferredEmployeeID)
	ret0, _ := ret[0].([]model1.Employee)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AssignableEmployeesForSlot indicates an expected call of AssignableEmployeesForSlot.
func (mr *MockEngineMockRecorder) AssignableEmployeesForSlot(ctx, date, clock, durationMinutes, businessID, ignoreID, preferredEmployeeID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AssignableEmployeesForSlot", reflect.TypeOf((*MockEngine)(nil).AssignableEmployeesForSlot), ctx, date, clock, durationMinutes, businessID, ignoreID, preferredEmployeeID)
}

// AvailableSlots mocks base method.
func (m *MockEngine) AvailableSlots(ctx context.Context, query availability.SlotQuery) ([]string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AvailableSlots", ctx, query)
	ret0, _ := ret[0].([]string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AvailableSlots indicates an expected call of AvailableSlots.
func (mr *MockEngineMockRecorder) AvailableSlots(ctx, query any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AvailableSlots", reflect.TypeOf((*MockEngine)(nil).AvailableSlots), ctx, query)
}

// BookingDateStatus mocks base method.
func (m *MockEngine) BookingDateStatus(ctx context.Context, date, businessID string) (availability.BookingDateStatus, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BookingDateStatus", ctx, date, businessID)
	ret0, _ := ret[0].(availability.BookingDateStatus)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// BookingDateStatus indicates an expected call of BookingDateStatus.
func (mr *MockEngineMockRecorder) BookingDateStatus(ctx, date, businessID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BookingDateStatus", reflect.TypeOf((*MockEngine)(nil).BookingDateStatus), ctx, date, businessID)
}

// ClientDailyAvailability mocks base method.
func (m *MockEngine) ClientDailyAvailability(ctx context.Context, query availability.ClientQuery) (availability.ClientDailyAvailability, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ClientDailyAvailability", ctx, query)
	ret0, _ := ret[0].(availability.ClientDailyAvailability)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ClientDailyAvailability indicates an expected call of ClientDailyAvailability.
func (mr *MockEngineMockRecorder) ClientDailyAvailability(ctx, query any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ClientDailyAvailability", reflect.TypeOf((*MockEngine)(nil).ClientDailyAvailability), ctx, query)
}

// DailyAvailability mocks base method.
func (m *MockEngine) DailyAvailability(ctx context.Context, date, ignoreID, businessID string) (availability.DailyAvailability, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DailyAvailability", ctx, date, ignoreID, businessID)
	ret0, _ := ret[0].(availability.DailyAvailability)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DailyAvailability indicates an expected call of DailyAvailability.
func (mr *MockEngineMockRecorder) DailyAvailability(ctx, date, ignoreID, businessID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DailyAvailability", reflect.TypeOf((*MockEngine)(nil).DailyAvailability), ctx, date, ignoreID, businessID)
}

// IsWithinBookingWindow mocks base method.
func (m *MockEngine) IsWithinBookingWindow(ctx context.Context, date, clock, businessID string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsWithinBookingWindow", ctx, date, clock, businessID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// IsWithinBookingWindow indicates an expected call of IsWithinBookingWindow.
func (mr *MockEngineMockRecorder) IsWithinBookingWindow(ctx, date, clock, businessID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsWithinBookingWindow", reflect.TypeOf((*MockEngine)(nil).IsWithinBookingWindow), ctx, date, clock, businessID)
}

// LunchWindow mocks base method.
func (m *MockEngine) LunchWindow(ctx context.Context, businessID string) (*availability.Window, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LunchWindow", ctx, businessID)
	ret0, _ := ret[0].(*availability.Window)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// LunchWindow indicates an expected call of LunchWindow.
func (mr *MockEngineMockRecorder) LunchWindow(ctx, businessID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LunchWindow", reflect.TypeOf((*MockEngine)(nil).LunchWindow), ctx, businessID)
}

// ResolveBookingEmployee mocks base method.
func (m *MockEngine) ResolveBookingEmployee(ctx context.Context, date, clock string, durationMinutes int, businessID, preferredEmployeeID, ignoreID string) (*model1.Employee, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ResolveBookingEmployee", ctx, date, clock, durationMinutes, businessID, preferredEmployeeID, ignoreID)
	ret0, _ := ret[0].(*model1.Employee)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ResolveBookingEmployee indicates an expected call of ResolveBookingEmployee.
func (mr *MockEngineMockRecorder) ResolveBookingEmployee(ctx, date, clock, durationMinutes, businessID, preferredEmployeeID, ignoreID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ResolveBookingEmployee", reflect.TypeOf((*MockEngine)(nil).ResolveBookingEmployee), ctx, date, clock, durationMinutes, businessID, preferredEmployeeID, ignoreID)
}

// ScheduleWindow mocks base method.
func (m *MockEngine) ScheduleWindow(ctx context.Context, date, employeeID, businessID string) (*availability.Window, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ScheduleWindow", ctx, date, employeeID, businessID)
	ret0, _ := ret[0].(*availability.Window)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ScheduleWindow indicates an expected call of ScheduleWindow.
func (mr *MockEngineMockRecorder) ScheduleWindow(ctx, date, employeeID, businessID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ScheduleWindow", reflect.TypeOf((*MockEngine)(nil).ScheduleWindow), ctx, date, employeeID, businessID)
}
