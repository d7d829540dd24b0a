// Code generated by MockGen. DO NOT EDIT.
// Source: ./service.go
//
// Generated by this command:
//
//	mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Appointment=MockAppointmentService
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"
	model "reservahub/internal/domains/appointment/model"
	dto "reservahub/internal/domains/appointment/model/dto"
	repository "reservahub/internal/domains/appointment/repository"
	dto0 "reservahub/shared/dto"

	gomock "go.uber.org/mock/gomock"
)

// MockAppointmentService is a mock of Appointment interface.
type MockAppointmentService struct {
	ctrl     *gomock.Controller
	recorder *MockAppointmentServiceMockRecorder
	isgomock struct{}
}

// MockAppointmentServiceMockRecorder is the mock recorder for MockAppointmentService.
type MockAppointmentServiceMockRecorder struct {
	mock *MockAppointmentService
}

// NewMockAppointmentService creates a new mock instance.
func NewMockAppointmentService(ctrl *gomock.Controller) *MockAppointmentService {
	mock := &MockAppointmentService{ctrl: ctrl}
	mock.recorder = &MockAppointmentServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAppointmentService) EXPECT() *MockAppointmentServiceMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockAppointmentService) Create(ctx context.Context, appointment model.Appointment, guard repository.SlotGuard) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, appointment, guard)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockAppointmentServiceMockRecorder) Create(ctx, appointment, guard any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockAppointmentService)(nil).Create), ctx, appointment, guard)
}

// Get mocks base method.
func (m *MockAppointmentService) Get(ctx context.Context, id, businessID string) (dto.AppointmentResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, id, businessID)
	ret0, _ := ret[0].(dto.AppointmentResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockAppointmentServiceMockRecorder) Get(ctx, id, businessID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockAppointmentService)(nil).Get), ctx, id, businessID)
}

// GetAll mocks base method.
func (m *MockAppointmentService) GetAll(ctx context.Context, params dto0.QueryParams, query dto.ListAppointmentsQuery, businessID string) (dto.GetAppointmentsResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAll", ctx, params, query, businessID)
	ret0, _ := ret[0].(dto.GetAppointmentsResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAll indicates an expected call of GetAll.
func (mr *MockAppointmentServiceMockRecorder) GetAll(ctx, params, query, businessID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAll", reflect.TypeOf((*MockAppointmentService)(nil).GetAll), ctx, params, query, businessID)
}

// GetModel mocks base method.
func (m *MockAppointmentService) GetModel(ctx context.Context, id, businessID string) (model.Appointment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetModel", ctx, id, businessID)
	ret0, _ := ret[0].(model.Appointment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetModel indicates an expected call of GetModel.
func (mr *MockAppointmentServiceMockRecorder) GetModel(ctx, id, businessID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetModel", reflect.TypeOf((*MockAppointmentService)(nil).GetModel), ctx, id, businessID)
}

// Insert mocks base method.
func (m *MockAppointmentService) Insert(ctx context.Context, appointment model.Appointment) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Insert", ctx, appointment)
	ret0, _ := ret[0].(error)
	return ret0
}

// Insert indicates an expected call of Insert.
func (mr *MockAppointmentServiceMockRecorder) Insert(ctx, appointment any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Insert", reflect.TypeOf((*MockAppointmentService)(nil).Insert), ctx, appointment)
}

// ListActiveForClientOn mocks base method.
func (m *MockAppointmentService) ListActiveForClientOn(ctx context.Context, businessID, clientID, date string) ([]model.Appointment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListActiveForClientOn", ctx, businessID, clientID, date)
	ret0, _ := ret[0].([]model.Appointment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListActiveForClientOn indicates an expected call of ListActiveForClientOn.
func (mr *MockAppointmentServiceMockRecorder) ListActiveForClientOn(ctx, businessID, clientID, date any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListActiveForClientOn", reflect.TypeOf((*MockAppointmentService)(nil).ListActiveForClientOn), ctx, businessID, clientID, date)
}

// ListActiveOn mocks base method.
func (m *MockAppointmentService) ListActiveOn(ctx context.Context, businessID, date string) ([]model.Appointment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListActiveOn", ctx, businessID, date)
	ret0, _ := ret[0].([]model.Appointment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListActiveOn indicates an expected call of ListActiveOn.
func (mr *MockAppointmentServiceMockRecorder) ListActiveOn(ctx, businessID, date any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListActiveOn", reflect.TypeOf((*MockAppointmentService)(nil).ListActiveOn), ctx, businessID, date)
}

// UpdateFields mocks base method.
func (m *MockAppointmentService) UpdateFields(ctx context.Context, fields map[string]any, id, businessID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateFields", ctx, fields, id, businessID)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateFields indicates an expected call of UpdateFields.
func (mr *MockAppointmentServiceMockRecorder) UpdateFields(ctx, fields, id, businessID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateFields", reflect.TypeOf((*MockAppointmentService)(nil).UpdateFields), ctx, fields, id, businessID)
}
