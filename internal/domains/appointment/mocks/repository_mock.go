// Code generated by MockGen. DO NOT EDIT.
// Source: ./repository.go
//
// Generated by this command:
//
//	mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"
	model "reservahub/internal/domains/appointment/model"
	repository "reservahub/internal/domains/appointment/repository"
	dto "reservahub/shared/dto"

	gomock "go.uber.org/mock/gomock"
)

// MockAppointment is a mock of Appointment interface.
type MockAppointment struct {
	ctrl     *gomock.Controller
	recorder *MockAppointmentMockRecorder
	isgomock struct{}
}

// MockAppointmentMockRecorder is the mock recorder for MockAppointment.
type MockAppointmentMockRecorder struct {
	mock *MockAppointment
}

// NewMockAppointment creates a new mock instance.
func NewMockAppointment(ctrl *gomock.Controller) *MockAppointment {
	mock := &MockAppointment{ctrl: ctrl}
	mock.recorder = &MockAppointmentMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAppointment) EXPECT() *MockAppointmentMockRecorder {
	return m.recorder
}

// Count mocks base method.
func (m *MockAppointment) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Count", ctx, filter)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Count indicates an expected call of Count.
func (mr *MockAppointmentMockRecorder) Count(ctx, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Count", reflect.TypeOf((*MockAppointment)(nil).Count), ctx, filter)
}

// Delete mocks base method.
func (m *MockAppointment) Delete(ctx context.Context, filter dto.FilterGroup) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, filter)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockAppointmentMockRecorder) Delete(ctx, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockAppointment)(nil).Delete), ctx, filter)
}

// Exist mocks base method.
func (m *MockAppointment) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Exist", ctx, filter)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Exist indicates an expected call of Exist.
func (mr *MockAppointmentMockRecorder) Exist(ctx, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Exist", reflect.TypeOf((*MockAppointment)(nil).Exist), ctx, filter)
}

// Get mocks base method.
func (m *MockAppointment) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (model.Appointment, error) {
	m.ctrl.T.Helper()
	varargs := []any{ctx, filter}
	for _, a := range columns {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "Get", varargs...)
	ret0, _ := ret[0].(model.Appointment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockAppointmentMockRecorder) Get(ctx, filter any, columns ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{ctx, filter}, columns...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockAppointment)(nil).Get), varargs...)
}

// GetAll mocks base method.
func (m *MockAppointment) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]model.Appointment, error) {
	m.ctrl.T.Helper()
	varargs := []any{ctx, params, filter}
	for _, a := range columns {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "GetAll", varargs...)
	ret0, _ := ret[0].([]model.Appointment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAll indicates an expected call of GetAll.
func (mr *MockAppointmentMockRecorder) GetAll(ctx, params, filter any, columns ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{ctx, params, filter}, columns...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAll", reflect.TypeOf((*MockAppointment)(nil).GetAll), varargs...)
}

// Insert mocks base method.
func (m *MockAppointment) Insert(ctx context.Context, arg1 model.Appointment) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Insert", ctx, arg1)
	ret0, _ := ret[0].(error)
	return ret0
}

// Insert indicates an expected call of Insert.
func (mr *MockAppointmentMockRecorder) Insert(ctx, arg1 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Insert", reflect.TypeOf((*MockAppointment)(nil).Insert), ctx, arg1)
}

// InsertIfSlotFree mocks base method.
func (m *MockAppointment) InsertIfSlotFree(ctx context.Context, appointment model.Appointment, guard repository.SlotGuard) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InsertIfSlotFree", ctx, appointment, guard)
	ret0, _ := ret[0].(error)
	return ret0
}

// InsertIfSlotFree indicates an expected call of InsertIfSlotFree.
func (mr *MockAppointmentMockRecorder) InsertIfSlotFree(ctx, appointment, guard any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InsertIfSlotFree", reflect.TypeOf((*MockAppointment)(nil).InsertIfSlotFree), ctx, appointment, guard)
}

// ListActiveForClientOn mocks base method.
func (m *MockAppointment) ListActiveForClientOn(ctx context.Context, businessID, clientID, date string) ([]model.Appointment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListActiveForClientOn", ctx, businessID, clientID, date)
	ret0, _ := ret[0].([]model.Appointment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListActiveForClientOn indicates an expected call of ListActiveForClientOn.
func (mr *MockAppointmentMockRecorder) ListActiveForClientOn(ctx, businessID, clientID, date any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListActiveForClientOn", reflect.TypeOf((*MockAppointment)(nil).ListActiveForClientOn), ctx, businessID, clientID, date)
}

// ListActiveOn mocks base method.
func (m *MockAppointment) ListActiveOn(ctx context.Context, businessID, date string) ([]model.Appointment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListActiveOn", ctx, businessID, date)
	ret0, _ := ret[0].([]model.Appointment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListActiveOn indicates an expected call of ListActiveOn.
func (mr *MockAppointmentMockRecorder) ListActiveOn(ctx, businessID, date any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListActiveOn", reflect.TypeOf((*MockAppointment)(nil).ListActiveOn), ctx, businessID, date)
}

// Update mocks base method.
func (m *MockAppointment) Update(ctx context.Context, req map[string]any, filter dto.FilterGroup) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, req, filter)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockAppointmentMockRecorder) Update(ctx, req, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockAppointment)(nil).Update), ctx, req, filter)
}
