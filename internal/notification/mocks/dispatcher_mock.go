// Code generated by MockGen. DO NOT EDIT.
// Source: ./dispatcher.go
//
// Generated by this command:
//
//	mockgen -source=./dispatcher.go -destination=./mocks/dispatcher_mock.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"
	notification "reservahub/internal/notification"

	gomock "go.uber.org/mock/gomock"
)

// MockDispatcher is a mock of Dispatcher interface.
type MockDispatcher struct {
	ctrl     *gomock.Controller
	recorder *MockDispatcherMockRecorder
	isgomock struct{}
}

// MockDispatcherMockRecorder is the mock recorder for MockDispatcher.
type MockDispatcherMockRecorder struct {
	mock *MockDispatcher
}

// NewMockDispatcher creates a new mock instance.
func NewMockDispatcher(ctrl *gomock.Controller) *MockDispatcher {
	mock := &MockDispatcher{ctrl: ctrl}
	mock.recorder = &MockDispatcherMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockDispatcher) EXPECT() *MockDispatcherMockRecorder {
	return m.recorder
}

// SendAppointmentConfirmation mocks base method.
func (m *MockDispatcher) SendAppointmentConfirmation(ctx context.Context, req notification.EmailRequest) notification.Result {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SendAppointmentConfirmation", ctx, req)
	ret0, _ := ret[0].(notification.Result)
	return ret0
}

// SendAppointmentConfirmation indicates an expected call of SendAppointmentConfirmation.
func (mr *MockDispatcherMockRecorder) SendAppointmentConfirmation(ctx, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SendAppointmentConfirmation", reflect.TypeOf((*MockDispatcher)(nil).SendAppointmentConfirmation), ctx, req)
}

// SendAppointmentNotification mocks base method.
func (m *MockDispatcher) SendAppointmentNotification(ctx context.Context, req notification.EmailRequest) notification.Result {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SendAppointmentNotification", ctx, req)
	ret0, _ := ret[0].(notification.Result)
	return ret0
}

// SendAppointmentNotification indicates an expected call of SendAppointmentNotification.
func (mr *MockDispatcherMockRecorder) SendAppointmentNotification(ctx, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SendAppointmentNotification", reflect.TypeOf((*MockDispatcher)(nil).SendAppointmentNotification), ctx, req)
}
