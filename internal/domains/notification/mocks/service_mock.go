// Code generated by MockGen. DO NOT EDIT.
// Source: ./service.go
//
// Generated by this command:
//
//	mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Notification=MockNotificationService
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"
	model "reservahub/internal/domains/appointment/model"
	dto "reservahub/internal/domains/notification/model/dto"
	dto0 "reservahub/shared/dto"

	gomock "go.uber.org/mock/gomock"
)

// MockNotificationService is a mock of Notification interface.
type MockNotificationService struct {
	ctrl     *gomock.Controller
	recorder *MockNotificationServiceMockRecorder
	isgomock struct{}
}

// MockNotificationServiceMockRecorder is the mock recorder for MockNotificationService.
type MockNotificationServiceMockRecorder struct {
	mock *MockNotificationService
}

// NewMockNotificationService creates a new mock instance.
func NewMockNotificationService(ctrl *gomock.Controller) *MockNotificationService {
	mock := &MockNotificationService{ctrl: ctrl}
	mock.recorder = &MockNotificationServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockNotificationService) EXPECT() *MockNotificationServiceMockRecorder {
	return m.recorder
}

// CreateForAppointment mocks base method.
func (m *MockNotificationService) CreateForAppointment(ctx context.Context, appointment model.Appointment, notificationType string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateForAppointment", ctx, appointment, notificationType)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateForAppointment indicates an expected call of CreateForAppointment.
func (mr *MockNotificationServiceMockRecorder) CreateForAppointment(ctx, appointment, notificationType any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateForAppointment", reflect.TypeOf((*MockNotificationService)(nil).CreateForAppointment), ctx, appointment, notificationType)
}

// GetAll mocks base method.
func (m *MockNotificationService) GetAll(ctx context.Context, params dto0.QueryParams, businessID string) (dto.GetNotificationsResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAll", ctx, params, businessID)
	ret0, _ := ret[0].(dto.GetNotificationsResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAll indicates an expected call of GetAll.
func (mr *MockNotificationServiceMockRecorder) GetAll(ctx, params, businessID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAll", reflect.TypeOf((*MockNotificationService)(nil).GetAll), ctx, params, businessID)
}

// MarkAllRead mocks base method.
func (m *MockNotificationService) MarkAllRead(ctx context.Context, businessID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkAllRead", ctx, businessID)
	ret0, _ := ret[0].(error)
	return ret0
}

// MarkAllRead indicates an expected call of MarkAllRead.
func (mr *MockNotificationServiceMockRecorder) MarkAllRead(ctx, businessID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkAllRead", reflect.TypeOf((*MockNotificationService)(nil).MarkAllRead), ctx, businessID)
}

// MarkRead mocks base method.
func (m *MockNotificationService) MarkRead(ctx context.Context, id, businessID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkRead", ctx, id, businessID)
	ret0, _ := ret[0].(error)
	return ret0
}

// MarkRead indicates an expected call of MarkRead.
func (mr *MockNotificationServiceMockRecorder) MarkRead(ctx, id, businessID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkRead", reflect.TypeOf((*MockNotificationService)(nil).MarkRead), ctx, id, businessID)
}

// UnreadCount mocks base method.
func (m *MockNotificationService) UnreadCount(ctx context.Context, businessID string) (dto.UnreadCountResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UnreadCount", ctx, businessID)
	ret0, _ := ret[0].(dto.UnreadCountResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UnreadCount indicates an expected call of UnreadCount.
func (mr *MockNotificationServiceMockRecorder) UnreadCount(ctx, businessID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UnreadCount", reflect.TypeOf((*MockNotificationService)(nil).UnreadCount), ctx, businessID)
}
