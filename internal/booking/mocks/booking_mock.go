// Code generated by MockGen. DO NOT EDIT.
// Source: ./booking.go
//
// Generated by this command:
//
//	mockgen -source=./booking.go -destination=./mocks/booking_mock.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"
	booking "reservahub/internal/booking"

	gomock "go.uber.org/mock/gomock"
)

// MockOrchestrator is a mock of Orchestrator interface.
type MockOrchestrator struct {
	ctrl     *gomock.Controller
	recorder *MockOrchestratorMockRecorder
	isgomock struct{}
}

// MockOrchestratorMockRecorder is the mock recorder for MockOrchestrator.
type MockOrchestratorMockRecorder struct {
	mock *MockOrchestrator
}

// NewMockOrchestrator creates a new mock instance.
func NewMockOrchestrator(ctrl *gomock.Controller) *MockOrchestrator {
	mock := &MockOrchestrator{ctrl: ctrl}
	mock.recorder = &MockOrchestratorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockOrchestrator) EXPECT() *MockOrchestratorMockRecorder {
	return m.recorder
}

// Book mocks base method.
func (m *MockOrchestrator) Book(ctx context.Context, req booking.Request, businessID string) (booking.Response, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Book", ctx, req, businessID)
	ret0, _ := ret[0].(booking.Response)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Book indicates an expected call of Book.
func (mr *MockOrchestratorMockRecorder) Book(ctx, req, businessID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Book", reflect.TypeOf((*MockOrchestrator)(nil).Book), ctx, req, businessID)
}

// Cancel mocks base method.
func (m *MockOrchestrator) Cancel(ctx context.Context, id, businessID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Cancel", ctx, id, businessID)
	ret0, _ := ret[0].(error)
	return ret0
}

// Cancel indicates an expected call of Cancel.
func (mr *MockOrchestratorMockRecorder) Cancel(ctx, id, businessID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Cancel", reflect.TypeOf((*MockOrchestrator)(nil).Cancel), ctx, id, businessID)
}

// Complete mocks base method.
func (m *MockOrchestrator) Complete(ctx context.Context, id, businessID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Complete", ctx, id, businessID)
	ret0, _ := ret[0].(error)
	return ret0
}

// Complete indicates an expected call of Complete.
func (mr *MockOrchestratorMockRecorder) Complete(ctx, id, businessID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Complete", reflect.TypeOf((*MockOrchestrator)(nil).Complete), ctx, id, businessID)
}

// Confirm mocks base method.
func (m *MockOrchestrator) Confirm(ctx context.Context, id, businessID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Confirm", ctx, id, businessID)
	ret0, _ := ret[0].(error)
	return ret0
}

// Confirm indicates an expected call of Confirm.
func (mr *MockOrchestratorMockRecorder) Confirm(ctx, id, businessID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Confirm", reflect.TypeOf((*MockOrchestrator)(nil).Confirm), ctx, id, businessID)
}

// Edit mocks base method.
func (m *MockOrchestrator) Edit(ctx context.Context, id string, req booking.Request, businessID string) (booking.Response, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Edit", ctx, id, req, businessID)
	ret0, _ := ret[0].(booking.Response)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Edit indicates an expected call of Edit.
func (mr *MockOrchestratorMockRecorder) Edit(ctx, id, req, businessID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Edit", reflect.TypeOf((*MockOrchestrator)(nil).Edit), ctx, id, req, businessID)
}
