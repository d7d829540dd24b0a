// Code generated by MockGen. DO NOT EDIT.
// Source: ./service.go
//
// Generated by this command:
//
//	mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Employee=MockEmployeeService
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"
	model "reservahub/internal/domains/employee/model"
	dto "reservahub/internal/domains/employee/model/dto"
	dto0 "reservahub/shared/dto"

	gomock "go.uber.org/mock/gomock"
)

// MockEmployeeService is a mock of Employee interface.
type MockEmployeeService struct {
	ctrl     *gomock.Controller
	recorder *MockEmployeeServiceMockRecorder
	isgomock struct{}
}

// MockEmployeeServiceMockRecorder is the mock recorder for MockEmployeeService.
type MockEmployeeServiceMockRecorder struct {
	mock *MockEmployeeService
}

// NewMockEmployeeService creates a new mock instance.
func NewMockEmployeeService(ctrl *gomock.Controller) *MockEmployeeService {
	mock := &MockEmployeeService{ctrl: ctrl}
	mock.recorder = &MockEmployeeServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockEmployeeService) EXPECT() *MockEmployeeServiceMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockEmployeeService) Create(ctx context.Context, req dto.CreateEmployeeRequest, businessID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, req, businessID)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockEmployeeServiceMockRecorder) Create(ctx, req, businessID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockEmployeeService)(nil).Create), ctx, req, businessID)
}

// Delete mocks base method.
func (m *MockEmployeeService) Delete(ctx context.Context, id, businessID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, id, businessID)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockEmployeeServiceMockRecorder) Delete(ctx, id, businessID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockEmployeeService)(nil).Delete), ctx, id, businessID)
}

// Get mocks base method.
func (m *MockEmployeeService) Get(ctx context.Context, id, businessID string) (dto.EmployeeResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, id, businessID)
	ret0, _ := ret[0].(dto.EmployeeResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockEmployeeServiceMockRecorder) Get(ctx, id, businessID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockEmployeeService)(nil).Get), ctx, id, businessID)
}

// GetAll mocks base method.
func (m *MockEmployeeService) GetAll(ctx context.Context, req dto0.QueryParams, businessID string) (dto.GetEmployeesResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAll", ctx, req, businessID)
	ret0, _ := ret[0].(dto.GetEmployeesResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAll indicates an expected call of GetAll.
func (mr *MockEmployeeServiceMockRecorder) GetAll(ctx, req, businessID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAll", reflect.TypeOf((*MockEmployeeService)(nil).GetAll), ctx, req, businessID)
}

// ListByBusiness mocks base method.
func (m *MockEmployeeService) ListByBusiness(ctx context.Context, businessID string) ([]model.Employee, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByBusiness", ctx, businessID)
	ret0, _ := ret[0].([]model.Employee)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListByBusiness indicates an expected call of ListByBusiness.
func (mr *MockEmployeeServiceMockRecorder) ListByBusiness(ctx, businessID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByBusiness", reflect.TypeOf((*MockEmployeeService)(nil).ListByBusiness), ctx, businessID)
}

// SaveAvailability mocks base method.
func (m *MockEmployeeService) SaveAvailability(ctx context.Context, req dto.SaveAvailabilityRequest, id, businessID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SaveAvailability", ctx, req, id, businessID)
	ret0, _ := ret[0].(error)
	return ret0
}

// SaveAvailability indicates an expected call of SaveAvailability.
func (mr *MockEmployeeServiceMockRecorder) SaveAvailability(ctx, req, id, businessID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SaveAvailability", reflect.TypeOf((*MockEmployeeService)(nil).SaveAvailability), ctx, req, id, businessID)
}

// Update mocks base method.
func (m *MockEmployeeService) Update(ctx context.Context, req dto.UpdateEmployeeRequest, id, businessID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, req, id, businessID)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockEmployeeServiceMockRecorder) Update(ctx, req, id, businessID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockEmployeeService)(nil).Update), ctx, req, id, businessID)
}
