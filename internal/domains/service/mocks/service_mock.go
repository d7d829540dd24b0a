// Code generated by MockGen. DO NOT EDIT.
// Source: ./service.go
//
// Generated by this command:
//
//	mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Service=MockServiceService
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"
	model "reservahub/internal/domains/service/model"
	dto "reservahub/internal/domains/service/model/dto"
	dto0 "reservahub/shared/dto"

	gomock "go.uber.org/mock/gomock"
)

// MockServiceService is a mock of Service interface.
type MockServiceService struct {
	ctrl     *gomock.Controller
	recorder *MockServiceServiceMockRecorder
	isgomock struct{}
}

// MockServiceServiceMockRecorder is the mock recorder for MockServiceService.
type MockServiceServiceMockRecorder struct {
	mock *MockServiceService
}

// NewMockServiceService creates a new mock instance.
func NewMockServiceService(ctrl *gomock.Controller) *MockServiceService {
	mock := &MockServiceService{ctrl: ctrl}
	mock.recorder = &MockServiceServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockServiceService) EXPECT() *MockServiceServiceMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockServiceService) Create(ctx context.Context, req dto.CreateServiceRequest, businessID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, req, businessID)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockServiceServiceMockRecorder) Create(ctx, req, businessID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockServiceService)(nil).Create), ctx, req, businessID)
}

// Delete mocks base method.
func (m *MockServiceService) Delete(ctx context.Context, id, businessID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, id, businessID)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockServiceServiceMockRecorder) Delete(ctx, id, businessID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockServiceService)(nil).Delete), ctx, id, businessID)
}

// Get mocks base method.
func (m *MockServiceService) Get(ctx context.Context, id, businessID string) (dto.ServiceResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, id, businessID)
	ret0, _ := ret[0].(dto.ServiceResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockServiceServiceMockRecorder) Get(ctx, id, businessID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockServiceService)(nil).Get), ctx, id, businessID)
}

// GetAll mocks base method.
func (m *MockServiceService) GetAll(ctx context.Context, req dto0.QueryParams, businessID string) (dto.GetServicesResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAll", ctx, req, businessID)
	ret0, _ := ret[0].(dto.GetServicesResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAll indicates an expected call of GetAll.
func (mr *MockServiceServiceMockRecorder) GetAll(ctx, req, businessID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAll", reflect.TypeOf((*MockServiceService)(nil).GetAll), ctx, req, businessID)
}

// GetModel mocks base method.
func (m *MockServiceService) GetModel(ctx context.Context, id, businessID string) (model.Service, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetModel", ctx, id, businessID)
	ret0, _ := ret[0].(model.Service)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetModel indicates an expected call of GetModel.
func (mr *MockServiceServiceMockRecorder) GetModel(ctx, id, businessID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetModel", reflect.TypeOf((*MockServiceService)(nil).GetModel), ctx, id, businessID)
}

// Update mocks base method.
func (m *MockServiceService) Update(ctx context.Context, req dto.UpdateServiceRequest, id, businessID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, req, id, businessID)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockServiceServiceMockRecorder) Update(ctx, req, id, businessID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockServiceService)(nil).Update), ctx, req, id, businessID)
}
